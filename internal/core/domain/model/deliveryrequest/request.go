// Package deliveryrequest contains the DeliveryRequest aggregate: a
// volunteer's bid to take over delivery of a specific order, subject to admin
// approval.
//
// Multiple volunteers may hold pending requests for the same order at the
// same time; the race is resolved at approval time, where at most one request
// per order ever reaches approved and the rest are cascaded to rejected.
package deliveryrequest

import (
	"errors"
	"time"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/pkg/errs"
	"coordinator/internal/pkg/guard"
)

// CascadeRejectionNotes is written onto sibling pending requests when one
// request for the order is approved.
const CascadeRejectionNotes = "Another volunteer was assigned to this order"

// ManualAssignmentNotes marks the auto-approved audit record created when an
// admin assigns a volunteer directly, without a volunteer-initiated request.
const ManualAssignmentNotes = "Manually assigned by admin"

// ErrRequestIsNotConstructed is returned when a Request instance was not
// created through NewRequest or RestoreRequest.
var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

// Request is the aggregate root for a delivery request.
// Only pending requests are actionable; approve and reject stamp the response
// time and are final.
type Request struct {
	id          kernel.UUID
	orderID     kernel.UUID
	volunteerID kernel.UUID
	status      Status
	requestedAt time.Time
	respondedAt *time.Time
	notes       string
	guard       guard.ConstructorGuard
}

// NewRequest creates a pending delivery request from a volunteer for an order.
func NewRequest(id, orderID, volunteerID kernel.UUID, notes string, requestedAt time.Time) (*Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := volunteerID.Validate(); err != nil {
		return nil, err
	}

	return &Request{
		id:          id,
		orderID:     orderID,
		volunteerID: volunteerID,
		status:      StatusPending,
		requestedAt: requestedAt,
		notes:       notes,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// NewApprovedRequest creates an already approved request. This is the audit
// record written when an admin assigns a volunteer manually: there was no
// volunteer-initiated pending phase, but the assignment still shows up in the
// request history.
func NewApprovedRequest(id, orderID, volunteerID kernel.UUID, at time.Time) (*Request, error) {
	r, err := NewRequest(id, orderID, volunteerID, ManualAssignmentNotes, at)
	if err != nil {
		return nil, err
	}
	r.status = StatusApproved
	r.respondedAt = &at
	return r, nil
}

// RestoreRequest reconstructs a Request from persistence.
func RestoreRequest(
	id, orderID, volunteerID kernel.UUID,
	status Status,
	requestedAt time.Time,
	respondedAt *time.Time,
	notes string,
) (*Request, error) {
	r, err := NewRequest(id, orderID, volunteerID, notes, requestedAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	r.status = status
	r.respondedAt = respondedAt
	return r, nil
}

// Validate ensures the Request instance was properly constructed.
func (r *Request) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID { return r.id }

// OrderID returns the target order.
func (r *Request) OrderID() kernel.UUID { return r.orderID }

// VolunteerID returns the requesting volunteer.
func (r *Request) VolunteerID() kernel.UUID { return r.volunteerID }

// Status returns the request status.
func (r *Request) Status() Status { return r.status }

// RequestedAt returns when the request was submitted.
func (r *Request) RequestedAt() time.Time { return r.requestedAt }

// RespondedAt returns when the request was decided, or nil while pending.
func (r *Request) RespondedAt() *time.Time { return r.respondedAt }

// Notes returns the request notes.
func (r *Request) Notes() string { return r.notes }

// IsPending reports whether the request is still actionable.
func (r *Request) IsPending() bool { return r.status == StatusPending }

// Approve moves a pending request to approved and stamps the response time.
// Acting on a non-pending request fails with InvalidState.
func (r *Request) Approve(at time.Time) error {
	if r.status != StatusPending {
		return errs.NewInvalidStateError("delivery request", r.status.String())
	}
	r.status = StatusApproved
	r.respondedAt = &at
	return nil
}

// Reject moves a pending request to rejected, stamps the response time and
// records the rejection notes. Acting on a non-pending request fails with
// InvalidState.
func (r *Request) Reject(at time.Time, notes string) error {
	if r.status != StatusPending {
		return errs.NewInvalidStateError("delivery request", r.status.String())
	}
	r.status = StatusRejected
	r.respondedAt = &at
	if notes != "" {
		r.notes = notes
	}
	return nil
}
