// Package volunteer contains the Volunteer aggregate: identity, delivery-area
// address attributes and the running commission counters.
package volunteer

import (
	"errors"
	"strings"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/pkg/errs"
	"coordinator/internal/pkg/guard"
)

var (
	// ErrVolunteerIsNotConstructed is returned when a Volunteer instance was
	// not created through NewVolunteer or RestoreVolunteer.
	ErrVolunteerIsNotConstructed = errors.New("Volunteer must be created via NewVolunteer constructor")

	// ErrCodeIsRequired is returned when creating a volunteer without the
	// human-readable volunteer_id code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("volunteer code")
	// ErrNameIsRequired is returned when creating a volunteer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when creating a volunteer without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
)

// DeliveryTotals is the snapshot of a volunteer's running delivery counters
// returned after a delivery is recorded.
type DeliveryTotals struct {
	TotalDeliveries int
	TotalCommission int64
}

// Volunteer is the aggregate root for a delivery volunteer.
//
// Besides the opaque UUID identity, a volunteer carries a human-readable
// volunteer_id code that admins use for manual assignment; the code is unique
// case-insensitively. The address fields define the volunteer's delivery
// area for automatic matching, and the commission counters accumulate as
// deliveries complete.
//
// The counters on the aggregate are a read snapshot: the persistence layer
// increments them with a single atomic statement so concurrent deliveries by
// the same volunteer never lose updates.
type Volunteer struct {
	id                  kernel.UUID
	code                string
	name                string
	phone               string
	email               string
	address             kernel.Address
	status              Status
	commissionPerBottle int64
	totalDeliveries     int
	totalCommission     int64
	guard               guard.ConstructorGuard
}

// NewVolunteer creates a new Volunteer.
//
// adminCreated controls the initial status: self-signup produces pending
// (requires admin approval), admin-created volunteers are active immediately.
func NewVolunteer(
	id kernel.UUID,
	code string,
	name string,
	phone string,
	email string,
	address kernel.Address,
	commissionPerBottle int64,
	adminCreated bool,
) (*Volunteer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrCodeIsRequired
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if phone == "" {
		return nil, ErrPhoneIsRequired
	}
	if commissionPerBottle < 0 {
		return nil, errs.NewValueIsInvalidError("commission per bottle")
	}

	status := StatusPending
	if adminCreated {
		status = StatusActive
	}

	return &Volunteer{
		id:                  id,
		code:                code,
		name:                name,
		phone:               phone,
		email:               email,
		address:             address,
		status:              status,
		commissionPerBottle: commissionPerBottle,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// RestoreVolunteer reconstructs a Volunteer from persistence.
func RestoreVolunteer(
	id kernel.UUID,
	code string,
	name string,
	phone string,
	email string,
	address kernel.Address,
	status Status,
	commissionPerBottle int64,
	totalDeliveries int,
	totalCommission int64,
) (*Volunteer, error) {
	v, err := NewVolunteer(id, code, name, phone, email, address, commissionPerBottle, false)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if totalDeliveries < 0 || totalCommission < 0 {
		return nil, errs.NewValueIsInvalidError("delivery totals")
	}

	v.status = status
	v.totalDeliveries = totalDeliveries
	v.totalCommission = totalCommission
	return v, nil
}

// Validate ensures the Volunteer instance was properly constructed.
func (v *Volunteer) Validate() error {
	if v == nil {
		return ErrVolunteerIsNotConstructed
	}
	return v.guard.Validate(ErrVolunteerIsNotConstructed)
}

// ID returns the volunteer's unique identifier.
func (v *Volunteer) ID() kernel.UUID { return v.id }

// Code returns the human-readable volunteer_id code.
func (v *Volunteer) Code() string { return v.code }

// Name returns the volunteer's name.
func (v *Volunteer) Name() string { return v.name }

// Phone returns the volunteer's phone.
func (v *Volunteer) Phone() string { return v.phone }

// Email returns the volunteer's email.
func (v *Volunteer) Email() string { return v.email }

// Address returns the volunteer's registered delivery-area address.
func (v *Volunteer) Address() kernel.Address { return v.address }

// Status returns the volunteer's account status.
func (v *Volunteer) Status() Status { return v.status }

// CommissionPerBottle returns the volunteer's per-bottle delivery commission.
func (v *Volunteer) CommissionPerBottle() int64 { return v.commissionPerBottle }

// TotalDeliveries returns the snapshot of completed deliveries.
func (v *Volunteer) TotalDeliveries() int { return v.totalDeliveries }

// TotalCommission returns the snapshot of accumulated delivery commission.
func (v *Volunteer) TotalCommission() int64 { return v.totalCommission }

// CanDeliver reports whether the volunteer may take delivery duty.
func (v *Volunteer) CanDeliver() bool {
	return v.status == StatusActive
}

// CommissionFor computes the delivery commission for the given bottle count.
func (v *Volunteer) CommissionFor(quantity int) int64 {
	return int64(quantity) * v.commissionPerBottle
}

// Approve activates a pending volunteer. Only pending volunteers can be
// approved.
func (v *Volunteer) Approve() error {
	if v.status != StatusPending {
		return errs.NewInvalidStateError("volunteer", v.status.String())
	}
	v.status = StatusActive
	return nil
}

// Suspend blocks an active volunteer from delivery activity.
func (v *Volunteer) Suspend() error {
	if v.status != StatusActive {
		return errs.NewInvalidStateError("volunteer", v.status.String())
	}
	v.status = StatusSuspended
	return nil
}

// Reinstate reactivates a suspended volunteer.
func (v *Volunteer) Reinstate() error {
	if v.status != StatusSuspended {
		return errs.NewInvalidStateError("volunteer", v.status.String())
	}
	v.status = StatusActive
	return nil
}
