// Package tracking contains the append-only event ledger that backs the
// customer-visible order timeline. Events record every state transition and
// are never mutated or deleted; the timeline reads them sorted by creation
// time so entries never reorder relative to their causing transition.
package tracking

import (
	"errors"
	"fmt"
	"time"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/pkg/errs"
	"coordinator/internal/pkg/guard"
)

// Event codes written by the core operations.
const (
	CodeOrderPlaced       = "order_placed"
	CodeOrderConfirmed    = "order_confirmed"
	CodeVolunteerAssigned = "volunteer_assigned"
	CodeShippingAssigned  = "shipping_assigned"
	CodeAssignmentRemoved = "assignment_removed"
	CodeOrderDelivered    = "order_delivered"
	CodeCantReach         = "cant_reach"
	CodeOrderCancelled    = "order_cancelled"
)

// Actor identifies who caused a tracking event.
type Actor int

const (
	// ActorUnknown catches uninitialized values.
	ActorUnknown Actor = iota

	// ActorSystem marks transitions performed automatically.
	ActorSystem

	// ActorAdmin marks transitions performed by the admin staff.
	ActorAdmin

	// ActorVolunteer marks transitions performed by a delivery volunteer.
	ActorVolunteer
)

func actorCodes() map[Actor]string {
	return map[Actor]string{
		ActorSystem:    "system",
		ActorAdmin:     "admin",
		ActorVolunteer: "volunteer",
	}
}

// ActorFromCode parses a persisted actor code.
func ActorFromCode(code string) (Actor, error) {
	for a, c := range actorCodes() {
		if c == code {
			return a, nil
		}
	}
	return ActorUnknown, errs.NewValueIsInvalidErrorWithCause(
		"actor",
		fmt.Errorf("%q is not a valid actor", code),
	)
}

// String returns the wire code of the actor.
func (a Actor) String() string {
	if code, ok := actorCodes()[a]; ok {
		return code
	}
	return "unknown"
}

// Validate checks if the Actor value is valid.
func (a Actor) Validate() error {
	if _, ok := actorCodes()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"actor",
			fmt.Errorf("%d is not a valid actor", a),
		)
	}
	return nil
}

// ErrEventIsNotConstructed is returned when an Event was not created through
// NewEvent or RestoreEvent.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")

// Event is one entry in an order's tracking ledger.
type Event struct {
	id          kernel.UUID
	orderID     kernel.UUID
	code        string
	title       string
	description string
	location    string
	updatedBy   Actor
	createdAt   time.Time
	guard       guard.ConstructorGuard
}

// NewEvent creates a tracking event for an order. createdAt carries the
// timestamp of the causing transition so the timeline reads back in cause
// order.
func NewEvent(
	id kernel.UUID,
	orderID kernel.UUID,
	code string,
	title string,
	description string,
	location string,
	updatedBy Actor,
	createdAt time.Time,
) (*Event, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, errs.NewValueIsRequiredError("event code")
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("event title")
	}
	if err := updatedBy.Validate(); err != nil {
		return nil, err
	}

	return &Event{
		id:          id,
		orderID:     orderID,
		code:        code,
		title:       title,
		description: description,
		location:    location,
		updatedBy:   updatedBy,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreEvent reconstructs an Event from persistence.
func RestoreEvent(
	id kernel.UUID,
	orderID kernel.UUID,
	code string,
	title string,
	description string,
	location string,
	updatedBy Actor,
	createdAt time.Time,
) (*Event, error) {
	return NewEvent(id, orderID, code, title, description, location, updatedBy, createdAt)
}

// Validate ensures the Event instance was properly constructed.
func (e *Event) Validate() error {
	if e == nil {
		return ErrEventIsNotConstructed
	}
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID { return e.id }

// OrderID returns the order the event belongs to.
func (e *Event) OrderID() kernel.UUID { return e.orderID }

// Code returns the event status code, e.g. "volunteer_assigned".
func (e *Event) Code() string { return e.code }

// Title returns the customer-facing title.
func (e *Event) Title() string { return e.title }

// Description returns the optional description.
func (e *Event) Description() string { return e.description }

// Location returns the optional location text.
func (e *Event) Location() string { return e.location }

// UpdatedBy returns who caused the event.
func (e *Event) UpdatedBy() Actor { return e.updatedBy }

// CreatedAt returns the event timestamp.
func (e *Event) CreatedAt() time.Time { return e.createdAt }
