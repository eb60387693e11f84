package commands

import (
	"errors"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/pkg/guard"
)

var ErrSubmitDeliveryRequestCommandIsNotConstructed = errors.New(
	"SubmitDeliveryRequestCommand must be created via NewSubmitDeliveryRequestCommand constructor",
)

// SubmitDeliveryRequestCommand is a volunteer's offer to deliver an order.
type SubmitDeliveryRequestCommand struct {
	requestID   kernel.UUID
	orderID     kernel.UUID
	volunteerID kernel.UUID
	notes       string
	guard       guard.ConstructorGuard
}

// NewSubmitDeliveryRequestCommand creates a validated
// SubmitDeliveryRequestCommand.
func NewSubmitDeliveryRequestCommand(
	requestID kernel.UUID,
	orderID kernel.UUID,
	volunteerID kernel.UUID,
	notes string,
) (SubmitDeliveryRequestCommand, error) {
	if err := requestID.Validate(); err != nil {
		return SubmitDeliveryRequestCommand{}, err
	}
	if err := orderID.Validate(); err != nil {
		return SubmitDeliveryRequestCommand{}, err
	}
	if err := volunteerID.Validate(); err != nil {
		return SubmitDeliveryRequestCommand{}, err
	}

	return SubmitDeliveryRequestCommand{
		requestID:   requestID,
		orderID:     orderID,
		volunteerID: volunteerID,
		notes:       notes,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RequestID returns the identity for the new request.
func (c *SubmitDeliveryRequestCommand) RequestID() kernel.UUID { return c.requestID }

// OrderID returns the order the volunteer wants to deliver.
func (c *SubmitDeliveryRequestCommand) OrderID() kernel.UUID { return c.orderID }

// VolunteerID returns the requesting volunteer.
func (c *SubmitDeliveryRequestCommand) VolunteerID() kernel.UUID { return c.volunteerID }

// Notes returns the optional message attached by the volunteer.
func (c *SubmitDeliveryRequestCommand) Notes() string { return c.notes }

// Validate ensures the command was created through the constructor.
func (c *SubmitDeliveryRequestCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDeliveryRequestCommandIsNotConstructed)
}
