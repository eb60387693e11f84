package commands

import (
	"errors"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/pkg/guard"
)

var ErrApproveDeliveryRequestCommandIsNotConstructed = errors.New(
	"ApproveDeliveryRequestCommand must be created via NewApproveDeliveryRequestCommand constructor",
)

// ApproveDeliveryRequestCommand is an admin's decision to hand the delivery
// to the requesting volunteer.
type ApproveDeliveryRequestCommand struct {
	requestID kernel.UUID
	guard     guard.ConstructorGuard
}

// NewApproveDeliveryRequestCommand creates a validated
// ApproveDeliveryRequestCommand.
func NewApproveDeliveryRequestCommand(requestID kernel.UUID) (ApproveDeliveryRequestCommand, error) {
	if err := requestID.Validate(); err != nil {
		return ApproveDeliveryRequestCommand{}, err
	}

	return ApproveDeliveryRequestCommand{
		requestID: requestID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RequestID returns the request to approve.
func (c *ApproveDeliveryRequestCommand) RequestID() kernel.UUID { return c.requestID }

// Validate ensures the command was created through the constructor.
func (c *ApproveDeliveryRequestCommand) Validate() error {
	return c.guard.Validate(ErrApproveDeliveryRequestCommandIsNotConstructed)
}
