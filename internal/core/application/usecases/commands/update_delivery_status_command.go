package commands

import (
	"errors"
	"fmt"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/core/domain/model/order"
	"coordinator/internal/pkg/errs"
	"coordinator/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand is a volunteer reporting the outcome of a
// delivery attempt. Only the delivered and cant_reach outcomes are valid.
type UpdateDeliveryStatusCommand struct {
	orderID     kernel.UUID
	volunteerID kernel.UUID
	newStatus   order.Status
	guard       guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a validated
// UpdateDeliveryStatusCommand.
func NewUpdateDeliveryStatusCommand(
	orderID kernel.UUID,
	volunteerID kernel.UUID,
	newStatus order.Status,
) (UpdateDeliveryStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}
	if err := volunteerID.Validate(); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}
	if newStatus != order.StatusDelivered && newStatus != order.StatusCantReach {
		return UpdateDeliveryStatusCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"new status",
			fmt.Errorf("%q is not a delivery outcome", newStatus.String()),
		)
	}

	return UpdateDeliveryStatusCommand{
		orderID:     orderID,
		volunteerID: volunteerID,
		newStatus:   newStatus,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order being reported on.
func (c *UpdateDeliveryStatusCommand) OrderID() kernel.UUID { return c.orderID }

// VolunteerID returns the reporting volunteer.
func (c *UpdateDeliveryStatusCommand) VolunteerID() kernel.UUID { return c.volunteerID }

// NewStatus returns the reported outcome.
func (c *UpdateDeliveryStatusCommand) NewStatus() order.Status { return c.newStatus }

// Validate ensures the command was created through the constructor.
func (c *UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}
