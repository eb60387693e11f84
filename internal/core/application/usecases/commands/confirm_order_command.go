package commands

import (
	"errors"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand is an admin confirming an order after payment
// verification.
type ConfirmOrderCommand struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a validated ConfirmOrderCommand.
func NewConfirmOrderCommand(orderID kernel.UUID) (ConfirmOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return ConfirmOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order to confirm.
func (c *ConfirmOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Validate ensures the command was created through the constructor.
func (c *ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}
