package commands

import (
	"errors"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand creates a customer order at checkout. Creation includes
// the single decisive auto-assignment attempt: when the delivery address
// matches exactly one active volunteer, that volunteer is put on delivery
// duty immediately; otherwise the order is left for manual assignment.
type CreateOrderCommand struct {
	orderID       kernel.UUID
	customerName  string
	customerPhone string
	product       string
	quantity      int
	unitPrice     int64
	address       kernel.Address
	referredBy    *kernel.UUID
	guard         guard.ConstructorGuard
}

// NewCreateOrderCommand creates a validated CreateOrderCommand.
// Field-level business validation happens again in the Order constructor;
// the command only guards its own construction and identity inputs.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	customerPhone string,
	product string,
	quantity int,
	unitPrice int64,
	address kernel.Address,
	referredBy *kernel.UUID,
) (CreateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if referredBy != nil {
		if err := referredBy.Validate(); err != nil {
			return CreateOrderCommand{}, err
		}
	}

	return CreateOrderCommand{
		orderID:       orderID,
		customerName:  customerName,
		customerPhone: customerPhone,
		product:       product,
		quantity:      quantity,
		unitPrice:     unitPrice,
		address:       address,
		referredBy:    referredBy,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier for the new order.
func (c *CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerName returns the customer contact name.
func (c *CreateOrderCommand) CustomerName() string { return c.customerName }

// CustomerPhone returns the customer contact phone.
func (c *CreateOrderCommand) CustomerPhone() string { return c.customerPhone }

// Product returns the ordered product.
func (c *CreateOrderCommand) Product() string { return c.product }

// Quantity returns the ordered quantity.
func (c *CreateOrderCommand) Quantity() int { return c.quantity }

// UnitPrice returns the fixed per-unit price.
func (c *CreateOrderCommand) UnitPrice() int64 { return c.unitPrice }

// Address returns the delivery address.
func (c *CreateOrderCommand) Address() kernel.Address { return c.address }

// ReferredBy returns the referral volunteer, or nil.
func (c *CreateOrderCommand) ReferredBy() *kernel.UUID { return c.referredBy }

// Validate ensures the command was created through the constructor.
func (c *CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}
