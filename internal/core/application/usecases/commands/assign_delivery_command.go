package commands

import (
	"errors"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/core/domain/model/order"
	"coordinator/internal/pkg/errs"
	"coordinator/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand is the admin operation over an order's delivery
// assignment. It covers three shapes:
//   - remove=true clears the assignment unconditionally
//   - method=volunteer assigns (or reassigns) the volunteer resolved by the
//     case-insensitive volunteer code
//   - method=post/courier sets a shipping method and clears any volunteer
type AssignDeliveryCommand struct {
	orderID       kernel.UUID
	volunteerCode string
	method        order.DeliveryMethod
	remove        bool
	guard         guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates a validated AssignDeliveryCommand.
// A volunteer code is required for the volunteer method unless the command
// removes the assignment.
func NewAssignDeliveryCommand(
	orderID kernel.UUID,
	volunteerCode string,
	method order.DeliveryMethod,
	remove bool,
) (AssignDeliveryCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignDeliveryCommand{}, err
	}
	if !remove {
		if method == order.MethodNone {
			return AssignDeliveryCommand{}, errs.NewValueIsRequiredError("delivery method")
		}
		if method == order.MethodVolunteer && volunteerCode == "" {
			return AssignDeliveryCommand{}, errs.NewValueIsRequiredError("volunteer code")
		}
	}

	return AssignDeliveryCommand{
		orderID:       orderID,
		volunteerCode: volunteerCode,
		method:        method,
		remove:        remove,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the target order.
func (c *AssignDeliveryCommand) OrderID() kernel.UUID { return c.orderID }

// VolunteerCode returns the volunteer_id code to assign, empty for
// non-volunteer methods.
func (c *AssignDeliveryCommand) VolunteerCode() string { return c.volunteerCode }

// Method returns the delivery method to set.
func (c *AssignDeliveryCommand) Method() order.DeliveryMethod { return c.method }

// Remove reports whether the command clears the assignment.
func (c *AssignDeliveryCommand) Remove() bool { return c.remove }

// Validate ensures the command was created through the constructor.
func (c *AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}
