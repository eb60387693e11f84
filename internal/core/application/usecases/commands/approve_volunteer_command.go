package commands

import (
	"errors"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/pkg/guard"
)

var ErrApproveVolunteerCommandIsNotConstructed = errors.New(
	"ApproveVolunteerCommand must be created via NewApproveVolunteerCommand constructor",
)

// ApproveVolunteerCommand activates a pending volunteer account.
type ApproveVolunteerCommand struct {
	volunteerID kernel.UUID
	guard       guard.ConstructorGuard
}

// NewApproveVolunteerCommand creates a validated ApproveVolunteerCommand.
func NewApproveVolunteerCommand(volunteerID kernel.UUID) (ApproveVolunteerCommand, error) {
	if err := volunteerID.Validate(); err != nil {
		return ApproveVolunteerCommand{}, err
	}

	return ApproveVolunteerCommand{
		volunteerID: volunteerID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// VolunteerID returns the volunteer to activate.
func (c *ApproveVolunteerCommand) VolunteerID() kernel.UUID { return c.volunteerID }

// Validate ensures the command was created through the constructor.
func (c *ApproveVolunteerCommand) Validate() error {
	return c.guard.Validate(ErrApproveVolunteerCommandIsNotConstructed)
}
