package commands

import (
	"errors"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/pkg/guard"
)

var ErrCreateVolunteerCommandIsNotConstructed = errors.New(
	"CreateVolunteerCommand must be created via NewCreateVolunteerCommand constructor",
)

// CreateVolunteerCommand registers a delivery volunteer. Self-signups start
// pending and need admin approval before they can take deliveries;
// admin-created accounts are active immediately.
type CreateVolunteerCommand struct {
	volunteerID         kernel.UUID
	code                string
	name                string
	phone               string
	email               string
	address             kernel.Address
	commissionPerBottle int64
	adminCreated        bool
	guard               guard.ConstructorGuard
}

// NewCreateVolunteerCommand creates a validated CreateVolunteerCommand.
// Field-level validation lives in the volunteer aggregate; the command only
// checks its identity.
func NewCreateVolunteerCommand(
	volunteerID kernel.UUID,
	code string,
	name string,
	phone string,
	email string,
	address kernel.Address,
	commissionPerBottle int64,
	adminCreated bool,
) (CreateVolunteerCommand, error) {
	if err := volunteerID.Validate(); err != nil {
		return CreateVolunteerCommand{}, err
	}

	return CreateVolunteerCommand{
		volunteerID:         volunteerID,
		code:                code,
		name:                name,
		phone:               phone,
		email:               email,
		address:             address,
		commissionPerBottle: commissionPerBottle,
		adminCreated:        adminCreated,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// VolunteerID returns the identity for the new volunteer.
func (c *CreateVolunteerCommand) VolunteerID() kernel.UUID { return c.volunteerID }

// Code returns the human-facing volunteer code.
func (c *CreateVolunteerCommand) Code() string { return c.code }

// Name returns the volunteer's name.
func (c *CreateVolunteerCommand) Name() string { return c.name }

// Phone returns the volunteer's phone number.
func (c *CreateVolunteerCommand) Phone() string { return c.phone }

// Email returns the volunteer's email, possibly empty.
func (c *CreateVolunteerCommand) Email() string { return c.email }

// Address returns the volunteer's delivery area address.
func (c *CreateVolunteerCommand) Address() kernel.Address { return c.address }

// CommissionPerBottle returns the volunteer's per-bottle commission rate.
func (c *CreateVolunteerCommand) CommissionPerBottle() int64 { return c.commissionPerBottle }

// AdminCreated reports whether an admin registered this volunteer.
func (c *CreateVolunteerCommand) AdminCreated() bool { return c.adminCreated }

// Validate ensures the command was created through the constructor.
func (c *CreateVolunteerCommand) Validate() error {
	return c.guard.Validate(ErrCreateVolunteerCommandIsNotConstructed)
}
