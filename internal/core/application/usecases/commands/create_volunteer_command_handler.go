package commands

import (
	"context"

	"coordinator/internal/core/domain/model/volunteer"
)

// CreateVolunteerCommandHandler handles volunteer registration.
type CreateVolunteerCommandHandler struct {
	uowFactory VolunteerUoWFactory
}

// NewCreateVolunteerCommandHandler creates a handler for volunteer
// registration.
func NewCreateVolunteerCommandHandler(uowFactory VolunteerUoWFactory) CreateVolunteerCommandHandler {
	return CreateVolunteerCommandHandler{uowFactory: uowFactory}
}

// Handle processes the registration command.
func (h CreateVolunteerCommandHandler) Handle(ctx context.Context, cmd CreateVolunteerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newVolunteer, err := volunteer.NewVolunteer(
		cmd.VolunteerID(),
		cmd.Code(),
		cmd.Name(),
		cmd.Phone(),
		cmd.Email(),
		cmd.Address(),
		cmd.CommissionPerBottle(),
		cmd.AdminCreated(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VolunteerRepository().Add(ctx, newVolunteer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
