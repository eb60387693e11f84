package commands

import (
	"context"
	"log/slog"

	"coordinator/internal/core/ports"
)

// ApproveVolunteerCommandHandler activates pending volunteer accounts.
type ApproveVolunteerCommandHandler struct {
	uowFactory VolunteerUoWFactory
	notifier   ports.NotificationService
	logger     *slog.Logger
}

// NewApproveVolunteerCommandHandler creates a handler for volunteer
// approval.
func NewApproveVolunteerCommandHandler(
	uowFactory VolunteerUoWFactory,
	notifier ports.NotificationService,
	logger *slog.Logger,
) ApproveVolunteerCommandHandler {
	return ApproveVolunteerCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "approve_volunteer_handler"),
	}
}

// Handle processes the approval. The activation notification goes out after
// the commit and is best-effort.
func (h ApproveVolunteerCommandHandler) Handle(ctx context.Context, cmd ApproveVolunteerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pendingVolunteer, err := uow.VolunteerRepository().Get(ctx, cmd.VolunteerID())
	if err != nil {
		return err
	}
	if err = pendingVolunteer.Approve(); err != nil {
		return err
	}
	if err = uow.VolunteerRepository().Update(ctx, pendingVolunteer); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if notifyErr := h.notifier.NotifyVolunteerApproved(ctx, pendingVolunteer.ID()); notifyErr != nil {
		h.logger.WarnContext(ctx, "volunteer approved notification failed",
			"volunteer_id", pendingVolunteer.ID().String(), "error", notifyErr)
	}

	return nil
}
