package commands

import (
	"context"
	"log/slog"
	"time"

	"coordinator/internal/core/ports"
)

// RejectDeliveryRequestCommandHandler turns down a pending delivery request.
type RejectDeliveryRequestCommandHandler struct {
	uowFactory RequestUoWFactory
	notifier   ports.NotificationService
	logger     *slog.Logger
}

// NewRejectDeliveryRequestCommandHandler creates a handler for delivery
// request rejection.
func NewRejectDeliveryRequestCommandHandler(
	uowFactory RequestUoWFactory,
	notifier ports.NotificationService,
	logger *slog.Logger,
) RejectDeliveryRequestCommandHandler {
	return RejectDeliveryRequestCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "reject_request_handler"),
	}
}

// Handle processes the rejection. Only pending requests are actionable; the
// domain transition rejects everything else. The notification goes out after
// the commit and is best-effort.
func (h RejectDeliveryRequestCommandHandler) Handle(ctx context.Context, cmd RejectDeliveryRequestCommand) error {
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

	request, err := uow.DeliveryRequestRepository().Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}
	if err = request.Reject(time.Now(), cmd.Notes()); err != nil {
		return err
	}
	if err = uow.DeliveryRequestRepository().Update(ctx, request); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if notifyErr := h.notifier.NotifyDeliveryRequestUpdate(ctx, request.ID(), "rejected", request.VolunteerID()); notifyErr != nil {
		h.logger.WarnContext(ctx, "request rejected notification failed",
			"request_id", request.ID().String(), "error", notifyErr)
	}

	return nil
}
