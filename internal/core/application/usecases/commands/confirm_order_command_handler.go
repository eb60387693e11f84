package commands

import (
	"context"
	"log/slog"
	"time"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/core/domain/model/tracking"
)

// ConfirmOrderCommandHandler confirms an order for fulfillment.
//
// Confirmation is also the point where a referral starts counting towards
// the referring volunteer's challenge: one confirmed order and the order's
// total price land on the referrer's running progress.
type ConfirmOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(uowFactory UoWFactory, logger *slog.Logger) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "confirm_order_handler"),
	}
}

// Handle processes the confirmation.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
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

	confirmedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = confirmedOrder.Confirm(); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, confirmedOrder); err != nil {
		return err
	}

	if referrer := confirmedOrder.ReferredBy(); referrer != nil {
		if err = uow.ChallengeProgressRepository().IncrementConfirmed(
			ctx, *referrer, 1, confirmedOrder.TotalPrice(),
		); err != nil {
			return err
		}
	}

	event, err := tracking.NewEvent(
		kernel.NewUUID(), confirmedOrder.ID(),
		tracking.CodeOrderConfirmed, "Order confirmed",
		"Your order is being prepared for delivery", "",
		tracking.ActorAdmin, time.Now(),
	)
	if err != nil {
		return err
	}
	if err = uow.TrackingRepository().Append(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
