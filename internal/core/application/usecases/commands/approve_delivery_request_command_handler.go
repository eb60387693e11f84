package commands

import (
	"context"
	"log/slog"
	"time"

	"coordinator/internal/core/domain/model/deliveryrequest"
	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/core/domain/model/tracking"
	"coordinator/internal/core/ports"
	"coordinator/internal/pkg/errs"
)

// ApproveDeliveryRequestCommandHandler grants a pending delivery request.
//
// The interesting part is the race between two approvals on the same order.
// The invariant check here (order must not already belong to a different
// volunteer) runs inside the transaction, and the order update carries an
// optimistic version predicate, so of two concurrent approvals exactly one
// commits. The loser surfaces a conflict error to its caller.
type ApproveDeliveryRequestCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.NotificationService
	logger     *slog.Logger
}

// NewApproveDeliveryRequestCommandHandler creates a handler for delivery
// request approval.
func NewApproveDeliveryRequestCommandHandler(
	uowFactory UoWFactory,
	notifier ports.NotificationService,
	logger *slog.Logger,
) ApproveDeliveryRequestCommandHandler {
	return ApproveDeliveryRequestCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "approve_request_handler"),
	}
}

// Handle processes the approval. The request flip, the order assignment and
// the tracking entry commit in one transaction. The cascade that rejects the
// order's other pending requests, and the notifications, run after the
// commit and are best-effort: a failure there is logged and never reverses
// the approval.
func (h ApproveDeliveryRequestCommandHandler) Handle(ctx context.Context, cmd ApproveDeliveryRequestCommand) error {
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
	if !request.IsPending() {
		return errs.NewInvalidStateError("delivery request", request.Status().String())
	}

	requestedOrder, err := uow.OrderRepository().Get(ctx, request.OrderID())
	if err != nil {
		return err
	}
	if requestedOrder.Assignment().IsDuty() && !requestedOrder.Assignment().IsAssignedTo(request.VolunteerID()) {
		return errs.NewConflictError("order", "already has a delivery volunteer assigned")
	}

	now := time.Now()
	if err = request.Approve(now); err != nil {
		return err
	}
	if err = uow.DeliveryRequestRepository().Update(ctx, request); err != nil {
		return err
	}

	if err = requestedOrder.AssignVolunteer(request.VolunteerID()); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, requestedOrder); err != nil {
		return err
	}

	assignedEvent, err := tracking.NewEvent(
		kernel.NewUUID(), requestedOrder.ID(),
		tracking.CodeVolunteerAssigned, "Delivery volunteer assigned",
		"A volunteer in your area will deliver this order", "",
		tracking.ActorAdmin, now,
	)
	if err != nil {
		return err
	}
	if err = uow.TrackingRepository().Append(ctx, assignedEvent); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.rejectSiblings(ctx, request, now)
	h.notify(ctx, request, requestedOrder.ID())

	return nil
}

// rejectSiblings bulk-rejects the order's other pending requests in a fresh
// transaction. A request submitted after the cascade ran stays pending and
// is caught by the duty re-check on the next approval attempt.
func (h ApproveDeliveryRequestCommandHandler) rejectSiblings(
	ctx context.Context,
	approved *deliveryrequest.Request,
	at time.Time,
) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		h.logger.WarnContext(ctx, "cascade rejection skipped",
			"order_id", approved.OrderID().String(), "error", err)
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rejected, err := uow.DeliveryRequestRepository().RejectOtherPending(
		ctx, approved.OrderID(), approved.ID(), deliveryrequest.CascadeRejectionNotes, at,
	)
	if err == nil {
		err = uow.Commit(ctx)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "cascade rejection failed",
			"order_id", approved.OrderID().String(), "error", err)
		return
	}
	if rejected > 0 {
		h.logger.InfoContext(ctx, "cascade rejected sibling requests",
			"order_id", approved.OrderID().String(), "count", rejected)
	}
}

func (h ApproveDeliveryRequestCommandHandler) notify(
	ctx context.Context,
	approved *deliveryrequest.Request,
	orderID kernel.UUID,
) {
	if err := h.notifier.NotifyDeliveryRequestUpdate(ctx, approved.ID(), "approved", approved.VolunteerID()); err != nil {
		h.logger.WarnContext(ctx, "request approved notification failed",
			"request_id", approved.ID().String(), "error", err)
	}
	if err := h.notifier.NotifyDeliveryAssigned(ctx, orderID, approved.VolunteerID()); err != nil {
		h.logger.WarnContext(ctx, "delivery assigned notification failed",
			"order_id", orderID.String(), "error", err)
	}
}
