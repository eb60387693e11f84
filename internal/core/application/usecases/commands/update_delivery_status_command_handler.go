package commands

import (
	"context"
	"log/slog"
	"time"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/core/domain/model/order"
	"coordinator/internal/core/domain/model/tracking"
	"coordinator/internal/core/domain/model/volunteer"
	"coordinator/internal/pkg/errs"
)

// UpdateDeliveryStatusResult reports the commission outcome of a successful
// delivery. Earned is zero for the cant_reach outcome.
type UpdateDeliveryStatusResult struct {
	Status string
	Earned int64
	Totals volunteer.DeliveryTotals
}

// UpdateDeliveryStatusCommandHandler applies a volunteer's delivery outcome
// to an order.
//
// Only the volunteer currently on delivery duty for the order may report an
// outcome. On delivered, the volunteer's running totals move by one delivery
// and the order's commission in a single atomic increment, so concurrent
// deliveries by the same volunteer on different orders never lose an update.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery
// outcome reporting.
func NewUpdateDeliveryStatusCommandHandler(uowFactory UoWFactory, logger *slog.Logger) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "update_delivery_status_handler"),
	}
}

// Handle processes the outcome report.
func (h UpdateDeliveryStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDeliveryStatusCommand,
) (UpdateDeliveryStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateDeliveryStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateDeliveryStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reportedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return UpdateDeliveryStatusResult{}, err
	}
	if !reportedOrder.Assignment().IsAssignedTo(cmd.VolunteerID()) {
		return UpdateDeliveryStatusResult{}, errs.NewForbiddenError(
			cmd.VolunteerID().String(),
			"order is not assigned to this volunteer",
		)
	}
	if reportedOrder.Status() == order.StatusDelivered {
		return UpdateDeliveryStatusResult{}, errs.NewInvalidStateError("order", reportedOrder.Status().String())
	}

	result := UpdateDeliveryStatusResult{Status: cmd.NewStatus().String()}
	now := time.Now()

	switch cmd.NewStatus() {
	case order.StatusDelivered:
		if err = reportedOrder.Deliver(); err != nil {
			return UpdateDeliveryStatusResult{}, err
		}

		deliverer, volErr := uow.VolunteerRepository().Get(ctx, cmd.VolunteerID())
		if volErr != nil {
			return UpdateDeliveryStatusResult{}, volErr
		}
		result.Earned = deliverer.CommissionFor(reportedOrder.Quantity())

		totals, recErr := uow.VolunteerRepository().RecordDelivery(ctx, deliverer.ID(), result.Earned)
		if recErr != nil {
			return UpdateDeliveryStatusResult{}, recErr
		}
		result.Totals = totals

		if err = h.appendEvent(ctx, uow, reportedOrder.ID(),
			tracking.CodeOrderDelivered, "Order delivered", "", now); err != nil {
			return UpdateDeliveryStatusResult{}, err
		}

	case order.StatusCantReach:
		if err = reportedOrder.CantReach(); err != nil {
			return UpdateDeliveryStatusResult{}, err
		}
		if err = h.appendEvent(ctx, uow, reportedOrder.ID(),
			tracking.CodeCantReach, "Delivery attempt failed",
			"The volunteer could not reach the customer", now); err != nil {
			return UpdateDeliveryStatusResult{}, err
		}
	}

	if err = uow.OrderRepository().Update(ctx, reportedOrder); err != nil {
		return UpdateDeliveryStatusResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return UpdateDeliveryStatusResult{}, err
	}

	return result, nil
}

func (h UpdateDeliveryStatusCommandHandler) appendEvent(
	ctx context.Context,
	uow UoW,
	orderID kernel.UUID,
	code string,
	title string,
	description string,
	at time.Time,
) error {
	event, err := tracking.NewEvent(kernel.NewUUID(), orderID, code, title, description, "", tracking.ActorVolunteer, at)
	if err != nil {
		return err
	}
	return uow.TrackingRepository().Append(ctx, event)
}
