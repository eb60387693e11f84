package commands

import (
	"context"
	"log/slog"
	"time"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/core/domain/model/order"
	"coordinator/internal/core/domain/model/tracking"
	"coordinator/internal/core/domain/services"
	"coordinator/internal/core/ports"
)

// CreateOrderResult reports the outcome of order creation, including how the
// auto-assignment attempt went. MatchCount lets the admin UI distinguish
// "needs manual assignment" (2+) from "no match in the area" (0).
type CreateOrderResult struct {
	OrderID    kernel.UUID
	Assigned   bool
	MatchCount int
}

// CreateOrderCommandHandler handles order creation.
//
// Creation runs the one-shot auto-assignment: the address matcher is
// consulted exactly once, at creation, and only a single unambiguous
// candidate triggers an assignment. The attempt never fires again for the
// order; later assignment changes go through the manual assign and delivery
// request flows.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	matcher    services.AddressMatcher
	notifier   ports.NotificationService
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.NotificationService,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		matcher:    services.NewAddressMatcher(),
		notifier:   notifier,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order creation command.
// The order row, the auto-assignment outcome and the tracking ledger entries
// commit in one transaction; the assignment notification goes out after the
// commit and is best-effort.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.Product(),
		cmd.Quantity(),
		cmd.UnitPrice(),
		cmd.Address(),
		cmd.ReferredBy(),
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	result := CreateOrderResult{OrderID: newOrder.ID()}
	now := time.Now()

	// Single decisive auto-assignment step: act only on exactly one match.
	if newOrder.Address().IsMatchable() {
		volunteers, matchErr := uow.VolunteerRepository().GetAllActive(ctx)
		if matchErr != nil {
			return CreateOrderResult{}, matchErr
		}
		candidates := h.matcher.Match(newOrder.Address(), volunteers)
		result.MatchCount = len(candidates)

		if len(candidates) == 1 {
			if err = newOrder.AssignVolunteer(candidates[0].ID()); err != nil {
				return CreateOrderResult{}, err
			}
			result.Assigned = true
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}

	placedEvent, err := tracking.NewEvent(
		kernel.NewUUID(), newOrder.ID(),
		tracking.CodeOrderPlaced, "Order placed",
		"", "", tracking.ActorSystem, now,
	)
	if err != nil {
		return CreateOrderResult{}, err
	}
	if err = uow.TrackingRepository().Append(ctx, placedEvent); err != nil {
		return CreateOrderResult{}, err
	}

	if result.Assigned {
		assignedEvent, eventErr := tracking.NewEvent(
			kernel.NewUUID(), newOrder.ID(),
			tracking.CodeVolunteerAssigned, "Delivery volunteer assigned",
			"A volunteer in your area will deliver this order", "",
			tracking.ActorSystem, now,
		)
		if eventErr != nil {
			return CreateOrderResult{}, eventErr
		}
		if err = uow.TrackingRepository().Append(ctx, assignedEvent); err != nil {
			return CreateOrderResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	if result.Assigned {
		volunteerID := newOrder.Assignment().VolunteerID()
		if notifyErr := h.notifier.NotifyDeliveryAssigned(ctx, newOrder.ID(), *volunteerID); notifyErr != nil {
			h.logger.WarnContext(ctx, "delivery assigned notification failed",
				"order_id", newOrder.ID().String(), "error", notifyErr)
		}
	}

	return result, nil
}
