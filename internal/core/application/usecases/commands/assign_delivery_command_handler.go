package commands

import (
	"context"
	"log/slog"
	"time"

	"coordinator/internal/core/domain/model/deliveryrequest"
	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/core/domain/model/order"
	"coordinator/internal/core/domain/model/tracking"
	"coordinator/internal/core/ports"
)

// AssignDeliveryCommandHandler applies an admin's assignment decision to an
// order. Volunteer assignments leave an audit trail: an already approved
// delivery request is stored alongside the assignment so the history reads
// the same whether the volunteer asked for the order or was handed it.
type AssignDeliveryCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.NotificationService
	logger     *slog.Logger
}

// NewAssignDeliveryCommandHandler creates a handler for admin assignment
// changes.
func NewAssignDeliveryCommandHandler(
	uowFactory UoWFactory,
	notifier ports.NotificationService,
	logger *slog.Logger,
) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "assign_delivery_handler"),
	}
}

// Handle processes the assignment change. The order update, the audit
// request (for volunteer assignments) and the tracking entry commit in one
// transaction; the notification goes out after the commit and is
// best-effort.
func (h AssignDeliveryCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryCommand) error {
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

	assignedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now()
	var assignedVolunteerID *kernel.UUID

	switch {
	case cmd.Remove():
		assignedOrder.ClearAssignment()
		if err = h.appendEvent(ctx, uow, assignedOrder.ID(),
			tracking.CodeAssignmentRemoved, "Delivery assignment removed", "", now); err != nil {
			return err
		}

	case cmd.Method() == order.MethodVolunteer:
		assignedVolunteer, volErr := uow.VolunteerRepository().GetByCode(ctx, cmd.VolunteerCode())
		if volErr != nil {
			return volErr
		}
		if err = assignedOrder.AssignVolunteer(assignedVolunteer.ID()); err != nil {
			return err
		}

		auditRequest, reqErr := deliveryrequest.NewApprovedRequest(
			kernel.NewUUID(), assignedOrder.ID(), assignedVolunteer.ID(), now,
		)
		if reqErr != nil {
			return reqErr
		}
		if err = uow.DeliveryRequestRepository().Add(ctx, auditRequest); err != nil {
			return err
		}

		if err = h.appendEvent(ctx, uow, assignedOrder.ID(),
			tracking.CodeVolunteerAssigned, "Delivery volunteer assigned",
			"Volunteer "+assignedVolunteer.Code()+" will deliver this order", now); err != nil {
			return err
		}
		id := assignedVolunteer.ID()
		assignedVolunteerID = &id

	default:
		if err = assignedOrder.AssignShipping(cmd.Method()); err != nil {
			return err
		}
		if err = h.appendEvent(ctx, uow, assignedOrder.ID(),
			tracking.CodeShippingAssigned, "Shipping arranged",
			"Order will ship via "+cmd.Method().String(), now); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, assignedOrder); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if assignedVolunteerID != nil {
		if notifyErr := h.notifier.NotifyDeliveryAssigned(ctx, assignedOrder.ID(), *assignedVolunteerID); notifyErr != nil {
			h.logger.WarnContext(ctx, "delivery assigned notification failed",
				"order_id", assignedOrder.ID().String(), "error", notifyErr)
		}
	}

	return nil
}

func (h AssignDeliveryCommandHandler) appendEvent(
	ctx context.Context,
	uow UoW,
	orderID kernel.UUID,
	code string,
	title string,
	description string,
	at time.Time,
) error {
	event, err := tracking.NewEvent(kernel.NewUUID(), orderID, code, title, description, "", tracking.ActorAdmin, at)
	if err != nil {
		return err
	}
	return uow.TrackingRepository().Append(ctx, event)
}
