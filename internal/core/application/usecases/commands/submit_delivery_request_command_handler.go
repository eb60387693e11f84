package commands

import (
	"context"
	"time"

	"coordinator/internal/core/domain/model/deliveryrequest"
	"coordinator/internal/pkg/errs"
)

// SubmitDeliveryRequestCommandHandler records a volunteer's offer to deliver
// an order. Several volunteers may request the same order concurrently; the
// race is resolved at approval time, not here.
type SubmitDeliveryRequestCommandHandler struct {
	uowFactory UoWFactory
}

// NewSubmitDeliveryRequestCommandHandler creates a handler for delivery
// request submission.
func NewSubmitDeliveryRequestCommandHandler(uowFactory UoWFactory) SubmitDeliveryRequestCommandHandler {
	return SubmitDeliveryRequestCommandHandler{uowFactory: uowFactory}
}

// Handle processes the submission. The order and volunteer must exist and
// the volunteer must be active. An already-assigned order still accepts a
// pending request; it is rejected on the next approval attempt.
func (h SubmitDeliveryRequestCommandHandler) Handle(ctx context.Context, cmd SubmitDeliveryRequestCommand) error {
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

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	requester, err := uow.VolunteerRepository().Get(ctx, cmd.VolunteerID())
	if err != nil {
		return err
	}
	if !requester.CanDeliver() {
		return errs.NewForbiddenError(requester.ID().String(), "volunteer account is not active")
	}

	request, err := deliveryrequest.NewRequest(
		cmd.RequestID(), cmd.OrderID(), cmd.VolunteerID(), cmd.Notes(), time.Now(),
	)
	if err != nil {
		return err
	}
	if err = uow.DeliveryRequestRepository().Add(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
