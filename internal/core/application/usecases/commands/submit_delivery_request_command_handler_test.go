package commands_test

import (
	"testing"

	"coordinator/internal/core/application/usecases/commands"
	"coordinator/internal/core/domain/model/deliveryrequest"
	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitDeliveryRequestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	requester := makeActiveVolunteer(t, "VOL-001", testAddress())
	openOrder := makeTestOrder(t)
	requestID := kernel.NewUUID()

	cmd, err := commands.NewSubmitDeliveryRequestCommand(requestID, openOrder.ID(), requester.ID(), "I pass by daily")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	volunteerRepo := new(MockVolunteerRepository)
	requestRepo := new(MockDeliveryRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, openOrder.ID()).Return(openOrder, nil).Once(),
		volunteerRepo.On("Get", ctx, requester.ID()).Return(requester, nil).Once(),
		requestRepo.On("Add", ctx, mock.AnythingOfType("*deliveryrequest.Request")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("VolunteerRepository").Return(volunteerRepo)
	uow.On("DeliveryRequestRepository").Return(requestRepo)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSubmitDeliveryRequestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := requestRepo.Calls[0].Arguments.Get(1).(*deliveryrequest.Request)
	assert.True(t, added.IsPending())
	assert.Equal(t, requestID, added.ID())
	assert.Equal(t, "I pass by daily", added.Notes())
	uow.AssertExpectations(t)
}

func TestSubmitDeliveryRequestCommandHandler_Handle_AssignedOrderStillAcceptsRequest(t *testing.T) {
	ctx := t.Context()

	// A late request on an already-assigned order stays pending; the next
	// approval attempt rejects it via the cascade.
	requester := makeActiveVolunteer(t, "VOL-003", testAddress())
	takenOrder := makeTestOrder(t)
	require.NoError(t, takenOrder.AssignVolunteer(kernel.NewUUID()))

	cmd, err := commands.NewSubmitDeliveryRequestCommand(kernel.NewUUID(), takenOrder.ID(), requester.ID(), "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	volunteerRepo := new(MockVolunteerRepository)
	requestRepo := new(MockDeliveryRequestRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("VolunteerRepository").Return(volunteerRepo)
	uow.On("DeliveryRequestRepository").Return(requestRepo)
	orderRepo.On("Get", ctx, takenOrder.ID()).Return(takenOrder, nil)
	volunteerRepo.On("Get", ctx, requester.ID()).Return(requester, nil)
	requestRepo.On("Add", ctx, mock.AnythingOfType("*deliveryrequest.Request")).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSubmitDeliveryRequestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := requestRepo.Calls[0].Arguments.Get(1).(*deliveryrequest.Request)
	assert.True(t, added.IsPending())
	uow.AssertCalled(t, "Commit", ctx)
}

func TestSubmitDeliveryRequestCommandHandler_Handle_PendingVolunteerForbidden(t *testing.T) {
	ctx := t.Context()

	// Self-signup volunteer, not yet approved.
	pendingVolunteer, err := makePendingVolunteer("VOL-002")
	require.NoError(t, err)

	openOrder := makeTestOrder(t)
	cmd, err := commands.NewSubmitDeliveryRequestCommand(kernel.NewUUID(), openOrder.ID(), pendingVolunteer.ID(), "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	volunteerRepo := new(MockVolunteerRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("VolunteerRepository").Return(volunteerRepo)
	orderRepo.On("Get", ctx, openOrder.ID()).Return(openOrder, nil)
	volunteerRepo.On("Get", ctx, pendingVolunteer.ID()).Return(pendingVolunteer, nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSubmitDeliveryRequestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrForbidden)
	uow.AssertNotCalled(t, "Commit", ctx)
}
