package commands_test

import (
	"testing"

	"coordinator/internal/core/application/usecases/commands"
	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/core/domain/model/order"
	"coordinator/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makePaidOrder(t *testing.T, referredBy *kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "Anita Menon", "+91-9900112233",
		"Mineral water 20L", 4, 75, testAddress(), referredBy)
	require.NoError(t, err)
	require.NoError(t, o.MarkPaid())
	return o
}

func TestConfirmOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	paidOrder := makePaidOrder(t, nil)
	cmd, err := commands.NewConfirmOrderCommand(paidOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, paidOrder.ID()).Return(paidOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		trackingRepo.On("Append", ctx, mock.AnythingOfType("*tracking.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("TrackingRepository").Return(trackingRepo)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmOrderCommandHandler(factory, testLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusConfirmed, paidOrder.Status())
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "ChallengeProgressRepository")
}

func TestConfirmOrderCommandHandler_Handle_ReferralCountsTowardsChallenge(t *testing.T) {
	ctx := t.Context()

	referrer := kernel.NewUUID()
	paidOrder := makePaidOrder(t, &referrer) // 4 bottles at 75 = 300 sales

	cmd, err := commands.NewConfirmOrderCommand(paidOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)
	progressRepo := new(MockChallengeProgressRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, paidOrder.ID()).Return(paidOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		progressRepo.On("IncrementConfirmed", ctx, referrer, 1, int64(300)).Return(nil).Once(),
		trackingRepo.On("Append", ctx, mock.AnythingOfType("*tracking.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("TrackingRepository").Return(trackingRepo)
	uow.On("ChallengeProgressRepository").Return(progressRepo)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmOrderCommandHandler(factory, testLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	progressRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_NotOrderedYet(t *testing.T) {
	ctx := t.Context()

	unpaidOrder := makeTestOrder(t) // still payment_pending
	cmd, err := commands.NewConfirmOrderCommand(unpaidOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", ctx, unpaidOrder.ID()).Return(unpaidOrder, nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmOrderCommandHandler(factory, testLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertNotCalled(t, "Commit", ctx)
}
