package commands_test

import (
	"context"
	"time"

	"coordinator/internal/core/application/usecases/commands"
	"coordinator/internal/core/domain/model/deliveryrequest"
	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/core/domain/model/order"
	"coordinator/internal/core/domain/model/tracking"
	"coordinator/internal/core/domain/model/volunteer"
	"coordinator/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockVolunteerRepository struct{ mock.Mock }

func (m *MockVolunteerRepository) Add(ctx context.Context, v *volunteer.Volunteer) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVolunteerRepository) Update(ctx context.Context, v *volunteer.Volunteer) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVolunteerRepository) Get(ctx context.Context, id kernel.UUID) (*volunteer.Volunteer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*volunteer.Volunteer), args.Error(1)
}

func (m *MockVolunteerRepository) GetByCode(ctx context.Context, code string) (*volunteer.Volunteer, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*volunteer.Volunteer), args.Error(1)
}

func (m *MockVolunteerRepository) GetAllActive(ctx context.Context) ([]*volunteer.Volunteer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*volunteer.Volunteer), args.Error(1)
}

func (m *MockVolunteerRepository) RecordDelivery(
	ctx context.Context,
	id kernel.UUID,
	commission int64,
) (volunteer.DeliveryTotals, error) {
	args := m.Called(ctx, id, commission)
	return args.Get(0).(volunteer.DeliveryTotals), args.Error(1)
}

type MockDeliveryRequestRepository struct{ mock.Mock }

func (m *MockDeliveryRequestRepository) Add(ctx context.Context, r *deliveryrequest.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockDeliveryRequestRepository) Update(ctx context.Context, r *deliveryrequest.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockDeliveryRequestRepository) Get(ctx context.Context, id kernel.UUID) (*deliveryrequest.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliveryrequest.Request), args.Error(1)
}

func (m *MockDeliveryRequestRepository) GetPendingByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*deliveryrequest.Request, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*deliveryrequest.Request), args.Error(1)
}

func (m *MockDeliveryRequestRepository) RejectOtherPending(
	ctx context.Context,
	orderID, exclude kernel.UUID,
	notes string,
	at time.Time,
) (int64, error) {
	args := m.Called(ctx, orderID, exclude, notes, at)
	return args.Get(0).(int64), args.Error(1)
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) Append(ctx context.Context, e *tracking.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockTrackingRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*tracking.Event, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tracking.Event), args.Error(1)
}

type MockChallengeProgressRepository struct{ mock.Mock }

func (m *MockChallengeProgressRepository) IncrementConfirmed(
	ctx context.Context,
	volunteerID kernel.UUID,
	orders int,
	sales int64,
) error {
	args := m.Called(ctx, volunteerID, orders, sales)
	return args.Error(0)
}

type MockNotificationService struct{ mock.Mock }

func (m *MockNotificationService) NotifyDeliveryAssigned(ctx context.Context, orderID, volunteerID kernel.UUID) error {
	args := m.Called(ctx, orderID, volunteerID)
	return args.Error(0)
}

func (m *MockNotificationService) NotifyDeliveryRequestUpdate(
	ctx context.Context,
	requestID kernel.UUID,
	outcome string,
	volunteerID kernel.UUID,
) error {
	args := m.Called(ctx, requestID, outcome, volunteerID)
	return args.Error(0)
}

func (m *MockNotificationService) NotifyVolunteerApproved(ctx context.Context, volunteerID kernel.UUID) error {
	args := m.Called(ctx, volunteerID)
	return args.Error(0)
}

func (m *MockNotificationService) NotifyPendingRequestsReminder(ctx context.Context, pendingCount int) error {
	args := m.Called(ctx, pendingCount)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) VolunteerRepository() ports.VolunteerRepository {
	args := m.Called()
	return args.Get(0).(ports.VolunteerRepository)
}

func (m *MockUoW) DeliveryRequestRepository() ports.DeliveryRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRequestRepository)
}

func (m *MockUoW) TrackingRepository() ports.TrackingRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingRepository)
}

func (m *MockUoW) ChallengeProgressRepository() ports.ChallengeProgressRepository {
	args := m.Called()
	return args.Get(0).(ports.ChallengeProgressRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockVolunteerUoW struct{ mock.Mock }

func (m *MockVolunteerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVolunteerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVolunteerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVolunteerUoW) VolunteerRepository() ports.VolunteerRepository {
	args := m.Called()
	return args.Get(0).(ports.VolunteerRepository)
}

type MockVolunteerUoWFactory struct{ mock.Mock }

func (m *MockVolunteerUoWFactory) Create() commands.VolunteerUoW {
	args := m.Called()
	return args.Get(0).(commands.VolunteerUoW)
}

type MockRequestUoW struct{ mock.Mock }

func (m *MockRequestUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestUoW) DeliveryRequestRepository() ports.DeliveryRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRequestRepository)
}

type MockRequestUoWFactory struct{ mock.Mock }

func (m *MockRequestUoWFactory) Create() commands.RequestUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestUoW)
}
