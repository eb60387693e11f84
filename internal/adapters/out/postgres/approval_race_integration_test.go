package postgres_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"coordinator/internal/adapters/out/postgres"
	"coordinator/internal/adapters/out/postgres/orderrepo"
	"coordinator/internal/adapters/out/postgres/progressrepo"
	"coordinator/internal/adapters/out/postgres/requestrepo"
	"coordinator/internal/adapters/out/postgres/trackingrepo"
	"coordinator/internal/adapters/out/postgres/volunteerrepo"
	"coordinator/internal/core/application/usecases/commands"
	"coordinator/internal/core/domain/model/deliveryrequest"
	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/core/domain/model/order"
	"coordinator/internal/core/domain/model/volunteer"
	"coordinator/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// uowFactoryFunc adapts the real unit of work factory to the command-side
// factory interface.
type uowFactoryFunc func() commands.UoW

func (f uowFactoryFunc) Create() commands.UoW {
	return f()
}

// silentNotifier is a no-op notification sink.
type silentNotifier struct{}

func (silentNotifier) NotifyDeliveryAssigned(context.Context, kernel.UUID, kernel.UUID) error {
	return nil
}

func (silentNotifier) NotifyDeliveryRequestUpdate(context.Context, kernel.UUID, string, kernel.UUID) error {
	return nil
}

func (silentNotifier) NotifyVolunteerApproved(context.Context, kernel.UUID) error {
	return nil
}

func (silentNotifier) NotifyPendingRequestsReminder(context.Context, int) error {
	return nil
}

// ApprovalRaceIntegrationTestSuite races two full approval flows for the
// same order through real transactions and verifies that the order never
// ends up with more than one delivery volunteer.
type ApprovalRaceIntegrationTestSuite struct {
	suite.Suite
	container *postgrescontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *ApprovalRaceIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgrescontainer.Run(ctx,
		"postgres:15-alpine",
		postgrescontainer.WithDatabase("testdb"),
		postgrescontainer.WithUsername("testuser"),
		postgrescontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&volunteerrepo.VolunteerDTO{},
		&requestrepo.RequestDTO{},
		&trackingrepo.EventDTO{},
		&progressrepo.ChallengeProgressDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *ApprovalRaceIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, volunteers, delivery_requests, delivery_tracking_events, challenge_progress").Error)
}

func (suite *ApprovalRaceIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ApprovalRaceIntegrationTestSuite) seedOrder() *order.Order {
	address := kernel.NewAddress("12A", "Riverside", "Riverside PO", "Kochi", "Ernakulam", "Kerala", "682001")
	testOrder, err := order.NewOrder(kernel.NewUUID(), "Anita", "9876543210", "Neem Oil 200ml", 4, 75, address, nil)
	suite.Require().NoError(err)

	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))
	return testOrder
}

func (suite *ApprovalRaceIntegrationTestSuite) seedVolunteer(code string) *volunteer.Volunteer {
	address := kernel.NewAddress("7", "Riverside", "Riverside PO", "Kochi", "Ernakulam", "Kerala", "682001")
	testVolunteer, err := volunteer.NewVolunteer(
		kernel.NewUUID(), code, "Joseph "+code, "9876501234", "", address, 5, true)
	suite.Require().NoError(err)

	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.VolunteerRepository().Add(ctx, testVolunteer))
	suite.Require().NoError(uow.Commit(ctx))
	return testVolunteer
}

func (suite *ApprovalRaceIntegrationTestSuite) seedPendingRequest(orderID, volunteerID kernel.UUID) *deliveryrequest.Request {
	request, err := deliveryrequest.NewRequest(kernel.NewUUID(), orderID, volunteerID, "", time.Now())
	suite.Require().NoError(err)

	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DeliveryRequestRepository().Add(ctx, request))
	suite.Require().NoError(uow.Commit(ctx))
	return request
}

func (suite *ApprovalRaceIntegrationTestSuite) TestConcurrentApprovals_ExactlyOneWins() {
	ctx := context.Background()

	contestedOrder := suite.seedOrder()
	first := suite.seedVolunteer("VOL-101")
	second := suite.seedVolunteer("VOL-102")
	requests := []*deliveryrequest.Request{
		suite.seedPendingRequest(contestedOrder.ID(), first.ID()),
		suite.seedPendingRequest(contestedOrder.ID(), second.ID()),
	}

	handler := commands.NewApproveDeliveryRequestCommandHandler(
		uowFactoryFunc(func() commands.UoW { return suite.factory.Create() }),
		silentNotifier{},
		slog.New(slog.DiscardHandler),
	)

	start := make(chan struct{})
	var wg sync.WaitGroup
	results := make([]error, len(requests))

	for i, request := range requests {
		cmd, err := commands.NewApproveDeliveryRequestCommand(request.ID())
		suite.Require().NoError(err)

		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i] = handler.Handle(ctx, cmd)
		}()
	}
	close(start)
	wg.Wait()

	winner := -1
	for i, err := range results {
		if err == nil {
			suite.Require().Equal(-1, winner, "both approvals committed")
			winner = i
			continue
		}
		// The loser surfaces the conflict from the duty re-check or the
		// version predicate, or finds its request already cascade-rejected.
		suite.True(
			errors.Is(err, errs.ErrConflict) || errors.Is(err, errs.ErrInvalidState),
			"unexpected loser error: %v", err,
		)
	}
	suite.Require().NotEqual(-1, winner, "neither approval committed")
	loser := 1 - winner

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	assignedOrder, err := uow.OrderRepository().Get(ctx, contestedOrder.ID())
	suite.Require().NoError(err)
	suite.True(assignedOrder.Assignment().IsDuty())
	suite.True(assignedOrder.Assignment().IsAssignedTo(requests[winner].VolunteerID()))
	suite.Equal(order.MethodVolunteer, assignedOrder.Assignment().Method())

	approved, err := uow.DeliveryRequestRepository().Get(ctx, requests[winner].ID())
	suite.Require().NoError(err)
	suite.Equal(deliveryrequest.StatusApproved, approved.Status())

	rejected, err := uow.DeliveryRequestRepository().Get(ctx, requests[loser].ID())
	suite.Require().NoError(err)
	suite.Equal(deliveryrequest.StatusRejected, rejected.Status())
}

func TestApprovalRaceIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalRaceIntegrationTestSuite))
}
