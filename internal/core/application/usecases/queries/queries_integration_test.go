package queries_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"coordinator/internal/adapters/out/postgres"
	"coordinator/internal/adapters/out/postgres/orderrepo"
	"coordinator/internal/adapters/out/postgres/progressrepo"
	"coordinator/internal/adapters/out/postgres/requestrepo"
	"coordinator/internal/adapters/out/postgres/trackingrepo"
	"coordinator/internal/adapters/out/postgres/volunteerrepo"
	"coordinator/internal/core/application/usecases/queries"
	"coordinator/internal/core/domain/model/deliveryrequest"
	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/core/domain/model/order"
	"coordinator/internal/core/domain/model/tracking"
	"coordinator/internal/core/domain/model/volunteer"
	"coordinator/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueryHandlersIntegrationTestSuite verifies the read side against a real
// PostgreSQL instance, seeded through the write-side repositories.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container *postgrescontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
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

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, volunteers, delivery_requests, delivery_tracking_events, challenge_progress").Error)
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) seedOrder(town, postOffice string) *order.Order {
	address := kernel.NewAddress("12A", town, postOffice, "Kochi", "Ernakulam", "Kerala", "682001")
	testOrder, err := order.NewOrder(kernel.NewUUID(), "Anita", "9876543210", "Neem Oil 200ml", 4, 75, address, nil)
	suite.Require().NoError(err)

	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))
	return testOrder
}

func (suite *QueryHandlersIntegrationTestSuite) seedVolunteer(code, town, postOffice string, adminCreated bool) *volunteer.Volunteer {
	address := kernel.NewAddress("7", town, postOffice, "Kochi", "Ernakulam", "Kerala", "682001")
	testVolunteer, err := volunteer.NewVolunteer(
		kernel.NewUUID(), code, "Joseph "+code, "9876501234", "", address, 5, adminCreated)
	suite.Require().NoError(err)

	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.VolunteerRepository().Add(ctx, testVolunteer))
	suite.Require().NoError(uow.Commit(ctx))
	return testVolunteer
}

func (suite *QueryHandlersIntegrationTestSuite) TestMatchingVolunteers_ReturnsAreaMatchesOnly() {
	seededOrder := suite.seedOrder("Riverside", "Riverside PO")
	match := suite.seedVolunteer("VOL-001", "riverside", "RIVERSIDE po", true)
	suite.seedVolunteer("VOL-002", "Hilltop", "Hilltop PO", true)
	suite.seedVolunteer("VOL-003", "Riverside", "Riverside PO", false)

	handler := queries.NewMatchingVolunteersQueryHandler(suite.db)
	query, err := queries.NewMatchingVolunteersQuery(seededOrder.ID())
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 1)
	suite.Equal("VOL-001", result[0].Code)
	suite.True(match.ID().IsEqual(result[0].ID))
}

func (suite *QueryHandlersIntegrationTestSuite) TestMatchingVolunteers_UnknownOrder_ReturnsNotFound() {
	handler := queries.NewMatchingVolunteersQueryHandler(suite.db)
	query, err := queries.NewMatchingVolunteersQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestOrderTimeline_ReturnsEventsOldestFirst() {
	seededOrder := suite.seedOrder("Riverside", "Riverside PO")
	base := time.Now().UTC().Truncate(time.Second)

	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	for i, code := range []string{tracking.CodeOrderPlaced, tracking.CodeOrderConfirmed} {
		event, err := tracking.NewEvent(
			kernel.NewUUID(), seededOrder.ID(), code, code, "", "",
			tracking.ActorSystem, base.Add(time.Duration(i)*time.Minute))
		suite.Require().NoError(err)
		suite.Require().NoError(uow.TrackingRepository().Append(ctx, event))
	}
	suite.Require().NoError(uow.Commit(ctx))

	handler := queries.NewOrderTimelineQueryHandler(suite.db)
	query, err := queries.NewOrderTimelineQuery(seededOrder.ID())
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(tracking.CodeOrderPlaced, result[0].Code)
	suite.Equal(tracking.CodeOrderConfirmed, result[1].Code)
	suite.True(result[0].CreatedAt.Before(result[1].CreatedAt))
}

func (suite *QueryHandlersIntegrationTestSuite) TestPendingDeliveryRequests_JoinsVolunteerAndOrder() {
	seededOrder := suite.seedOrder("Riverside", "Riverside PO")
	seededVolunteer := suite.seedVolunteer("VOL-001", "Riverside", "Riverside PO", true)

	request, err := deliveryrequest.NewRequest(
		kernel.NewUUID(), seededOrder.ID(), seededVolunteer.ID(), "nearby", time.Now().UTC())
	suite.Require().NoError(err)

	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DeliveryRequestRepository().Add(ctx, request))
	suite.Require().NoError(uow.Commit(ctx))

	handler := queries.NewPendingDeliveryRequestsQueryHandler(suite.db)

	result, err := handler.Handle(ctx, queries.NewPendingDeliveryRequestsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("VOL-001", result[0].VolunteerCode)
	suite.Equal("Anita", result[0].CustomerName)
	suite.Equal("Riverside", result[0].Town)
	suite.Equal("nearby", result[0].Notes)
}

func (suite *QueryHandlersIntegrationTestSuite) TestVolunteerLeaderboard_RanksByConfirmedSales() {
	first := suite.seedVolunteer("VOL-001", "Riverside", "Riverside PO", true)
	second := suite.seedVolunteer("VOL-002", "Hilltop", "Hilltop PO", true)

	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ChallengeProgressRepository().IncrementConfirmed(ctx, first.ID(), 1, 300))
	suite.Require().NoError(uow.ChallengeProgressRepository().IncrementConfirmed(ctx, second.ID(), 3, 900))
	suite.Require().NoError(uow.Commit(ctx))

	// nil cache client: leaderboard reads straight from the database
	handler := queries.NewVolunteerLeaderboardQueryHandler(suite.db, nil, slog.New(slog.DiscardHandler))
	query, err := queries.NewVolunteerLeaderboardQuery(10)
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(1, result[0].Rank)
	suite.Equal("VOL-002", result[0].Code)
	suite.Equal(int64(900), result[0].ConfirmedSales)
	suite.Equal(2, result[1].Rank)
	suite.Equal("VOL-001", result[1].Code)
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
