package cmd

import (
	"log/slog"

	httpin "coordinator/internal/adapters/in/http"
	"coordinator/internal/adapters/out/postgres"
	"coordinator/internal/core/application/usecases/commands"
	"coordinator/internal/core/application/usecases/queries"
	"coordinator/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.NotificationService
	cache      *redis.Client
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	notifier ports.NotificationService,
	cache *redis.Client,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		cache:      cache,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.createUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	return commands.NewAssignDeliveryCommandHandler(c.createUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.createUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.createUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateSubmitDeliveryRequestCommandHandler() commands.SubmitDeliveryRequestCommandHandler {
	return commands.NewSubmitDeliveryRequestCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateApproveDeliveryRequestCommandHandler() commands.ApproveDeliveryRequestCommandHandler {
	return commands.NewApproveDeliveryRequestCommandHandler(c.createUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateRejectDeliveryRequestCommandHandler() commands.RejectDeliveryRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectDeliveryRequestCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCreateVolunteerCommandHandler() commands.CreateVolunteerCommandHandler {
	return commands.NewCreateVolunteerCommandHandler(c.createVolunteerUoWFactory())
}

func (c *CompositionRoot) CreateApproveVolunteerCommandHandler() commands.ApproveVolunteerCommandHandler {
	return commands.NewApproveVolunteerCommandHandler(c.createVolunteerUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateMatchingVolunteersQueryHandler() queries.MatchingVolunteersQueryHandler {
	return queries.NewMatchingVolunteersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrderTimelineQueryHandler() queries.OrderTimelineQueryHandler {
	return queries.NewOrderTimelineQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreatePendingDeliveryRequestsQueryHandler() queries.PendingDeliveryRequestsQueryHandler {
	return queries.NewPendingDeliveryRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateVolunteerLeaderboardQueryHandler() queries.VolunteerLeaderboardQueryHandler {
	return queries.NewVolunteerLeaderboardQueryHandler(c.gormDB, c.cache, c.logger)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAssignDeliveryCommandHandler(),
		c.CreateConfirmOrderCommandHandler(),
		c.CreateUpdateDeliveryStatusCommandHandler(),
		c.CreateSubmitDeliveryRequestCommandHandler(),
		c.CreateApproveDeliveryRequestCommandHandler(),
		c.CreateRejectDeliveryRequestCommandHandler(),
		c.CreateCreateVolunteerCommandHandler(),
		c.CreateApproveVolunteerCommandHandler(),
		c.CreateMatchingVolunteersQueryHandler(),
		c.CreateOrderTimelineQueryHandler(),
		c.CreatePendingDeliveryRequestsQueryHandler(),
		c.CreateVolunteerLeaderboardQueryHandler(),
	)
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) createVolunteerUoWFactory() commands.VolunteerUoWFactory {
	return FuncVolunteerUoWFactory(func() commands.VolunteerUoW {
		return c.uowFactory.Create()
	})
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncVolunteerUoWFactory func() commands.VolunteerUoW

func (f FuncVolunteerUoWFactory) Create() commands.VolunteerUoW {
	return f()
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}
