// Package postgres provides the GORM-based Unit of Work that coordinates
// transactions across the order, volunteer, delivery request, tracking and
// challenge progress repositories.
//
// Each business operation gets a fresh unit of work from the factory. Begin
// opens a transaction; the repository accessors then hand out repositories
// bound to it, so every write within one Handle call commits or rolls back
// together. Aggregates touched during the transaction are tracked for
// post-commit processing.
package postgres

import (
	"context"

	"coordinator/internal/adapters/out/postgres/orderrepo"
	"coordinator/internal/adapters/out/postgres/progressrepo"
	"coordinator/internal/adapters/out/postgres/requestrepo"
	"coordinator/internal/adapters/out/postgres/trackingrepo"
	"coordinator/internal/adapters/out/postgres/volunteerrepo"
	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the
// repositories. Repository accessors return repositories bound to the open
// transaction, or to the bare connection when no transaction is active.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin opens the transaction. Calling Begin again on an instance with an
// open transaction is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the transaction. The instance cannot be reused after.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Safe to call in a defer after Commit:
// once the transaction is closed it returns gorm.ErrInvalidTransaction and
// does nothing.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns the order repository bound to this unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// VolunteerRepository returns the volunteer repository bound to this unit of
// work.
func (uow *GormUnitOfWork) VolunteerRepository() ports.VolunteerRepository {
	return volunteerrepo.NewGormVolunteerRepository(uow.conn(), uow)
}

// DeliveryRequestRepository returns the delivery request repository bound to
// this unit of work.
func (uow *GormUnitOfWork) DeliveryRequestRepository() ports.DeliveryRequestRepository {
	return requestrepo.NewGormRequestRepository(uow.conn(), uow)
}

// TrackingRepository returns the tracking ledger repository bound to this
// unit of work.
func (uow *GormUnitOfWork) TrackingRepository() ports.TrackingRepository {
	return trackingrepo.NewGormTrackingRepository(uow.conn())
}

// ChallengeProgressRepository returns the challenge progress repository
// bound to this unit of work.
func (uow *GormUnitOfWork) ChallengeProgressRepository() ports.ChallengeProgressRepository {
	return progressrepo.NewGormChallengeProgressRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by the repositories on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
