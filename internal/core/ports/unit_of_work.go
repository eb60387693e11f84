package ports

import "context"

// UnitOfWork coordinates a database transaction across the repositories.
// Repositories obtained from a unit of work with an open transaction operate
// inside that transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	VolunteerRepository() VolunteerRepository
	DeliveryRequestRepository() DeliveryRequestRepository
	TrackingRepository() TrackingRepository
	ChallengeProgressRepository() ChallengeProgressRepository
}

// UnitOfWorkFactory creates fresh unit of work instances. Each business
// operation gets its own instance, isolated from concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
