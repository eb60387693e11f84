// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence; side-effect notifications happen
// after commit and are never allowed to fail the operation.
package commands

import (
	"context"

	"coordinator/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Commands touching a single aggregate type use the narrow
// interface for it; cross-aggregate commands use UoW.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// VolunteerRepoFactory provides access to the volunteer repository within a transaction.
	VolunteerRepoFactory interface {
		VolunteerRepository() ports.VolunteerRepository
	}

	// RequestRepoFactory provides access to the delivery request repository within a transaction.
	RequestRepoFactory interface {
		DeliveryRequestRepository() ports.DeliveryRequestRepository
	}

	// TrackingRepoFactory provides access to the tracking ledger within a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// ProgressRepoFactory provides access to the challenge progress repository within a transaction.
	ProgressRepoFactory interface {
		ChallengeProgressRepository() ports.ChallengeProgressRepository
	}

	// VolunteerUoW manages transactions for volunteer-only operations.
	VolunteerUoW interface {
		TxManager
		VolunteerRepoFactory
	}

	// VolunteerUoWFactory creates volunteer unit of work instances.
	VolunteerUoWFactory interface {
		Create() VolunteerUoW
	}

	// RequestUoW manages transactions for request-only operations.
	RequestUoW interface {
		TxManager
		RequestRepoFactory
	}

	// RequestUoWFactory creates request unit of work instances.
	RequestUoWFactory interface {
		Create() RequestUoW
	}

	// UoW manages transactions across all aggregates. Used by the commands
	// that coordinate orders, volunteers, requests, the tracking ledger and
	// challenge progress in a single transaction.
	UoW interface {
		TxManager
		OrderRepoFactory
		VolunteerRepoFactory
		RequestRepoFactory
		TrackingRepoFactory
		ProgressRepoFactory
	}

	// UoWFactory creates unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
