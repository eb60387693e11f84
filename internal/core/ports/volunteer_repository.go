package ports

import (
	"context"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/core/domain/model/volunteer"
)

// VolunteerRepository defines the persistence contract for volunteer
// aggregates.
type VolunteerRepository interface {
	// Add persists a new volunteer.
	Add(ctx context.Context, aggregate *volunteer.Volunteer) error

	// Update persists changes to an existing volunteer. The running delivery
	// counters are excluded from this write; they only move through
	// RecordDelivery.
	Update(ctx context.Context, aggregate *volunteer.Volunteer) error

	// Get retrieves a volunteer by ID.
	Get(ctx context.Context, id kernel.UUID) (*volunteer.Volunteer, error)

	// GetByCode retrieves a volunteer by the human-readable volunteer_id
	// code, compared case-insensitively.
	GetByCode(ctx context.Context, code string) (*volunteer.Volunteer, error)

	// GetAllActive retrieves all volunteers in active status, the candidate
	// pool for address matching.
	GetAllActive(ctx context.Context) ([]*volunteer.Volunteer, error)

	// RecordDelivery adds one delivery and the given commission to the
	// volunteer's running counters as a single atomic statement, and returns
	// the new totals. Concurrent deliveries by the same volunteer must never
	// lose an increment.
	RecordDelivery(ctx context.Context, id kernel.UUID, commission int64) (volunteer.DeliveryTotals, error)
}
