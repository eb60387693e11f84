package ports

import (
	"context"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for the append-only
// tracking ledger. Events are never updated or deleted.
type TrackingRepository interface {
	// Append persists a new tracking event.
	Append(ctx context.Context, event *tracking.Event) error

	// GetByOrder retrieves all events for an order sorted by creation time
	// ascending, i.e. in the order the causing transitions happened.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*tracking.Event, error)
}
