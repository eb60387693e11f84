package ports

import (
	"context"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. The write is conditional
	// on the version the aggregate was loaded with: if a concurrent writer
	// got there first the update affects no rows and a ConflictError is
	// returned. This is the serialization point for all per-order assignment
	// and lifecycle writes.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by ID. Soft-deleted orders are not returned.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
