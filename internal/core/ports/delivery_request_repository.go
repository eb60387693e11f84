package ports

import (
	"context"
	"time"

	"coordinator/internal/core/domain/model/deliveryrequest"
	"coordinator/internal/core/domain/model/kernel"
)

// DeliveryRequestRepository defines the persistence contract for delivery
// request aggregates.
type DeliveryRequestRepository interface {
	// Add persists a new request.
	Add(ctx context.Context, aggregate *deliveryrequest.Request) error

	// Update persists a decision on a request. The write is conditional on
	// the row still being pending; if it already reached a terminal state a
	// ConflictError is returned, so two concurrent decisions cannot both
	// land.
	Update(ctx context.Context, aggregate *deliveryrequest.Request) error

	// Get retrieves a request by ID.
	Get(ctx context.Context, id kernel.UUID) (*deliveryrequest.Request, error)

	// GetPendingByOrder retrieves all pending requests for an order.
	GetPendingByOrder(ctx context.Context, orderID kernel.UUID) ([]*deliveryrequest.Request, error)

	// RejectOtherPending bulk-rejects every pending request for the order
	// except the excluded one, writing the given notes and response time.
	// Returns the number of requests rejected.
	RejectOtherPending(ctx context.Context, orderID, exclude kernel.UUID, notes string, at time.Time) (int64, error)
}
