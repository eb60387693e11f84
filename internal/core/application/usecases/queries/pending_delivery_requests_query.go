package queries

import (
	"errors"
	"time"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/pkg/guard"
)

var ErrPendingDeliveryRequestsQueryIsNotConstructed = errors.New(
	"PendingDeliveryRequestsQuery must be created via NewPendingDeliveryRequestsQuery constructor",
)

// PendingDeliveryRequestsQuery retrieves all delivery requests awaiting an
// admin decision, oldest first. Backs the admin's review queue.
type PendingDeliveryRequestsQuery struct {
	guard guard.ConstructorGuard
}

// NewPendingDeliveryRequestsQuery creates a query for the pending request
// queue.
func NewPendingDeliveryRequestsQuery() PendingDeliveryRequestsQuery {
	return PendingDeliveryRequestsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q PendingDeliveryRequestsQuery) Validate() error {
	return q.guard.Validate(ErrPendingDeliveryRequestsQueryIsNotConstructed)
}

// PendingDeliveryRequestResponse is one request in the review queue, joined
// with enough order and volunteer context to decide without extra lookups.
type PendingDeliveryRequestResponse struct {
	ID            kernel.UUID
	OrderID       kernel.UUID
	VolunteerID   kernel.UUID
	VolunteerCode string
	VolunteerName string
	CustomerName  string
	Town          string
	Notes         string
	RequestedAt   time.Time
}
