package queries

import (
	"errors"
	"time"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/pkg/guard"
)

var ErrOrderTimelineQueryIsNotConstructed = errors.New(
	"OrderTimelineQuery must be created via NewOrderTimelineQuery constructor",
)

// OrderTimelineQuery retrieves the customer-visible tracking timeline for an
// order, oldest entry first.
type OrderTimelineQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewOrderTimelineQuery creates a timeline query for an order.
func NewOrderTimelineQuery(orderID kernel.UUID) (OrderTimelineQuery, error) {
	if err := orderID.Validate(); err != nil {
		return OrderTimelineQuery{}, err
	}
	return OrderTimelineQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// OrderID returns the order whose timeline is read.
func (q OrderTimelineQuery) OrderID() kernel.UUID { return q.orderID }

// Validate ensures the query was created through the constructor.
func (q OrderTimelineQuery) Validate() error {
	return q.guard.Validate(ErrOrderTimelineQueryIsNotConstructed)
}

// OrderTimelineEntryResponse is one tracking event on the timeline.
type OrderTimelineEntryResponse struct {
	Code        string
	Title       string
	Description string
	Location    string
	UpdatedBy   string
	CreatedAt   time.Time
}
