// Package queries contains read-only operations for the query side of the
// CQRS architecture. Query handlers bypass the domain model and repositories
// and read straight from the database; responses are plain DTOs shaped for
// the caller.
package queries

import (
	"errors"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/pkg/guard"
)

var ErrMatchingVolunteersQueryIsNotConstructed = errors.New(
	"MatchingVolunteersQuery must be created via NewMatchingVolunteersQuery constructor",
)

// MatchingVolunteersQuery retrieves the active volunteers whose delivery
// area covers a given order's address. Backs the admin's assignment screen.
type MatchingVolunteersQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewMatchingVolunteersQuery creates a query for an order's candidate
// volunteers.
func NewMatchingVolunteersQuery(orderID kernel.UUID) (MatchingVolunteersQuery, error) {
	if err := orderID.Validate(); err != nil {
		return MatchingVolunteersQuery{}, err
	}
	return MatchingVolunteersQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// OrderID returns the order whose address is matched.
func (q MatchingVolunteersQuery) OrderID() kernel.UUID { return q.orderID }

// Validate ensures the query was created through the constructor.
func (q MatchingVolunteersQuery) Validate() error {
	return q.guard.Validate(ErrMatchingVolunteersQueryIsNotConstructed)
}

// MatchingVolunteerResponse is one candidate volunteer for an order.
type MatchingVolunteerResponse struct {
	ID              kernel.UUID
	Code            string
	Name            string
	Phone           string
	Town            string
	PostOffice      string
	TotalDeliveries int
}
