package queries

import (
	"context"

	"coordinator/internal/core/domain/model/deliveryrequest"
	"coordinator/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PendingDeliveryRequestsQueryHandler reads the admin review queue.
type PendingDeliveryRequestsQueryHandler struct {
	db *gorm.DB
}

// NewPendingDeliveryRequestsQueryHandler creates a handler for review queue
// queries.
func NewPendingDeliveryRequestsQueryHandler(db *gorm.DB) PendingDeliveryRequestsQueryHandler {
	return PendingDeliveryRequestsQueryHandler{db: db}
}

// Handle executes the review queue query.
func (h PendingDeliveryRequestsQueryHandler) Handle(
	ctx context.Context,
	query PendingDeliveryRequestsQuery,
) ([]PendingDeliveryRequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pending := make([]PendingDeliveryRequestResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.order_id,
			r.volunteer_id,
			v.code,
			v.name,
			o.customer_name,
			o.town,
			r.notes,
			r.requested_at
		FROM delivery_requests r
		JOIN volunteers v ON v.id = r.volunteer_id
		JOIN orders o ON o.id = r.order_id
		WHERE r.status = ?
		ORDER BY r.requested_at
	`, deliveryrequest.StatusPending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp PendingDeliveryRequestResponse
		var id, orderID, volunteerID uuid.UUID

		if err = rows.Scan(&id, &orderID, &volunteerID, &resp.VolunteerCode,
			&resp.VolunteerName, &resp.CustomerName, &resp.Town,
			&resp.Notes, &resp.RequestedAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if resp.VolunteerID, err = kernel.UUIDFromBytes(volunteerID[:]); err != nil {
			return nil, err
		}
		pending = append(pending, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pending, nil
}
