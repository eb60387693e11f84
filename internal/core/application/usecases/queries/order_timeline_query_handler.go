package queries

import (
	"context"

	"gorm.io/gorm"
)

// OrderTimelineQueryHandler reads an order's tracking ledger. The ledger is
// append-only, so sorting by creation time keeps entries in cause order.
type OrderTimelineQueryHandler struct {
	db *gorm.DB
}

// NewOrderTimelineQueryHandler creates a handler for timeline queries.
func NewOrderTimelineQueryHandler(db *gorm.DB) OrderTimelineQueryHandler {
	return OrderTimelineQueryHandler{db: db}
}

// Handle executes the timeline query.
func (h OrderTimelineQueryHandler) Handle(
	ctx context.Context,
	query OrderTimelineQuery,
) ([]OrderTimelineEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]OrderTimelineEntryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT code, title, description, location, updated_by, created_at
		FROM delivery_tracking_events
		WHERE order_id = ?
		ORDER BY created_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry OrderTimelineEntryResponse
		if err = rows.Scan(&entry.Code, &entry.Title, &entry.Description,
			&entry.Location, &entry.UpdatedBy, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
