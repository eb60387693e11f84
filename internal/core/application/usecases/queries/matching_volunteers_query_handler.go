package queries

import (
	"context"
	"database/sql"
	"errors"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/core/domain/model/volunteer"
	"coordinator/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchingVolunteersQueryHandler finds candidate volunteers for an order by
// comparing address fields in the database. Matching mirrors the domain
// matcher: exact town and post office equality, case-insensitive, and an
// order without a house/building field matches nobody.
type MatchingVolunteersQueryHandler struct {
	db *gorm.DB
}

// NewMatchingVolunteersQueryHandler creates a handler for candidate
// volunteer queries.
func NewMatchingVolunteersQueryHandler(db *gorm.DB) MatchingVolunteersQueryHandler {
	return MatchingVolunteersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by delivery count so the
// admin sees the most experienced candidates first.
func (h MatchingVolunteersQueryHandler) Handle(
	ctx context.Context,
	query MatchingVolunteersQuery,
) ([]MatchingVolunteerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var houseBuilding, town, postOffice string
	row := h.db.WithContext(ctx).Raw(`
		SELECT house_building, town, post_office
		FROM orders
		WHERE id = ? AND is_deleted = false
	`, query.OrderID().Bytes()).Row()
	if err := row.Scan(&houseBuilding, &town, &postOffice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return nil, err
	}

	candidates := make([]MatchingVolunteerResponse, 0)
	if houseBuilding == "" || town == "" || postOffice == "" {
		return candidates, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, code, name, phone, town, post_office, total_deliveries
		FROM volunteers
		WHERE status = ?
		  AND LOWER(town) = LOWER(?)
		  AND LOWER(post_office) = LOWER(?)
		ORDER BY total_deliveries DESC, code
	`, volunteer.StatusActive.String(), town, postOffice).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp MatchingVolunteerResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Code, &resp.Name, &resp.Phone,
			&resp.Town, &resp.PostOffice, &resp.TotalDeliveries); err != nil {
			return nil, err
		}

		volunteerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = volunteerID
		candidates = append(candidates, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return candidates, nil
}
