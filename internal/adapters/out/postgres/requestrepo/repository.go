package requestrepo

import (
	"context"
	"errors"
	"time"

	"coordinator/internal/core/domain/model/deliveryrequest"
	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRequestRepository implements DeliveryRequestRepository using GORM.
type GormRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRequestRepository creates a new GORM delivery request repository.
func NewGormRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormRequestRepository {
	return &GormRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery request to the database.
func (r *GormRequestRepository) Add(ctx context.Context, aggregate *deliveryrequest.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves a decided request. The write only lands while the row is
// still pending; losing that race means another actor decided the request
// first, which surfaces as a conflict.
func (r *GormRequestRepository) Update(ctx context.Context, aggregate *deliveryrequest.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("id = ? AND status = ?", dto.ID, deliveryrequest.StatusPending.String()).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("delivery request", "already decided")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery request by ID.
func (r *GormRequestRepository) Get(ctx context.Context, id kernel.UUID) (*deliveryrequest.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPendingByOrder retrieves an order's undecided requests, oldest first.
func (r *GormRequestRepository) GetPendingByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*deliveryrequest.Request, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RequestDTO
	if err := r.db.WithContext(ctx).
		Order("requested_at").
		Find(&dtos, "order_id = ? AND status = ?",
			orderID.Bytes(), deliveryrequest.StatusPending.String()).Error; err != nil {
		return nil, err
	}

	requests := make([]*deliveryrequest.Request, 0, len(dtos))
	for _, dto := range dtos {
		request, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}

// RejectOtherPending bulk-rejects every pending request for the order except
// the excluded one. Returns how many rows flipped.
func (r *GormRequestRepository) RejectOtherPending(
	ctx context.Context,
	orderID, exclude kernel.UUID,
	notes string,
	at time.Time,
) (int64, error) {
	if err := orderID.Validate(); err != nil {
		return 0, err
	}
	if err := exclude.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("order_id = ? AND id <> ? AND status = ?",
			orderID.Bytes(), exclude.Bytes(), deliveryrequest.StatusPending.String()).
		Updates(map[string]any{
			"status":       deliveryrequest.StatusRejected.String(),
			"responded_at": at,
			"notes":        notes,
		})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
