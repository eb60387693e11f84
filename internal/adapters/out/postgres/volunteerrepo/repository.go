package volunteerrepo

import (
	"context"
	"errors"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/core/domain/model/volunteer"
	"coordinator/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// translateCodeConflict maps the unique-violation raised by the
// idx_volunteers_code_lower index to the error taxonomy. The index is on
// lower(code), so "VOL-1" and "vol-1" collide.
func translateCodeConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return errs.NewConflictError("volunteer code", "already in use")
	}
	return err
}

// GormVolunteerRepository implements VolunteerRepository using GORM.
type GormVolunteerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVolunteerRepository creates a new GORM volunteer repository.
func NewGormVolunteerRepository(db *gorm.DB, tracker aggregateTracker) *GormVolunteerRepository {
	return &GormVolunteerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new volunteer to the database.
func (r *GormVolunteerRepository) Add(ctx context.Context, aggregate *volunteer.Volunteer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateCodeConflict(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing volunteer. The delivery counters are excluded:
// they move only through RecordDelivery, so a stale aggregate loaded before
// a concurrent delivery cannot roll them back.
func (r *GormVolunteerRepository) Update(ctx context.Context, aggregate *volunteer.Volunteer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&VolunteerDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "total_deliveries", "total_commission").
		Updates(&dto)
	if result.Error != nil {
		return translateCodeConflict(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("volunteer", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a volunteer by ID.
func (r *GormVolunteerRepository) Get(ctx context.Context, id kernel.UUID) (*volunteer.Volunteer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VolunteerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("volunteer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves a volunteer by the human-facing volunteer code,
// case-insensitively.
func (r *GormVolunteerRepository) GetByCode(ctx context.Context, code string) (*volunteer.Volunteer, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("volunteer code")
	}

	var dto VolunteerDTO
	if err := r.db.WithContext(ctx).First(&dto, "LOWER(code) = LOWER(?)", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("volunteer", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all volunteers able to take deliveries.
func (r *GormVolunteerRepository) GetAllActive(ctx context.Context) ([]*volunteer.Volunteer, error) {
	var dtos []VolunteerDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "status = ?", volunteer.StatusActive.String()).Error; err != nil {
		return nil, err
	}

	volunteers := make([]*volunteer.Volunteer, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		volunteers = append(volunteers, v)
	}

	return volunteers, nil
}

// RecordDelivery moves the volunteer's running totals by one delivery and
// the given commission in a single UPDATE, so concurrent deliveries by the
// same volunteer never lose an increment. Returns the totals after the
// increment.
func (r *GormVolunteerRepository) RecordDelivery(
	ctx context.Context,
	id kernel.UUID,
	commission int64,
) (volunteer.DeliveryTotals, error) {
	if err := id.Validate(); err != nil {
		return volunteer.DeliveryTotals{}, err
	}

	result := r.db.WithContext(ctx).
		Model(&VolunteerDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			"total_deliveries": gorm.Expr("total_deliveries + 1"),
			"total_commission": gorm.Expr("total_commission + ?", commission),
		})
	if result.Error != nil {
		return volunteer.DeliveryTotals{}, result.Error
	}
	if result.RowsAffected == 0 {
		return volunteer.DeliveryTotals{}, errs.NewObjectNotFoundError("volunteer", id.String())
	}

	var totals volunteer.DeliveryTotals
	row := r.db.WithContext(ctx).
		Model(&VolunteerDTO{}).
		Select("total_deliveries", "total_commission").
		Where("id = ?", id.Bytes()).
		Row()
	if err := row.Scan(&totals.TotalDeliveries, &totals.TotalCommission); err != nil {
		return volunteer.DeliveryTotals{}, err
	}

	return totals, nil
}
