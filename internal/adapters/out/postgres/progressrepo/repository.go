// Package progressrepo persists referral challenge progress counters. The
// table is a pure counter store: one row per volunteer, moved only by atomic
// upsert increments.
package progressrepo

import (
	"context"

	"coordinator/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ChallengeProgressDTO is one volunteer's referral challenge counters.
type ChallengeProgressDTO struct {
	VolunteerID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConfirmedOrders int       `gorm:"not null"`
	ConfirmedSales  int64     `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "challenge_progress".
func (ChallengeProgressDTO) TableName() string {
	return "challenge_progress"
}

// GormChallengeProgressRepository implements ChallengeProgressRepository
// using GORM.
type GormChallengeProgressRepository struct {
	db *gorm.DB
}

// NewGormChallengeProgressRepository creates a new GORM challenge progress
// repository.
func NewGormChallengeProgressRepository(db *gorm.DB) *GormChallengeProgressRepository {
	return &GormChallengeProgressRepository{db: db}
}

// IncrementConfirmed adds a confirmed order count and sales amount to the
// volunteer's progress. Insert-or-increment in one statement, so concurrent
// confirmations never lose an update.
func (r *GormChallengeProgressRepository) IncrementConfirmed(
	ctx context.Context,
	volunteerID kernel.UUID,
	orders int,
	sales int64,
) error {
	if err := volunteerID.Validate(); err != nil {
		return err
	}

	dto := ChallengeProgressDTO{
		VolunteerID:     volunteerID.Bytes(),
		ConfirmedOrders: orders,
		ConfirmedSales:  sales,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "volunteer_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"confirmed_orders": gorm.Expr("challenge_progress.confirmed_orders + ?", orders),
				"confirmed_sales":  gorm.Expr("challenge_progress.confirmed_sales + ?", sales),
			}),
		}).
		Create(&dto).Error
}
