package ports

import (
	"context"

	"coordinator/internal/core/domain/model/kernel"
)

// ChallengeProgressRepository maintains the per-volunteer challenge counters
// shown on the leaderboard. Rows are upserted; counter moves are single
// atomic statements.
type ChallengeProgressRepository interface {
	// IncrementConfirmed adds the given confirmed-order count and verified
	// sales amount to the volunteer's challenge row, creating it with the
	// default goal when absent.
	IncrementConfirmed(ctx context.Context, volunteerID kernel.UUID, orders int, sales int64) error
}
