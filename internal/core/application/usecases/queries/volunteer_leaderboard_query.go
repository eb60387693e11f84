package queries

import (
	"errors"

	"coordinator/internal/pkg/errs"
	"coordinator/internal/pkg/guard"
)

var ErrVolunteerLeaderboardQueryIsNotConstructed = errors.New(
	"VolunteerLeaderboardQuery must be created via NewVolunteerLeaderboardQuery constructor",
)

const maxLeaderboardLimit = 100

// VolunteerLeaderboardQuery retrieves the top volunteers of the referral
// challenge, ranked by confirmed sales.
type VolunteerLeaderboardQuery struct {
	limit int
	guard guard.ConstructorGuard
}

// NewVolunteerLeaderboardQuery creates a leaderboard query.
func NewVolunteerLeaderboardQuery(limit int) (VolunteerLeaderboardQuery, error) {
	if limit < 1 || limit > maxLeaderboardLimit {
		return VolunteerLeaderboardQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxLeaderboardLimit)
	}
	return VolunteerLeaderboardQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

// Limit returns the number of rows requested.
func (q VolunteerLeaderboardQuery) Limit() int { return q.limit }

// Validate ensures the query was created through the constructor.
func (q VolunteerLeaderboardQuery) Validate() error {
	return q.guard.Validate(ErrVolunteerLeaderboardQueryIsNotConstructed)
}

// LeaderboardEntryResponse is one ranked volunteer. The volunteer id is a
// plain string so entries round-trip through the JSON cache unchanged.
type LeaderboardEntryResponse struct {
	Rank            int    `json:"rank"`
	VolunteerID     string `json:"volunteerId"`
	Code            string `json:"code"`
	Name            string `json:"name"`
	ConfirmedOrders int    `json:"confirmedOrders"`
	ConfirmedSales  int64  `json:"confirmedSales"`
}
