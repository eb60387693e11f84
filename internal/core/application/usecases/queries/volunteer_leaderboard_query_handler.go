package queries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const leaderboardCacheTTL = time.Minute

// VolunteerLeaderboardQueryHandler ranks volunteers by their referral
// challenge progress.
//
// The ranking is read-through cached in Redis per limit. The cache is an
// optimization only: any cache failure falls back to the database and is
// logged, never surfaced.
type VolunteerLeaderboardQueryHandler struct {
	db     *gorm.DB
	cache  *redis.Client
	logger *slog.Logger
}

// NewVolunteerLeaderboardQueryHandler creates a handler for leaderboard
// queries. cache may be nil to disable caching.
func NewVolunteerLeaderboardQueryHandler(db *gorm.DB, cache *redis.Client, logger *slog.Logger) VolunteerLeaderboardQueryHandler {
	return VolunteerLeaderboardQueryHandler{
		db:     db,
		cache:  cache,
		logger: logger.With("component", "leaderboard_query_handler"),
	}
}

// Handle executes the leaderboard query.
func (h VolunteerLeaderboardQueryHandler) Handle(
	ctx context.Context,
	query VolunteerLeaderboardQuery,
) ([]LeaderboardEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("leaderboard:top:%d", query.Limit())
	if cached, ok := h.fromCache(ctx, cacheKey); ok {
		return cached, nil
	}

	entries, err := h.fromDatabase(ctx, query.Limit())
	if err != nil {
		return nil, err
	}

	h.toCache(ctx, cacheKey, entries)
	return entries, nil
}

func (h VolunteerLeaderboardQueryHandler) fromDatabase(ctx context.Context, limit int) ([]LeaderboardEntryResponse, error) {
	entries := make([]LeaderboardEntryResponse, 0, limit)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT v.id, v.code, v.name, p.confirmed_orders, p.confirmed_sales
		FROM challenge_progress p
		JOIN volunteers v ON v.id = p.volunteer_id
		ORDER BY p.confirmed_sales DESC, p.confirmed_orders DESC, v.code
		LIMIT ?
	`, limit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rank := 0
	for rows.Next() {
		var entry LeaderboardEntryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &entry.Code, &entry.Name,
			&entry.ConfirmedOrders, &entry.ConfirmedSales); err != nil {
			return nil, err
		}

		rank++
		entry.Rank = rank
		entry.VolunteerID = id.String()
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (h VolunteerLeaderboardQueryHandler) fromCache(ctx context.Context, key string) ([]LeaderboardEntryResponse, bool) {
	if h.cache == nil {
		return nil, false
	}

	payload, err := h.cache.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			h.logger.WarnContext(ctx, "leaderboard cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var entries []LeaderboardEntryResponse
	if err = json.Unmarshal(payload, &entries); err != nil {
		h.logger.WarnContext(ctx, "leaderboard cache entry corrupt", "key", key, "error", err)
		return nil, false
	}
	return entries, true
}

func (h VolunteerLeaderboardQueryHandler) toCache(ctx context.Context, key string, entries []LeaderboardEntryResponse) {
	if h.cache == nil {
		return
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err = h.cache.Set(ctx, key, payload, leaderboardCacheTTL).Err(); err != nil {
		h.logger.WarnContext(ctx, "leaderboard cache write failed", "key", key, "error", err)
	}
}
