package repository

import (
	"context"
	"encoding/json"

	"github.com/piresc/jumbaa/internal/pkg/constants"
	"github.com/piresc/jumbaa/internal/pkg/database"
	"github.com/piresc/jumbaa/internal/pkg/logger"
	"github.com/piresc/jumbaa/internal/pkg/models"
)

func (r *HouseRepo) cacheEnabled() bool {
	return r.redisClient != nil && r.cfg != nil && r.cfg.Listings.CacheTTL > 0
}

// cachedSnapshot returns the cached listing snapshot. Cache failures are treated as misses.
func (r *HouseRepo) cachedSnapshot(ctx context.Context) ([]*models.House, bool) {
	if !r.cacheEnabled() {
		return nil, false
	}

	raw, err := r.redisClient.Get(ctx, constants.KeyHouseSnapshot)
	if err != nil {
		if !database.IsNil(err) {
			logger.Warn("Failed to read listings snapshot", logger.ErrorField(err))
		}
		return nil, false
	}

	var houses []*models.House
	if err := json.Unmarshal([]byte(raw), &houses); err != nil {
		logger.Warn("Discarding unreadable listings snapshot", logger.ErrorField(err))
		return nil, false
	}
	if houses == nil {
		houses = []*models.House{}
	}
	return houses, true
}

func (r *HouseRepo) storeSnapshot(ctx context.Context, houses []*models.House) {
	if !r.cacheEnabled() {
		return
	}

	encoded, err := json.Marshal(houses)
	if err != nil {
		logger.Warn("Failed to encode listings snapshot", logger.ErrorField(err))
		return
	}

	if err := r.redisClient.Set(ctx, constants.KeyHouseSnapshot, encoded, r.cfg.Listings.CacheTTL); err != nil {
		logger.Warn("Failed to cache listings snapshot", logger.ErrorField(err))
	}
}

func (r *HouseRepo) invalidateSnapshot(ctx context.Context) error {
	if r.redisClient == nil {
		return nil
	}
	return r.redisClient.Delete(ctx, constants.KeyHouseSnapshot)
}
