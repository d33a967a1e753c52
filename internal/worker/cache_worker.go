package worker

// cache_worker.go
// Processes jobs from QueueCache: drops the cached dashboard response after a
// mutation so the next GET /v1/dashboard recomputes fresh aggregates instead
// of waiting out the TTL.

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// DashboardCacheKey is shared with the dashboard service.
const DashboardCacheKey = "cache:dashboard"

// CacheWorker invalidates redis-cached API responses.
type CacheWorker struct {
	rdb *redis.Client
}

func NewCacheWorker(rdb *redis.Client) *CacheWorker {
	return &CacheWorker{rdb: rdb}
}

func (w *CacheWorker) Process(ctx context.Context, _ json.RawMessage) error {
	if err := w.rdb.Del(ctx, DashboardCacheKey).Err(); err != nil {
		log.Error().Err(err).Msg("cache_worker: failed to invalidate dashboard cache")
		return err
	}
	log.Debug().Msg("cache_worker: dashboard cache invalidated")
	return nil
}
