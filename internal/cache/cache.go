// internal/cache/cache.go

// Package cache is an optional Redis-backed cache of serialized filter
// responses. Keys embed the dataset snapshot ID, so a fresh load invalidates
// old entries implicitly. Redis outages degrade to recomputation; the cache
// never turns into a failure path.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"fundscope/internal/common/logger"
	"fundscope/internal/common/metrics"
)

const keyPrefix = "fundscope:results:"

type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func New(client *redis.Client, ttl time.Duration, log logger.Logger) *ResultCache {
	return &ResultCache{
		client: client,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "cache"}),
	}
}

// Key builds a cache key from the dataset snapshot, the view name, and the
// canonical criteria key.
func Key(snapshotID, view, criteriaKey string) string {
	return keyPrefix + snapshotID + ":" + view + ":" + criteriaKey
}

// Get returns the cached payload for key, or ok=false on a miss or any
// Redis failure.
func (c *ResultCache) Get(ctx context.Context, view, key string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache read failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		metrics.CacheMisses.WithLabelValues(view).Inc()
		return nil, false
	}
	metrics.CacheHits.WithLabelValues(view).Inc()
	return payload, true
}

// Set stores a payload with the configured TTL. Failures are logged and
// swallowed.
func (c *ResultCache) Set(ctx context.Context, key string, payload []byte) {
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// Ping verifies connectivity; used at startup to decide whether to run with
// the cache at all.
func (c *ResultCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (c *ResultCache) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
