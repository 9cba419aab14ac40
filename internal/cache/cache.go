// Package cache provides a Redis-backed read-through cache for computed
// analytics responses. Entries expire server-side via TTL; there is no
// explicit invalidation because the analytics endpoints tolerate slightly
// stale rankings.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/thaisassuncao/community-app/internal/metrics"
)

const keyPrefix = "analytics:"

// NewClient creates a go-redis client from a URL (e.g. "redis://localhost:6379")
// and verifies the connection.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return rdb, nil
}

// Analytics caches JSON-encoded analytics results.
type Analytics struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAnalytics(rdb *redis.Client, ttl time.Duration) *Analytics {
	return &Analytics{rdb: rdb, ttl: ttl}
}

// Get unmarshals the cached entry for key into dest. The second return is
// false on a miss. Redis failures are returned to the caller, which treats
// the cache as best-effort.
func (a *Analytics) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := a.rdb.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.AnalyticsCacheOps.WithLabelValues("miss").Inc()
		return false, nil
	}
	if err != nil {
		metrics.AnalyticsCacheOps.WithLabelValues("error").Inc()
		return false, fmt.Errorf("failed to read cache entry: %w", err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		metrics.AnalyticsCacheOps.WithLabelValues("error").Inc()
		return false, fmt.Errorf("failed to decode cache entry: %w", err)
	}
	metrics.AnalyticsCacheOps.WithLabelValues("hit").Inc()
	return true, nil
}

// Set stores value under key with the configured TTL.
func (a *Analytics) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}
	if err := a.rdb.Set(ctx, keyPrefix+key, raw, a.ttl).Err(); err != nil {
		metrics.AnalyticsCacheOps.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}
