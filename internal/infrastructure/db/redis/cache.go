package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stockroom/stock-api/internal/api/metrics"
)

const (
	cachePrefix     = "cache:"
	defaultCacheTTL = 30 * time.Second
)

// ListCache stores JSON-encoded list responses under a namespaced key with a
// fixed TTL. Key format: cache:<resource key>
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListCache creates a ListCache wrapping the given Redis client. A default
// TTL is applied when none is provided.
func NewListCache(client *redis.Client, ttl time.Duration) *ListCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ListCache{client: client, ttl: ttl}
}

// Get loads the cached value for key into dest. The boolean reports whether
// the key was present.
func (c *ListCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	payload, err := c.client.Get(ctx, cachePrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CacheRequestsTotal.WithLabelValues("miss").Inc()
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get: %w", err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("cache decode: %w", err)
	}
	metrics.CacheRequestsTotal.WithLabelValues("hit").Inc()
	return true, nil
}

// Set stores value under key, replacing any previous entry.
func (c *ListCache) Set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, cachePrefix+key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate removes the entry for key, if any.
func (c *ListCache) Invalidate(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, cachePrefix+key).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
