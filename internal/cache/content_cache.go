package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrMiss signals the key is absent or caching is disabled.
var ErrMiss = errors.New("cache miss")

const keyPrefix = "content:"

// ContentCache keeps rendered public-content payloads in Redis so the
// public pages do not hit Postgres on every request. A nil client or
// disabled flag turns every operation into a no-op miss.
type ContentCache struct {
	client  *redis.Client
	logger  *zap.Logger
	ttl     time.Duration
	enabled bool
}

// NewContentCache builds the cache wrapper.
func NewContentCache(client *redis.Client, logger *zap.Logger, ttl time.Duration, enabled bool) *ContentCache {
	return &ContentCache{client: client, logger: logger, ttl: ttl, enabled: enabled}
}

// GetJSON loads a cached payload into dest.
func (c *ContentCache) GetJSON(ctx context.Context, key string, dest any) error {
	if !c.active() {
		return ErrMiss
	}
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return ErrMiss
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.Warn("cache entry corrupt", zap.String("key", key), zap.Error(err))
		return ErrMiss
	}
	return nil
}

// SetJSON stores a payload. Failures are logged, never surfaced.
func (c *ContentCache) SetJSON(ctx context.Context, key string, value any) {
	if !c.active() {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, keyPrefix+key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate drops one or more keys after an admin write.
func (c *ContentCache) Invalidate(ctx context.Context, keys ...string) {
	if !c.active() || len(keys) == 0 {
		return
	}
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = keyPrefix + key
	}
	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		c.logger.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

func (c *ContentCache) active() bool {
	return c != nil && c.enabled && c.client != nil
}
