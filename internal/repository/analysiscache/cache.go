// Package analysiscache caches JSON analysis results in a key-value store.
//
// Analysis is deterministic for a given input, so results are keyed by the
// operation name plus a hash of the input text and cached with a TTL. The
// cache is strictly best-effort: store failures are logged and the caller
// falls through to a fresh computation.
package analysiscache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kitabi-cloud/lisan/internal/db"
	"github.com/kitabi-cloud/lisan/internal/domain"
)

// store is the consumer interface for the analysis cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Cache stores serialized analysis results. A nil *Cache is valid and
// disables caching, so callers wire it unconditionally.
type Cache struct {
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates an analysis result cache.
// cacheTotal is a counter vec with labels "operation" and "result"
// ("hit"/"miss"), passed explicitly.
func New(
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *Cache {
	return &Cache{
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Do returns the cached result for op+payload, or computes, stores, and
// returns a fresh one. Errors from compute are returned as-is and nothing
// is cached for them.
func Do[T any](ctx context.Context, c *Cache, op, payload string, compute func(ctx context.Context) (T, error)) (T, error) {
	if c == nil {
		return compute(ctx)
	}

	key := c.key(op, payload)

	if data, ok := c.get(ctx, key); ok {
		var out T
		if err := json.Unmarshal(data, &out); err == nil {
			c.inc(op, "hit")
			return out, nil
		}
		c.logger.Warn("Failed to decode cached result", zap.String("key", key), zap.String("operation", op))
	}
	c.inc(op, "miss")

	out, err := compute(ctx)
	if err != nil {
		return out, err
	}

	c.put(ctx, key, op, out)
	return out, nil
}

func (c *Cache) inc(op, result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(op, result).Inc()
	}
}

func (c *Cache) key(op, payload string) string {
	h := sha256.Sum256([]byte(payload))
	return domain.KeyPrefix + "analysis:" + op + ":" + hex.EncodeToString(h[:])
}

func (c *Cache) get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached result", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	if len(data) == 0 {
		return nil, false
	}
	return data, true
}

func (c *Cache) put(ctx context.Context, key, op string, result any) {
	data, err := json.Marshal(result)
	if err != nil {
		c.logger.Warn("Failed to encode result for cache", zap.String("operation", op), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache result", zap.String("key", key), zap.Error(err))
	}
}
