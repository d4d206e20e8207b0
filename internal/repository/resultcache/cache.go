// Package resultcache stores finished pipeline results in a key-value
// store, keyed by a digest of the raw content.
package resultcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/base234/hyper-privacy-backend/internal/db"
	"github.com/base234/hyper-privacy-backend/internal/domain"
)

const cacheKeyPrefix = "adengine:result:"

// store is the consumer interface for the result cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Cache persists ProcessResults with a TTL. All store failures degrade
// to cache misses; the pipeline never fails because the cache is down.
type Cache struct {
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a result cache.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(s store, ttl time.Duration, cacheTotal *prometheus.CounterVec, logger *zap.Logger) *Cache {
	return &Cache{
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Get returns a previously stored result for the content, if any.
func (c *Cache) Get(ctx context.Context, content string) (*domain.ProcessResult, bool) {
	key := cacheKey(content)

	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached result", zap.String("key", key), zap.Error(err))
		}
		c.incCache("miss")
		return nil, false
	}

	var result domain.ProcessResult
	if err := json.Unmarshal(data, &result); err != nil {
		c.logger.Warn("Failed to parse cached result", zap.String("key", key), zap.Error(err))
		c.incCache("miss")
		return nil, false
	}

	c.incCache("hit")
	return &result, true
}

// Set stores a result for the content. Errors are logged, not returned.
func (c *Cache) Set(ctx context.Context, content string, result *domain.ProcessResult) {
	key := cacheKey(content)

	data, err := json.Marshal(result)
	if err != nil {
		c.logger.Warn("Failed to encode result for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache result", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func cacheKey(content string) string {
	h := sha256.Sum256([]byte(content))
	return cacheKeyPrefix + hex.EncodeToString(h[:])
}
