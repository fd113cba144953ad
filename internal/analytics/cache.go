package analytics

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/timberridge/outdoor-living-backend/pkg/logging"
)

// SummaryCache keeps recently computed summaries in Redis so dashboard
// refreshes don't rescan the lead table. Cache trouble is never fatal:
// misses and errors both fall back to a fresh computation.
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logging.Logger
}

// NewSummaryCache wraps a Redis client. Returns nil when client is nil,
// and a nil *SummaryCache is safe to use (always misses).
func NewSummaryCache(client *redis.Client, ttl time.Duration, logger *logging.Logger) *SummaryCache {
	if client == nil {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &SummaryCache{client: client, ttl: ttl, logger: logger}
}

func cacheKey(period Period) string {
	return "analytics:summary:" + string(period)
}

// Get returns the cached summary for a period, if any.
func (c *SummaryCache) Get(ctx context.Context, period Period) (*Summary, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, cacheKey(period)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("analytics cache read failed", "error", err, "period", period)
		return nil, false
	}
	var s Summary
	if err := json.Unmarshal(raw, &s); err != nil {
		c.logger.Warn("analytics cache entry corrupt", "error", err, "period", period)
		return nil, false
	}
	return &s, true
}

// Set stores a summary under its period key for the cache TTL.
func (c *SummaryCache) Set(ctx context.Context, period Period, s *Summary) {
	if c == nil || s == nil {
		return
	}
	raw, err := json.Marshal(s)
	if err != nil {
		c.logger.Warn("analytics cache marshal failed", "error", err, "period", period)
		return
	}
	if err := c.client.Set(ctx, cacheKey(period), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("analytics cache write failed", "error", err, "period", period)
	}
}
