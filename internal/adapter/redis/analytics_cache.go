package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/erwinjamescodes/sinotoriables/internal/domain"
)

const analyticsCacheKey = "analytics:snapshot"

// AnalyticsCache stores a computed analytics snapshot in Redis with a short
// TTL. Callers treat every error as a cache miss.
type AnalyticsCache struct {
	rdb goredis.Cmdable
	ttl time.Duration
}

var _ domain.AnalyticsCache = (*AnalyticsCache)(nil)

func NewAnalyticsCache(client *Client, ttl time.Duration) *AnalyticsCache {
	return &AnalyticsCache{rdb: client.rdb, ttl: ttl}
}

// Get returns the cached snapshot, or (nil, nil) on a miss.
func (c *AnalyticsCache) Get(ctx context.Context) (*domain.Analytics, error) {
	data, err := c.rdb.Get(ctx, analyticsCacheKey).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("analytics cache GET failed: %w", err)
	}

	var snapshot domain.Analytics
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached analytics: %w", err)
	}

	return &snapshot, nil
}

func (c *AnalyticsCache) Set(ctx context.Context, a *domain.Analytics) error {
	encoded, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal analytics snapshot: %w", err)
	}

	if err := c.rdb.Set(ctx, analyticsCacheKey, encoded, c.ttl).Err(); err != nil {
		return fmt.Errorf("analytics cache SET failed: %w", err)
	}

	return nil
}
