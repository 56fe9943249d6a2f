package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/key-tactile/commerce-api/internal/api/metrics"
	"github.com/key-tactile/commerce-api/internal/core/ports"
)

const (
	statsKey = "stats:overview"
	statsTTL = time.Minute
)

// StatsCache keeps the dashboard aggregate in Redis for a minute so repeated
// admin loads do not hammer the aggregation pipeline.
type StatsCache struct {
	client *redis.Client
}

func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

func (c *StatsCache) Get(ctx context.Context) (*ports.StatsOverview, bool, error) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.StatsCacheTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("stats cache get: %w", err)
	}

	var overview ports.StatsOverview
	if err := json.Unmarshal(raw, &overview); err != nil {
		return nil, false, fmt.Errorf("stats cache decode: %w", err)
	}

	metrics.StatsCacheTotal.WithLabelValues("hit").Inc()
	return &overview, true, nil
}

func (c *StatsCache) Set(ctx context.Context, overview *ports.StatsOverview) error {
	raw, err := json.Marshal(overview)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, statsKey, raw, statsTTL).Err()
}
