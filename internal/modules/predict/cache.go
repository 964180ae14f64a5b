// README: Prediction result cache backed by Redis.
package predict

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "predict:result:"

// DefaultCacheTTL bounds how long a cached result can outlive changing
// conditions (surge windows shift on that scale).
const DefaultCacheTTL = 5 * time.Minute

type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{redis: client, ttl: ttl}
}

// Get returns the cached result for an identical request. Any redis or
// decode failure is treated as a miss.
func (c *Cache) Get(ctx context.Context, req Request) (*Result, bool) {
	val, err := c.redis.Get(ctx, cacheKey(req)).Result()
	if err != nil {
		return nil, false
	}
	var res Result
	if err := json.Unmarshal([]byte(val), &res); err != nil {
		return nil, false
	}
	return &res, true
}

func (c *Cache) Set(ctx context.Context, req Request, res *Result) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, cacheKey(req), payload, c.ttl).Err()
}

// cacheKey fingerprints every field that influences the result,
// including the pickup name (it drives the recommendation).
func cacheKey(req Request) string {
	coords := func(p []float64) string {
		parts := make([]string, len(p))
		for i, v := range p {
			parts[i] = fmt.Sprintf("%.6f", v)
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprintf("%s%s|%s|%d|%d|%t|%d|%s",
		cacheKeyPrefix,
		coords(req.Pickup), coords(req.Destination),
		req.Hour, req.DayOfWeek, req.IsRainy, req.Category,
		strings.ToLower(strings.TrimSpace(req.PickupName)),
	)
}
