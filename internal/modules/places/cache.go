// README: Redis read-through cache for destination lookups.
package places

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyPrefix = "places:dest:"
	// Resolved destinations change rarely; a day keeps Places API traffic low.
	cacheTTL = 24 * time.Hour
)

type Cache struct {
	redis *redis.Client
}

func NewCache(redis *redis.Client) *Cache {
	return &Cache{redis: redis}
}

func cacheKey(query string) string {
	return cacheKeyPrefix + strings.ToLower(strings.TrimSpace(query))
}

// Get returns the cached destinations for query, or (nil, false) on miss or
// any redis/decoding trouble. Cache failures never fail a lookup.
func (c *Cache) Get(ctx context.Context, query string) ([]Destination, bool) {
	raw, err := c.redis.Get(ctx, cacheKey(query)).Bytes()
	if err != nil {
		return nil, false
	}
	var out []Destination
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}

func (c *Cache) Set(ctx context.Context, query string, dests []Destination) {
	raw, err := json.Marshal(dests)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, cacheKey(query), raw, cacheTTL).Err()
}
