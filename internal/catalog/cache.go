package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyStatistics = "catalog:statistics"
	cacheKeyStores     = "catalog:stores"
	cacheKeyCategories = "catalog:categories"
)

// Cache is a best-effort read-through cache over Redis for the hot listing
// endpoints. Every miss or Redis failure falls back to Postgres; nothing here
// is load-bearing for correctness.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) GetStatistics(ctx context.Context) (Statistics, bool) {
	data, err := c.client.Get(ctx, cacheKeyStatistics).Bytes()
	if err != nil {
		return Statistics{}, false
	}
	var stats Statistics
	if err := json.Unmarshal(data, &stats); err != nil {
		return Statistics{}, false
	}
	return stats, true
}

func (c *Cache) SetStatistics(ctx context.Context, stats Statistics) {
	data, err := json.Marshal(stats)
	if err != nil {
		return
	}
	c.client.Set(ctx, cacheKeyStatistics, data, c.ttl)
}

func (c *Cache) GetStrings(ctx context.Context, key string) ([]string, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, false
	}
	return values, true
}

func (c *Cache) SetStrings(ctx context.Context, key string, values []string) {
	data, err := json.Marshal(values)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, data, c.ttl)
}

// Invalidate drops every cached key; called after any catalog mutation.
func (c *Cache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, cacheKeyStatistics, cacheKeyStores, cacheKeyCategories).Err()
}
