package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"tastybites/internal/domain"
)

// MenuCache caches menu list results in Redis. Keys carry the full filter
// tuple so different search/category combinations never collide. The catalog
// is immutable after seeding, so a short TTL is the only invalidation needed.
type MenuCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	return &MenuCache{Client: client, TTL: ttl}
}

func (c *MenuCache) ListKey(search, category string) string {
	return "menu:list:" + category + ":" + search
}

func (c *MenuCache) GetList(ctx context.Context, key string) ([]domain.MenuItem, bool, error) {
	raw, err := c.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var items []domain.MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, err
	}
	return items, true, nil
}

func (c *MenuCache) SetList(ctx context.Context, key string, items []domain.MenuItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, raw, c.TTL).Err()
}
