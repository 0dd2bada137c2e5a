package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"questbets/models"
)

const (
	catalogKey = "questbets:catalog"
	catalogTTL = 30 * time.Second
)

// ConnectRedis opens and pings a Redis client
func ConnectRedis(addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}

// RedisCatalogCache caches the serialized bet catalog under a single
// key with a short TTL. It satisfies service.CatalogCache.
type RedisCatalogCache struct {
	rdb *redis.Client
}

// NewRedisCatalogCache creates a catalog cache backed by Redis
func NewRedisCatalogCache(rdb *redis.Client) *RedisCatalogCache {
	return &RedisCatalogCache{rdb: rdb}
}

// GetCatalog returns the cached catalog, or (nil, nil) on a miss
func (c *RedisCatalogCache) GetCatalog(ctx context.Context) ([]*models.Bet, error) {
	raw, err := c.rdb.Get(ctx, catalogKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var bets []*models.Bet
	if err := json.Unmarshal(raw, &bets); err != nil {
		return nil, err
	}
	return bets, nil
}

// SetCatalog stores the catalog with the cache TTL
func (c *RedisCatalogCache) SetCatalog(ctx context.Context, bets []*models.Bet) error {
	raw, err := json.Marshal(bets)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, catalogKey, raw, catalogTTL).Err()
}
