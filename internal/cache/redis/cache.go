package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/playforge/bangate/internal/cache"
	"github.com/playforge/bangate/internal/model"
)

// Key prefix for all verdict cache data
const keyPrefix = "bangate"

// Cache is a Redis-backed implementation of the verdict cache
type Cache struct {
	client *redis.Client
}

// New creates a new Redis cache instance
func New(cfg Config) (*Cache, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Cache{client: client}, nil
}

// NewWithClient creates a Redis cache with an existing client (for testing)
func NewWithClient(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Close closes the Redis connection
func (c *Cache) Close() error {
	return c.client.Close()
}

// Ensure Cache implements the interface
var _ cache.Cache = (*Cache)(nil)

func (c *Cache) Lookup(ctx context.Context, key string) (model.Verdict, bool, error) {
	value, err := c.client.Get(ctx, verdictKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.VerdictNone, false, nil
		}
		return model.VerdictNone, false, err
	}

	verdict, err := model.ParseVerdict(value)
	if err != nil {
		// Unreadable cached value, treat as a miss
		return model.VerdictNone, false, nil
	}
	return verdict, true, nil
}

func (c *Cache) Store(ctx context.Context, key string, verdict model.Verdict) error {
	return c.client.Set(ctx, verdictKey(key), verdict.String(), cache.VerdictTTL).Err()
}

// verdictKey returns the Redis key for a cached verdict
func verdictKey(key string) string {
	return fmt.Sprintf("%s:verdict:%s", keyPrefix, key)
}
