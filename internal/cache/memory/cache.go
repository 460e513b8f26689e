package memory

import (
	"context"
	"sync"
	"time"

	"github.com/playforge/bangate/internal/cache"
	"github.com/playforge/bangate/internal/dependencies/clock"
	"github.com/playforge/bangate/internal/model"
)

// Cache is an in-process implementation of the verdict cache. It exists
// for single-instance deployments and tests; shared deployments use the
// Redis cache.
type Cache struct {
	clock clock.Clock

	mu      sync.RWMutex
	entries map[string]entry
}

type entry struct {
	verdict   model.Verdict
	expiresAt time.Time
}

// New creates a new in-memory cache instance
func New(clk clock.Clock) *Cache {
	return &Cache{
		clock:   clk,
		entries: make(map[string]entry),
	}
}

// Ensure Cache implements the interface
var _ cache.Cache = (*Cache)(nil)

func (c *Cache) Lookup(ctx context.Context, key string) (model.Verdict, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return model.VerdictNone, false, nil
	}

	if !c.clock.Now().Before(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return model.VerdictNone, false, nil
	}

	return e.verdict, true, nil
}

func (c *Cache) Store(ctx context.Context, key string, verdict model.Verdict) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		verdict:   verdict,
		expiresAt: c.clock.Now().Add(cache.VerdictTTL),
	}
	return nil
}
