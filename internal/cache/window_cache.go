package cache

import (
	"context"
	"sync"
	"time"

	"gardenmon/internal/models"
)

// Producer fetches a window of readings when the cache cannot serve it.
type Producer func(ctx context.Context, hours int) ([]models.Reading, error)

type entry struct {
	readings  []models.Reading
	fetchedAt time.Time
}

// WindowCache keeps fetched windows for a fixed validity period, keyed by
// the window size in hours. Distinct windows cache independently. A user
// refresh drops every entry at once; there is no per-key invalidation.
type WindowCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[int]entry
}

// NewWindowCache returns cache with the given validity period.
func NewWindowCache(ttl time.Duration) *WindowCache {
	return &WindowCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[int]entry),
	}
}

// Get returns the cached window when it is still valid, otherwise calls
// producer and caches its result. Producer failures are returned as-is and
// never cached, so the next call queries the store again.
func (c *WindowCache) Get(ctx context.Context, hours int, producer Producer) ([]models.Reading, error) {
	c.mu.Lock()
	if e, ok := c.entries[hours]; ok && c.now().Sub(e.fetchedAt) < c.ttl {
		c.mu.Unlock()
		return e.readings, nil
	}
	c.mu.Unlock()

	readings, err := producer(ctx, hours)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[hours] = entry{readings: readings, fetchedAt: c.now()}
	c.mu.Unlock()

	return readings, nil
}

// InvalidateAll drops every cached window. Wired to the user refresh
// action; the next Get per window re-queries the store.
func (c *WindowCache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[int]entry)
	c.mu.Unlock()
}
