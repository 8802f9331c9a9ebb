package cache

import (
	"sync"
	"time"

	"github.com/radhian/fuel-station-analytics/entity"
)

// StatsCache memoizes dashboard snapshots per filter key with a fixed TTL.
// Expiry is per entry, measured from the time of Put.
type StatsCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

type cacheEntry struct {
	stats    *entity.DashboardStats
	storedAt time.Time
}

func New(ttl time.Duration) *StatsCache {
	return &StatsCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *StatsCache) Get(key string) (*entity.DashboardStats, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.stats, true
}

func (c *StatsCache) Put(key string, stats *entity.DashboardStats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{stats: stats, storedAt: c.now()}
}

// Reset drops every entry. Called when the database is cleared.
func (c *StatsCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
