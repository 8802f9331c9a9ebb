package cache

import (
	"testing"
	"time"

	"github.com/radhian/fuel-station-analytics/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissOnUnknownKey(t *testing.T) {
	c := New(10 * time.Minute)

	_, ok := c.Get("_")
	assert.False(t, ok)
}

func TestPutAndGet(t *testing.T) {
	c := New(10 * time.Minute)
	stats := &entity.DashboardStats{TotalSales: 100}

	c.Put("2024-01-01_2024-01-31", stats)

	got, ok := c.Get("2024-01-01_2024-01-31")
	require.True(t, ok)
	assert.Same(t, stats, got)
}

func TestExpiredEntryIsAMiss(t *testing.T) {
	c := New(10 * time.Minute)
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Put("k", &entity.DashboardStats{})

	// Just inside the TTL window.
	c.now = func() time.Time { return now.Add(10*time.Minute - time.Second) }
	_, ok := c.Get("k")
	assert.True(t, ok)

	// At the boundary the entry is stale.
	c.now = func() time.Time { return now.Add(10 * time.Minute) }
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestExpiryIsPerKey(t *testing.T) {
	c := New(10 * time.Minute)
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Put("old", &entity.DashboardStats{})

	c.now = func() time.Time { return now.Add(9 * time.Minute) }
	c.Put("fresh", &entity.DashboardStats{})

	c.now = func() time.Time { return now.Add(11 * time.Minute) }
	_, ok := c.Get("old")
	assert.False(t, ok)
	_, ok = c.Get("fresh")
	assert.True(t, ok)
}

func TestReset(t *testing.T) {
	c := New(10 * time.Minute)
	c.Put("a", &entity.DashboardStats{})
	c.Put("b", &entity.DashboardStats{})

	c.Reset()

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok)
}
