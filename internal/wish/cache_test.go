package wish

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WishBot_Go/internal/domain"
	"github.com/osse101/WishBot_Go/internal/testing/leaktest"
)

func TestPlayerCache_CopiesValues(t *testing.T) {
	c := newPlayerCache(4, time.Minute)
	info := domain.NewPlayerGachaInfo()
	info.StandardBanner.Pity5 = 7
	c.Set("p1", info)

	info.StandardBanner.Pity5 = 99
	got, ok := c.Get("p1")
	require.True(t, ok)
	assert.Equal(t, 7, got.StandardBanner.Pity5, "mutating the source must not reach the cache")

	got.StandardBanner.Pity5 = 50
	again, ok := c.Get("p1")
	require.True(t, ok)
	assert.Equal(t, 7, again.StandardBanner.Pity5, "mutating a returned copy must not reach the cache")
}

func TestPlayerCache_Stats(t *testing.T) {
	c := newPlayerCache(4, time.Minute)
	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("p1", domain.NewPlayerGachaInfo())
	_, _ = c.Get("p1")
	_, _ = c.Get("p1")

	s := c.Stats()
	assert.Equal(t, 1, s.Size)
	assert.Equal(t, uint64(2), s.Hits)
	assert.Equal(t, uint64(1), s.Misses)
	assert.InDelta(t, 2.0/3.0, s.HitRate, 1e-9)
}

func TestPlayerCache_InvalidateAndClear(t *testing.T) {
	c := newPlayerCache(4, time.Minute)
	c.Set("p1", domain.NewPlayerGachaInfo())
	c.Set("p2", domain.NewPlayerGachaInfo())

	c.Invalidate("p1")
	_, ok := c.Get("p1")
	assert.False(t, ok)

	c.Clear()
	assert.Equal(t, 0, c.Stats().Size)
}

func TestPlayerCache_DropsStaleSchema(t *testing.T) {
	c := newPlayerCache(4, time.Minute)
	c.lru.Add("p1", &cachedInfo{Version: "0.9", CachedAt: time.Now()})

	_, ok := c.Get("p1")
	assert.False(t, ok)
	assert.Equal(t, 0, c.lru.Len())
}

func TestPlayerCache_Defaults(t *testing.T) {
	c := newPlayerCache(0, 0)
	for i := 0; i < DefaultCacheSize+10; i++ {
		c.Set(fmt.Sprintf("p%d", i), domain.NewPlayerGachaInfo())
	}
	assert.Equal(t, DefaultCacheSize, c.Stats().Size)
}

func TestPlayerCache_BoundedMemory(t *testing.T) {
	c := newPlayerCache(16, time.Minute)

	leaktest.BoundedHeap(t, 2, func() {
		for i := 0; i < 50000; i++ {
			c.Set(fmt.Sprintf("p%d", i), domain.NewPlayerGachaInfo())
		}
	})
	assert.Equal(t, 16, c.Stats().Size)
}
