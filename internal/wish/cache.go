package wish

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/WishBot_Go/internal/domain"
)

// cachedInfo wraps gacha info with the schema version it was cached under.
type cachedInfo struct {
	Version  string
	Info     domain.PlayerGachaInfo
	CachedAt time.Time
}

// CacheStats reports cache effectiveness.
type CacheStats struct {
	Size    int     `json:"size"`
	Hits    uint64  `json:"hits"`
	Misses  uint64  `json:"misses"`
	HitRate float64 `json:"hit_rate"`
}

// playerCache is an expiring LRU of gacha info keyed by player id. It stores values and
// hands out copies, so callers can never mutate a cached entry.
type playerCache struct {
	lru    *expirable.LRU[string, *cachedInfo]
	hits   atomic.Uint64
	misses atomic.Uint64
}

func newPlayerCache(size int, ttl time.Duration) *playerCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &playerCache{lru: expirable.NewLRU[string, *cachedInfo](size, nil, ttl)}
}

// Get returns a private copy of the cached info.
func (c *playerCache) Get(playerID string) (*domain.PlayerGachaInfo, bool) {
	entry, ok := c.lru.Get(playerID)
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(playerID)
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	info := entry.Info
	return &info, true
}

// Set stores a copy of info.
func (c *playerCache) Set(playerID string, info *domain.PlayerGachaInfo) {
	c.lru.Add(playerID, &cachedInfo{
		Version:  CacheSchemaVersion,
		Info:     *info,
		CachedAt: time.Now(),
	})
}

func (c *playerCache) Invalidate(playerID string) {
	c.lru.Remove(playerID)
}

func (c *playerCache) Clear() {
	c.lru.Purge()
}

func (c *playerCache) Stats() CacheStats {
	hits, misses := c.hits.Load(), c.misses.Load()
	s := CacheStats{Size: c.lru.Len(), Hits: hits, Misses: misses}
	if total := hits + misses; total > 0 {
		s.HitRate = float64(hits) / float64(total)
	}
	return s
}
