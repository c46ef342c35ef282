package federation

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Cache stores JSON-encoded results keyed by full call signature. Entries
// expire after their TTL; implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
	Clear(ctx context.Context)
	Stats(ctx context.Context) CacheStats
}

// CacheStats reports cache effectiveness for diagnostics.
type CacheStats struct {
	TotalEntries   int     `json:"total_entries"`
	ActiveEntries  int     `json:"active_entries"`
	ExpiredEntries int     `json:"expired_entries"`
	MaxSize        int     `json:"max_size"`
	Hits           uint64  `json:"hits"`
	Misses         uint64  `json:"misses"`
	HitRate        float64 `json:"hit_rate"`
}

// MakeCacheKey builds a cache key from call signature parts.
func MakeCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

const defaultMaxSize = 10000

type cacheEntry struct {
	value        []byte
	expiresAt    time.Time
	lastAccessed time.Time
}

// MemoryCache is a thread-safe in-memory TTL cache with LRU eviction at a
// size cap. Time is taken from a clockwork clock so expiry is testable.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	maxSize int
	clock   clockwork.Clock
	hits    uint64
	misses  uint64
}

// MemoryCacheOption applies a configuration option to the MemoryCache.
type MemoryCacheOption func(*MemoryCache)

// WithMaxSize caps the number of entries. Zero or negative means
// unlimited.
func WithMaxSize(maxSize int) MemoryCacheOption {
	return func(c *MemoryCache) {
		c.maxSize = maxSize
	}
}

// WithClock substitutes the time source, for tests.
func WithClock(clock clockwork.Clock) MemoryCacheOption {
	return func(c *MemoryCache) {
		c.clock = clock
	}
}

func NewMemoryCache(opts ...MemoryCacheOption) *MemoryCache {
	c := &MemoryCache{
		entries: make(map[string]*cacheEntry),
		maxSize: defaultMaxSize,
		clock:   clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ Cache = (*MemoryCache)(nil)

// Get returns the value if present and not expired. The common case takes
// only the read lock; expired entries are reaped lazily on the next Set.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	now := c.clock.Now()

	c.mu.RLock()
	entry, ok := c.entries[key]
	if ok && now.Before(entry.expiresAt) {
		value := entry.value
		c.mu.RUnlock()

		c.mu.Lock()
		if entry, still := c.entries[key]; still {
			entry.lastAccessed = now
		}
		c.hits++
		c.mu.Unlock()
		return value, true
	}
	c.mu.RUnlock()

	c.mu.Lock()
	if entry, still := c.entries[key]; still && !now.Before(entry.expiresAt) {
		delete(c.entries, key)
	}
	c.misses++
	c.mu.Unlock()
	return nil, false
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	now := c.clock.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxSize > 0 {
		if _, exists := c.entries[key]; !exists {
			c.evictLocked(now)
		}
	}

	c.entries[key] = &cacheEntry{
		value:        value,
		expiresAt:    now.Add(ttl),
		lastAccessed: now,
	}
}

// evictLocked removes expired entries and, if the cache is still at the
// cap, the least recently used ones. Called with the write lock held.
func (c *MemoryCache) evictLocked(now time.Time) {
	for key, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			delete(c.entries, key)
		}
	}

	for c.maxSize > 0 && len(c.entries) >= c.maxSize {
		var lruKey string
		var lruTime time.Time
		first := true
		for key, entry := range c.entries {
			if first || entry.lastAccessed.Before(lruTime) {
				lruKey = key
				lruTime = entry.lastAccessed
				first = false
			}
		}
		delete(c.entries, lruKey)
	}
}

func (c *MemoryCache) Delete(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *MemoryCache) Clear(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
	c.hits = 0
	c.misses = 0
}

// CleanupExpired removes all expired entries and returns the count
// removed.
func (c *MemoryCache) CleanupExpired(_ context.Context) int {
	now := c.clock.Now()
	removed := 0

	c.mu.Lock()
	defer c.mu.Unlock()
	for key, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

func (c *MemoryCache) Stats(_ context.Context) CacheStats {
	now := c.clock.Now()

	c.mu.RLock()
	defer c.mu.RUnlock()

	expired := 0
	for _, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			expired++
		}
	}

	stats := CacheStats{
		TotalEntries:   len(c.entries),
		ActiveEntries:  len(c.entries) - expired,
		ExpiredEntries: expired,
		MaxSize:        c.maxSize,
		Hits:           c.hits,
		Misses:         c.misses,
	}
	if total := c.hits + c.misses; total > 0 {
		stats.HitRate = float64(c.hits) / float64(total)
	}
	return stats
}
