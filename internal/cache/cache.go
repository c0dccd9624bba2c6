// Package cache provides a bounded TTL cache for analysis results keyed by
// feature-vector fingerprints.
package cache

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTTL is how long an entry stays valid.
	DefaultTTL = time.Hour
	// DefaultCapacity bounds the number of live entries.
	DefaultCapacity = 1000
)

type entry[V any] struct {
	value     V
	createdAt time.Time
}

// Cache is a mutex-guarded map with TTL expiry and oldest-first eviction when
// at capacity. It is safe for concurrent use.
type Cache[V any] struct {
	mu       sync.Mutex
	entries  map[string]entry[V]
	ttl      time.Duration
	capacity int
	now      func() time.Time

	hits   int64
	misses int64
}

// Option configures a Cache at construction time.
type Option[V any] func(*Cache[V])

// WithTTL overrides the default entry lifetime.
func WithTTL[V any](ttl time.Duration) Option[V] {
	return func(c *Cache[V]) { c.ttl = ttl }
}

// WithCapacity overrides the default entry bound.
func WithCapacity[V any](capacity int) Option[V] {
	return func(c *Cache[V]) { c.capacity = capacity }
}

// WithClock injects a time source for tests.
func WithClock[V any](now func() time.Time) Option[V] {
	return func(c *Cache[V]) { c.now = now }
}

// New builds a cache, failing fast on a non-positive TTL or capacity.
func New[V any](opts ...Option[V]) (*Cache[V], error) {
	c := &Cache[V]{
		entries:  make(map[string]entry[V]),
		ttl:      DefaultTTL,
		capacity: DefaultCapacity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.ttl <= 0 {
		return nil, fmt.Errorf("cache TTL must be positive, got %s", c.ttl)
	}
	if c.capacity <= 0 {
		return nil, fmt.Errorf("cache capacity must be positive, got %d", c.capacity)
	}
	return c, nil
}

// Get returns the cached value for key if present and unexpired.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.createdAt) > c.ttl {
		if ok {
			delete(c.entries, key)
		}
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	return e.value, true
}

// Put stores value under key, evicting the oldest entry when at capacity.
func (c *Cache[V]) Put(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.put(key, value)
}

// GetOrCompute returns the cached value for key, or calls compute, stores the
// result, and returns it. The compute error is returned without caching.
// compute runs outside the lock so concurrent misses may compute twice; the
// result is identical either way.
func (c *Cache[V]) GetOrCompute(key string, compute func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		var zero V
		return zero, err
	}
	c.Put(key, v)
	return v, nil
}

// put assumes the lock is held.
func (c *Cache[V]) put(key string, value V) {
	now := c.now()
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.capacity {
		c.evictOldest()
	}
	c.entries[key] = entry[V]{value: value, createdAt: now}
}

// evictOldest removes the entry with the earliest createdAt. Assumes the lock
// is held and the map is non-empty.
func (c *Cache[V]) evictOldest() {
	var oldestKey string
	var oldestAt time.Time
	first := true
	for k, e := range c.entries {
		if first || e.createdAt.Before(oldestAt) {
			oldestKey, oldestAt = k, e.createdAt
			first = false
		}
	}
	delete(c.entries, oldestKey)
}

// Stats is a point-in-time snapshot of cache health.
type Stats struct {
	Size    int           `json:"size"`
	HitRate float64       `json:"hitRate"`
	AvgAge  time.Duration `json:"avgAge"`
}

// Stats reports live entry count, hit rate over the cache's lifetime, and the
// mean age of live entries. Expired-but-unswept entries are excluded.
func (c *Cache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	var size int
	var totalAge time.Duration
	for _, e := range c.entries {
		age := now.Sub(e.createdAt)
		if age > c.ttl {
			continue
		}
		size++
		totalAge += age
	}

	s := Stats{Size: size}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	if size > 0 {
		s.AvgAge = totalAge / time.Duration(size)
	}
	return s
}

// Clear drops all entries and resets the hit counters.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[V])
	c.hits, c.misses = 0, 0
}
