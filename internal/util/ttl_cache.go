package util

import (
	"sync"
	"time"
)

// Cache is a keyed store whose entries expire after a per entry TTL.
type Cache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V, ttlSeconds int)
}

type ttlEntry[V any] struct {
	value     V
	expiresAt time.Time
}

type TTLCache[V any] struct {
	mu      sync.RWMutex
	entries map[string]ttlEntry[V]
	now     func() time.Time
}

func NewTTLCache[V any]() *TTLCache[V] {
	return NewTTLCacheWithClock[V](time.Now)
}

// NewTTLCacheWithClock lets tests move time without sleeping.
func NewTTLCacheWithClock[V any](now func() time.Time) *TTLCache[V] {
	return &TTLCache[V]{
		entries: map[string]ttlEntry[V]{},
		now:     now,
	}
}

func (c *TTLCache[V]) Get(key string) (V, bool) {
	var zero V

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return zero, false
	}
	if c.now().Before(entry.expiresAt) {
		return entry.value, true
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// a Set may have refreshed the key after the read lock was released
	entry, ok = c.entries[key]
	if !ok {
		return zero, false
	}
	if c.now().Before(entry.expiresAt) {
		return entry.value, true
	}
	delete(c.entries, key)
	return zero, false
}

// Set stores value for ttlSeconds. A non-positive ttl is a no-op.
func (c *TTLCache[V]) Set(key string, value V, ttlSeconds int) {
	if ttlSeconds <= 0 {
		return
	}
	c.mu.Lock()
	c.entries[key] = ttlEntry[V]{
		value:     value,
		expiresAt: c.now().Add(time.Duration(ttlSeconds) * time.Second),
	}
	c.mu.Unlock()
}

func (c *TTLCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
