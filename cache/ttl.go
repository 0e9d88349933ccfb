package cache

import (
	"sync"
	"time"
)

// Entry is a cached value stamped with the time it was stored.
type Entry[V any] struct {
	Value     V
	CreatedAt time.Time
	TTL       time.Duration
}

func (e Entry[V]) expired(now time.Time) bool {
	return now.Sub(e.CreatedAt) >= e.TTL
}

// TTL maps keys to values that expire a fixed duration after they were stored.
// Expired entries are evicted by the read that observes them; there is no
// background sweep and no capacity bound, so keep it to small reference sets.
//
// Concurrent Store calls for the same key race and the later write wins.
type TTL[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]Entry[V]
	now     func() time.Time
}

// NewTTL creates an empty cache.
func NewTTL[K comparable, V any]() *TTL[K, V] {
	return &TTL[K, V]{
		entries: make(map[K]Entry[V]),
		now:     time.Now,
	}
}

// Get returns the value for key if it has not expired. An expired entry is
// removed and reported as absent.
func (c *TTL[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	entry, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if entry.expired(c.now()) {
		delete(c.entries, key)
		return zero, false
	}
	return entry.Value, true
}

// Store overwrites any entry for key with value, valid for ttl from now.
func (c *TTL[K, V]) Store(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = Entry[V]{
		Value:     value,
		CreatedAt: c.now(),
		TTL:       ttl,
	}
}

// Clear drops every entry.
func (c *TTL[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]Entry[V])
}
