package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// Provider is the process memory cache wrapped by Facade. Implementations
// apply their own eviction policy on top of the sliding window passed to Set.
type Provider interface {
	Get(key string) (any, bool)
	Set(key string, value any, sliding time.Duration)
	// SetIfAbsent stores value only when key holds no live entry and reports
	// whether it did. The check and the store are one atomic step.
	SetIfAbsent(key string, value any, sliding time.Duration) bool
	Remove(key string)
}

type slidingItem struct {
	value      any
	window     time.Duration
	lastAccess time.Time
}

// MemoryProvider is a capacity-bounded LRU whose entries also expire when
// they have not been read for their sliding window.
type MemoryProvider struct {
	mu  sync.Mutex
	lru *simplelru.LRU[string, *slidingItem]
	now func() time.Time
}

// NewMemoryProvider creates a provider holding at most maxEntries keys.
func NewMemoryProvider(maxEntries int) (*MemoryProvider, error) {
	lru, err := simplelru.NewLRU[string, *slidingItem](maxEntries, nil)
	if err != nil {
		return nil, fmt.Errorf("create lru: %w", err)
	}
	return &MemoryProvider{lru: lru, now: time.Now}, nil
}

// Get returns the value for key and restarts its sliding window.
func (p *MemoryProvider) Get(key string) (any, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	item, ok := p.lru.Get(key)
	if !ok {
		return nil, false
	}
	now := p.now()
	if now.Sub(item.lastAccess) >= item.window {
		p.lru.Remove(key)
		return nil, false
	}
	item.lastAccess = now
	return item.value, true
}

func (p *MemoryProvider) Set(key string, value any, sliding time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lru.Add(key, &slidingItem{
		value:      value,
		window:     sliding,
		lastAccess: p.now(),
	})
}

func (p *MemoryProvider) SetIfAbsent(key string, value any, sliding time.Duration) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if item, ok := p.lru.Peek(key); ok && now.Sub(item.lastAccess) < item.window {
		return false
	}
	p.lru.Add(key, &slidingItem{
		value:      value,
		window:     sliding,
		lastAccess: now,
	})
	return true
}

func (p *MemoryProvider) Remove(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lru.Remove(key)
}

// Len reports the number of keys held, expired or not.
func (p *MemoryProvider) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lru.Len()
}
