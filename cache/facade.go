package cache

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/blogem/audit-gateway/metrics"
)

// DefaultSlidingWindow is the window AddIfAbsent stores entries with.
const DefaultSlidingWindow = 300 * time.Second

// Facade is the shared cache handed to request handlers. It is created once
// at startup and passed by reference; there is no package-level instance.
type Facade struct {
	provider Provider
	window   time.Duration
	group    singleflight.Group
	metrics  *metrics.Metrics

	// generations counts removals per key; a producer result is only stored
	// when no Remove happened while it ran.
	mu          sync.Mutex
	generations map[string]uint64
}

// NewFacade wraps provider. A non-positive window falls back to DefaultSlidingWindow.
func NewFacade(provider Provider, window time.Duration, m *metrics.Metrics) *Facade {
	if window <= 0 {
		window = DefaultSlidingWindow
	}
	return &Facade{
		provider:    provider,
		window:      window,
		metrics:     m,
		generations: make(map[string]uint64),
	}
}

// Get returns the value cached under key when it is present and holds a T.
func Get[T any](f *Facade, key string) (T, bool) {
	var zero T
	v, ok := f.provider.Get(key)
	if !ok {
		f.metrics.CacheMiss()
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		f.metrics.CacheMiss()
		return zero, false
	}
	f.metrics.CacheHit()
	return t, true
}

// Remove evicts key. A GetOrCreate producer for key that is still running
// will not cache its result, and later callers do not join its flight.
func (f *Facade) Remove(key string) {
	f.mu.Lock()
	f.generations[key]++
	f.provider.Remove(key)
	f.mu.Unlock()
	f.group.Forget(key)
}

func (f *Facade) generation(key string) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.generations[key]
}

// storeIfCurrent caches value unless key was removed after gen was read.
func (f *Facade) storeIfCurrent(key string, gen uint64, value any, ttl time.Duration) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.generations[key] != gen {
		return false
	}
	f.provider.Set(key, value, ttl)
	return true
}

// AddIfAbsent stores value under key only when nothing is cached there yet.
//
// First write wins: when key is already present the call does nothing and
// value is discarded. Callers that expect the latest value to be kept, or
// want to learn which value won, must use Remove or Get explicitly.
func (f *Facade) AddIfAbsent(key string, value any) {
	f.provider.SetIfAbsent(key, value, f.window)
}

// GetOrCreate returns the cached value for key, or runs producer, caches its
// result with the sliding window ttl and returns it. Concurrent callers for
// the same absent key share one producer call while it is in flight; a caller
// arriving after it finished may run producer again. Producer errors are
// returned and nothing is cached. A result produced across a Remove of key is
// returned to the callers that waited for it but is not cached.
func GetOrCreate[T any](f *Facade, key string, ttl time.Duration, producer func() (T, error)) (T, error) {
	if v, ok := Get[T](f, key); ok {
		return v, nil
	}

	var zero T
	v, err, _ := f.group.Do(key, func() (any, error) {
		if cached, ok := f.provider.Get(key); ok {
			return cached, nil
		}
		gen := f.generation(key)
		created, err := producer()
		if err != nil {
			return nil, err
		}
		f.storeIfCurrent(key, gen, created, ttl)
		return created, nil
	})
	if err != nil {
		return zero, err
	}

	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("cache: key %q holds %T, not %T", key, v, zero)
	}
	return t, nil
}
