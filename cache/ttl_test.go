package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestTTLExpiresAfterDuration(t *testing.T) {
	c := NewTTL[string, int]()
	c.Store("k", 1, 10*time.Millisecond)

	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok)
	_, ok = c.Get("k")
	assert.False(t, ok)

	c.mu.Lock()
	_, present := c.entries["k"]
	c.mu.Unlock()
	assert.False(t, present, "expired entry should be evicted by the read")
}

func TestTTLGet(t *testing.T) {
	clock := newFakeClock()
	c := NewTTL[string, string]()
	c.now = clock.Now

	t.Run("missing key is absent", func(t *testing.T) {
		_, ok := c.Get("missing")
		assert.False(t, ok)
	})

	t.Run("fresh entry is returned", func(t *testing.T) {
		c.Store("role", "admin", time.Minute)
		clock.Advance(59 * time.Second)

		v, ok := c.Get("role")
		require.True(t, ok)
		assert.Equal(t, "admin", v)
	})

	t.Run("entry expires exactly at its ttl", func(t *testing.T) {
		c.Store("edge", "x", time.Second)
		clock.Advance(time.Second)

		_, ok := c.Get("edge")
		assert.False(t, ok)
	})
}

func TestTTLStoreOverwritesAndRestamps(t *testing.T) {
	clock := newFakeClock()
	c := NewTTL[int, string]()
	c.now = clock.Now

	c.Store(1, "first", time.Minute)
	clock.Advance(50 * time.Second)
	c.Store(1, "second", time.Minute)
	clock.Advance(30 * time.Second)

	v, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestTTLClear(t *testing.T) {
	c := NewTTL[string, int]()
	c.Store("a", 1, time.Hour)
	c.Store("b", 2, time.Hour)

	c.Clear()

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestTTLConcurrentAccess(t *testing.T) {
	c := NewTTL[int, int]()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := range 100 {
				c.Store(j%4, n, time.Minute)
				c.Get(j % 4)
			}
		}(i)
	}
	wg.Wait()

	for k := range 4 {
		_, ok := c.Get(k)
		assert.True(t, ok)
	}
}
