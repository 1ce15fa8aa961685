package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock returns a settable clock for deterministic TTL tests.
func fixedClock(start time.Time) (*time.Time, func() time.Time) {
	current := start
	return &current, func() time.Time { return current }
}

func TestMemory_HasAfterPut(t *testing.T) {
	cache := NewMemory(time.Hour, 100)

	assert.False(t, cache.Has("chat:1"))
	cache.Put("chat:1")
	assert.True(t, cache.Has("chat:1"))
	assert.False(t, cache.Has("chat:2"))
}

func TestMemory_TTLBoundary(t *testing.T) {
	ttl := time.Hour
	cache := NewMemory(ttl, 100)
	now, clock := fixedClock(time.Unix(1_700_000_000, 0))
	cache.now = clock

	cache.Put("chat:1")

	// Still present just before the TTL edge and at the exact edge;
	// expiry is strictly age > TTL.
	*now = now.Add(ttl - time.Millisecond)
	assert.True(t, cache.Has("chat:1"))
	*now = now.Add(time.Millisecond)
	assert.True(t, cache.Has("chat:1"))

	*now = now.Add(time.Millisecond)
	assert.False(t, cache.Has("chat:1"))
}

func TestMemory_HasEvictsExpiredLazily(t *testing.T) {
	cache := NewMemory(time.Hour, 100)
	now, clock := fixedClock(time.Unix(1_700_000_000, 0))
	cache.now = clock

	cache.Put("chat:1")
	require.Equal(t, 1, cache.Len())

	*now = now.Add(2 * time.Hour)
	assert.False(t, cache.Has("chat:1"))
	assert.Equal(t, 0, cache.Len())
}

func TestMemory_SweepRemovesExpired(t *testing.T) {
	cache := NewMemory(time.Hour, 100)
	now, clock := fixedClock(time.Unix(1_700_000_000, 0))
	cache.now = clock

	cache.Put("old:1")
	cache.Put("old:2")
	*now = now.Add(30 * time.Minute)
	cache.Put("fresh:1")
	*now = now.Add(45 * time.Minute)

	cache.Sweep()

	assert.Equal(t, 1, cache.Len())
	assert.True(t, cache.Has("fresh:1"))
}

func TestMemory_SweepEnforcesSizeCap(t *testing.T) {
	const maxSize = 10
	cache := NewMemory(time.Hour, maxSize)

	// A burst of inserts beyond the cap converges to the cap after a
	// sweep, keeping the most-recently-inserted keys.
	for i := 0; i < 25; i++ {
		cache.Put(fmt.Sprintf("chat:%d", i))
	}
	cache.Sweep()

	assert.Equal(t, maxSize, cache.Len())
	for i := 0; i < 15; i++ {
		assert.False(t, cache.Has(fmt.Sprintf("chat:%d", i)), "oldest keys must be evicted")
	}
	for i := 15; i < 25; i++ {
		assert.True(t, cache.Has(fmt.Sprintf("chat:%d", i)), "newest keys must survive")
	}
}

func TestMemory_RefreshMovesKeyToBack(t *testing.T) {
	cache := NewMemory(time.Hour, 2)

	cache.Put("chat:1")
	cache.Put("chat:2")
	cache.Put("chat:1") // refresh: chat:1 is now the most recent
	cache.Put("chat:3")

	cache.Sweep()

	assert.Equal(t, 2, cache.Len())
	assert.False(t, cache.Has("chat:2"))
	assert.True(t, cache.Has("chat:1"))
	assert.True(t, cache.Has("chat:3"))
}

func TestMemory_RefreshUpdatesTimestamp(t *testing.T) {
	cache := NewMemory(time.Hour, 100)
	now, clock := fixedClock(time.Unix(1_700_000_000, 0))
	cache.now = clock

	cache.Put("chat:1")
	*now = now.Add(45 * time.Minute)
	cache.Put("chat:1")
	*now = now.Add(45 * time.Minute)

	// 90 minutes after first insert but only 45 after the refresh.
	assert.True(t, cache.Has("chat:1"))
}
