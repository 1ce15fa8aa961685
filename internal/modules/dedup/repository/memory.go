package repository

import (
	"sync"
	"time"
)

// Memory is an in-memory Store bounded by TTL and size. Entries expire
// strictly after the TTL (age > ttl) and the oldest-inserted entries are
// evicted first once the cache grows past maxSize. The cache is not
// durable across restarts.
type Memory struct {
	ttl     time.Duration
	maxSize int

	mu      sync.Mutex
	entries map[string]time.Time
	order   []string // insertion order, oldest first

	now func() time.Time
}

// NewMemory creates an in-memory processed-message cache.
func NewMemory(ttl time.Duration, maxSize int) *Memory {
	return &Memory{
		ttl:     ttl,
		maxSize: maxSize,
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (m *Memory) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	insertedAt, ok := m.entries[key]
	if !ok {
		return false
	}
	if m.now().Sub(insertedAt) > m.ttl {
		// Lazy expiry on read.
		m.remove(key)
		return false
	}
	return true
}

func (m *Memory) Put(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[key]; ok {
		// Refresh moves the key to the most-recently-inserted position
		// so it survives size-based eviction longest.
		m.remove(key)
	}
	m.entries[key] = m.now()
	m.order = append(m.order, key)
}

func (m *Memory) Sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	kept := m.order[:0]
	for _, key := range m.order {
		if now.Sub(m.entries[key]) > m.ttl {
			delete(m.entries, key)
			continue
		}
		kept = append(kept, key)
	}
	m.order = kept

	if excess := len(m.order) - m.maxSize; excess > 0 {
		for _, key := range m.order[:excess] {
			delete(m.entries, key)
		}
		m.order = append(m.order[:0], m.order[excess:]...)
	}
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// remove deletes the key from both the map and the order slice.
// Caller must hold the mutex.
func (m *Memory) remove(key string) {
	delete(m.entries, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}
