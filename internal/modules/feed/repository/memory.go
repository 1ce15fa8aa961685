package repository

import (
	"sync"

	"github.com/reshetovitsme/tag-relay-bot/internal/modules/feed/domain"
)

// Memory keeps the last capacity relayed messages, newest first.
type Memory struct {
	capacity int
	mu       sync.RWMutex
	entries  []domain.Entry
}

// NewMemory creates an in-memory recent-relays store.
func NewMemory(capacity int) *Memory {
	return &Memory{capacity: capacity}
}

func (m *Memory) Add(entry domain.Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append([]domain.Entry{entry}, m.entries...)
	if len(m.entries) > m.capacity {
		m.entries = m.entries[:m.capacity]
	}
}

func (m *Memory) Recent() []domain.Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Entry, len(m.entries))
	copy(out, m.entries)
	return out
}
