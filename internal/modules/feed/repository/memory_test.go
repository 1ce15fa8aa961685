package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reshetovitsme/tag-relay-bot/internal/modules/feed/domain"
)

func TestMemory_NewestFirst(t *testing.T) {
	store := NewMemory(10)

	store.Add(domain.Entry{MessageID: 1})
	store.Add(domain.Entry{MessageID: 2})
	store.Add(domain.Entry{MessageID: 3})

	entries := store.Recent()
	assert.Len(t, entries, 3)
	assert.Equal(t, int64(3), entries[0].MessageID)
	assert.Equal(t, int64(1), entries[2].MessageID)
}

func TestMemory_CapacityBound(t *testing.T) {
	store := NewMemory(5)

	for i := 1; i <= 12; i++ {
		store.Add(domain.Entry{MessageID: int64(i), Text: fmt.Sprintf("msg %d", i)})
	}

	entries := store.Recent()
	assert.Len(t, entries, 5)
	assert.Equal(t, int64(12), entries[0].MessageID)
	assert.Equal(t, int64(8), entries[4].MessageID)
}
