package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/reshetovitsme/tag-relay-bot/internal/modules/dedup/repository"
)

func TestService_MarkProcessedSweepsImmediately(t *testing.T) {
	const maxSize = 5
	store := repository.NewMemory(time.Hour, maxSize)
	svc := New(store, time.Minute)

	// Every insert sweeps, so the cache never stays above the cap even
	// without the timer firing.
	for i := 0; i < 20; i++ {
		svc.MarkProcessed(fmt.Sprintf("chat:%d", i))
		assert.LessOrEqual(t, svc.Size(), maxSize)
	}

	for i := 15; i < 20; i++ {
		assert.True(t, svc.Seen(fmt.Sprintf("chat:%d", i)))
	}
}

func TestService_SeenReflectsStore(t *testing.T) {
	store := repository.NewMemory(time.Hour, 100)
	svc := New(store, time.Minute)

	assert.False(t, svc.Seen("chat:1"))
	svc.MarkProcessed("chat:1")
	assert.True(t, svc.Seen("chat:1"))
}

func TestService_StartStop(t *testing.T) {
	store := repository.NewMemory(time.Hour, 100)
	svc := New(store, 10*time.Millisecond)

	svc.Start()
	svc.MarkProcessed("chat:1")
	time.Sleep(30 * time.Millisecond)
	svc.Stop()

	assert.True(t, svc.Seen("chat:1"))
}
