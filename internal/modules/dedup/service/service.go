package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/reshetovitsme/tag-relay-bot/internal/modules/dedup/repository"
)

// Service owns the processed-message cache and its sweep lifecycle.
type Service struct {
	store    repository.Store
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// New creates a dedup service sweeping the store at the given interval.
func New(store repository.Store, interval time.Duration) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		store:    store,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start launches the periodic sweep loop.
func (s *Service) Start() {
	s.wg.Add(1)
	go s.sweepLoop()
}

// Stop cancels the sweep loop and waits for it to exit.
func (s *Service) Stop() {
	s.cancel()
	s.wg.Wait()
}

// Seen reports whether the key was processed within the TTL window.
func (s *Service) Seen(key string) bool {
	return s.store.Has(key)
}

// MarkProcessed records the key and immediately sweeps, so bursts of
// inserts beyond the size cap converge back to the cap without waiting
// for the next timer tick.
func (s *Service) MarkProcessed(key string) {
	s.store.Put(key)
	s.store.Sweep()
}

// Size returns the current number of cached keys.
func (s *Service) Size() int {
	return s.store.Len()
}

func (s *Service) sweepLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.store.Sweep()
			slog.Debug("Dedup cache swept", "size", s.store.Len())
		}
	}
}
