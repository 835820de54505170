package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Store tracks fixed-window request counters per caller key. Implementations
// must serialize increments for the same key so concurrent requests never
// undercount.
type Store interface {
	// Incr bumps the counter for key inside the current window, starting a
	// fresh window when the previous one has elapsed. It returns the count
	// including this request and the time at which the window resets.
	Incr(ctx context.Context, key string, window time.Duration) (count int64, resetAt time.Time, err error)
}

type memoryEntry struct {
	mu      sync.Mutex
	count   int64
	resetAt time.Time
}

// MemoryStore is a process-local Store. Counters do not survive restarts,
// which is an accepted approximation for single-process deployments.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int64, time.Time, error) {
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		e = &memoryEntry{}
		s.entries[key] = e
	}
	s.mu.Unlock()

	now := s.now()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.resetAt.IsZero() || !now.Before(e.resetAt) {
		e.count = 0
		e.resetAt = now.Add(window)
	}
	e.count++
	return e.count, e.resetAt, nil
}
