package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of an admission check.
type Decision struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

// Limiter applies a fixed-window policy over an injected Store. Decision
// logic lives here so it can be tested independent of storage.
type Limiter struct {
	store  Store
	max    int64
	window time.Duration
}

func NewLimiter(store Store, max int64, window time.Duration) *Limiter {
	return &Limiter{store: store, max: max, window: window}
}

// Allow admits or denies one request for the given caller key.
func (l *Limiter) Allow(ctx context.Context, key string) (Decision, error) {
	count, resetAt, err := l.store.Incr(ctx, key, l.window)
	if err != nil {
		return Decision{}, err
	}

	remaining := l.max - count
	if remaining < 0 {
		remaining = 0
	}
	if count > l.max {
		return Decision{Allowed: false, Remaining: 0, RetryAfter: time.Until(resetAt)}, nil
	}
	return Decision{Allowed: true, Remaining: remaining}, nil
}
