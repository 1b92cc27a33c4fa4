package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// TokenLimiter enforces a per-minute token budget. The budget refills in full
// one minute after the window opened.
type TokenLimiter struct {
	mu          sync.Mutex
	maxPerMin   int
	used        int
	windowStart time.Time
	now         func() time.Time
}

// NewTokenLimiter creates a limiter allowing maxPerMinute tokens per minute.
// A non-positive budget disables limiting.
func NewTokenLimiter(maxPerMinute int) *TokenLimiter {
	return &TokenLimiter{maxPerMin: maxPerMinute, now: time.Now}
}

// Wait blocks until n tokens fit in the current window or ctx is done.
func (l *TokenLimiter) Wait(ctx context.Context, n int) error {
	if l.maxPerMin <= 0 {
		return nil
	}
	if n > l.maxPerMin {
		return fmt.Errorf("request needs %d tokens, budget is %d per minute", n, l.maxPerMin)
	}

	for {
		l.mu.Lock()
		now := l.now()
		if now.Sub(l.windowStart) >= time.Minute {
			l.windowStart = now
			l.used = 0
		}
		if l.used+n <= l.maxPerMin {
			l.used += n
			l.mu.Unlock()
			return nil
		}
		sleep := time.Minute - now.Sub(l.windowStart)
		l.mu.Unlock()

		timer := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// GetRemaining reports the tokens left in the current window.
func (l *TokenLimiter) GetRemaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.maxPerMin <= 0 {
		return 0
	}
	if l.now().Sub(l.windowStart) >= time.Minute {
		return l.maxPerMin
	}
	return l.maxPerMin - l.used
}
