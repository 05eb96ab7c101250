package limiter

import (
	"context"
	"log"
	"sync"
	"time"
)

// New returns a Limiter that keeps at least `interval` between the moments
// consecutive callers of Wait are released.
func New(interval time.Duration) *Limiter {
	return &Limiter{interval: interval}
}

// A Limiter serializes access to an upstream that wants a minimum interval
// between requests. The mutex is held for the whole wait, so concurrent
// callers queue up behind it rather than racing the nextAt timestamp: that
// serializes every outbound call through one gate, which is the point.
type Limiter struct {
	mu       sync.Mutex
	interval time.Duration
	nextAt   time.Time
}

// Wait blocks until the interval since the previous release has passed,
// then claims the next slot. It returns early only if ctx is canceled.
func (lim *Limiter) Wait(ctx context.Context) error {
	lim.mu.Lock()
	defer lim.mu.Unlock()

	if !lim.nextAt.IsZero() {
		now := time.Now()
		if dur := lim.nextAt.Sub(now); dur > 0 {
			if dur > time.Second {
				log.Printf("waiting %s until %s",
					dur.Truncate(time.Second),
					lim.nextAt.Format(time.StampMilli))
			}

		wait:
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(dur):
				break wait
			}
		}
	}

	lim.nextAt = time.Now().Add(lim.interval)
	return nil
}
