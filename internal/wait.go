package internal

import (
	"context"
	"math/rand/v2"
	"time"
)

// WaitStrategy inserts a politeness delay between successive page
// requests of a bulk fetch. It is not a retry policy: each page is
// attempted exactly once, and the delay runs only when another page will
// actually be fetched.
type WaitStrategy interface {
	// Wait blocks for the strategy's delay or until ctx is cancelled,
	// returning ctx.Err() in the latter case.
	Wait(ctx context.Context) error
}

// RandomDelay waits a uniformly random duration in [Min, Max].
type RandomDelay struct {
	Min time.Duration
	Max time.Duration
}

// DefaultWait is the politeness delay used when the caller does not
// supply a strategy.
func DefaultWait() WaitStrategy {
	return &RandomDelay{Min: 1 * time.Second, Max: 10 * time.Second}
}

func (d *RandomDelay) Wait(ctx context.Context) error {
	delay := d.Min
	if d.Max > d.Min {
		delay += rand.N(d.Max - d.Min)
	}
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoWait skips the politeness delay entirely. Tests use it to drive a
// paginator without wall-clock sleeps.
type NoWait struct{}

func (NoWait) Wait(ctx context.Context) error {
	return ctx.Err()
}
