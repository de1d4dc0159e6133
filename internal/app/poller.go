package app

import (
	"context"
	"errors"
	"time"

	"github.com/five82/approvals/internal/state"
)

const maxBackoff = 30 * time.Second

// StartPoller launches a background goroutine that refreshes at a fixed
// cadence, backing off exponentially while the repository keeps failing.
// It returns immediately. A non-positive interval disables polling.
func StartPoller(ctx context.Context, r *Refresher, interval time.Duration) {
	if r == nil || interval <= 0 {
		return
	}
	go func() {
		failures := 0
		for {
			timer := time.NewTimer(calculateBackoff(failures, interval))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}

			_, err := r.Refresh(ctx)
			switch {
			case err == nil:
				failures = 0
			case errors.Is(err, state.ErrRefreshInFlight):
				// A manual refresh is running; try again next tick.
			default:
				failures++
			}
		}
	}()
}

// calculateBackoff doubles base for each consecutive failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
