package cooldown

import (
	"context"
	"time"
)

// TimerWaiter blocks on a timer and returns early only when ctx is done.
type TimerWaiter struct{}

func (TimerWaiter) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Remaining reports how long until expiration, rounded up to whole seconds.
func Remaining(expiration, now time.Time) (time.Duration, bool) {
	if expiration.IsZero() {
		return 0, false
	}
	remaining := expiration.Sub(now)
	if remaining <= 0 {
		return 0, false
	}
	seconds := int((remaining + time.Second - 1) / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	return time.Duration(seconds) * time.Second, true
}
