package ports

import (
	"context"
	"time"
)

// Waiter suspends the caller for d or until ctx is done.
type Waiter interface {
	Wait(ctx context.Context, d time.Duration) error
}
