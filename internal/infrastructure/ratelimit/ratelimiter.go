package ratelimit

import (
	"context"
	"time"
)

// Limits caps requests per key over sliding windows. A zero field disables
// that window.
type Limits struct {
	PerMinute int
	PerHour   int
}

// IsZero reports whether no window is enabled.
func (l Limits) IsZero() bool {
	return l.PerMinute <= 0 && l.PerHour <= 0
}

type RateLimiter interface {
	// Allow records one request for key and reports whether it fits every
	// enabled window.
	Allow(ctx context.Context, key string, limits Limits) (bool, error)
	Count(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}
