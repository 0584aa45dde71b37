// Package throttle wraps golang.org/x/time/rate behind the single question
// both the HTTP API and the reloader ask: may this call proceed now?
package throttle

import (
	"time"

	"golang.org/x/time/rate"
)

// Limiter reports whether a call may proceed. A nil Limiter never throttles.
type Limiter interface {
	Allow() bool
}

type tokenBucket struct {
	limiter *rate.Limiter
}

func (t *tokenBucket) Allow() bool {
	return t.limiter.Allow()
}

// PerSecond allows ratePerSecond calls per second with the given burst.
// A non-positive rate or burst returns nil, meaning unlimited.
func PerSecond(ratePerSecond float64, burst int) Limiter {
	if ratePerSecond <= 0 || burst <= 0 {
		return nil
	}
	return &tokenBucket{limiter: rate.NewLimiter(rate.Limit(ratePerSecond), burst)}
}

// Every allows one call per interval. A non-positive interval returns nil.
func Every(interval time.Duration) Limiter {
	if interval <= 0 {
		return nil
	}
	return &tokenBucket{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Fixed always gives the same answer.
type Fixed bool

func (f Fixed) Allow() bool { return bool(f) }

// Allow treats a nil limiter as unlimited.
func Allow(l Limiter) bool {
	return l == nil || l.Allow()
}
