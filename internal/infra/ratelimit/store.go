// Package ratelimit scopes scan-abuse limits by composite keys derived
// from business, requester identity, and scan type, backed by a pluggable
// counter store.
package ratelimit

import (
	"context"
	"time"
)

// CounterStore is the persistence contract for rate-limit counters. All
// implementations must make Increment atomic: two concurrent increments
// for the same key may never both observe the pre-increment count.
type CounterStore interface {
	// Increment bumps the counter for key, starting a fresh window of the
	// given length when none is live, and returns the post-increment count
	// plus the window's reset time.
	Increment(ctx context.Context, key string, window time.Duration) (count int, resetAt time.Time, err error)

	// Peek reads the live counter without modifying it. A missing or
	// expired counter reads as zero.
	Peek(ctx context.Context, key string) (count int, resetAt time.Time, err error)

	// Reset drops the counter for key.
	Reset(ctx context.Context, key string) error

	// Cleanup reclaims expired counters and reports how many were removed.
	Cleanup(ctx context.Context) (int64, error)
}
