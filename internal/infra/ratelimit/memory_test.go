//go:build unit

package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"qr-loyalty-service/internal/infra/ratelimit"
	"qr-loyalty-service/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("increment counts within the window", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		s := ratelimit.NewMemoryStore(clk)

		count, resetAt, err := s.Increment(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Equal(t, clk.Now().Add(time.Minute), resetAt)

		count, _, err = s.Increment(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("expired window restarts at one", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		s := ratelimit.NewMemoryStore(clk)

		_, _, _ = s.Increment(ctx, "k", time.Minute)
		_, _, _ = s.Increment(ctx, "k", time.Minute)
		clk.Add(61 * time.Second)

		count, _, err := s.Increment(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("peek does not consume", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		s := ratelimit.NewMemoryStore(clk)

		_, _, _ = s.Increment(ctx, "k", time.Minute)

		for range 5 {
			count, _, err := s.Peek(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, 1, count)
		}

		count, _, err := s.Peek(ctx, "unknown")
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("reset removes the counter", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		s := ratelimit.NewMemoryStore(clk)

		_, _, _ = s.Increment(ctx, "k", time.Minute)
		require.NoError(t, s.Reset(ctx, "k"))

		count, _, err := s.Peek(ctx, "k")
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("cleanup reclaims expired counters only", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		s := ratelimit.NewMemoryStore(clk)

		_, _, _ = s.Increment(ctx, "old", time.Minute)
		clk.Add(2 * time.Minute)
		_, _, _ = s.Increment(ctx, "fresh", time.Minute)

		removed, err := s.Cleanup(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), removed)

		count, _, err := s.Peek(ctx, "fresh")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
