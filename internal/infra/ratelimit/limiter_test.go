//go:build unit

package ratelimit_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"qr-loyalty-service/internal/domain/scan"
	"qr-loyalty-service/internal/infra/ratelimit"
	"qr-loyalty-service/internal/pkg/clock"
	"qr-loyalty-service/internal/pkg/config"
	"qr-loyalty-service/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRateLimitConfig() config.RateLimitConfig {
	return config.RateLimitConfig{
		Backend:     config.BackendMemory,
		MaxAttempts: 3,
		Window:      time.Minute,
		Block:       5 * time.Minute,
	}
}

func newLimiter(t *testing.T, store ratelimit.CounterStore, clk clock.Clock) *ratelimit.Limiter {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	l, err := ratelimit.NewLimiter(testRateLimitConfig(), store, clk, logger)
	require.NoError(t, err)
	return l
}

// brokenStore simulates an unreachable backend for fail-open coverage.
type brokenStore struct{}

func (brokenStore) Increment(context.Context, string, time.Duration) (int, time.Time, error) {
	return 0, time.Time{}, errs.New("store unreachable")
}
func (brokenStore) Peek(context.Context, string) (int, time.Time, error) {
	return 0, time.Time{}, errs.New("store unreachable")
}
func (brokenStore) Reset(context.Context, string) error      { return errs.New("store unreachable") }
func (brokenStore) Cleanup(context.Context) (int64, error)   { return 0, errs.New("store unreachable") }

func TestLimiterKey(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	l := newLimiter(t, ratelimit.NewMemoryStore(clk), clk)

	tests := []struct {
		name   string
		params ratelimit.Params
		want   string
	}{
		{
			name:   "customer identity wins",
			params: ratelimit.Params{BusinessID: "biz-1", CustomerID: "cust-42", ScanType: scan.TypeCustomerCard, IP: "10.0.0.9"},
			want:   "rl:biz-1:customer:cust-42",
		},
		{
			name:   "anonymous scans are scoped by type and ip",
			params: ratelimit.Params{BusinessID: "biz-1", ScanType: scan.TypePromoCode, IP: "10.0.0.9"},
			want:   "rl:biz-1:PROMO_CODE:ip:10.0.0.9",
		},
		{
			name:   "ip fallback",
			params: ratelimit.Params{BusinessID: "biz-1", IP: "10.0.0.9"},
			want:   "rl:biz-1:ip:10.0.0.9",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Key(tt.params))
		})
	}
}

func TestLimiterEnforce(t *testing.T) {
	ctx := context.Background()
	params := ratelimit.Params{BusinessID: "biz-1", CustomerID: "cust-42", ScanType: scan.TypeCustomerCard, IP: "10.0.0.9"}

	t.Run("budget then denial", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		l := newLimiter(t, ratelimit.NewMemoryStore(clk), clk)

		for i := range 3 {
			require.NoError(t, l.Enforce(ctx, params), "attempt %d within budget", i+1)
		}

		err := l.Enforce(ctx, params)
		require.Error(t, err)
		assert.Equal(t, errs.KindRateLimit, errs.KindOf(err))

		appErr, ok := errs.AsAppError(err)
		require.True(t, ok)
		retryAfter, ok := appErr.Context["retry_after_seconds"].(int64)
		require.True(t, ok)
		assert.Positive(t, retryAfter)
	})

	t.Run("window expiry restores the budget", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		l := newLimiter(t, ratelimit.NewMemoryStore(clk), clk)

		for range 3 {
			require.NoError(t, l.Enforce(ctx, params))
		}
		require.Error(t, l.Enforce(ctx, params))

		clk.Add(61 * time.Second)
		assert.NoError(t, l.Enforce(ctx, params), "fresh window starts a fresh budget")
	})

	t.Run("distinct keys have distinct budgets", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		l := newLimiter(t, ratelimit.NewMemoryStore(clk), clk)

		for range 3 {
			require.NoError(t, l.Enforce(ctx, params))
		}
		require.Error(t, l.Enforce(ctx, params))

		other := params
		other.CustomerID = "cust-99"
		assert.NoError(t, l.Enforce(ctx, other))
	})

	t.Run("store failure fails open", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		l := newLimiter(t, brokenStore{}, clk)

		for range 10 {
			assert.NoError(t, l.Enforce(ctx, params))
		}
	})
}

func TestLimiterCheck(t *testing.T) {
	ctx := context.Background()
	params := ratelimit.Params{BusinessID: "biz-1", CustomerID: "cust-42", ScanType: scan.TypeCustomerCard, IP: "10.0.0.9"}

	t.Run("check never consumes", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		l := newLimiter(t, ratelimit.NewMemoryStore(clk), clk)

		for range 10 {
			d := l.Check(ctx, params)
			assert.False(t, d.Limited)
			assert.Equal(t, 3, d.Remaining)
		}
	})

	t.Run("check reflects consumed attempts", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		l := newLimiter(t, ratelimit.NewMemoryStore(clk), clk)

		require.NoError(t, l.Enforce(ctx, params))
		require.NoError(t, l.Enforce(ctx, params))

		d := l.Check(ctx, params)
		assert.False(t, d.Limited)
		assert.Equal(t, 2, d.Count)
		assert.Equal(t, 1, d.Remaining)
	})

	t.Run("check fails open on store errors", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		l := newLimiter(t, brokenStore{}, clk)

		d := l.Check(ctx, params)
		assert.False(t, d.Limited)
		assert.Equal(t, 3, d.Remaining)
	})
}

func TestLimiterOverrides(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	l := newLimiter(t, ratelimit.NewMemoryStore(clk), clk)

	// Promo codes ship with a tighter builtin budget than the default.
	promoCfg := l.ConfigFor(scan.TypePromoCode)
	assert.Equal(t, 5, promoCfg.MaxAttempts)
	assert.Equal(t, time.Minute, promoCfg.Window)

	cardCfg := l.ConfigFor(scan.TypeCustomerCard)
	assert.Equal(t, 3, cardCfg.MaxAttempts)

	params := ratelimit.Params{BusinessID: "biz-1", ScanType: scan.TypePromoCode, IP: "10.0.0.9"}
	for i := range 5 {
		require.NoError(t, l.Enforce(ctx, params), "promo attempt %d", i+1)
	}
	require.Error(t, l.Enforce(ctx, params))
}
