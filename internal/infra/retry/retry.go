// Package retry wraps database operations with bounded exponential-backoff
// retry and a per-operation circuit breaker.
package retry

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	"time"

	"qr-loyalty-service/internal/infra/metrics"
	"qr-loyalty-service/internal/pkg/clock"
	"qr-loyalty-service/internal/pkg/config"
	"qr-loyalty-service/internal/pkg/errs"
)

type Executor struct {
	maxAttempts int
	baseBackoff time.Duration
	breaker     *Breaker
	logger      *slog.Logger
}

func NewExecutor(cfg config.RetryConfig, clk clock.Clock, logger *slog.Logger) *Executor {
	return &Executor{
		maxAttempts: cfg.MaxAttempts,
		baseBackoff: cfg.BaseBackoff,
		breaker:     NewBreaker(cfg.BreakerThreshold, cfg.BreakerWindow, cfg.BreakerCooldown, clk),
		logger:      logger,
	}
}

// Do runs fn, retrying transient failures with exponential backoff up to
// the configured attempt budget. Non-transient errors propagate on the
// first failure. Context cancellation aborts the loop between attempts.
func (e *Executor) Do(ctx context.Context, opName string, fn func(ctx context.Context) error) error {
	if !e.breaker.Allow(opName) {
		e.logger.Warn("circuit breaker open, failing fast", "operation", opName)
		return errs.NewAppError(errs.KindDatabase, "circuit breaker open: "+opName,
			"The service is temporarily unavailable. Please try again shortly.").
			WithContext("operation", opName)
	}

	var err error
	attempts := 0
	for attempt := 0; attempt < e.maxAttempts; attempt++ {
		attempts = attempt + 1
		err = fn(ctx)
		if err == nil {
			e.breaker.RecordSuccess(opName)
			metrics.RetryAttempts.WithLabelValues(opName).Observe(float64(attempts))
			return nil
		}

		if ctx.Err() != nil {
			// The caller's deadline propagated; stop without further attempts.
			e.breaker.RecordFailure(opName)
			return errs.Wrap(err, "aborted by caller")
		}

		if !IsTransient(err) {
			metrics.RetryAttempts.WithLabelValues(opName).Observe(float64(attempts))
			return err
		}

		if attempt == e.maxAttempts-1 {
			break
		}

		waitTime := Backoff(attempt, e.baseBackoff)
		e.logger.Warn("retrying after transient failure",
			"operation", opName,
			"attempt", attempts,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			e.breaker.RecordFailure(opName)
			return errs.Wrap(ctx.Err(), "aborted while waiting to retry "+opName)
		case <-time.After(waitTime):
		}
	}

	e.breaker.RecordFailure(opName)
	metrics.RetryAttempts.WithLabelValues(opName).Observe(float64(attempts))
	e.logger.Error("operation failed after max retries",
		"operation", opName,
		"attempts", attempts,
		"error", err.Error())
	return errs.Wrap(err, opName+" failed after max retries")
}

// DoValue is Do for operations that produce a result.
func DoValue[T any](e *Executor, ctx context.Context, opName string, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := e.Do(ctx, opName, func(ctx context.Context) error {
		var fnErr error
		result, fnErr = fn(ctx)
		return fnErr
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

// Backoff returns the exponential wait for an attempt with crypto/rand
// jitter. Shared with the unit of work, which retries whole transactions.
func Backoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Mask the high bit so the conversion stays positive.
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}
