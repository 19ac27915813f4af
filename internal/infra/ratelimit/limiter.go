package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"qr-loyalty-service/internal/domain/scan"
	"qr-loyalty-service/internal/infra/metrics"
	"qr-loyalty-service/internal/pkg/clock"
	"qr-loyalty-service/internal/pkg/config"
	"qr-loyalty-service/internal/pkg/errs"
)

// Params carries the identities a scan request presents. BusinessID is
// always known; CustomerID only when the app user is authenticated.
type Params struct {
	BusinessID string
	CustomerID string
	ScanType   scan.Type
	IP         string
}

// Decision is the read-only outcome of a limit check.
type Decision struct {
	Limited    bool
	Key        string
	Count      int
	Remaining  int
	RetryAfter time.Duration
	Config     Config
}

type Limiter struct {
	store     CounterStore
	defaults  Config
	overrides map[scan.Type]Config
	clock     clock.Clock
	logger    *slog.Logger
}

func NewLimiter(cfg config.RateLimitConfig, store CounterStore, clk clock.Clock, logger *slog.Logger) (*Limiter, error) {
	defaults := Config{
		MaxAttempts: cfg.MaxAttempts,
		Window:      cfg.Window,
		Block:       cfg.Block,
	}
	overrides, err := LoadOverrides(cfg.OverridesFile, defaults)
	if err != nil {
		return nil, err
	}
	return &Limiter{
		store:     store,
		defaults:  defaults,
		overrides: overrides,
		clock:     clk,
		logger:    logger,
	}, nil
}

// Key derives the composite counter key. Customer identity wins when
// present (stops repeat-scan abuse of one customer account); otherwise
// the scan type scopes the per-IP budget so a promo-guessing client
// cannot burn the card-scan budget, and vice versa.
func (l *Limiter) Key(p Params) string {
	switch {
	case p.CustomerID != "":
		return fmt.Sprintf("rl:%s:customer:%s", p.BusinessID, p.CustomerID)
	case p.ScanType != "":
		return fmt.Sprintf("rl:%s:%s:ip:%s", p.BusinessID, p.ScanType, p.IP)
	default:
		return fmt.Sprintf("rl:%s:ip:%s", p.BusinessID, p.IP)
	}
}

// ConfigFor resolves the per-type budget, falling back to the default.
func (l *Limiter) ConfigFor(scanType scan.Type) Config {
	if cfg, ok := l.overrides[scanType]; ok {
		return cfg
	}
	return l.defaults
}

// Check reads the current counter without consuming an attempt. A store
// failure fails open: the scan proceeds and the degradation is logged.
func (l *Limiter) Check(ctx context.Context, p Params) Decision {
	key := l.Key(p)
	cfg := l.ConfigFor(p.ScanType)

	count, resetAt, err := l.store.Peek(ctx, key)
	if err != nil {
		l.failOpen(key, err)
		return Decision{Limited: false, Key: key, Remaining: cfg.MaxAttempts, Config: cfg}
	}

	return l.decide(key, cfg, count, resetAt)
}

// Enforce consumes an attempt atomically and returns a RateLimit error
// when the budget is exhausted. Store failures fail open.
func (l *Limiter) Enforce(ctx context.Context, p Params) error {
	key := l.Key(p)
	cfg := l.ConfigFor(p.ScanType)

	count, resetAt, err := l.store.Increment(ctx, key, cfg.Window)
	if err != nil {
		l.failOpen(key, err)
		return nil
	}

	decision := l.decide(key, cfg, count, resetAt)
	if !decision.Limited {
		return nil
	}

	metrics.RateLimitDenials.WithLabelValues(string(p.ScanType)).Inc()
	l.logger.Warn("scan attempt rate limited",
		"key", key,
		"count", count,
		"max_attempts", cfg.MaxAttempts,
		"retry_after", decision.RetryAfter.String())

	return errs.RateLimited(int64(decision.RetryAfter / time.Second)).
		WithContext("key", key).
		WithContext("scan_type", string(p.ScanType))
}

// Increment is the best-effort post-success bump for flows that checked
// first and only charge the budget after the primary operation lands.
// Never returns an error: failures here are bookkeeping, not gating.
func (l *Limiter) Increment(ctx context.Context, p Params) {
	key := l.Key(p)
	cfg := l.ConfigFor(p.ScanType)
	if _, _, err := l.store.Increment(ctx, key, cfg.Window); err != nil {
		l.failOpen(key, err)
	}
}

func (l *Limiter) decide(key string, cfg Config, count int, resetAt time.Time) Decision {
	remaining := cfg.MaxAttempts - count
	if remaining < 0 {
		remaining = 0
	}
	d := Decision{
		Key:       key,
		Count:     count,
		Remaining: remaining,
		Config:    cfg,
	}
	if count <= cfg.MaxAttempts {
		return d
	}

	d.Limited = true
	d.RetryAfter = resetAt.Sub(l.clock.Now())
	// First crossing of the budget announces the configured block; the
	// window itself still expires on schedule.
	if cfg.Block > d.RetryAfter {
		d.RetryAfter = cfg.Block
	}
	if d.RetryAfter < 0 {
		d.RetryAfter = 0
	}
	return d
}

// Fail open: an unreachable store never blocks a legitimate user.
func (l *Limiter) failOpen(key string, err error) {
	metrics.RateLimitStoreErrors.Inc()
	l.logger.Error("rate limit store unavailable, failing open",
		"key", key,
		"error", err.Error())
}

// RunCleanup periodically reclaims expired counters until ctx ends.
func (l *Limiter) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := l.store.Cleanup(ctx)
			if err != nil {
				l.logger.Warn("rate limit cleanup failed", "error", err.Error())
				continue
			}
			if removed > 0 {
				l.logger.Debug("rate limit cleanup", "removed", removed)
			}
		}
	}
}
