package retry

import (
	"sync"
	"time"

	"qr-loyalty-service/internal/infra/metrics"
	"qr-loyalty-service/internal/pkg/clock"
)

// Breaker tracks consecutive infrastructure failures per logical operation
// class and fails fast once a threshold is exceeded within a sliding
// window. State is process-local: in multi-instance deployments each
// instance trips independently.
type Breaker struct {
	mu        sync.Mutex
	clock     clock.Clock
	threshold int
	window    time.Duration
	cooldown  time.Duration
	states    map[string]*breakerState
}

type breakerState struct {
	failures    int
	windowStart time.Time
	openUntil   time.Time
	halfOpen    bool
}

func NewBreaker(threshold int, window, cooldown time.Duration, clk clock.Clock) *Breaker {
	return &Breaker{
		clock:     clk,
		threshold: threshold,
		window:    window,
		cooldown:  cooldown,
		states:    make(map[string]*breakerState),
	}
}

// Allow reports whether a call for this operation class may proceed.
// After the cooldown, one probe call is let through (half-open); its
// outcome decides whether the breaker closes or re-opens.
func (b *Breaker) Allow(op string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	st, ok := b.states[op]
	if !ok {
		return true
	}

	now := b.clock.Now()
	if st.openUntil.IsZero() || now.After(st.openUntil) {
		if !st.openUntil.IsZero() {
			st.halfOpen = true
			st.openUntil = time.Time{}
			metrics.BreakerOpen.WithLabelValues(op).Set(0)
		}
		return true
	}
	return false
}

func (b *Breaker) RecordSuccess(op string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if st, ok := b.states[op]; ok {
		st.failures = 0
		st.halfOpen = false
		st.openUntil = time.Time{}
		metrics.BreakerOpen.WithLabelValues(op).Set(0)
	}
}

func (b *Breaker) RecordFailure(op string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.clock.Now()
	st, ok := b.states[op]
	if !ok {
		st = &breakerState{windowStart: now}
		b.states[op] = st
	}

	// A failed probe re-opens immediately.
	if st.halfOpen {
		st.halfOpen = false
		st.openUntil = now.Add(b.cooldown)
		metrics.BreakerOpen.WithLabelValues(op).Set(1)
		return
	}

	if now.Sub(st.windowStart) > b.window {
		st.failures = 0
		st.windowStart = now
	}

	st.failures++
	if st.failures >= b.threshold {
		st.openUntil = now.Add(b.cooldown)
		st.failures = 0
		st.windowStart = now
		metrics.BreakerOpen.WithLabelValues(op).Set(1)
	}
}
