// Package metrics exposes prometheus collectors for the scan pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ScansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scan_requests_total",
		Help: "Processed scan requests by type and outcome.",
	}, []string{"scan_type", "outcome"})

	RateLimitDenials = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rate_limit_denials_total",
		Help: "Scan attempts denied by the rate limiter.",
	}, []string{"scan_type"})

	RateLimitStoreErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_store_errors_total",
		Help: "Counter store failures that triggered the fail-open path.",
	})

	RetryAttempts = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "db_operation_retry_attempts",
		Help:    "Attempts used per database operation.",
		Buckets: []float64{1, 2, 3, 4, 5},
	}, []string{"operation"})

	BreakerOpen = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "circuit_breaker_open",
		Help: "1 when the breaker for an operation class is open.",
	}, []string{"operation"})
)
