package retry

import (
	"context"
	"errors"
	"net"
	"strings"

	"qr-loyalty-service/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	pgErrClassConnection        = "08"
	pgErrClassInsufficientRes   = "53"
	pgErrClassOperatorIntervene = "57"
)

// IsTransient reports whether an operation failure is worth retrying.
// Connection/timeout-type failures qualify; constraint violations and any
// categorized non-database error propagate immediately.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	// A categorized error of non-retryable kind is final no matter what
	// it wraps. A Database-kind wrap still defers to the pg code of its
	// cause below: repositories categorize before the retry loop sees the
	// error, and a wrapped constraint violation must not be retried.
	if appErr, ok := errs.AsAppError(err); ok && !errs.Retryable(appErr.Kind) {
		return false
	}

	// The caller gave up; retrying past that point helps nobody.
	if errors.Is(err, context.Canceled) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return isTransientPgCode(pgErr.Code)
	}

	if appErr, ok := errs.AsAppError(err); ok {
		return errs.Retryable(appErr.Kind)
	}

	if pgconn.SafeToRetry(err) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// An operation-level deadline without a pg error usually means the
	// server was too slow, not that it rejected the statement.
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	// pgx masks some dial failures as plain errors.
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe")
}

func isTransientPgCode(code string) bool {
	switch code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	}
	if len(code) < 2 {
		return false
	}
	switch code[:2] {
	case pgErrClassConnection, pgErrClassInsufficientRes, pgErrClassOperatorIntervene:
		return true
	}
	return false
}
