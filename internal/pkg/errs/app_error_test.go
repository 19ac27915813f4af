//go:build unit

package errs_test

import (
	"net/http"
	"testing"

	"qr-loyalty-service/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind   errs.Kind
		status int
	}{
		{errs.KindValidation, http.StatusBadRequest},
		{errs.KindDatabase, http.StatusInternalServerError},
		{errs.KindSecurity, http.StatusForbidden},
		{errs.KindRateLimit, http.StatusTooManyRequests},
		{errs.KindExpiration, http.StatusGone},
		{errs.KindBusinessLogic, http.StatusUnprocessableEntity},
		{errs.KindUnknown, http.StatusInternalServerError},
		{errs.Kind("SOMETHING_ELSE"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.status, errs.HTTPStatus(tt.kind))
		})
	}
}

func TestRetryable(t *testing.T) {
	assert.True(t, errs.Retryable(errs.KindDatabase))

	for _, kind := range []errs.Kind{
		errs.KindValidation,
		errs.KindSecurity,
		errs.KindRateLimit,
		errs.KindExpiration,
		errs.KindBusinessLogic,
		errs.KindUnknown,
	} {
		assert.False(t, errs.Retryable(kind), "kind %s", kind)
	}
}

func TestAppError(t *testing.T) {
	t.Run("wraps the cause", func(t *testing.T) {
		cause := errs.New("connection reset")
		appErr := errs.Database(cause, "qr_code.find_by_unique_id")

		assert.Equal(t, errs.KindDatabase, appErr.Kind)
		assert.ErrorIs(t, appErr, cause)
		assert.Contains(t, appErr.Error(), "qr_code.find_by_unique_id")
	})

	t.Run("user message never carries internals", func(t *testing.T) {
		cause := errs.New(`pq: connection to host=db.internal user=admin password=hunter2 failed`)
		appErr := errs.Database(cause, "scan_log.insert")

		assert.NotContains(t, appErr.UserMessage(), "hunter2")
		assert.NotContains(t, appErr.UserMessage(), "db.internal")
	})

	t.Run("rate limited carries retry after", func(t *testing.T) {
		appErr := errs.RateLimited(42)
		require.NotNil(t, appErr.Context)
		assert.Equal(t, int64(42), appErr.Context["retry_after_seconds"])
		assert.Equal(t, http.StatusTooManyRequests, appErr.HTTPStatus())
	})

	t.Run("kind of unknown errors", func(t *testing.T) {
		assert.Equal(t, errs.KindUnknown, errs.KindOf(errs.New("boom")))
		assert.Equal(t, errs.KindUnknown, errs.KindOf(nil))
	})

	t.Run("classification survives wrapping", func(t *testing.T) {
		wrapped := errs.Wrap(errs.Security("signature mismatch"), "processing scan")
		assert.Equal(t, errs.KindSecurity, errs.KindOf(wrapped))

		appErr, ok := errs.AsAppError(wrapped)
		require.True(t, ok)
		assert.Equal(t, http.StatusForbidden, appErr.HTTPStatus())
	})

	t.Run("with context is chainable", func(t *testing.T) {
		appErr := errs.Validation("missing required field: type", "type").
			WithContext("payload_bytes", 120)
		assert.Equal(t, "type", appErr.Context["field"])
		assert.Equal(t, 120, appErr.Context["payload_bytes"])
	})
}
