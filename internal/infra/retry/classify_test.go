//go:build unit

package retry_test

import (
	"context"
	"errors"
	"testing"

	"qr-loyalty-service/internal/infra/retry"
	"qr-loyalty-service/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsTransient(t *testing.T) {
	notNull := &pgconn.PgError{Code: "23502"}
	deadlock := &pgconn.PgError{Code: "40P01"}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"not null violation", notNull, false},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"deadlock", deadlock, true},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"connection class", &pgconn.PgError{Code: "08006"}, true},
		{"cancelled context", context.Canceled, false},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"validation error", errs.Validation("bad field", "field"), false},
		{"database wrap without pg cause", errs.Database(errs.New("connection refused"), "op"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, retry.IsTransient(tt.err))
		})
	}

	t.Run("database wrap defers to the pg code of its cause", func(t *testing.T) {
		wrapped := errs.Database(notNull, "qr_code.update_status")
		assert.False(t, retry.IsTransient(wrapped))

		var pgErr *pgconn.PgError
		assert.True(t, errors.As(wrapped, &pgErr))

		assert.True(t, retry.IsTransient(errs.Database(deadlock, "qr_code.update_status")))
	})
}
