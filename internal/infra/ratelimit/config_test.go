//go:build unit

package ratelimit_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"qr-loyalty-service/internal/domain/scan"
	"qr-loyalty-service/internal/infra/ratelimit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverrides(t *testing.T) {
	defaults := ratelimit.Config{MaxAttempts: 10, Window: time.Minute, Block: 5 * time.Minute}

	t.Run("empty path keeps builtins", func(t *testing.T) {
		overrides, err := ratelimit.LoadOverrides("", defaults)
		require.NoError(t, err)

		promo, ok := overrides[scan.TypePromoCode]
		require.True(t, ok)
		assert.Equal(t, 5, promo.MaxAttempts)
		assert.Equal(t, 15*time.Minute, promo.Block)
	})

	t.Run("file overrides merge over builtins", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "overrides.yaml")
		content := `
types:
  PROMO_CODE:
    max_attempts: 2
  LOYALTY_CARD:
    max_attempts: 30
    window_seconds: 120
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		overrides, err := ratelimit.LoadOverrides(path, defaults)
		require.NoError(t, err)

		promo := overrides[scan.TypePromoCode]
		assert.Equal(t, 2, promo.MaxAttempts)
		assert.Equal(t, 15*time.Minute, promo.Block, "unset fields keep the builtin value")

		loyalty := overrides[scan.TypeLoyaltyCard]
		assert.Equal(t, 30, loyalty.MaxAttempts)
		assert.Equal(t, 2*time.Minute, loyalty.Window)
		assert.Equal(t, defaults.Block, loyalty.Block)
	})

	t.Run("unknown scan type is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "overrides.yaml")
		content := `
types:
  GIFT_CARD:
    max_attempts: 1
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		_, err := ratelimit.LoadOverrides(path, defaults)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GIFT_CARD")
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := ratelimit.LoadOverrides("/nonexistent/overrides.yaml", defaults)
		require.Error(t, err)
	})
}
