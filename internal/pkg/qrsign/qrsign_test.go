//go:build unit

package qrsign_test

import (
	"testing"

	"qr-loyalty-service/internal/pkg/qrsign"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	signer := qrsign.NewSigner("test-secret")

	t.Run("round trip", func(t *testing.T) {
		sig, err := signer.Sign("01J8ZXCV9M3Q", "CUSTOMER_CARD", "biz-1")
		require.NoError(t, err)
		require.NotEmpty(t, sig)

		assert.NoError(t, signer.Verify(sig, "01J8ZXCV9M3Q", "CUSTOMER_CARD"))
	})

	t.Run("rejects identity mismatch", func(t *testing.T) {
		sig, err := signer.Sign("01J8ZXCV9M3Q", "CUSTOMER_CARD", "biz-1")
		require.NoError(t, err)

		assert.ErrorIs(t, signer.Verify(sig, "other-code", "CUSTOMER_CARD"), qrsign.ErrInvalidSignature)
		assert.ErrorIs(t, signer.Verify(sig, "01J8ZXCV9M3Q", "PROMO_CODE"), qrsign.ErrInvalidSignature)
	})

	t.Run("rejects wrong secret", func(t *testing.T) {
		other := qrsign.NewSigner("different-secret")
		sig, err := other.Sign("01J8ZXCV9M3Q", "CUSTOMER_CARD", "biz-1")
		require.NoError(t, err)

		assert.ErrorIs(t, signer.Verify(sig, "01J8ZXCV9M3Q", "CUSTOMER_CARD"), qrsign.ErrInvalidSignature)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		assert.ErrorIs(t, signer.Verify("not-a-token", "01J8ZXCV9M3Q", "CUSTOMER_CARD"), qrsign.ErrInvalidSignature)
		assert.ErrorIs(t, signer.Verify("", "01J8ZXCV9M3Q", "CUSTOMER_CARD"), qrsign.ErrInvalidSignature)
	})
}
