//go:build unit

package scan_test

import (
	"testing"

	"qr-loyalty-service/internal/domain/scan"
	"qr-loyalty-service/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomerCard() map[string]any {
	return map[string]any{
		"type":       "CUSTOMER_CARD",
		"qrUniqueId": "01J8ZXCV9M3Q",
		"timestamp":  int64(1756700000000),
		"version":    "1",
		"customerId": "cust-42",
	}
}

func TestValidate(t *testing.T) {
	t.Run("customer card success", func(t *testing.T) {
		p, err := scan.Validate(validCustomerCard())
		require.NoError(t, err)
		require.NotNil(t, p)

		assert.Equal(t, scan.TypeCustomerCard, p.Type)
		assert.Equal(t, "01J8ZXCV9M3Q", p.UniqueID)
		assert.Equal(t, int64(1756700000000), p.Timestamp)
		assert.Equal(t, "cust-42", p.CustomerID)
	})

	t.Run("loyalty card requires all card fields", func(t *testing.T) {
		m := map[string]any{
			"type":       "LOYALTY_CARD",
			"qrUniqueId": "01J8ZXCV9M3Q",
			"timestamp":  int64(1756700000000),
			"version":    "1",
			"customerId": "cust-42",
			"programId":  "prog-7",
			"cardId":     "card-9",
			"businessId": "biz-1",
		}
		p, err := scan.Validate(m)
		require.NoError(t, err)
		assert.Equal(t, "prog-7", p.ProgramID)
		assert.Equal(t, "card-9", p.CardID)
		assert.Equal(t, "biz-1", p.BusinessID)

		delete(m, "cardId")
		_, err = scan.Validate(m)
		require.Error(t, err)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
		assert.Contains(t, err.Error(), "cardId")
	})

	t.Run("missing common fields", func(t *testing.T) {
		for _, field := range []string{"type", "qrUniqueId", "timestamp", "version"} {
			m := validCustomerCard()
			delete(m, field)
			_, err := scan.Validate(m)
			require.Error(t, err, "field %s", field)
			assert.Equal(t, errs.KindValidation, errs.KindOf(err))
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("blank string counts as missing", func(t *testing.T) {
		m := validCustomerCard()
		m["customerId"] = "   "
		_, err := scan.Validate(m)
		require.Error(t, err)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})

	t.Run("unknown scan type", func(t *testing.T) {
		m := validCustomerCard()
		m["type"] = "GIFT_CARD"
		_, err := scan.Validate(m)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GIFT_CARD")
	})

	t.Run("numeric ids are normalized to strings", func(t *testing.T) {
		raw := `{"type":"PROMO_CODE","qrUniqueId":12345,"timestamp":1756700000000,"version":1,"promoCode":"SUMMER25","businessId":998}`
		p, err := scan.Validate(raw)
		require.NoError(t, err)
		assert.Equal(t, "12345", p.UniqueID)
		assert.Equal(t, "1", p.Version)
		assert.Equal(t, "998", p.BusinessID)
	})

	t.Run("string timestamp is accepted", func(t *testing.T) {
		m := validCustomerCard()
		m["timestamp"] = "1756700000000"
		p, err := scan.Validate(m)
		require.NoError(t, err)
		assert.Equal(t, int64(1756700000000), p.Timestamp)
	})

	t.Run("validated payload revalidates unchanged", func(t *testing.T) {
		first, err := scan.Validate(validCustomerCard())
		require.NoError(t, err)
		second, err := scan.Validate(first)
		require.NoError(t, err)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("revalidation changed the payload (-first +second):\n%s", diff)
		}
	})

	t.Run("signature is carried when present", func(t *testing.T) {
		m := validCustomerCard()
		m["signature"] = "sig-abc"
		p, err := scan.Validate(m)
		require.NoError(t, err)
		assert.Equal(t, "sig-abc", p.Signature)
	})
}

func TestSafeValidate(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{name: "nil input", raw: nil},
		{name: "empty string", raw: ""},
		{name: "malformed json", raw: `{"type":`},
		{name: "json array", raw: `[1,2,3]`},
		{name: "unsupported representation", raw: 42},
		{name: "nil payload pointer", raw: (*scan.Payload)(nil)},
		{name: "deeply wrong field types", raw: map[string]any{"type": []any{"CUSTOMER_CARD"}, "qrUniqueId": true, "timestamp": "soon", "version": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scan.SafeValidate(tt.raw)
			assert.False(t, result.Valid)
			assert.Nil(t, result.Data)
			require.Error(t, result.Err)
			assert.Equal(t, errs.KindValidation, errs.KindOf(result.Err))
		})
	}

	t.Run("valid input", func(t *testing.T) {
		result := scan.SafeValidate(validCustomerCard())
		assert.True(t, result.Valid)
		assert.NotNil(t, result.Data)
		assert.NoError(t, result.Err)
	})
}
