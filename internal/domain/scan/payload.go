package scan

// Type tags the discriminated union of payloads a QR code can carry.
type Type string

const (
	TypeCustomerCard Type = "CUSTOMER_CARD"
	TypeLoyaltyCard  Type = "LOYALTY_CARD"
	TypePromoCode    Type = "PROMO_CODE"
)

func (t Type) Valid() bool {
	switch t {
	case TypeCustomerCard, TypeLoyaltyCard, TypePromoCode:
		return true
	}
	return false
}

// Status is the lifecycle state of a persisted QR code. Codes are never
// deleted; revocation and expiry are status transitions.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusExpired Status = "EXPIRED"
	StatusRevoked Status = "REVOKED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusExpired, StatusRevoked:
		return true
	}
	return false
}

// Payload is the decoded content of a scanned QR code after validation.
// ID fields are normalized to strings regardless of how the producer
// encoded them. A Payload only exists in fully-validated form; the
// validator never lets a partial one escape.
type Payload struct {
	Type      Type   `json:"type"`
	UniqueID  string `json:"qrUniqueId"`
	Timestamp int64  `json:"timestamp"`
	Version   string `json:"version"`

	// CUSTOMER_CARD and LOYALTY_CARD
	CustomerID string `json:"customerId,omitempty"`

	// LOYALTY_CARD only
	ProgramID string `json:"programId,omitempty"`
	CardID    string `json:"cardId,omitempty"`

	// LOYALTY_CARD and PROMO_CODE
	BusinessID string `json:"businessId,omitempty"`

	// PROMO_CODE only
	PromoCode string `json:"promoCode,omitempty"`

	// Optional HMAC signature issued at creation time.
	Signature string `json:"signature,omitempty"`
}
