// Package qrsign issues and verifies the optional signature embedded in a
// QR code at creation time. The signature binds a code's unique ID, type,
// and owning business so a tampered payload fails closed at scan time.
package qrsign

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidSignature = errors.New("invalid qr signature")

type claims struct {
	UniqueID   string `json:"uid"`
	ScanType   string `json:"typ"`
	BusinessID string `json:"biz,omitempty"`
	jwt.RegisteredClaims
}

type Signer struct {
	secretKey []byte
}

func NewSigner(secretKey string) *Signer {
	return &Signer{secretKey: []byte(secretKey)}
}

// Sign produces a compact HMAC token over the code's identity. No expiry
// claim: code lifetime is governed by the persisted expiryDate, not the
// signature.
func (s *Signer) Sign(uniqueID, scanType, businessID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UniqueID:   uniqueID,
		ScanType:   scanType,
		BusinessID: businessID,
	})
	return token.SignedString(s.secretKey)
}

// Verify checks the signature and that it was issued for this exact code.
func (s *Signer) Verify(signature, uniqueID, scanType string) error {
	token, err := jwt.ParseWithClaims(signature, &claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignature
		}
		return s.secretKey, nil
	})
	if err != nil {
		return ErrInvalidSignature
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return ErrInvalidSignature
	}
	if c.UniqueID != uniqueID || c.ScanType != scanType {
		return ErrInvalidSignature
	}
	return nil
}
