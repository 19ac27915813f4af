package commands

import (
	"context"

	"qr-loyalty-service/internal/infra/ratelimit"
)

// RateLimiter is the abuse-limiting port consumed by the scan pipeline.
// Enforce consumes an attempt atomically; Increment is the best-effort
// post-success bump; Check never consumes.
type RateLimiter interface {
	Check(ctx context.Context, p ratelimit.Params) ratelimit.Decision
	Enforce(ctx context.Context, p ratelimit.Params) error
	Increment(ctx context.Context, p ratelimit.Params)
}

// PayloadSigner verifies (and issues) the optional HMAC signature bound
// to a QR code's identity.
type PayloadSigner interface {
	Sign(uniqueID, scanType, businessID string) (string, error)
	Verify(signature, uniqueID, scanType string) error
}
