package shared

import (
	"context"
	"time"

	"qr-loyalty-service/internal/domain/scan"
)

// QrCodeRepository is the persistence port for QR code records.
type QrCodeRepository interface {
	FindByUniqueID(ctx context.Context, uniqueID string) (*QrCode, error)
	Create(ctx context.Context, qr *QrCode) error
	UpdateStatus(ctx context.Context, uniqueID string, status scan.Status) error
	UpdateExpiry(ctx context.Context, uniqueID string, expiry time.Time) error
}

// ScanLogWriter appends audit entries. No error return: writes are
// best-effort and the implementation swallows its own failures.
type ScanLogWriter interface {
	Insert(ctx context.Context, entry *ScanLogEntry)
}

// Tx exposes repositories bound to one open transaction.
type Tx interface {
	QrCodes() QrCodeRepository
}

// UnitOfWork runs fn inside begin/commit/rollback. Any error from fn
// rolls back; transient transaction failures are retried as a whole.
// No nested transactions.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}
