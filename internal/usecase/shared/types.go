package shared

import (
	"time"

	"qr-loyalty-service/internal/domain/scan"

	"github.com/google/uuid"
)

// QrCode is the persisted record behind a scannable code. Identity is the
// immutable UniqueID; lifecycle is soft (status transitions), rows are
// never deleted.
type QrCode struct {
	ID         uuid.UUID
	UniqueID   string
	Type       scan.Type
	Data       string // serialized payload as issued
	CustomerID *string
	BusinessID *string
	Status     scan.Status
	ExpiryDate *time.Time
	Signature  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Expired reports whether the code's expiry date has passed. A nil expiry
// never expires; the status column may still say EXPIRED independently.
func (q *QrCode) Expired(now time.Time) bool {
	return q.ExpiryDate != nil && now.After(*q.ExpiryDate)
}

// ScanLogEntry is an append-only audit record. Writes are best-effort:
// a failed insert is logged and swallowed, never surfaced to the scan.
type ScanLogEntry struct {
	ID            string // ULID
	ScanType      scan.Type
	ScannedBy     string
	ScannedData   string
	Success       bool
	CustomerID    *string
	ProgramID     *string
	PromoCodeID   *string
	PointsAwarded *int32
	ErrorMessage  *string
	CreatedAt     time.Time
}
