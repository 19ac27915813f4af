package queries

import (
	"context"
	"time"

	"qr-loyalty-service/internal/domain/scan"
	"qr-loyalty-service/internal/usecase/shared"
)

// QrCodeView is the read model returned to handlers. The raw payload is
// included; the stored signature is not, so it cannot be replayed from a
// lookup response.
type QrCodeView struct {
	UniqueID   string
	Type       scan.Type
	Data       string
	CustomerID *string
	BusinessID *string
	Status     scan.Status
	ExpiryDate *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type QrCodeQueries interface {
	GetByUniqueID(ctx context.Context, uniqueID string) (*QrCodeView, error)
}

type qrCodeQueriesImpl struct {
	repo shared.QrCodeRepository
}

func NewQrCodeQueries(repo shared.QrCodeRepository) QrCodeQueries {
	return &qrCodeQueriesImpl{repo: repo}
}

func (q *qrCodeQueriesImpl) GetByUniqueID(ctx context.Context, uniqueID string) (*QrCodeView, error) {
	qr, err := q.repo.FindByUniqueID(ctx, uniqueID)
	if err != nil {
		return nil, err
	}
	return &QrCodeView{
		UniqueID:   qr.UniqueID,
		Type:       qr.Type,
		Data:       qr.Data,
		CustomerID: qr.CustomerID,
		BusinessID: qr.BusinessID,
		Status:     qr.Status,
		ExpiryDate: qr.ExpiryDate,
		CreatedAt:  qr.CreatedAt,
		UpdatedAt:  qr.UpdatedAt,
	}, nil
}
