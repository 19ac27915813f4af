package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"qr-loyalty-service/internal/domain/scan"
	"qr-loyalty-service/internal/pkg/clock"
	"qr-loyalty-service/internal/pkg/errs"
	"qr-loyalty-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

const payloadSchemaVersion = "1"

type CreateQrCodeRequest struct {
	Type       scan.Type
	CustomerID string
	ProgramID  string
	CardID     string
	BusinessID string
	PromoCode  string
	ExpiryDate *time.Time
}

type QrCodeCommands interface {
	CreateQrCode(ctx context.Context, req CreateQrCodeRequest) (*shared.QrCode, error)
	UpdateStatus(ctx context.Context, uniqueID string, status scan.Status) error
	UpdateExpiry(ctx context.Context, uniqueID string, expiry time.Time) error
}

type qrCodeUseCaseImpl struct {
	uow    shared.UnitOfWork
	signer PayloadSigner
	clock  clock.Clock
	logger *slog.Logger
}

func NewQrCodeCommands(uow shared.UnitOfWork, signer PayloadSigner, clk clock.Clock, logger *slog.Logger) QrCodeCommands {
	return &qrCodeUseCaseImpl{uow: uow, signer: signer, clock: clk, logger: logger}
}

// CreateQrCode mints a signed code. The assembled payload goes through
// the same validator a scan would use, so an unscannable code can never
// be issued.
func (uc *qrCodeUseCaseImpl) CreateQrCode(ctx context.Context, req CreateQrCodeRequest) (*shared.QrCode, error) {
	now := uc.clock.Now()

	payload := &scan.Payload{
		Type:       req.Type,
		UniqueID:   ulid.Make().String(),
		Timestamp:  now.Unix(),
		Version:    payloadSchemaVersion,
		CustomerID: req.CustomerID,
		ProgramID:  req.ProgramID,
		CardID:     req.CardID,
		BusinessID: req.BusinessID,
		PromoCode:  req.PromoCode,
	}
	validated, err := scan.Validate(payload)
	if err != nil {
		return nil, err
	}

	if req.ExpiryDate != nil && !req.ExpiryDate.After(now) {
		return nil, errs.Validation("expiry date must be in the future", "expiryDate")
	}

	signature, err := uc.signer.Sign(validated.UniqueID, string(validated.Type), validated.BusinessID)
	if err != nil {
		return nil, errs.WrapAppError(err, errs.KindSecurity, "failed to sign qr payload",
			"The QR code could not be issued. Please try again.")
	}
	validated.Signature = signature

	data, err := json.Marshal(validated)
	if err != nil {
		return nil, errs.WrapAppError(err, errs.KindValidation, "failed to serialize qr payload",
			"The QR code could not be issued. Please try again.")
	}

	qr := &shared.QrCode{
		ID:         uuid.New(),
		UniqueID:   validated.UniqueID,
		Type:       validated.Type,
		Data:       string(data),
		CustomerID: optional(validated.CustomerID),
		BusinessID: optional(validated.BusinessID),
		Status:     scan.StatusActive,
		ExpiryDate: req.ExpiryDate,
		Signature:  &signature,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.QrCodes().Create(ctx, qr)
	})
	if err != nil {
		return nil, err
	}
	return qr, nil
}

func (uc *qrCodeUseCaseImpl) UpdateStatus(ctx context.Context, uniqueID string, status scan.Status) error {
	if !status.Valid() {
		return errs.Validation("unknown status: "+string(status), "status")
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.QrCodes().UpdateStatus(ctx, uniqueID, status)
	})
}

// UpdateExpiry extends or shortens a code's life. Pushing the date into
// the future reactivates a code that had lapsed to EXPIRED; revoked codes
// stay revoked.
func (uc *qrCodeUseCaseImpl) UpdateExpiry(ctx context.Context, uniqueID string, expiry time.Time) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		qr, err := tx.QrCodes().FindByUniqueID(ctx, uniqueID)
		if err != nil {
			return err
		}
		if qr.Status == scan.StatusRevoked {
			return errs.BusinessLogic("cannot extend a revoked qr code: "+uniqueID,
				"This QR code has been revoked and cannot be extended.").
				WithContext("unique_id", uniqueID)
		}
		if err := tx.QrCodes().UpdateExpiry(ctx, uniqueID, expiry); err != nil {
			return err
		}
		if qr.Status == scan.StatusExpired && expiry.After(uc.clock.Now()) {
			return tx.QrCodes().UpdateStatus(ctx, uniqueID, scan.StatusActive)
		}
		return nil
	})
}
