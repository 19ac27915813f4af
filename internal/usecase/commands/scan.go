package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"qr-loyalty-service/internal/domain/scan"
	"qr-loyalty-service/internal/infra/metrics"
	"qr-loyalty-service/internal/infra/ratelimit"
	"qr-loyalty-service/internal/pkg/clock"
	"qr-loyalty-service/internal/pkg/errs"
	"qr-loyalty-service/internal/usecase/shared"

	"github.com/oklog/ulid/v2"
)

// ScanRequest is one inbound scan event. BusinessID/CustomerID come from
// the caller's token, IP from the connection; the payload is untrusted.
type ScanRequest struct {
	RawPayload json.RawMessage
	BusinessID string
	CustomerID string
	IP         string
}

type ScanResult struct {
	Payload *scan.Payload
	QrCode  *shared.QrCode
}

type ScanCommands interface {
	ProcessScan(ctx context.Context, req ScanRequest) (*ScanResult, error)
}

type scanUseCaseImpl struct {
	uow      shared.UnitOfWork
	qrCodes  shared.QrCodeRepository
	scanLogs shared.ScanLogWriter
	limiter  RateLimiter
	signer   PayloadSigner
	clock    clock.Clock
	logger   *slog.Logger
}

func NewScanCommands(
	uow shared.UnitOfWork,
	qrCodes shared.QrCodeRepository,
	scanLogs shared.ScanLogWriter,
	limiter RateLimiter,
	signer PayloadSigner,
	clk clock.Clock,
	logger *slog.Logger,
) ScanCommands {
	return &scanUseCaseImpl{
		uow:      uow,
		qrCodes:  qrCodes,
		scanLogs: scanLogs,
		limiter:  limiter,
		signer:   signer,
		clock:    clk,
		logger:   logger,
	}
}

// ProcessScan runs the resilience pipeline: validate (no I/O), rate-limit
// gate, persistence under retry, then best-effort bookkeeping. The step
// order is an invariant; nothing reorders around it.
func (uc *scanUseCaseImpl) ProcessScan(ctx context.Context, req ScanRequest) (*ScanResult, error) {
	result := scan.SafeValidate(req.RawPayload)
	if !result.Valid {
		uc.recordOutcome(ctx, req, nil, result.Err)
		return nil, result.Err
	}
	payload := result.Data

	params := uc.rateLimitParams(req, payload)
	if err := uc.limiter.Enforce(ctx, params); err != nil {
		uc.recordOutcome(ctx, req, payload, err)
		return nil, err
	}

	qr, err := uc.qrCodes.FindByUniqueID(ctx, payload.UniqueID)
	if err != nil {
		uc.recordOutcome(ctx, req, payload, err)
		return nil, err
	}

	if err := uc.verifySignature(payload, qr); err != nil {
		uc.recordOutcome(ctx, req, payload, err)
		return nil, err
	}

	if err := uc.checkLifecycle(ctx, qr); err != nil {
		uc.recordOutcome(ctx, req, payload, err)
		return nil, err
	}

	uc.recordOutcome(ctx, req, payload, nil)
	return &ScanResult{Payload: payload, QrCode: qr}, nil
}

func (uc *scanUseCaseImpl) rateLimitParams(req ScanRequest, payload *scan.Payload) ratelimit.Params {
	businessID := req.BusinessID
	if businessID == "" {
		businessID = payload.BusinessID
	}
	customerID := req.CustomerID
	if customerID == "" {
		customerID = payload.CustomerID
	}
	return ratelimit.Params{
		BusinessID: businessID,
		CustomerID: customerID,
		ScanType:   payload.Type,
		IP:         req.IP,
	}
}

// verifySignature checks the stored signature (and a presented one, when
// the payload carries it) against the code's identity.
func (uc *scanUseCaseImpl) verifySignature(payload *scan.Payload, qr *shared.QrCode) error {
	signature := payload.Signature
	if signature == "" && qr.Signature != nil {
		signature = *qr.Signature
	}
	if signature == "" {
		return nil
	}
	if err := uc.signer.Verify(signature, qr.UniqueID, string(qr.Type)); err != nil {
		return errs.Security("qr signature verification failed: " + qr.UniqueID).
			WithContext("unique_id", qr.UniqueID)
	}
	return nil
}

// checkLifecycle rejects revoked and expired codes. A code whose expiry
// date has passed but whose status still reads ACTIVE is transitioned to
// EXPIRED; that bookkeeping must not mask the Expiration result.
func (uc *scanUseCaseImpl) checkLifecycle(ctx context.Context, qr *shared.QrCode) error {
	switch qr.Status {
	case scan.StatusRevoked:
		return errs.Security("qr code revoked: " + qr.UniqueID).
			WithContext("unique_id", qr.UniqueID)
	case scan.StatusExpired:
		return errs.Expired("qr code expired: " + qr.UniqueID).
			WithContext("unique_id", qr.UniqueID)
	}

	if !qr.Expired(uc.clock.Now()) {
		return nil
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.QrCodes().UpdateStatus(ctx, qr.UniqueID, scan.StatusExpired)
	})
	if err != nil {
		errs.Report(uc.logger, errs.Wrap(err, "failed to mark qr code expired"))
	}
	return errs.Expired("qr code past expiry date: " + qr.UniqueID).
		WithContext("unique_id", qr.UniqueID)
}

// recordOutcome writes the audit entry and bumps metrics. Best-effort by
// contract: nothing here may fail the scan.
func (uc *scanUseCaseImpl) recordOutcome(ctx context.Context, req ScanRequest, payload *scan.Payload, scanErr error) {
	scanType := scan.Type("UNKNOWN")
	entry := &shared.ScanLogEntry{
		ID:        ulid.Make().String(),
		Success:   scanErr == nil,
		CreatedAt: uc.clock.Now(),
	}

	if payload != nil {
		scanType = payload.Type
		entry.ScanType = payload.Type
		entry.ScannedData = payload.UniqueID
		entry.CustomerID = optional(payload.CustomerID)
		entry.ProgramID = optional(payload.ProgramID)
		entry.PromoCodeID = optional(payload.PromoCode)
	}

	entry.ScannedBy = req.CustomerID
	if entry.ScannedBy == "" {
		entry.ScannedBy = "ip:" + req.IP
	}

	outcome := "success"
	if scanErr != nil {
		outcome = string(errs.KindOf(scanErr))
		msg := errs.SanitizeMessage(scanErr.Error())
		entry.ErrorMessage = &msg
	}
	metrics.ScansTotal.WithLabelValues(string(scanType), outcome).Inc()

	uc.scanLogs.Insert(ctx, entry)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
