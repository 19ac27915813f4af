//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"qr-loyalty-service/internal/domain/scan"
	"qr-loyalty-service/internal/infra/ratelimit"
	"qr-loyalty-service/internal/pkg/clock"
	"qr-loyalty-service/internal/pkg/errs"
	"qr-loyalty-service/internal/usecase/commands"
	"qr-loyalty-service/internal/usecase/shared"
	commandsmock "qr-loyalty-service/tests/mock/commands"
	sharedmock "qr-loyalty-service/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScanCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	qrCodes  *sharedmock.MockQrCodeRepository
	scanLogs *sharedmock.MockScanLogWriter
	limiter  *commandsmock.MockRateLimiter
	signer   *commandsmock.MockPayloadSigner
	clock    *clock.MockClock
	uc       commands.ScanCommands
}

func TestScanCommandsSuite(t *testing.T) {
	suite.Run(t, new(ScanCommandsTestSuite))
}

func (s *ScanCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.qrCodes = sharedmock.NewMockQrCodeRepository(s.ctrl)
	s.scanLogs = sharedmock.NewMockScanLogWriter(s.ctrl)
	s.limiter = commandsmock.NewMockRateLimiter(s.ctrl)
	s.signer = commandsmock.NewMockPayloadSigner(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.uc = commands.NewScanCommands(s.uow, s.qrCodes, s.scanLogs, s.limiter, s.signer, s.clock, logger)
}

func (s *ScanCommandsTestSuite) request() commands.ScanRequest {
	payload := fmt.Sprintf(`{"type":"CUSTOMER_CARD","qrUniqueId":"qr-1","timestamp":%d,"version":"1","customerId":"cust-42"}`,
		s.clock.Now().UnixMilli())
	return commands.ScanRequest{
		RawPayload: json.RawMessage(payload),
		BusinessID: "biz-1",
		CustomerID: "cust-42",
		IP:         "10.0.0.9",
	}
}

func (s *ScanCommandsTestSuite) activeQrCode() *shared.QrCode {
	return &shared.QrCode{
		ID:       uuid.New(),
		UniqueID: "qr-1",
		Type:     scan.TypeCustomerCard,
		Data:     `{"type":"CUSTOMER_CARD"}`,
		Status:   scan.StatusActive,
	}
}

func (s *ScanCommandsTestSuite) expectAudit(success bool) {
	s.scanLogs.EXPECT().Insert(gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, entry *shared.ScanLogEntry) {
			s.Equal(success, entry.Success)
			s.NotEmpty(entry.ID)
			s.Equal("cust-42", entry.ScannedBy)
		})
}

func (s *ScanCommandsTestSuite) TestProcessScan_Success() {
	req := s.request()
	s.limiter.EXPECT().Enforce(gomock.Any(), gomock.Any()).Return(nil)
	s.qrCodes.EXPECT().FindByUniqueID(gomock.Any(), "qr-1").Return(s.activeQrCode(), nil)
	s.expectAudit(true)

	result, err := s.uc.ProcessScan(context.Background(), req)

	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.Equal("qr-1", result.Payload.UniqueID)
	s.Equal(scan.TypeCustomerCard, result.QrCode.Type)
}

func (s *ScanCommandsTestSuite) TestProcessScan_PromoCodeSuccess() {
	payload := fmt.Sprintf(`{"type":"PROMO_CODE","qrUniqueId":"qr-promo","timestamp":%d,"version":"1","promoCode":"SUMMER25","businessId":"biz-1"}`,
		s.clock.Now().UnixMilli())
	req := commands.ScanRequest{
		RawPayload: json.RawMessage(payload),
		BusinessID: "biz-1",
		IP:         "10.0.0.9",
	}
	qr := &shared.QrCode{
		ID:       uuid.New(),
		UniqueID: "qr-promo",
		Type:     scan.TypePromoCode,
		Status:   scan.StatusActive,
	}

	s.limiter.EXPECT().Enforce(gomock.Any(), gomock.Cond(func(p ratelimit.Params) bool {
		return p.ScanType == scan.TypePromoCode && p.CustomerID == ""
	})).Return(nil)
	s.qrCodes.EXPECT().FindByUniqueID(gomock.Any(), "qr-promo").Return(qr, nil)
	s.scanLogs.EXPECT().Insert(gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, entry *shared.ScanLogEntry) {
			s.True(entry.Success)
			s.Equal("ip:10.0.0.9", entry.ScannedBy)
			s.Require().NotNil(entry.PromoCodeID)
			s.Equal("SUMMER25", *entry.PromoCodeID)
		})

	result, err := s.uc.ProcessScan(context.Background(), req)

	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.Equal("SUMMER25", result.Payload.PromoCode)
}

func (s *ScanCommandsTestSuite) TestProcessScan_InvalidPayloadSkipsEverything() {
	req := s.request()
	req.RawPayload = json.RawMessage(`{"type":"CUSTOMER_CARD"}`)
	// No limiter or repository expectations: validation failure stops the pipeline.
	s.expectAudit(false)

	result, err := s.uc.ProcessScan(context.Background(), req)

	s.Require().Error(err)
	s.Nil(result)
	s.Equal(errs.KindValidation, errs.KindOf(err))
}

func (s *ScanCommandsTestSuite) TestProcessScan_RateLimited() {
	req := s.request()
	s.limiter.EXPECT().Enforce(gomock.Any(), gomock.Any()).Return(errs.RateLimited(60))
	s.expectAudit(false)

	result, err := s.uc.ProcessScan(context.Background(), req)

	s.Require().Error(err)
	s.Nil(result)
	s.Equal(errs.KindRateLimit, errs.KindOf(err))
}

func (s *ScanCommandsTestSuite) TestProcessScan_RateLimitParamsCarryIdentity() {
	req := s.request()
	s.limiter.EXPECT().Enforce(gomock.Any(), gomock.Cond(func(p ratelimit.Params) bool {
		return p.BusinessID == "biz-1" && p.CustomerID == "cust-42" &&
			p.ScanType == scan.TypeCustomerCard && p.IP == "10.0.0.9"
	})).Return(nil)
	s.qrCodes.EXPECT().FindByUniqueID(gomock.Any(), "qr-1").Return(s.activeQrCode(), nil)
	s.expectAudit(true)

	_, err := s.uc.ProcessScan(context.Background(), req)
	s.Require().NoError(err)
}

func (s *ScanCommandsTestSuite) TestProcessScan_UnknownCode() {
	req := s.request()
	s.limiter.EXPECT().Enforce(gomock.Any(), gomock.Any()).Return(nil)
	s.qrCodes.EXPECT().FindByUniqueID(gomock.Any(), "qr-1").
		Return(nil, errs.BusinessLogic("qr code not recognized: qr-1", "This QR code is not recognized."))
	s.expectAudit(false)

	result, err := s.uc.ProcessScan(context.Background(), req)

	s.Require().Error(err)
	s.Nil(result)
	s.Equal(errs.KindBusinessLogic, errs.KindOf(err))
}

func (s *ScanCommandsTestSuite) TestProcessScan_StoredSignatureIsVerified() {
	req := s.request()
	sig := "stored-signature"
	qr := s.activeQrCode()
	qr.Signature = &sig

	s.limiter.EXPECT().Enforce(gomock.Any(), gomock.Any()).Return(nil)
	s.qrCodes.EXPECT().FindByUniqueID(gomock.Any(), "qr-1").Return(qr, nil)
	s.signer.EXPECT().Verify(sig, "qr-1", "CUSTOMER_CARD").Return(nil)
	s.expectAudit(true)

	_, err := s.uc.ProcessScan(context.Background(), req)
	s.Require().NoError(err)
}

func (s *ScanCommandsTestSuite) TestProcessScan_SignatureMismatch() {
	req := s.request()
	sig := "tampered"
	qr := s.activeQrCode()
	qr.Signature = &sig

	s.limiter.EXPECT().Enforce(gomock.Any(), gomock.Any()).Return(nil)
	s.qrCodes.EXPECT().FindByUniqueID(gomock.Any(), "qr-1").Return(qr, nil)
	s.signer.EXPECT().Verify(sig, "qr-1", "CUSTOMER_CARD").Return(errs.New("invalid qr signature"))
	s.expectAudit(false)

	result, err := s.uc.ProcessScan(context.Background(), req)

	s.Require().Error(err)
	s.Nil(result)
	s.Equal(errs.KindSecurity, errs.KindOf(err))
}

func (s *ScanCommandsTestSuite) TestProcessScan_RevokedCode() {
	req := s.request()
	qr := s.activeQrCode()
	qr.Status = scan.StatusRevoked

	s.limiter.EXPECT().Enforce(gomock.Any(), gomock.Any()).Return(nil)
	s.qrCodes.EXPECT().FindByUniqueID(gomock.Any(), "qr-1").Return(qr, nil)
	s.expectAudit(false)

	_, err := s.uc.ProcessScan(context.Background(), req)

	s.Require().Error(err)
	s.Equal(errs.KindSecurity, errs.KindOf(err))
}

func (s *ScanCommandsTestSuite) TestProcessScan_ExpiredStatus() {
	req := s.request()
	qr := s.activeQrCode()
	qr.Status = scan.StatusExpired

	s.limiter.EXPECT().Enforce(gomock.Any(), gomock.Any()).Return(nil)
	s.qrCodes.EXPECT().FindByUniqueID(gomock.Any(), "qr-1").Return(qr, nil)
	s.expectAudit(false)

	_, err := s.uc.ProcessScan(context.Background(), req)

	s.Require().Error(err)
	s.Equal(errs.KindExpiration, errs.KindOf(err))
}

func (s *ScanCommandsTestSuite) TestProcessScan_PastExpiryIsMarkedExpired() {
	req := s.request()
	qr := s.activeQrCode()
	past := s.clock.Now().Add(-time.Hour)
	qr.ExpiryDate = &past

	s.limiter.EXPECT().Enforce(gomock.Any(), gomock.Any()).Return(nil)
	s.qrCodes.EXPECT().FindByUniqueID(gomock.Any(), "qr-1").Return(qr, nil)

	txRepo := sharedmock.NewMockQrCodeRepository(s.ctrl)
	txRepo.EXPECT().UpdateStatus(gomock.Any(), "qr-1", scan.StatusExpired).Return(nil)
	tx := sharedmock.NewMockTx(s.ctrl)
	tx.EXPECT().QrCodes().Return(txRepo)
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		})
	s.expectAudit(false)

	_, err := s.uc.ProcessScan(context.Background(), req)

	s.Require().Error(err)
	s.Equal(errs.KindExpiration, errs.KindOf(err))
}

func (s *ScanCommandsTestSuite) TestProcessScan_ExpiryBookkeepingFailureStillExpires() {
	req := s.request()
	qr := s.activeQrCode()
	past := s.clock.Now().Add(-time.Hour)
	qr.ExpiryDate = &past

	s.limiter.EXPECT().Enforce(gomock.Any(), gomock.Any()).Return(nil)
	s.qrCodes.EXPECT().FindByUniqueID(gomock.Any(), "qr-1").Return(qr, nil)
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		Return(errs.Database(errs.New("connection refused"), "uow"))
	s.expectAudit(false)

	_, err := s.uc.ProcessScan(context.Background(), req)

	s.Require().Error(err)
	s.Equal(errs.KindExpiration, errs.KindOf(err), "bookkeeping failure must not mask the expiration")
}
