package repository

import (
	"context"
	"log/slog"

	"qr-loyalty-service/internal/infra/db"
	"qr-loyalty-service/internal/infra/retry"
	"qr-loyalty-service/internal/pkg/pgconv"
	"qr-loyalty-service/internal/usecase/shared"
)

// ScanLogRepository writes the append-only scan audit trail. Inserts are
// side-channel bookkeeping: a failure is logged and swallowed so a
// monitoring hiccup can never fail a scan that already succeeded.
type ScanLogRepository struct {
	db       db.DBTX
	executor *retry.Executor
	logger   *slog.Logger
}

func NewScanLogRepository(dbtx db.DBTX, executor *retry.Executor, logger *slog.Logger) *ScanLogRepository {
	return &ScanLogRepository{db: dbtx, executor: executor, logger: logger}
}

func (r *ScanLogRepository) Insert(ctx context.Context, entry *shared.ScanLogEntry) {
	const op = "scan_log.insert"

	err := r.executor.Do(ctx, op, func(ctx context.Context) error {
		_, execErr := r.db.Exec(ctx, `
			INSERT INTO scan_logs (id, scan_type, scanned_by, scanned_data, success, customer_id, program_id, promo_code_id, points_awarded, error_message, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			entry.ID, string(entry.ScanType), entry.ScannedBy, entry.ScannedData, entry.Success,
			pgconv.StringPtrToPgtype(entry.CustomerID),
			pgconv.StringPtrToPgtype(entry.ProgramID),
			pgconv.StringPtrToPgtype(entry.PromoCodeID),
			pgconv.Int32PtrToPgtype(entry.PointsAwarded),
			pgconv.StringPtrToPgtype(entry.ErrorMessage),
			pgconv.TimeToPgtype(entry.CreatedAt))
		return execErr
	})
	if err != nil {
		r.logger.Warn("scan log write failed, dropping entry",
			"scan_type", string(entry.ScanType),
			"scanned_by", entry.ScannedBy,
			"error", err.Error())
	}
}
