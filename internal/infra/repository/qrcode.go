package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"qr-loyalty-service/internal/domain/scan"
	"qr-loyalty-service/internal/infra/db"
	"qr-loyalty-service/internal/infra/retry"
	"qr-loyalty-service/internal/pkg/errs"
	"qr-loyalty-service/internal/pkg/pgconv"
	"qr-loyalty-service/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const pgErrCodeUniqueViolation = "23505"

// QrCodeRepository is the primary scan data access path. Every operation
// runs under the retry executor; failures come back as Database-kind
// errors carrying the operation name, already reported to the log sink.
type QrCodeRepository struct {
	db       db.DBTX
	executor *retry.Executor
	logger   *slog.Logger
}

// NewQrCodeRepository wraps every operation with the retry executor.
func NewQrCodeRepository(dbtx db.DBTX, executor *retry.Executor, logger *slog.Logger) *QrCodeRepository {
	return &QrCodeRepository{db: dbtx, executor: executor, logger: logger}
}

// NewTxQrCodeRepository binds to an open transaction. No per-operation
// retry: a transient failure aborts the transaction and the unit of work
// retries it as a whole.
func NewTxQrCodeRepository(dbtx db.DBTX, logger *slog.Logger) *QrCodeRepository {
	return &QrCodeRepository{db: dbtx, logger: logger}
}

func (r *QrCodeRepository) do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	if r.executor == nil {
		return fn(ctx)
	}
	return r.executor.Do(ctx, op, fn)
}

func doValue[T any](r *QrCodeRepository, ctx context.Context, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	if r.executor == nil {
		return fn(ctx)
	}
	return retry.DoValue(r.executor, ctx, op, fn)
}

const qrCodeColumns = `id, unique_id, type, data, customer_id, business_id, status, expiry_date, signature, created_at, updated_at`

func (r *QrCodeRepository) FindByUniqueID(ctx context.Context, uniqueID string) (*shared.QrCode, error) {
	const op = "qr_code.find_by_unique_id"

	qr, err := doValue(r, ctx, op, func(ctx context.Context) (*shared.QrCode, error) {
		row := r.db.QueryRow(ctx,
			`SELECT `+qrCodeColumns+` FROM qr_codes WHERE unique_id = $1`, uniqueID)
		return scanQrCodeRow(row)
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.BusinessLogic("qr code not found: "+uniqueID, "This QR code is not recognized.").
				WithContext("unique_id", uniqueID)
		}
		return nil, r.dbError(err, op, uniqueID)
	}
	return qr, nil
}

func (r *QrCodeRepository) Create(ctx context.Context, qr *shared.QrCode) error {
	const op = "qr_code.create"

	err := r.do(ctx, op, func(ctx context.Context) error {
		_, execErr := r.db.Exec(ctx, `
			INSERT INTO qr_codes (id, unique_id, type, data, customer_id, business_id, status, expiry_date, signature, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`,
			qr.ID, qr.UniqueID, string(qr.Type), qr.Data,
			pgconv.StringPtrToPgtype(qr.CustomerID),
			pgconv.StringPtrToPgtype(qr.BusinessID),
			string(qr.Status),
			pgconv.TimePtrToPgtype(qr.ExpiryDate),
			pgconv.StringPtrToPgtype(qr.Signature),
			pgconv.TimeToPgtype(qr.CreatedAt))
		return execErr
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return errs.BusinessLogic("qr code already exists: "+qr.UniqueID, "This QR code already exists.").
				WithContext("unique_id", qr.UniqueID)
		}
		return r.dbError(err, op, qr.UniqueID)
	}
	return nil
}

func (r *QrCodeRepository) UpdateStatus(ctx context.Context, uniqueID string, status scan.Status) error {
	const op = "qr_code.update_status"

	err := r.do(ctx, op, func(ctx context.Context) error {
		tag, execErr := r.db.Exec(ctx,
			`UPDATE qr_codes SET status = $1, updated_at = now() WHERE unique_id = $2`,
			string(status), uniqueID)
		if execErr != nil {
			return execErr
		}
		if tag.RowsAffected() == 0 {
			return errs.BusinessLogic("qr code not found: "+uniqueID, "This QR code is not recognized.").
				WithContext("unique_id", uniqueID)
		}
		return nil
	})
	if err != nil {
		if _, ok := errs.AsAppError(err); ok {
			return err
		}
		return r.dbError(err, op, uniqueID)
	}
	return nil
}

func (r *QrCodeRepository) UpdateExpiry(ctx context.Context, uniqueID string, expiry time.Time) error {
	const op = "qr_code.update_expiry"

	err := r.do(ctx, op, func(ctx context.Context) error {
		tag, execErr := r.db.Exec(ctx,
			`UPDATE qr_codes SET expiry_date = $1, updated_at = now() WHERE unique_id = $2`,
			pgconv.TimeToPgtype(expiry), uniqueID)
		if execErr != nil {
			return execErr
		}
		if tag.RowsAffected() == 0 {
			return errs.BusinessLogic("qr code not found: "+uniqueID, "This QR code is not recognized.").
				WithContext("unique_id", uniqueID)
		}
		return nil
	})
	if err != nil {
		if _, ok := errs.AsAppError(err); ok {
			return err
		}
		return r.dbError(err, op, uniqueID)
	}
	return nil
}

// dbError wraps, tags with the operation, and reports to the internal
// sink before the error leaves the repository.
func (r *QrCodeRepository) dbError(err error, op, uniqueID string) error {
	if appErr, ok := errs.AsAppError(err); ok && appErr.Kind == errs.KindDatabase {
		// Already classified (e.g. breaker open); keep the original context.
		errs.Report(r.logger, appErr.WithContext("unique_id", uniqueID))
		return appErr
	}
	appErr := errs.Database(err, op).WithContext("unique_id", uniqueID)
	errs.Report(r.logger, appErr)
	return appErr
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQrCodeRow(row rowScanner) (*shared.QrCode, error) {
	var (
		qr         shared.QrCode
		qrType     string
		status     string
		customerID pgtype.Text
		businessID pgtype.Text
		expiryDate pgtype.Timestamptz
		signature  pgtype.Text
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)
	if err := row.Scan(&qr.ID, &qr.UniqueID, &qrType, &qr.Data,
		&customerID, &businessID, &status, &expiryDate, &signature,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}
	qr.Type = scan.Type(qrType)
	qr.Status = scan.Status(status)
	qr.CustomerID = pgconv.StringPtrFromPgtype(customerID)
	qr.BusinessID = pgconv.StringPtrFromPgtype(businessID)
	qr.ExpiryDate = pgconv.TimePtrFromPgtype(expiryDate)
	qr.Signature = pgconv.StringPtrFromPgtype(signature)
	qr.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	qr.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &qr, nil
}
