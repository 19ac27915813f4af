package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"qr-loyalty-service/internal/infra/repository"
	"qr-loyalty-service/internal/infra/retry"
	"qr-loyalty-service/internal/pkg/config"
	"qr-loyalty-service/internal/pkg/errs"
	"qr-loyalty-service/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool        *pgxpool.Pool
	logger      *slog.Logger
	maxRetries  int
	baseBackoff time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, cfg config.RetryConfig, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{
		pool:        pool,
		logger:      logger,
		maxRetries:  cfg.MaxAttempts,
		baseBackoff: cfg.BaseBackoff,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes.
// The whole transaction retries on serialization/deadlock failures;
// repositories inside it do not retry individual statements.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx, logger: u.logger}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !u.shouldRetry(err, attempt) {
			if attempt == u.maxRetries {
				u.logger.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := retry.Backoff(attempt, u.baseBackoff)

		u.logger.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) shouldRetry(err error, attempt int) bool {
	return retry.IsTransient(err) && attempt < u.maxRetries
}

type pgTx struct {
	dbtx   pgx.Tx
	logger *slog.Logger

	// Lazy-initialized repositories
	qrCodeRepo shared.QrCodeRepository
}

func (t *pgTx) QrCodes() shared.QrCodeRepository {
	if t.qrCodeRepo == nil {
		t.qrCodeRepo = repository.NewTxQrCodeRepository(t.dbtx, t.logger)
	}
	return t.qrCodeRepo
}
