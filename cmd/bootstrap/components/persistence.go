package components

import (
	"log/slog"

	"qr-loyalty-service/internal/infra/db"
	"qr-loyalty-service/internal/infra/repository"
	"qr-loyalty-service/internal/infra/retry"
	"qr-loyalty-service/internal/infra/uow"
	"qr-loyalty-service/internal/pkg/clock"
	"qr-loyalty-service/internal/pkg/config"
	"qr-loyalty-service/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		NewRetryExecutor,
		// UnitOfWork
		fx.Annotate(
			NewUnitOfWork,
			fx.As(new(shared.UnitOfWork)),
		),
		// QrCode
		fx.Annotate(
			repository.NewQrCodeRepository,
			fx.As(new(shared.QrCodeRepository)),
		),
		// ScanLog
		fx.Annotate(
			repository.NewScanLogRepository,
			fx.As(new(shared.ScanLogWriter)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewRetryExecutor(cfg config.Config, clk clock.Clock, logger *slog.Logger) *retry.Executor {
	return retry.NewExecutor(cfg.Retry, clk, logger)
}

func NewUnitOfWork(pool *pgxpool.Pool, cfg config.Config, logger *slog.Logger) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, cfg.Retry, logger)
}
