package components

import (
	"context"
	"fmt"
	"log/slog"

	"qr-loyalty-service/internal/infra/db"
	"qr-loyalty-service/internal/infra/ratelimit"
	"qr-loyalty-service/internal/pkg/clock"
	"qr-loyalty-service/internal/pkg/config"
	"qr-loyalty-service/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RateLimitModule = fx.Module("ratelimit",
	fx.Provide(
		NewCounterStore,
		NewRateLimiter,
		func(l *ratelimit.Limiter) commands.RateLimiter { return l },
	),
	fx.Invoke(startCleanup),
)

// NewCounterStore selects the counter backend. Mongo gets its own
// connection here so deployments on the postgres or memory backends
// never dial it.
func NewCounterStore(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool, clk clock.Clock) (ratelimit.CounterStore, error) {
	switch cfg.RateLimit.Backend {
	case config.BackendMemory:
		return ratelimit.NewMemoryStore(clk), nil
	case config.BackendPostgres:
		return ratelimit.NewPostgresStore(db.DBTX(pool), clk), nil
	case config.BackendMongo:
		database, cleanup, err := db.ConnectMongo(cfg.Mongo)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				if cleanup != nil {
					cleanup()
				}
				return nil
			},
		})
		return ratelimit.NewMongoStore(database, clk), nil
	default:
		return nil, fmt.Errorf("unknown rate limit backend: %q", cfg.RateLimit.Backend)
	}
}

func NewRateLimiter(cfg config.Config, store ratelimit.CounterStore, clk clock.Clock, logger *slog.Logger) (*ratelimit.Limiter, error) {
	return ratelimit.NewLimiter(cfg.RateLimit, store, clk, logger)
}

func startCleanup(lc fx.Lifecycle, cfg config.Config, limiter *ratelimit.Limiter) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go limiter.RunCleanup(ctx, cfg.RateLimit.CleanupInterval)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
