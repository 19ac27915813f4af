package ratelimit

import (
	"context"
	"time"

	"qr-loyalty-service/internal/infra"
	"qr-loyalty-service/internal/infra/db"
	"qr-loyalty-service/internal/pkg/clock"
	"qr-loyalty-service/internal/pkg/pgconv"
)

// PostgresStore is the relational fallback: an upsert-on-conflict counter
// table shared by all instances. reset_time is stored as epoch millis.
type PostgresStore struct {
	db    db.DBTX
	clock clock.Clock
}

func NewPostgresStore(dbtx db.DBTX, clk clock.Clock) *PostgresStore {
	return &PostgresStore{db: dbtx, clock: clk}
}

// The CASE branches make window rollover part of the same atomic upsert:
// an expired row restarts at 1, a live row increments.
const incrementQuery = `
INSERT INTO scan_rate_limits (rate_key, count, reset_time, updated_at)
VALUES ($1, 1, $2, now())
ON CONFLICT (rate_key) DO UPDATE SET
    count = CASE WHEN scan_rate_limits.reset_time <= $3 THEN 1 ELSE scan_rate_limits.count + 1 END,
    reset_time = CASE WHEN scan_rate_limits.reset_time <= $3 THEN $2 ELSE scan_rate_limits.reset_time END,
    updated_at = now()
RETURNING count, reset_time
`

func (s *PostgresStore) Increment(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	now := s.clock.Now()
	nowMillis := now.UnixMilli()
	resetMillis := now.Add(window).UnixMilli()

	var count int
	var storedReset int64
	err := s.db.QueryRow(ctx, incrementQuery, key, resetMillis, nowMillis).Scan(&count, &storedReset)
	if err != nil {
		return 0, time.Time{}, infra.WrapRepoErr("failed to increment rate limit counter", err)
	}
	return count, time.UnixMilli(storedReset), nil
}

func (s *PostgresStore) Peek(ctx context.Context, key string) (int, time.Time, error) {
	nowMillis := s.clock.Now().UnixMilli()

	var count int
	var storedReset int64
	err := s.db.QueryRow(ctx,
		`SELECT count, reset_time FROM scan_rate_limits WHERE rate_key = $1 AND reset_time > $2`,
		key, nowMillis).Scan(&count, &storedReset)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, time.Time{}, nil
		}
		return 0, time.Time{}, infra.WrapRepoErr("failed to read rate limit counter", err)
	}
	return count, time.UnixMilli(storedReset), nil
}

func (s *PostgresStore) Reset(ctx context.Context, key string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM scan_rate_limits WHERE rate_key = $1`, key); err != nil {
		return infra.WrapRepoErr("failed to reset rate limit counter", err)
	}
	return nil
}

func (s *PostgresStore) Cleanup(ctx context.Context) (int64, error) {
	nowMillis := s.clock.Now().UnixMilli()
	tag, err := s.db.Exec(ctx, `DELETE FROM scan_rate_limits WHERE reset_time <= $1`, nowMillis)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to clean up rate limit counters", err)
	}
	return tag.RowsAffected(), nil
}
