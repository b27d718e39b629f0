package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fractional-asset-registry/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// IdempotencyRepo implements ports.IdempotencyRepository. Rows older than
// the retention window are treated as absent and may be overwritten, so a
// key answers repeats for exactly as long as the Redis copy does.
type IdempotencyRepo struct {
	pool      Pool
	retention time.Duration
	now       func() time.Time
}

// NewIdempotencyRepo creates an IdempotencyRepo keeping responses for
// retention.
func NewIdempotencyRepo(pool Pool, retention time.Duration) *IdempotencyRepo {
	return &IdempotencyRepo{pool: pool, retention: retention, now: time.Now}
}

// Create stores a response. Within the window the first response stored for
// a key wins; an expired row is replaced.
func (r *IdempotencyRepo) Create(ctx context.Context, log *domain.IdempotencyLog) error {
	query := `INSERT INTO idempotency_logs (key, status_code, response_json, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO UPDATE
		SET status_code = EXCLUDED.status_code,
		    response_json = EXCLUDED.response_json,
		    created_at = EXCLUDED.created_at
		WHERE idempotency_logs.created_at < $5`

	expired := log.CreatedAt.Add(-r.retention)
	_, err := r.pool.Exec(ctx, query, log.Key, log.StatusCode, log.ResponseJSON, log.CreatedAt, expired)
	if err != nil {
		return fmt.Errorf("insert idempotency log: %w", err)
	}
	return nil
}

// Get fetches a live response by key; nil, nil when absent or expired.
func (r *IdempotencyRepo) Get(ctx context.Context, key string) (*domain.IdempotencyLog, error) {
	query := `SELECT key, status_code, response_json, created_at FROM idempotency_logs
		WHERE key = $1 AND created_at >= $2`

	log := &domain.IdempotencyLog{}
	cutoff := r.now().UTC().Add(-r.retention)
	err := r.pool.QueryRow(ctx, query, key, cutoff).Scan(&log.Key, &log.StatusCode, &log.ResponseJSON, &log.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get idempotency log: %w", err)
	}
	return log, nil
}
