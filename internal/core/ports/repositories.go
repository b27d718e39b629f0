package ports

import (
	"context"

	"fractional-asset-registry/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// EventRepository persists emitted notifications for history queries.
type EventRepository interface {
	Save(ctx context.Context, events []domain.Event) error
	List(ctx context.Context, filter domain.EventFilter) ([]domain.Event, int64, error)
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// IdempotencyRepository defines persistence for idempotency logs (DB backup).
type IdempotencyRepository interface {
	Create(ctx context.Context, log *domain.IdempotencyLog) error
	Get(ctx context.Context, key string) (*domain.IdempotencyLog, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
