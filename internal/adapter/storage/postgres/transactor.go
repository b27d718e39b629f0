package postgres

import (
	"context"

	"fractional-asset-registry/internal/core/ports"
	"fractional-asset-registry/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

// Transactor implements ports.DBTransactor on a pool.
type Transactor struct {
	pool Pool
}

// NewTransactor creates a Transactor over pool.
func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

// Begin starts a new database transaction.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return t.pool.Begin(ctx)
}

// inTx runs fn inside one transaction and commits only if fn succeeds.
// Begin and commit failures surface as database errors; errors returned by
// fn pass through unchanged so ledger rule violations keep their codes.
func inTx(ctx context.Context, t ports.DBTransactor, fn func(tx pgx.Tx) error) error {
	tx, err := t.Begin(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	return nil
}
