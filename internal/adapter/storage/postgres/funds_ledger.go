package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"
	"fractional-asset-registry/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FundsLedger implements ports.FundsLedger on the fund_balances table.
// Balances are BIGINT, so no account may hold more than math.MaxInt64.
//
// Each movement runs in its own database transaction and locks the rows it
// touches in account order, so concurrent transfers between the same pair
// cannot deadlock.
type FundsLedger struct {
	pool       Pool
	transactor ports.DBTransactor
}

// NewFundsLedger creates a new FundsLedger.
func NewFundsLedger(pool Pool, transactor ports.DBTransactor) *FundsLedger {
	return &FundsLedger{pool: pool, transactor: transactor}
}

// Transfer moves amount from one account to another.
func (l *FundsLedger) Transfer(ctx context.Context, from, to domain.Address, amount uint64) error {
	if amount == 0 || from == to {
		return nil
	}
	if to.IsZero() {
		return apperror.ErrInvalidAddress(to.String())
	}
	if amount > math.MaxInt64 {
		return apperror.ErrArithmeticOverflow()
	}

	return inTx(ctx, l.transactor, func(tx pgx.Tx) error {
		if err := ensureAccounts(ctx, tx, from, to); err != nil {
			return apperror.ErrDatabaseError(err)
		}

		accounts := []domain.Address{from, to}
		sort.Slice(accounts, func(i, j int) bool { return accounts[i].String() < accounts[j].String() })
		balances := make(map[domain.Address]int64, 2)
		for _, acct := range accounts {
			bal, err := lockBalance(ctx, tx, acct)
			if err != nil {
				return apperror.ErrDatabaseError(err)
			}
			balances[acct] = bal
		}

		delta := int64(amount)
		if balances[from] < delta {
			return apperror.ErrInsufficientBalance()
		}
		if balances[to] > math.MaxInt64-delta {
			return apperror.ErrArithmeticOverflow()
		}

		if err := addBalance(ctx, tx, from, -delta); err != nil {
			return apperror.ErrDatabaseError(err)
		}
		if err := addBalance(ctx, tx, to, delta); err != nil {
			return apperror.ErrDatabaseError(err)
		}
		fromAcct := from.String()
		if err := recordMovement(ctx, tx, &fromAcct, to, delta, ports.IsCompensation(ctx)); err != nil {
			return apperror.ErrDatabaseError(err)
		}
		return nil
	})
}

// BalanceOf returns the balance of holder; unknown accounts hold zero.
func (l *FundsLedger) BalanceOf(ctx context.Context, holder domain.Address) (uint64, error) {
	query := `SELECT balance FROM fund_balances WHERE account = $1`

	var bal int64
	err := l.pool.QueryRow(ctx, query, holder.String()).Scan(&bal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, apperror.ErrDatabaseError(fmt.Errorf("get balance: %w", err))
	}
	return uint64(bal), nil
}

// Credit mints amount into an account.
func (l *FundsLedger) Credit(ctx context.Context, to domain.Address, amount uint64) error {
	if to.IsZero() {
		return apperror.ErrInvalidAddress(to.String())
	}
	if amount > math.MaxInt64 {
		return apperror.ErrArithmeticOverflow()
	}
	if amount == 0 {
		return nil
	}

	return inTx(ctx, l.transactor, func(tx pgx.Tx) error {
		if err := ensureAccounts(ctx, tx, to); err != nil {
			return apperror.ErrDatabaseError(err)
		}
		bal, err := lockBalance(ctx, tx, to)
		if err != nil {
			return apperror.ErrDatabaseError(err)
		}
		delta := int64(amount)
		if bal > math.MaxInt64-delta {
			return apperror.ErrArithmeticOverflow()
		}
		if err := addBalance(ctx, tx, to, delta); err != nil {
			return apperror.ErrDatabaseError(err)
		}
		if err := recordMovement(ctx, tx, nil, to, delta, false); err != nil {
			return apperror.ErrDatabaseError(err)
		}
		return nil
	})
}

// ensureAccounts creates zero-balance rows for accounts seen the first time.
func ensureAccounts(ctx context.Context, tx pgx.Tx, accounts ...domain.Address) error {
	query := `INSERT INTO fund_balances (account, balance) VALUES ($1, 0) ON CONFLICT (account) DO NOTHING`
	for _, acct := range accounts {
		if _, err := tx.Exec(ctx, query, acct.String()); err != nil {
			return fmt.Errorf("ensure account: %w", err)
		}
	}
	return nil
}

// lockBalance reads a balance with pessimistic locking.
// This MUST be called within a transaction.
func lockBalance(ctx context.Context, tx pgx.Tx, acct domain.Address) (int64, error) {
	query := `SELECT balance FROM fund_balances WHERE account = $1 FOR UPDATE`

	var bal int64
	if err := tx.QueryRow(ctx, query, acct.String()).Scan(&bal); err != nil {
		return 0, fmt.Errorf("lock balance: %w", err)
	}
	return bal, nil
}

func addBalance(ctx context.Context, tx pgx.Tx, acct domain.Address, delta int64) error {
	query := `UPDATE fund_balances SET balance = balance + $1, updated_at = NOW() WHERE account = $2`

	tag, err := tx.Exec(ctx, query, delta, acct.String())
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account not found: %s", acct)
	}
	return nil
}

func recordMovement(ctx context.Context, tx pgx.Tx, from *string, to domain.Address, amount int64, compensation bool) error {
	query := `INSERT INTO fund_movements (id, from_account, to_account, amount, compensation, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, query, uuid.New(), from, to.String(), amount, compensation, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert fund movement: %w", err)
	}
	return nil
}
