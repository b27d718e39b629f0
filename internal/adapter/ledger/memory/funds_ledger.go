package memory

import (
	"context"
	"fmt"
	"sync"

	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"
	"fractional-asset-registry/pkg/apperror"
)

// ReceiveHook runs after an account is credited by a transfer, with the
// context of the caller that moved the funds. Returning an error reverts
// that transfer and fails it.
//
// The hook runs while the paying registry or vault still holds its guard.
// Any call back into those components must pass the ctx it was given, so
// the guard recognises the re-entry and rejects it with STATE_008. A call
// made on a fresh context (context.Background and the like) waits for the
// guard and deadlocks the transfer that invoked the hook.
type ReceiveHook func(ctx context.Context, from domain.Address, amount uint64) error

// FundsLedger is an in-process funds ledger implementing ports.FundsLedger.
// Accounts can carry a ReceiveHook, which models recipients that react to
// incoming payments, including by calling back into the payer.
type FundsLedger struct {
	mu       sync.Mutex
	balances map[domain.Address]uint64
	hooks    map[domain.Address]ReceiveHook
}

// NewFundsLedger creates an empty ledger.
func NewFundsLedger() *FundsLedger {
	return &FundsLedger{
		balances: make(map[domain.Address]uint64),
		hooks:    make(map[domain.Address]ReceiveHook),
	}
}

// OnReceive installs hook for account. A nil hook removes it.
func (l *FundsLedger) OnReceive(account domain.Address, hook ReceiveHook) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if hook == nil {
		delete(l.hooks, account)
		return
	}
	l.hooks[account] = hook
}

func (l *FundsLedger) Transfer(ctx context.Context, from, to domain.Address, amount uint64) error {
	if amount == 0 || from == to {
		return nil
	}
	if to.IsZero() {
		return apperror.ErrInvalidAddress(to.String())
	}

	l.mu.Lock()
	if l.balances[from] < amount {
		l.mu.Unlock()
		return apperror.ErrInsufficientBalance()
	}
	if _, ok := domain.CheckedAdd(l.balances[to], amount); !ok {
		l.mu.Unlock()
		return apperror.ErrArithmeticOverflow()
	}
	l.balances[from] -= amount
	l.balances[to] += amount
	hook := l.hooks[to]
	l.mu.Unlock()

	if hook == nil || ports.IsCompensation(ctx) {
		return nil
	}
	if err := hook(ctx, from, amount); err != nil {
		l.mu.Lock()
		defer l.mu.Unlock()
		if l.balances[to] < amount {
			return fmt.Errorf("revert transfer to %s after hook failure: %w", to, apperror.ErrInsufficientBalance())
		}
		l.balances[to] -= amount
		l.balances[from] += amount
		return err
	}
	return nil
}

func (l *FundsLedger) BalanceOf(_ context.Context, holder domain.Address) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[holder], nil
}

func (l *FundsLedger) Credit(_ context.Context, to domain.Address, amount uint64) error {
	if to.IsZero() {
		return apperror.ErrInvalidAddress(to.String())
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	sum, ok := domain.CheckedAdd(l.balances[to], amount)
	if !ok {
		return apperror.ErrArithmeticOverflow()
	}
	l.balances[to] = sum
	return nil
}
