package memory

import (
	"context"
	"sync"

	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"
	"fractional-asset-registry/pkg/apperror"
)

// ShareLedger is an in-process capped fungible ledger implementing
// ports.ShareLedger.
type ShareLedger struct {
	Name   string
	Symbol string

	mu       sync.RWMutex
	cap      uint64
	supply   uint64
	balances map[domain.Address]uint64
}

// NewShareLedger creates an empty ledger that can never hold more than
// cap units in total.
func NewShareLedger(name, symbol string, cap uint64) *ShareLedger {
	return &ShareLedger{
		Name:     name,
		Symbol:   symbol,
		cap:      cap,
		balances: make(map[domain.Address]uint64),
	}
}

func (l *ShareLedger) Mint(_ context.Context, to domain.Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if to.IsZero() {
		return apperror.ErrInvalidAddress(to.String())
	}
	if amount > l.cap-l.supply {
		return apperror.ErrShareCapExceeded()
	}
	l.supply += amount
	l.balances[to] += amount
	return nil
}

func (l *ShareLedger) Burn(_ context.Context, from domain.Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.balances[from] < amount {
		return apperror.ErrInsufficientShares()
	}
	l.debit(from, amount)
	l.supply -= amount
	return nil
}

func (l *ShareLedger) Transfer(_ context.Context, from, to domain.Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if to.IsZero() {
		return apperror.ErrInvalidAddress(to.String())
	}
	if l.balances[from] < amount {
		return apperror.ErrInsufficientShares()
	}
	l.debit(from, amount)
	l.balances[to] += amount
	return nil
}

func (l *ShareLedger) BalanceOf(_ context.Context, holder domain.Address) (uint64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[holder], nil
}

func (l *ShareLedger) TotalSupply(_ context.Context) (uint64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.supply, nil
}

func (l *ShareLedger) Cap() uint64 {
	return l.cap
}

func (l *ShareLedger) debit(holder domain.Address, amount uint64) {
	l.balances[holder] -= amount
	if l.balances[holder] == 0 {
		delete(l.balances, holder)
	}
}

// ShareLedgers opens in-process share ledgers for new vaults.
type ShareLedgers struct{}

// NewShareLedger implements ports.ShareLedgerFactory.
func (ShareLedgers) NewShareLedger(name, symbol string, cap uint64) ports.ShareLedger {
	return NewShareLedger(name, symbol, cap)
}
