package memory

import (
	"context"
	"fmt"
	"sync"

	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/pkg/apperror"
)

// AssetLedger is an in-process unique-asset ledger implementing
// ports.AssetLedger.
type AssetLedger struct {
	mu        sync.RWMutex
	owners    map[uint64]domain.Address
	approvals map[uint64]domain.Address
}

// NewAssetLedger creates an empty ledger.
func NewAssetLedger() *AssetLedger {
	return &AssetLedger{
		owners:    make(map[uint64]domain.Address),
		approvals: make(map[uint64]domain.Address),
	}
}

func (l *AssetLedger) Mint(_ context.Context, to domain.Address, id uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if to.IsZero() {
		return apperror.ErrInvalidAddress(to.String())
	}
	if _, ok := l.owners[id]; ok {
		return apperror.InternalError(fmt.Errorf("asset %d already minted", id))
	}
	l.owners[id] = to
	return nil
}

func (l *AssetLedger) Burn(_ context.Context, id uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.owners[id]; !ok {
		return apperror.ErrAssetNotFound(id)
	}
	delete(l.owners, id)
	delete(l.approvals, id)
	return nil
}

func (l *AssetLedger) Transfer(_ context.Context, from, to domain.Address, id uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	owner, ok := l.owners[id]
	if !ok {
		return apperror.ErrAssetNotFound(id)
	}
	if owner != from {
		return apperror.ErrNotAssetOwner()
	}
	if to.IsZero() {
		return apperror.ErrInvalidAddress(to.String())
	}
	l.owners[id] = to
	delete(l.approvals, id)
	return nil
}

func (l *AssetLedger) OwnerOf(_ context.Context, id uint64) (domain.Address, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	owner, ok := l.owners[id]
	if !ok {
		return "", apperror.ErrAssetNotFound(id)
	}
	return owner, nil
}

func (l *AssetLedger) Exists(_ context.Context, id uint64) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.owners[id]
	return ok, nil
}

func (l *AssetLedger) Approve(_ context.Context, owner, operator domain.Address, id uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	current, ok := l.owners[id]
	if !ok {
		return apperror.ErrAssetNotFound(id)
	}
	if current != owner {
		return apperror.ErrNotAssetOwner()
	}
	if operator.IsZero() {
		delete(l.approvals, id)
		return nil
	}
	l.approvals[id] = operator
	return nil
}

func (l *AssetLedger) IsApprovedOrOwner(_ context.Context, operator domain.Address, id uint64) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	owner, ok := l.owners[id]
	if !ok {
		return false, apperror.ErrAssetNotFound(id)
	}
	return owner == operator || l.approvals[id] == operator, nil
}
