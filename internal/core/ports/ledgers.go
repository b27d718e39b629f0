package ports

import (
	"context"

	"fractional-asset-registry/internal/core/domain"
)

// AssetLedger is the unique-asset bookkeeping the registry builds on.
// It records identity and ownership only; fees, freezes and policy live
// in the registry.
type AssetLedger interface {
	Mint(ctx context.Context, to domain.Address, id uint64) error
	Burn(ctx context.Context, id uint64) error
	Transfer(ctx context.Context, from, to domain.Address, id uint64) error
	OwnerOf(ctx context.Context, id uint64) (domain.Address, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	// Approve lets operator move id on the owner's behalf. A zero operator
	// clears the approval. Approvals are cleared on every transfer.
	Approve(ctx context.Context, owner, operator domain.Address, id uint64) error
	IsApprovedOrOwner(ctx context.Context, operator domain.Address, id uint64) (bool, error)
}

// ShareLedger is the fungible-share bookkeeping of one vault, with a hard
// supply cap.
type ShareLedger interface {
	Mint(ctx context.Context, to domain.Address, amount uint64) error
	Burn(ctx context.Context, from domain.Address, amount uint64) error
	Transfer(ctx context.Context, from, to domain.Address, amount uint64) error
	BalanceOf(ctx context.Context, holder domain.Address) (uint64, error)
	TotalSupply(ctx context.Context) (uint64, error)
	Cap() uint64
}

// ShareLedgerFactory opens a fresh share ledger for a new vault.
type ShareLedgerFactory interface {
	NewShareLedger(name, symbol string, cap uint64) ShareLedger
}

// FundsLedger holds the balances payments, fees, royalties and vault
// liquidity are settled in. Transfer hands funds to the recipient and is
// a suspension point: recipients may observe the call and react to it.
type FundsLedger interface {
	Transfer(ctx context.Context, from, to domain.Address, amount uint64) error
	BalanceOf(ctx context.Context, holder domain.Address) (uint64, error)
	Credit(ctx context.Context, to domain.Address, amount uint64) error
}

type compensationKey struct{}

// WithCompensation marks ctx as carrying a rollback step. Ledgers must not
// hand control to recipients while undoing a transfer.
func WithCompensation(ctx context.Context) context.Context {
	return context.WithValue(ctx, compensationKey{}, true)
}

// IsCompensation reports whether ctx was marked by WithCompensation.
func IsCompensation(ctx context.Context) bool {
	v, _ := ctx.Value(compensationKey{}).(bool)
	return v
}
