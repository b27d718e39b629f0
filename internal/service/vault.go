package service

import (
	"context"
	"sync"

	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"
	"fractional-asset-registry/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// VaultService implements ports.FractionalVault for one locked asset.
// Vaults are only built by FactoryService.
type VaultService struct {
	guard   *Guard
	id      uuid.UUID
	address domain.Address
	assetID uint64

	mu   sync.RWMutex
	info domain.VaultInfo

	custodian ports.AssetCustodian
	shares    ports.ShareLedger
	funds     ports.FundsLedger
	policy    ports.TransferPolicy
	roles     ports.RoleManager
	sink      ports.EventSink
	log       zerolog.Logger
}

func newVault(
	info domain.VaultInfo,
	custodian ports.AssetCustodian,
	shares ports.ShareLedger,
	funds ports.FundsLedger,
	policy ports.TransferPolicy,
	roles ports.RoleManager,
	sink ports.EventSink,
	log zerolog.Logger,
) *VaultService {
	return &VaultService{
		guard:     NewGuard("vault"),
		id:        info.ID,
		address:   info.Address,
		assetID:   info.AssetID,
		info:      info,
		custodian: custodian,
		shares:    shares,
		funds:     funds,
		policy:    policy,
		roles:     roles,
		sink:      sink,
		log:       log.With().Str("vault_id", info.ID.String()).Logger(),
	}
}

// open takes custody of the asset and issues the whole cap to the original
// owner. It runs inside the factory's unit of work, which the custody
// transfer joins, so a failed creation undoes the transfer without
// announcing it.
func (v *VaultService) open(ctx context.Context, operator domain.Address) error {
	info := v.snapshot()
	if err := v.custodian.TransferFrom(ctx, operator, info.OriginalOwner, info.Address, info.AssetID); err != nil {
		return err
	}
	return v.shares.Mint(ctx, info.OriginalOwner, info.TotalShares)
}

// ID returns the vault id.
func (v *VaultService) ID() uuid.UUID {
	return v.id
}

// Address returns the vault's own account, which holds custody and
// liquidity.
func (v *VaultService) Address() domain.Address {
	return v.address
}

// Info returns a point-in-time view of the vault.
func (v *VaultService) Info(ctx context.Context) (*domain.VaultInfo, error) {
	supply, err := v.shares.TotalSupply(ctx)
	if err != nil {
		return nil, err
	}
	v.mu.RLock()
	info := v.info
	v.mu.RUnlock()
	info.CirculatingShares = supply
	return &info, nil
}

// BalanceOf returns holder's share balance.
func (v *VaultService) BalanceOf(ctx context.Context, holder domain.Address) (uint64, error) {
	return v.shares.BalanceOf(ctx, holder)
}

// Buy moves amount shares from the original owner to caller at the unit
// price plus the fixed trade fee.
func (v *VaultService) Buy(ctx context.Context, caller domain.Address, amount, payment uint64) (*domain.TradeReceipt, error) {
	var receipt *domain.TradeReceipt
	err := v.run(ctx, func(ctx context.Context, uow *unitOfWork) error {
		info, err := v.tradable()
		if err != nil {
			return err
		}
		if amount == 0 {
			return apperror.ErrZeroAmount()
		}
		if caller == info.OriginalOwner {
			return apperror.ErrOriginalOwnerCannotBuy()
		}
		if d := v.policy.Evaluate(ctx, info.OriginalOwner, caller, info.AssetID); !d.Allowed {
			return apperror.ErrPolicyDenied(string(d.Reason))
		}
		available, err := v.shares.BalanceOf(ctx, info.OriginalOwner)
		if err != nil {
			return err
		}
		if available < amount {
			return apperror.ErrInsufficientShares()
		}

		price, fee, err := tradeAmounts(amount, info.UnitPrice)
		if err != nil {
			return err
		}
		required, ok := domain.CheckedAdd(price, fee)
		if !ok {
			return apperror.ErrArithmeticOverflow()
		}
		if payment < required {
			return apperror.ErrInsufficientPayment(required, payment)
		}

		if err := v.shares.Transfer(ctx, info.OriginalOwner, caller, amount); err != nil {
			return err
		}
		uow.onRollback(func(ctx context.Context) error {
			return v.shares.Transfer(ctx, caller, info.OriginalOwner, amount)
		})

		if err := uow.move(ctx, v.funds, caller, info.Address, payment); err != nil {
			return err
		}
		if err := uow.move(ctx, v.funds, info.Address, info.OriginalOwner, price); err != nil {
			return err
		}
		if err := uow.move(ctx, v.funds, info.Address, info.FeeCollector, fee); err != nil {
			return err
		}
		refund := payment - required
		if err := uow.move(ctx, v.funds, info.Address, caller, refund); err != nil {
			return err
		}

		receipt = &domain.TradeReceipt{VaultID: info.ID, Trader: caller, Amount: amount, Price: price, Fee: fee, Refund: refund}
		uow.emit(v.event(domain.EventSharesBought, caller, map[string]any{
			"amount": amount,
			"price":  price,
			"fee":    fee,
		}))
		return nil
	})
	if err != nil {
		return nil, err
	}

	v.log.Info().
		Str("buyer", caller.String()).
		Uint64("amount", amount).
		Uint64("price", receipt.Price).
		Uint64("fee", receipt.Fee).
		Msg("shares bought")
	return receipt, nil
}

// Sell burns amount of caller's shares and pays the unit price, net of the
// trade fee, out of the vault's liquidity.
func (v *VaultService) Sell(ctx context.Context, caller domain.Address, amount uint64) (*domain.TradeReceipt, error) {
	var receipt *domain.TradeReceipt
	err := v.run(ctx, func(ctx context.Context, uow *unitOfWork) error {
		info, err := v.tradable()
		if err != nil {
			return err
		}
		if amount == 0 {
			return apperror.ErrZeroAmount()
		}
		if d := v.policy.Evaluate(ctx, caller, info.Address, info.AssetID); !d.Allowed {
			return apperror.ErrPolicyDenied(string(d.Reason))
		}
		held, err := v.shares.BalanceOf(ctx, caller)
		if err != nil {
			return err
		}
		if held < amount {
			return apperror.ErrInsufficientShares()
		}

		price, fee, err := tradeAmounts(amount, info.UnitPrice)
		if err != nil {
			return err
		}
		if info.Liquidity < price {
			return apperror.ErrInsufficientLiquidity()
		}
		proceeds := price - fee

		v.adjustLiquidity(uow, func(l uint64) uint64 { return l - price })
		if err := v.shares.Burn(ctx, caller, amount); err != nil {
			return err
		}
		uow.onRollback(func(ctx context.Context) error {
			return v.shares.Mint(ctx, caller, amount)
		})

		if err := uow.move(ctx, v.funds, info.Address, caller, proceeds); err != nil {
			return err
		}
		if err := uow.move(ctx, v.funds, info.Address, info.FeeCollector, fee); err != nil {
			return err
		}

		receipt = &domain.TradeReceipt{VaultID: info.ID, Trader: caller, Amount: amount, Price: price, Fee: fee, Proceeds: proceeds}
		uow.emit(v.event(domain.EventSharesSold, caller, map[string]any{
			"amount":   amount,
			"price":    price,
			"fee":      fee,
			"proceeds": proceeds,
		}))
		return nil
	})
	if err != nil {
		return nil, err
	}

	v.log.Info().
		Str("seller", caller.String()).
		Uint64("amount", amount).
		Uint64("proceeds", receipt.Proceeds).
		Uint64("fee", receipt.Fee).
		Msg("shares sold")
	return receipt, nil
}

// DepositLiquidity adds caller's funds to the pool sells are paid from.
func (v *VaultService) DepositLiquidity(ctx context.Context, caller domain.Address, amount uint64) error {
	return v.run(ctx, func(ctx context.Context, uow *unitOfWork) error {
		info, err := v.tradable()
		if err != nil {
			return err
		}
		if amount == 0 {
			return apperror.ErrZeroAmount()
		}
		if _, ok := domain.CheckedAdd(info.Liquidity, amount); !ok {
			return apperror.ErrArithmeticOverflow()
		}

		v.adjustLiquidity(uow, func(l uint64) uint64 { return l + amount })
		if err := uow.move(ctx, v.funds, caller, info.Address, amount); err != nil {
			return err
		}
		uow.emit(v.event(domain.EventLiquidityDeposited, caller, map[string]any{"amount": amount}))
		return nil
	})
}

// WithdrawLiquidity pays amount of the pool to the original owner or an
// admin. It stays available after redemption so the pool can be drained.
func (v *VaultService) WithdrawLiquidity(ctx context.Context, caller domain.Address, amount uint64) error {
	return v.run(ctx, func(ctx context.Context, uow *unitOfWork) error {
		info := v.snapshot()
		if caller != info.OriginalOwner && !v.roles.HasRole(caller, domain.RoleAdmin) {
			return apperror.ErrMissingRole(string(domain.RoleAdmin))
		}
		if info.Paused {
			return apperror.ErrPaused("vault")
		}
		if amount == 0 {
			return apperror.ErrZeroAmount()
		}
		if info.Liquidity < amount {
			return apperror.ErrInsufficientLiquidity()
		}

		v.adjustLiquidity(uow, func(l uint64) uint64 { return l - amount })
		if err := uow.move(ctx, v.funds, info.Address, caller, amount); err != nil {
			return err
		}
		uow.emit(v.event(domain.EventLiquidityWithdrawn, caller, map[string]any{"amount": amount}))
		return nil
	})
}

// EnableRedemption switches redemption on, once. The price is recorded for
// information only; Redeem never charges it.
func (v *VaultService) EnableRedemption(ctx context.Context, caller domain.Address, price uint64) error {
	return v.run(ctx, func(ctx context.Context, uow *unitOfWork) error {
		info := v.snapshot()
		if caller != info.OriginalOwner && !v.roles.HasRole(caller, domain.RoleOperator) {
			return apperror.ErrMissingRole(string(domain.RoleOperator))
		}
		if info.RedemptionEnabled {
			return apperror.ErrRedemptionAlreadyEnabled()
		}

		v.set(uow, func(i *domain.VaultInfo) {
			i.RedemptionEnabled = true
			i.RedemptionPrice = price
		})
		uow.emit(v.event(domain.EventRedemptionEnabled, caller, map[string]any{"price": price}))
		return nil
	})
}

// Redeem burns the entire share supply held by caller and hands the asset
// over. The vault is closed afterwards.
func (v *VaultService) Redeem(ctx context.Context, caller domain.Address) error {
	err := v.run(ctx, func(ctx context.Context, uow *unitOfWork) error {
		info, err := v.tradable()
		if err != nil {
			return err
		}
		if !info.RedemptionEnabled {
			return apperror.ErrRedemptionNotEnabled()
		}
		supply, err := v.shares.TotalSupply(ctx)
		if err != nil {
			return err
		}
		held, err := v.shares.BalanceOf(ctx, caller)
		if err != nil {
			return err
		}
		if supply == 0 || held != supply {
			return apperror.ErrPartialShareholding()
		}

		v.set(uow, func(i *domain.VaultInfo) { i.Redeemed = true })
		if err := v.shares.Burn(ctx, caller, supply); err != nil {
			return err
		}
		uow.onRollback(func(ctx context.Context) error {
			return v.shares.Mint(ctx, caller, supply)
		})
		if err := v.custodian.TransferFrom(ctx, info.Address, info.Address, caller, info.AssetID); err != nil {
			return err
		}

		uow.emit(v.event(domain.EventRedemptionExecuted, caller, map[string]any{"burned": supply}))
		return nil
	})
	if err != nil {
		return err
	}

	v.log.Info().Str("redeemer", caller.String()).Uint64("asset_id", v.assetID).Msg("vault redeemed")
	return nil
}

// Pause disables the value-moving entry points.
func (v *VaultService) Pause(ctx context.Context, caller domain.Address) error {
	return v.setPaused(ctx, caller, true)
}

// Unpause re-enables the value-moving entry points.
func (v *VaultService) Unpause(ctx context.Context, caller domain.Address) error {
	return v.setPaused(ctx, caller, false)
}

func (v *VaultService) setPaused(ctx context.Context, caller domain.Address, paused bool) error {
	return v.run(ctx, func(ctx context.Context, uow *unitOfWork) error {
		if err := requireAny(v.roles, caller, domain.RoleAdmin, domain.RoleOperator); err != nil {
			return err
		}
		v.set(uow, func(i *domain.VaultInfo) { i.Paused = paused })
		typ := domain.EventVaultUnpaused
		if paused {
			typ = domain.EventVaultPaused
		}
		uow.emit(v.event(typ, caller, nil))
		return nil
	})
}

func (v *VaultService) run(ctx context.Context, op func(ctx context.Context, uow *unitOfWork) error) error {
	return runGuarded(ctx, v.guard, v.sink, v.log, op)
}

func (v *VaultService) snapshot() domain.VaultInfo {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.info
}

// tradable returns the vault state if it is accepting trades.
func (v *VaultService) tradable() (domain.VaultInfo, error) {
	info := v.snapshot()
	if info.Paused {
		return info, apperror.ErrPaused("vault")
	}
	if info.Redeemed {
		return info, apperror.ErrVaultClosed()
	}
	return info, nil
}

// set mutates the vault state and journals its previous value.
func (v *VaultService) set(uow *unitOfWork, fn func(i *domain.VaultInfo)) {
	v.mu.Lock()
	prev := v.info
	fn(&v.info)
	v.mu.Unlock()

	uow.onRollback(func(context.Context) error {
		v.mu.Lock()
		v.info = prev
		v.mu.Unlock()
		return nil
	})
}

func (v *VaultService) adjustLiquidity(uow *unitOfWork, fn func(uint64) uint64) {
	v.set(uow, func(i *domain.VaultInfo) { i.Liquidity = fn(i.Liquidity) })
}

func (v *VaultService) event(typ domain.EventType, actor domain.Address, data map[string]any) domain.Event {
	return domain.NewEvent(typ, "vault", actor, data).ForAsset(v.assetID).ForVault(v.id)
}

// tradeAmounts returns amount*unitPrice and the fixed trade fee on it.
func tradeAmounts(amount, unitPrice uint64) (price, fee uint64, err error) {
	price, ok := domain.CheckedMul(amount, unitPrice)
	if !ok {
		return 0, 0, apperror.ErrArithmeticOverflow()
	}
	fee, ok = domain.MulBps(price, domain.VaultTradeFeeBps)
	if !ok {
		return 0, 0, apperror.ErrArithmeticOverflow()
	}
	return price, fee, nil
}
