package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"
	"fractional-asset-registry/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// FactoryParams is the initial configuration of a factory.
type FactoryParams struct {
	Address        domain.Address
	FeeCollector   domain.Address
	CreationFeeBps uint64
}

// FactoryService implements ports.VaultFactory. It keeps at most one vault
// per (asset contract, asset id) for its whole lifetime.
type FactoryService struct {
	guard *Guard

	mu      sync.RWMutex
	params  FactoryParams
	paused  bool
	vaults  map[uuid.UUID]*VaultService
	byAsset map[domain.VaultKey]uuid.UUID
	byOwner map[domain.Address][]uuid.UUID

	custodians map[domain.Address]ports.AssetCustodian
	ledgers    ports.ShareLedgerFactory
	funds      ports.FundsLedger
	policy     ports.TransferPolicy
	roles      ports.RoleManager
	sink       ports.EventSink
	log        zerolog.Logger
}

// NewFactoryService creates a factory able to fractionalize assets held by
// any of the given custodians.
func NewFactoryService(
	params FactoryParams,
	custodians []ports.AssetCustodian,
	ledgers ports.ShareLedgerFactory,
	funds ports.FundsLedger,
	policy ports.TransferPolicy,
	roles ports.RoleManager,
	sink ports.EventSink,
	log zerolog.Logger,
) (*FactoryService, error) {
	if params.Address.IsZero() {
		return nil, apperror.ErrInvalidAddress(params.Address.String())
	}
	if params.FeeCollector.IsZero() {
		return nil, apperror.ErrInvalidAddress(params.FeeCollector.String())
	}
	if params.CreationFeeBps > domain.MaxFeeBps {
		return nil, apperror.ErrFeeAboveCap(domain.MaxFeeBps)
	}

	byContract := make(map[domain.Address]ports.AssetCustodian, len(custodians))
	for _, c := range custodians {
		byContract[c.Address()] = c
	}

	return &FactoryService{
		guard:      NewGuard("factory"),
		params:     params,
		vaults:     make(map[uuid.UUID]*VaultService),
		byAsset:    make(map[domain.VaultKey]uuid.UUID),
		byOwner:    make(map[domain.Address][]uuid.UUID),
		custodians: byContract,
		ledgers:    ledgers,
		funds:      funds,
		policy:     policy,
		roles:      roles,
		sink:       sink,
		log:        log,
	}, nil
}

// Settings returns the current configuration.
func (f *FactoryService) Settings() ports.FactorySettings {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return ports.FactorySettings{
		Address:        f.params.Address,
		FeeCollector:   f.params.FeeCollector,
		CreationFeeBps: f.params.CreationFeeBps,
		Paused:         f.paused,
	}
}

// Create fractionalizes an asset: it deploys a vault, which takes custody,
// and settles the creation fee.
func (f *FactoryService) Create(ctx context.Context, req ports.CreateVaultRequest) (*ports.CreateVaultResult, error) {
	var result *ports.CreateVaultResult
	err := runGuarded(ctx, f.guard, f.sink, f.log, func(ctx context.Context, uow *unitOfWork) error {
		settings := f.Settings()
		if settings.Paused {
			return apperror.ErrPaused("factory")
		}
		if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Symbol) == "" {
			return apperror.Validation("name and symbol are required")
		}
		if req.TotalShares == 0 || req.UnitPrice == 0 {
			return apperror.ErrZeroAmount()
		}
		custodian, ok := f.custodians[req.AssetContract]
		if !ok {
			return apperror.ErrNotFound("asset contract")
		}
		exists, err := custodian.Exists(ctx, req.AssetID)
		if err != nil {
			return err
		}
		if !exists {
			return apperror.ErrAssetNotFound(req.AssetID)
		}
		key := domain.VaultKey{AssetContract: req.AssetContract, AssetID: req.AssetID}
		f.mu.RLock()
		_, taken := f.byAsset[key]
		f.mu.RUnlock()
		if taken {
			return apperror.ErrAlreadyFractionalized()
		}

		notional, ok := domain.CheckedMul(req.TotalShares, req.UnitPrice)
		if !ok {
			return apperror.ErrArithmeticOverflow()
		}
		fee, ok := domain.MulBps(notional, settings.CreationFeeBps)
		if !ok {
			return apperror.ErrArithmeticOverflow()
		}
		if req.Payment < fee {
			return apperror.ErrInsufficientPayment(fee, req.Payment)
		}

		owner, err := custodian.OwnerOf(ctx, req.AssetID)
		if err != nil {
			return err
		}

		info := domain.VaultInfo{
			ID:            uuid.New(),
			Address:       domain.DeriveAddress("vault", settings.Address.String(), req.AssetContract.String(), strconv.FormatUint(req.AssetID, 10)),
			Name:          req.Name,
			Symbol:        req.Symbol,
			AssetContract: req.AssetContract,
			AssetID:       req.AssetID,
			OriginalOwner: owner,
			TotalShares:   req.TotalShares,
			UnitPrice:     req.UnitPrice,
			FeeCollector:  settings.FeeCollector,
			CreatedAt:     time.Now().UTC(),
		}
		vault := newVault(info, custodian, f.ledgers.NewShareLedger(req.Name, req.Symbol, req.TotalShares),
			f.funds, f.policy, f.roles, f.sink, f.log)

		f.index(uow, key, vault, req.Caller)
		if err := vault.open(ctx, req.Caller); err != nil {
			return err
		}

		if err := uow.move(ctx, f.funds, req.Caller, settings.Address, req.Payment); err != nil {
			return err
		}
		if err := uow.move(ctx, f.funds, settings.Address, settings.FeeCollector, fee); err != nil {
			return err
		}
		refund := req.Payment - fee
		if err := uow.move(ctx, f.funds, settings.Address, req.Caller, refund); err != nil {
			return err
		}

		uow.emit(domain.NewEvent(domain.EventVaultCreated, "factory", req.Caller, map[string]any{
			"vault_address":  info.Address,
			"name":           info.Name,
			"symbol":         info.Symbol,
			"asset_contract": info.AssetContract,
			"total_shares":   info.TotalShares,
			"unit_price":     info.UnitPrice,
			"fee":            fee,
		}).ForAsset(info.AssetID).ForVault(info.ID))

		created, err := vault.Info(ctx)
		if err != nil {
			return err
		}
		result = &ports.CreateVaultResult{Vault: created, Fee: fee, Refund: refund}
		return nil
	})
	if err != nil {
		return nil, err
	}

	f.log.Info().
		Str("vault_id", result.Vault.ID.String()).
		Uint64("asset_id", req.AssetID).
		Uint64("total_shares", req.TotalShares).
		Uint64("fee", result.Fee).
		Msg("vault created")

	return result, nil
}

// index records the vault in every lookup table and journals the removal.
func (f *FactoryService) index(uow *unitOfWork, key domain.VaultKey, vault *VaultService, creator domain.Address) {
	f.mu.Lock()
	f.vaults[vault.ID()] = vault
	f.byAsset[key] = vault.ID()
	f.byOwner[creator] = append(f.byOwner[creator], vault.ID())
	f.mu.Unlock()

	uow.onRollback(func(context.Context) error {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.vaults, vault.ID())
		delete(f.byAsset, key)
		ids := f.byOwner[creator]
		f.byOwner[creator] = ids[:len(ids)-1]
		if len(f.byOwner[creator]) == 0 {
			delete(f.byOwner, creator)
		}
		return nil
	})
}

// Vault returns the vault with the given id.
func (f *FactoryService) Vault(_ context.Context, id uuid.UUID) (ports.FractionalVault, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.vaults[id]
	if !ok {
		return nil, apperror.ErrVaultNotFound()
	}
	return v, nil
}

// VaultFor returns the vault created for an asset.
func (f *FactoryService) VaultFor(_ context.Context, assetContract domain.Address, assetID uint64) (ports.FractionalVault, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	id, ok := f.byAsset[domain.VaultKey{AssetContract: assetContract, AssetID: assetID}]
	if !ok {
		return nil, apperror.ErrVaultNotFound()
	}
	return f.vaults[id], nil
}

// VaultsByOwner lists the vaults created by owner, oldest first.
func (f *FactoryService) VaultsByOwner(ctx context.Context, owner domain.Address) ([]domain.VaultInfo, error) {
	f.mu.RLock()
	ids := append([]uuid.UUID(nil), f.byOwner[owner]...)
	vaults := make([]*VaultService, 0, len(ids))
	for _, id := range ids {
		vaults = append(vaults, f.vaults[id])
	}
	f.mu.RUnlock()

	out := make([]domain.VaultInfo, 0, len(vaults))
	for _, v := range vaults {
		info, err := v.Info(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, *info)
	}
	return out, nil
}

// SetCreationFeePercentage sets the creation fee in basis points.
func (f *FactoryService) SetCreationFeePercentage(ctx context.Context, caller domain.Address, bps uint64) error {
	if bps > domain.MaxFeeBps {
		return apperror.ErrFeeAboveCap(domain.MaxFeeBps)
	}
	return f.mutate(ctx, caller, domain.NewEvent(domain.EventFactorySettingChanged, "factory", caller, map[string]any{
		"setting": "creation_fee_bps",
		"value":   bps,
	}), func() { f.params.CreationFeeBps = bps })
}

// SetFeeCollector sets the account creation fees are paid to. Existing
// vaults keep the collector they were created with.
func (f *FactoryService) SetFeeCollector(ctx context.Context, caller, collector domain.Address) error {
	if collector.IsZero() {
		return apperror.ErrInvalidAddress(collector.String())
	}
	return f.mutate(ctx, caller, domain.NewEvent(domain.EventFactorySettingChanged, "factory", caller, map[string]any{
		"setting": "fee_collector",
		"value":   collector,
	}), func() { f.params.FeeCollector = collector })
}

// Pause disables vault creation.
func (f *FactoryService) Pause(ctx context.Context, caller domain.Address) error {
	return f.mutate(ctx, caller, domain.NewEvent(domain.EventFactoryPaused, "factory", caller, nil), func() { f.paused = true })
}

// Unpause re-enables vault creation.
func (f *FactoryService) Unpause(ctx context.Context, caller domain.Address) error {
	return f.mutate(ctx, caller, domain.NewEvent(domain.EventFactoryUnpaused, "factory", caller, nil), func() { f.paused = false })
}

func (f *FactoryService) mutate(ctx context.Context, caller domain.Address, e domain.Event, apply func()) error {
	return runGuarded(ctx, f.guard, f.sink, f.log, func(ctx context.Context, uow *unitOfWork) error {
		if err := requireAny(f.roles, caller, domain.RoleAdmin); err != nil {
			return err
		}

		f.mu.Lock()
		prevParams, prevPaused := f.params, f.paused
		apply()
		f.mu.Unlock()
		uow.onRollback(func(context.Context) error {
			f.mu.Lock()
			f.params, f.paused = prevParams, prevPaused
			f.mu.Unlock()
			return nil
		})

		uow.emit(e)
		return nil
	})
}
