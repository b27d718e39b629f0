package service

import (
	"context"
	"sync"
	"time"

	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"
	"fractional-asset-registry/pkg/apperror"

	"github.com/rs/zerolog"
)

// RegistryParams is the initial fee schedule of a registry.
type RegistryParams struct {
	Address                    domain.Address
	FeeCollector               domain.Address
	MintFeeBps                 uint64
	TransferFeeBps             uint64
	MintCooldown               time.Duration
	MinValuationUpdateInterval time.Duration
}

// RegistryService implements ports.AssetRegistry.
//
// Every mutating entry point runs under the registry guard as one unit of
// work. Bookkeeping is written before funds or custody are handed off, and
// the payment attached to a call is first pulled into the registry's own
// account, then disbursed from there.
type RegistryService struct {
	guard *Guard

	mu       sync.RWMutex
	params   RegistryParams
	assets   map[uint64]*domain.Asset
	nextID   uint64
	lastMint map[domain.Address]time.Time

	ledger ports.AssetLedger
	funds  ports.FundsLedger
	policy ports.TransferPolicy
	roles  ports.RoleManager
	sink   ports.EventSink
	now    func() time.Time
	log    zerolog.Logger
}

// NewRegistryService creates a registry with the given fee schedule.
func NewRegistryService(
	params RegistryParams,
	ledger ports.AssetLedger,
	funds ports.FundsLedger,
	policy ports.TransferPolicy,
	roles ports.RoleManager,
	sink ports.EventSink,
	log zerolog.Logger,
) (*RegistryService, error) {
	if params.Address.IsZero() {
		return nil, apperror.ErrInvalidAddress(params.Address.String())
	}
	if params.FeeCollector.IsZero() {
		return nil, apperror.ErrInvalidAddress(params.FeeCollector.String())
	}
	if params.MintFeeBps > domain.MaxFeeBps || params.TransferFeeBps > domain.MaxFeeBps {
		return nil, apperror.ErrFeeAboveCap(domain.MaxFeeBps)
	}
	if params.MintCooldown < 0 || params.MinValuationUpdateInterval < 0 {
		return nil, apperror.Validation("durations must not be negative")
	}

	return &RegistryService{
		guard:    NewGuard("registry"),
		params:   params,
		assets:   make(map[uint64]*domain.Asset),
		lastMint: make(map[domain.Address]time.Time),
		ledger:   ledger,
		funds:    funds,
		policy:   policy,
		roles:    roles,
		sink:     sink,
		now:      func() time.Time { return time.Now().UTC() },
		log:      log,
	}, nil
}

// Address is the registry's own account; attached payments pass through it.
func (r *RegistryService) Address() domain.Address {
	return r.params.Address
}

// Settings returns the current fee schedule.
func (r *RegistryService) Settings() ports.RegistrySettings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return ports.RegistrySettings{
		Address:                    r.params.Address,
		FeeCollector:               r.params.FeeCollector,
		MintFeeBps:                 r.params.MintFeeBps,
		TransferFeeBps:             r.params.TransferFeeBps,
		MintCooldown:               r.params.MintCooldown,
		MinValuationUpdateInterval: r.params.MinValuationUpdateInterval,
	}
}

// Mint registers a new asset for req.Owner and settles the mint fee.
func (r *RegistryService) Mint(ctx context.Context, req ports.MintRequest) (*ports.MintResult, error) {
	var result *ports.MintResult
	err := r.run(ctx, func(ctx context.Context, uow *unitOfWork) error {
		if err := requireAny(r.roles, req.Caller, domain.RoleMinter); err != nil {
			return err
		}
		if d := r.policy.Evaluate(ctx, req.Owner, req.Owner, 0); !d.Allowed && d.Reason == domain.DenyReasonPaused {
			return apperror.ErrPolicyDenied(string(d.Reason))
		}
		if req.Owner.IsZero() {
			return apperror.ErrInvalidAddress(req.Owner.String())
		}
		if req.Valuation == 0 {
			return apperror.ErrZeroAmount()
		}

		now := r.now()
		settings := r.Settings()
		r.mu.RLock()
		last, minted := r.lastMint[req.Caller]
		r.mu.RUnlock()
		if minted && now.Sub(last) < settings.MintCooldown {
			return apperror.ErrMintCooldown()
		}

		fee, ok := domain.MulBps(req.Valuation, settings.MintFeeBps)
		if !ok {
			return apperror.ErrArithmeticOverflow()
		}
		if req.Payment < fee {
			return apperror.ErrInsufficientPayment(fee, req.Payment)
		}

		meta := req.Metadata
		if meta.Fingerprint == "" {
			meta.Fingerprint = domain.DeriveFingerprint(meta)
		}
		if meta.LifecycleStage == "" {
			meta.LifecycleStage = domain.LifecycleStageRegistered
		}

		r.mu.Lock()
		id := r.nextID + 1
		r.nextID = id
		asset := &domain.Asset{
			ID:                 id,
			Metadata:           meta,
			Owner:              req.Owner,
			OriginalOwner:      req.Owner,
			Valuation:          req.Valuation,
			Royalties:          []domain.RoyaltyRecipient{},
			CreatedAt:          now,
			UpdatedAt:          now,
			ValuationUpdatedAt: now,
		}
		r.assets[id] = asset
		r.lastMint[req.Caller] = now
		r.mu.Unlock()
		uow.onRollback(func(context.Context) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			delete(r.assets, id)
			r.nextID = id - 1
			if minted {
				r.lastMint[req.Caller] = last
			} else {
				delete(r.lastMint, req.Caller)
			}
			return nil
		})

		if err := r.ledger.Mint(ctx, req.Owner, id); err != nil {
			return err
		}
		uow.onRollback(func(ctx context.Context) error {
			return r.ledger.Burn(ctx, id)
		})

		refund, err := r.settle(ctx, uow, req.Caller, req.Payment, []domain.RoyaltyPayout{
			{Recipient: settings.FeeCollector, Amount: fee},
		})
		if err != nil {
			return err
		}

		uow.emit(domain.NewEvent(domain.EventAssetMinted, "registry", req.Caller, map[string]any{
			"owner":       req.Owner,
			"valuation":   req.Valuation,
			"fingerprint": meta.Fingerprint,
			"fee":         fee,
		}).ForAsset(id))

		result = &ports.MintResult{Asset: asset.Clone(), Fee: fee, Refund: refund}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.log.Info().
		Uint64("asset_id", result.Asset.ID).
		Str("owner", req.Owner.String()).
		Uint64("valuation", req.Valuation).
		Uint64("fee", result.Fee).
		Msg("asset minted")

	return result, nil
}

// Verify marks an asset verified at level. Levels only rise.
func (r *RegistryService) Verify(ctx context.Context, caller domain.Address, id uint64, level uint8) error {
	return r.run(ctx, func(ctx context.Context, uow *unitOfWork) error {
		if err := requireAny(r.roles, caller, domain.RoleVerifier); err != nil {
			return err
		}
		if level == 0 {
			return apperror.ErrInvalidVerificationLevel()
		}
		asset, err := r.load(id)
		if err != nil {
			return err
		}
		if asset.Verified && level <= asset.VerificationLevel {
			return apperror.ErrAlreadyVerified()
		}

		r.update(uow, id, func(a *domain.Asset) {
			a.Verified = true
			a.VerificationLevel = level
		})
		uow.emit(domain.NewEvent(domain.EventAssetVerified, "registry", caller, map[string]any{
			"level": level,
		}).ForAsset(id))
		return nil
	})
}

// UpdateValuation replaces the valuation once the minimum interval has
// elapsed since the previous update.
func (r *RegistryService) UpdateValuation(ctx context.Context, caller domain.Address, id uint64, valuation uint64) error {
	return r.run(ctx, func(ctx context.Context, uow *unitOfWork) error {
		asset, err := r.load(id)
		if err != nil {
			return err
		}
		if err := r.requireOwnerOrAdmin(ctx, caller, id); err != nil {
			return err
		}
		if valuation == 0 {
			return apperror.ErrZeroAmount()
		}
		now := r.now()
		if now.Sub(asset.ValuationUpdatedAt) < r.Settings().MinValuationUpdateInterval {
			return apperror.ErrValuationCooldown()
		}

		r.update(uow, id, func(a *domain.Asset) {
			a.Valuation = valuation
			a.ValuationUpdatedAt = now
		})
		uow.emit(domain.NewEvent(domain.EventValuationUpdated, "registry", caller, map[string]any{
			"previous":  asset.Valuation,
			"valuation": valuation,
		}).ForAsset(id))
		return nil
	})
}

// Freeze blocks every transfer and fee-bearing operation on the asset.
func (r *RegistryService) Freeze(ctx context.Context, caller domain.Address, id uint64) error {
	return r.setFrozen(ctx, caller, id, true)
}

// Unfreeze lifts a freeze.
func (r *RegistryService) Unfreeze(ctx context.Context, caller domain.Address, id uint64) error {
	return r.setFrozen(ctx, caller, id, false)
}

func (r *RegistryService) setFrozen(ctx context.Context, caller domain.Address, id uint64, frozen bool) error {
	return r.run(ctx, func(ctx context.Context, uow *unitOfWork) error {
		if err := requireAny(r.roles, caller, domain.RoleRecovery); err != nil {
			return err
		}
		asset, err := r.load(id)
		if err != nil {
			return err
		}
		switch {
		case frozen && asset.Frozen:
			return apperror.ErrAlreadyFrozen()
		case !frozen && !asset.Frozen:
			return apperror.ErrNotFrozen()
		}

		r.update(uow, id, func(a *domain.Asset) { a.Frozen = frozen })
		typ := domain.EventAssetUnfrozen
		if frozen {
			typ = domain.EventAssetFrozen
		}
		uow.emit(domain.NewEvent(typ, "registry", caller, nil).ForAsset(id))
		return nil
	})
}

// Recover force-moves the asset back to its original owner. It bypasses
// the policy engine and the freeze flag.
func (r *RegistryService) Recover(ctx context.Context, caller domain.Address, id uint64) error {
	var from, to domain.Address
	err := r.run(ctx, func(ctx context.Context, uow *unitOfWork) error {
		if err := requireAny(r.roles, caller, domain.RoleRecovery); err != nil {
			return err
		}
		asset, err := r.load(id)
		if err != nil {
			return err
		}
		current, err := r.ledger.OwnerOf(ctx, id)
		if err != nil {
			return err
		}
		if current == asset.OriginalOwner {
			return apperror.ErrAlreadyWithOriginalOwner()
		}
		from, to = current, asset.OriginalOwner

		if err := r.moveAsset(ctx, uow, id, from, to); err != nil {
			return err
		}
		uow.emit(domain.NewEvent(domain.EventAssetRecovered, "registry", caller, map[string]any{
			"from": from,
			"to":   to,
		}).ForAsset(id))
		return nil
	})
	if err != nil {
		return err
	}

	r.log.Warn().
		Uint64("asset_id", id).
		Str("from", from.String()).
		Str("to", to.String()).
		Str("caller", caller.String()).
		Msg("asset recovered to original owner")
	return nil
}

// TransferWithFee moves the asset to req.To, charging the platform fee and
// royalty against the attached payment and refunding the rest.
func (r *RegistryService) TransferWithFee(ctx context.Context, req ports.TransferRequest) (*ports.TransferResult, error) {
	var result *ports.TransferResult
	err := r.run(ctx, func(ctx context.Context, uow *unitOfWork) error {
		asset, err := r.load(req.AssetID)
		if err != nil {
			return err
		}
		if asset.Frozen {
			return apperror.ErrAssetFrozen()
		}
		owner, err := r.ledger.OwnerOf(ctx, req.AssetID)
		if err != nil {
			return err
		}
		if owner != req.Caller {
			return apperror.ErrNotAssetOwner()
		}
		if req.To.IsZero() {
			return apperror.ErrInvalidAddress(req.To.String())
		}
		if d := r.policy.Evaluate(ctx, req.Caller, req.To, req.AssetID); !d.Allowed {
			return apperror.ErrPolicyDenied(string(d.Reason))
		}

		quote, err := r.quote(asset)
		if err != nil {
			return err
		}
		if req.Payment < quote.Total {
			return apperror.ErrInsufficientPayment(quote.Total, req.Payment)
		}

		if err := r.moveAsset(ctx, uow, req.AssetID, req.Caller, req.To); err != nil {
			return err
		}

		payouts := append([]domain.RoyaltyPayout{{Recipient: r.Settings().FeeCollector, Amount: quote.PlatformFee}}, quote.Payouts...)
		refund, err := r.settle(ctx, uow, req.Caller, req.Payment, payouts)
		if err != nil {
			return err
		}

		uow.emit(domain.NewEvent(domain.EventAssetTransferred, "registry", req.Caller, map[string]any{
			"from":         req.Caller,
			"to":           req.To,
			"platform_fee": quote.PlatformFee,
			"royalty":      quote.Royalty,
		}).ForAsset(req.AssetID))

		result = &ports.TransferResult{Quote: *quote, Refund: refund}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.log.Info().
		Uint64("asset_id", req.AssetID).
		Str("from", req.Caller.String()).
		Str("to", req.To.String()).
		Uint64("fee", result.Quote.PlatformFee).
		Uint64("royalty", result.Quote.Royalty).
		Msg("asset transferred")

	return result, nil
}

// TransferFrom is the fee-free custody path. operator must own the asset
// or be approved for it on the ledger.
func (r *RegistryService) TransferFrom(ctx context.Context, operator, from, to domain.Address, id uint64) error {
	return r.run(ctx, func(ctx context.Context, uow *unitOfWork) error {
		asset, err := r.load(id)
		if err != nil {
			return err
		}
		if asset.Frozen {
			return apperror.ErrAssetFrozen()
		}
		owner, err := r.ledger.OwnerOf(ctx, id)
		if err != nil {
			return err
		}
		if owner != from {
			return apperror.ErrNotAssetOwner()
		}
		approved, err := r.ledger.IsApprovedOrOwner(ctx, operator, id)
		if err != nil {
			return err
		}
		if !approved {
			return apperror.ErrNotApprovedOperator()
		}
		if to.IsZero() {
			return apperror.ErrInvalidAddress(to.String())
		}
		if d := r.policy.Evaluate(ctx, from, to, id); !d.Allowed {
			return apperror.ErrPolicyDenied(string(d.Reason))
		}

		if err := r.moveAsset(ctx, uow, id, from, to); err != nil {
			return err
		}
		uow.emit(domain.NewEvent(domain.EventAssetTransferred, "registry", operator, map[string]any{
			"from":    from,
			"to":      to,
			"custody": true,
		}).ForAsset(id))
		return nil
	})
}

// Approve lets operator move the caller's asset through TransferFrom.
func (r *RegistryService) Approve(ctx context.Context, caller, operator domain.Address, id uint64) error {
	return r.run(ctx, func(ctx context.Context, uow *unitOfWork) error {
		if _, err := r.load(id); err != nil {
			return err
		}
		owner, err := r.ledger.OwnerOf(ctx, id)
		if err != nil {
			return err
		}
		if owner != caller {
			return apperror.ErrNotAssetOwner()
		}
		return r.ledger.Approve(ctx, caller, operator, id)
	})
}

// AddRoyaltyRecipient sets recipient's share. Re-adding a recipient
// replaces its previous share.
func (r *RegistryService) AddRoyaltyRecipient(ctx context.Context, caller domain.Address, id uint64, recipient domain.Address, shareBps uint64) error {
	return r.run(ctx, func(ctx context.Context, uow *unitOfWork) error {
		asset, err := r.load(id)
		if err != nil {
			return err
		}
		if err := r.requireOwnerOrAdmin(ctx, caller, id); err != nil {
			return err
		}
		if recipient.IsZero() {
			return apperror.ErrInvalidAddress(recipient.String())
		}
		if shareBps == 0 {
			return apperror.ErrZeroAmount()
		}
		previous, _ := asset.RoyaltyShareOf(recipient)
		if asset.RoyaltyShareTotal()-previous+shareBps > domain.BpsDenominator {
			return apperror.ErrRoyaltySharesExceeded()
		}

		r.update(uow, id, func(a *domain.Asset) {
			for i := range a.Royalties {
				if a.Royalties[i].Recipient == recipient {
					a.Royalties[i].ShareBps = shareBps
					return
				}
			}
			a.Royalties = append(a.Royalties, domain.RoyaltyRecipient{Recipient: recipient, ShareBps: shareBps})
		})
		uow.emit(domain.NewEvent(domain.EventRoyaltyRecipientSet, "registry", caller, map[string]any{
			"recipient": recipient,
			"share_bps": shareBps,
		}).ForAsset(id))
		return nil
	})
}

// RemoveRoyaltyRecipient drops recipient from the split.
func (r *RegistryService) RemoveRoyaltyRecipient(ctx context.Context, caller domain.Address, id uint64, recipient domain.Address) error {
	return r.run(ctx, func(ctx context.Context, uow *unitOfWork) error {
		asset, err := r.load(id)
		if err != nil {
			return err
		}
		if err := r.requireOwnerOrAdmin(ctx, caller, id); err != nil {
			return err
		}
		if _, ok := asset.RoyaltyShareOf(recipient); !ok {
			return apperror.ErrRoyaltyRecipientNotFound()
		}

		r.update(uow, id, func(a *domain.Asset) {
			kept := a.Royalties[:0]
			for _, rr := range a.Royalties {
				if rr.Recipient != recipient {
					kept = append(kept, rr)
				}
			}
			a.Royalties = kept
		})
		uow.emit(domain.NewEvent(domain.EventRoyaltyRecipientRemoved, "registry", caller, map[string]any{
			"recipient": recipient,
		}).ForAsset(id))
		return nil
	})
}

// SetRoyaltyRate sets the share of the valuation charged as royalty.
func (r *RegistryService) SetRoyaltyRate(ctx context.Context, caller domain.Address, id uint64, bps uint64) error {
	return r.run(ctx, func(ctx context.Context, uow *unitOfWork) error {
		if _, err := r.load(id); err != nil {
			return err
		}
		if err := r.requireOwnerOrAdmin(ctx, caller, id); err != nil {
			return err
		}
		if bps > domain.MaxFeeBps {
			return apperror.ErrFeeAboveCap(domain.MaxFeeBps)
		}

		r.update(uow, id, func(a *domain.Asset) { a.RoyaltyBps = bps })
		uow.emit(domain.NewEvent(domain.EventRoyaltyRateSet, "registry", caller, map[string]any{
			"royalty_bps": bps,
		}).ForAsset(id))
		return nil
	})
}

// SetTransferFeeOverride replaces the registry transfer fee for one asset.
// A nil bps clears the override.
func (r *RegistryService) SetTransferFeeOverride(ctx context.Context, caller domain.Address, id uint64, bps *uint64) error {
	return r.run(ctx, func(ctx context.Context, uow *unitOfWork) error {
		if err := requireAny(r.roles, caller, domain.RoleAdmin); err != nil {
			return err
		}
		if _, err := r.load(id); err != nil {
			return err
		}
		if bps != nil && *bps > domain.MaxFeeBps {
			return apperror.ErrFeeAboveCap(domain.MaxFeeBps)
		}

		var override *uint64
		if bps != nil {
			v := *bps
			override = &v
		}
		r.update(uow, id, func(a *domain.Asset) { a.TransferFeeOverride = override })
		uow.emit(domain.NewEvent(domain.EventTransferFeeOverrideSet, "registry", caller, map[string]any{
			"fee_bps": override,
		}).ForAsset(id))
		return nil
	})
}

// SetMintFeePercentage sets the mint fee in basis points.
func (r *RegistryService) SetMintFeePercentage(ctx context.Context, caller domain.Address, bps uint64) error {
	if bps > domain.MaxFeeBps {
		return apperror.ErrFeeAboveCap(domain.MaxFeeBps)
	}
	return r.setParam(ctx, caller, "mint_fee_bps", bps, func(p *RegistryParams) { p.MintFeeBps = bps })
}

// SetTransferFeePercentage sets the default transfer fee in basis points.
func (r *RegistryService) SetTransferFeePercentage(ctx context.Context, caller domain.Address, bps uint64) error {
	if bps > domain.MaxFeeBps {
		return apperror.ErrFeeAboveCap(domain.MaxFeeBps)
	}
	return r.setParam(ctx, caller, "transfer_fee_bps", bps, func(p *RegistryParams) { p.TransferFeeBps = bps })
}

// SetFeeCollector sets the account fees are paid to.
func (r *RegistryService) SetFeeCollector(ctx context.Context, caller, collector domain.Address) error {
	if collector.IsZero() {
		return apperror.ErrInvalidAddress(collector.String())
	}
	return r.setParam(ctx, caller, "fee_collector", collector, func(p *RegistryParams) { p.FeeCollector = collector })
}

// SetMintCooldown sets the per-minter interval between mints.
func (r *RegistryService) SetMintCooldown(ctx context.Context, caller domain.Address, cooldown time.Duration) error {
	if cooldown < 0 {
		return apperror.Validation("cooldown must not be negative")
	}
	return r.setParam(ctx, caller, "mint_cooldown", cooldown.String(), func(p *RegistryParams) { p.MintCooldown = cooldown })
}

// SetMinValuationUpdateInterval sets the minimum time between valuation updates.
func (r *RegistryService) SetMinValuationUpdateInterval(ctx context.Context, caller domain.Address, interval time.Duration) error {
	if interval < 0 {
		return apperror.Validation("interval must not be negative")
	}
	return r.setParam(ctx, caller, "min_valuation_update_interval", interval.String(), func(p *RegistryParams) {
		p.MinValuationUpdateInterval = interval
	})
}

func (r *RegistryService) setParam(ctx context.Context, caller domain.Address, name string, value any, apply func(p *RegistryParams)) error {
	return r.run(ctx, func(ctx context.Context, uow *unitOfWork) error {
		if err := requireAny(r.roles, caller, domain.RoleAdmin); err != nil {
			return err
		}

		r.mu.Lock()
		prev := r.params
		apply(&r.params)
		r.mu.Unlock()
		uow.onRollback(func(context.Context) error {
			r.mu.Lock()
			r.params = prev
			r.mu.Unlock()
			return nil
		})

		uow.emit(domain.NewEvent(domain.EventRegistrySettingChanged, "registry", caller, map[string]any{
			"setting": name,
			"value":   value,
		}))
		return nil
	})
}

// Asset returns a copy of the asset record.
func (r *RegistryService) Asset(_ context.Context, id uint64) (*domain.Asset, error) {
	return r.load(id)
}

// RoyaltyRecipients lists the asset's royalty split.
func (r *RegistryService) RoyaltyRecipients(_ context.Context, id uint64) ([]domain.RoyaltyRecipient, error) {
	asset, err := r.load(id)
	if err != nil {
		return nil, err
	}
	return asset.Royalties, nil
}

// QuoteTransfer computes what TransferWithFee would charge right now.
func (r *RegistryService) QuoteTransfer(_ context.Context, id uint64) (*domain.TransferQuote, error) {
	asset, err := r.load(id)
	if err != nil {
		return nil, err
	}
	return r.quote(asset)
}

// Exists reports whether id was minted by this registry.
func (r *RegistryService) Exists(_ context.Context, id uint64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.assets[id]
	return ok, nil
}

// OwnerOf returns the ledger owner of a registered asset.
func (r *RegistryService) OwnerOf(ctx context.Context, id uint64) (domain.Address, error) {
	if _, err := r.load(id); err != nil {
		return "", err
	}
	return r.ledger.OwnerOf(ctx, id)
}

func (r *RegistryService) run(ctx context.Context, op func(ctx context.Context, uow *unitOfWork) error) error {
	return runGuarded(ctx, r.guard, r.sink, r.log, op)
}

func (r *RegistryService) load(id uint64) (*domain.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.assets[id]
	if !ok {
		return nil, apperror.ErrAssetNotFound(id)
	}
	return a.Clone(), nil
}

// update mutates the stored record and journals its previous value.
func (r *RegistryService) update(uow *unitOfWork, id uint64, fn func(a *domain.Asset)) {
	r.mu.Lock()
	a := r.assets[id]
	prev := a.Clone()
	fn(a)
	a.UpdatedAt = r.now()
	r.mu.Unlock()

	uow.onRollback(func(context.Context) error {
		r.mu.Lock()
		r.assets[id] = prev
		r.mu.Unlock()
		return nil
	})
}

// moveAsset transfers ownership on the ledger and mirrors it in the record.
func (r *RegistryService) moveAsset(ctx context.Context, uow *unitOfWork, id uint64, from, to domain.Address) error {
	r.update(uow, id, func(a *domain.Asset) { a.Owner = to })
	if err := r.ledger.Transfer(ctx, from, to, id); err != nil {
		return err
	}
	uow.onRollback(func(ctx context.Context) error {
		return r.ledger.Transfer(ctx, to, from, id)
	})
	return nil
}

// settle pulls payment from payer, pays each payout and refunds the rest.
// The caller has already checked that payment covers the payouts.
func (r *RegistryService) settle(ctx context.Context, uow *unitOfWork, payer domain.Address, payment uint64, payouts []domain.RoyaltyPayout) (uint64, error) {
	escrow := r.params.Address
	if err := uow.move(ctx, r.funds, payer, escrow, payment); err != nil {
		return 0, err
	}
	remaining := payment
	for _, p := range payouts {
		if err := uow.move(ctx, r.funds, escrow, p.Recipient, p.Amount); err != nil {
			return 0, err
		}
		remaining -= p.Amount
	}
	if err := uow.move(ctx, r.funds, escrow, payer, remaining); err != nil {
		return 0, err
	}
	return remaining, nil
}

func (r *RegistryService) quote(asset *domain.Asset) (*domain.TransferQuote, error) {
	q, ok := domain.QuoteTransfer(asset, r.Settings().TransferFeeBps)
	if !ok {
		return nil, apperror.ErrArithmeticOverflow()
	}
	return q, nil
}

func (r *RegistryService) requireOwnerOrAdmin(ctx context.Context, caller domain.Address, id uint64) error {
	if r.roles.HasRole(caller, domain.RoleAdmin) {
		return nil
	}
	owner, err := r.ledger.OwnerOf(ctx, id)
	if err != nil {
		return err
	}
	if owner != caller {
		return apperror.ErrNotAssetOwner()
	}
	return nil
}
