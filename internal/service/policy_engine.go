package service

import (
	"context"
	"sort"
	"sync"

	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"
	"fractional-asset-registry/pkg/apperror"

	"github.com/rs/zerolog"
)

// PolicyEngineImpl implements ports.PolicyEngine.
// Evaluate is pure over the four pieces of state and never hands control
// to a collaborator, so a read/write lock is enough.
type PolicyEngineImpl struct {
	mu         sync.RWMutex
	paused     bool
	blacklist  map[domain.Address]bool
	pairs      map[domain.AddressPair]bool
	restricted map[uint64]bool

	roles ports.RoleManager
	sink  ports.EventSink
	log   zerolog.Logger
}

// NewPolicyEngine creates an unpaused engine with empty restriction sets.
func NewPolicyEngine(roles ports.RoleManager, sink ports.EventSink, log zerolog.Logger) *PolicyEngineImpl {
	return &PolicyEngineImpl{
		blacklist:  make(map[domain.Address]bool),
		pairs:      make(map[domain.AddressPair]bool),
		restricted: make(map[uint64]bool),
		roles:      roles,
		sink:       sink,
		log:        log,
	}
}

// Evaluate returns the first matching rule in fixed order: pause, sender,
// recipient, pair, asset.
func (p *PolicyEngineImpl) Evaluate(_ context.Context, from, to domain.Address, assetID uint64) domain.Decision {
	p.mu.RLock()
	defer p.mu.RUnlock()

	switch {
	case p.paused:
		return domain.Deny(domain.DenyReasonPaused)
	case p.blacklist[from]:
		return domain.Deny(domain.DenyReasonSenderBlocked)
	case p.blacklist[to]:
		return domain.Deny(domain.DenyReasonRecipientBlocked)
	case p.pairs[domain.AddressPair{From: from, To: to}]:
		return domain.Deny(domain.DenyReasonPairRestricted)
	case p.restricted[assetID]:
		return domain.Deny(domain.DenyReasonAssetRestricted)
	}
	return domain.Allow()
}

// IsPaused reports the global pause flag.
func (p *PolicyEngineImpl) IsPaused() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.paused
}

// IsBlacklisted reports whether account is blocked.
func (p *PolicyEngineImpl) IsBlacklisted(account domain.Address) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.blacklist[account]
}

// SetBlacklist blocks or unblocks account.
func (p *PolicyEngineImpl) SetBlacklist(ctx context.Context, caller, account domain.Address, blocked bool) error {
	if err := p.authorize(caller); err != nil {
		return err
	}
	if account.IsZero() {
		return apperror.ErrInvalidAddress(account.String())
	}

	p.mu.Lock()
	setFlag(p.blacklist, account, blocked)
	p.mu.Unlock()

	typ := domain.EventAddressUnblocked
	if blocked {
		typ = domain.EventAddressBlocked
	}
	p.notify(ctx, domain.NewEvent(typ, "policy", caller, map[string]any{"account": account}))
	return nil
}

// SetPairRestriction restricts or releases the ordered pair (from, to).
func (p *PolicyEngineImpl) SetPairRestriction(ctx context.Context, caller, from, to domain.Address, restricted bool) error {
	if err := p.authorize(caller); err != nil {
		return err
	}

	p.mu.Lock()
	setFlag(p.pairs, domain.AddressPair{From: from, To: to}, restricted)
	p.mu.Unlock()

	p.notify(ctx, domain.NewEvent(domain.EventPairRestrictionSet, "policy", caller, map[string]any{
		"from":       from,
		"to":         to,
		"restricted": restricted,
	}))
	return nil
}

// SetAssetRestriction restricts or releases every transfer of assetID.
func (p *PolicyEngineImpl) SetAssetRestriction(ctx context.Context, caller domain.Address, assetID uint64, restricted bool) error {
	if err := p.authorize(caller); err != nil {
		return err
	}

	p.mu.Lock()
	setFlag(p.restricted, assetID, restricted)
	p.mu.Unlock()

	p.notify(ctx, domain.NewEvent(domain.EventAssetRestrictionSet, "policy", caller, map[string]any{
		"restricted": restricted,
	}).ForAsset(assetID))
	return nil
}

// Pause sets the global pause flag.
func (p *PolicyEngineImpl) Pause(ctx context.Context, caller domain.Address) error {
	return p.setPaused(ctx, caller, true)
}

// Unpause clears the global pause flag.
func (p *PolicyEngineImpl) Unpause(ctx context.Context, caller domain.Address) error {
	return p.setPaused(ctx, caller, false)
}

func (p *PolicyEngineImpl) setPaused(ctx context.Context, caller domain.Address, paused bool) error {
	if err := p.authorize(caller); err != nil {
		return err
	}

	p.mu.Lock()
	p.paused = paused
	p.mu.Unlock()

	typ := domain.EventPolicyUnpaused
	if paused {
		typ = domain.EventPolicyPaused
	}
	p.notify(ctx, domain.NewEvent(typ, "policy", caller, nil))
	return nil
}

// Snapshot copies the engine state in a deterministic order.
func (p *PolicyEngineImpl) Snapshot() domain.PolicySnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	snap := domain.PolicySnapshot{
		Paused:           p.paused,
		Blacklist:        make([]domain.Address, 0, len(p.blacklist)),
		PairRestrictions: make([]domain.AddressPair, 0, len(p.pairs)),
		AssetRestricted:  make([]uint64, 0, len(p.restricted)),
	}
	for a := range p.blacklist {
		snap.Blacklist = append(snap.Blacklist, a)
	}
	for pair := range p.pairs {
		snap.PairRestrictions = append(snap.PairRestrictions, pair)
	}
	for id := range p.restricted {
		snap.AssetRestricted = append(snap.AssetRestricted, id)
	}
	sort.Slice(snap.Blacklist, func(i, j int) bool { return snap.Blacklist[i] < snap.Blacklist[j] })
	sort.Slice(snap.PairRestrictions, func(i, j int) bool {
		a, b := snap.PairRestrictions[i], snap.PairRestrictions[j]
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})
	sort.Slice(snap.AssetRestricted, func(i, j int) bool { return snap.AssetRestricted[i] < snap.AssetRestricted[j] })
	return snap
}

func (p *PolicyEngineImpl) authorize(caller domain.Address) error {
	return requireAny(p.roles, caller, domain.RolePolicy, domain.RoleAdmin)
}

func (p *PolicyEngineImpl) notify(ctx context.Context, e domain.Event) {
	p.log.Info().Str("event", string(e.Type)).Str("caller", e.Actor.String()).Msg("policy state changed")
	if p.sink != nil {
		p.sink.Publish(ctx, []domain.Event{e})
	}
}

// setFlag stores only true entries so the maps stay free of cleared keys.
func setFlag[K comparable](m map[K]bool, k K, v bool) {
	if v {
		m[k] = true
		return
	}
	delete(m, k)
}
