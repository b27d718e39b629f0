package service

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"fractional-asset-registry/internal/adapter/ledger/memory"
	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"
	"fractional-asset-registry/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	adminAddr     = domain.DeriveAddress("test", "admin")
	minterAddr    = domain.DeriveAddress("test", "minter")
	verifierAddr  = domain.DeriveAddress("test", "verifier")
	recoveryAddr  = domain.DeriveAddress("test", "recovery")
	policyAddr    = domain.DeriveAddress("test", "policy")
	operatorAddr  = domain.DeriveAddress("test", "operator")
	collectorAddr = domain.DeriveAddress("test", "collector")
	registryAddr  = domain.DeriveAddress("test", "registry")
	factoryAddr   = domain.DeriveAddress("test", "factory")
	aliceAddr     = domain.DeriveAddress("test", "alice")
	bobAddr       = domain.DeriveAddress("test", "bob")
	carolAddr     = domain.DeriveAddress("test", "carol")
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}

// recordingSink collects every published batch.
type recordingSink struct {
	mu     sync.Mutex
	events []domain.Event
}

func (s *recordingSink) Publish(_ context.Context, events []domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
}

func (s *recordingSink) types() []domain.EventType {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.EventType, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.Type)
	}
	return out
}

func (s *recordingSink) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}

// world wires every component over the in-memory ledgers, the way
// cmd/api does over the configured ones.
type world struct {
	sink     *recordingSink
	roles    *AccessControl
	policy   *PolicyEngineImpl
	assets   *memory.AssetLedger
	funds    *memory.FundsLedger
	registry *RegistryService
	factory  *FactoryService
	clock    time.Time
}

func newWorld(t *testing.T) *world {
	t.Helper()
	ctx := context.Background()
	log := newTestLogger()

	w := &world{
		sink:   &recordingSink{},
		assets: memory.NewAssetLedger(),
		funds:  memory.NewFundsLedger(),
		clock:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	w.roles = NewAccessControl(adminAddr, w.sink, log)
	for principal, role := range map[domain.Address]domain.Role{
		minterAddr:   domain.RoleMinter,
		verifierAddr: domain.RoleVerifier,
		recoveryAddr: domain.RoleRecovery,
		policyAddr:   domain.RolePolicy,
		operatorAddr: domain.RoleOperator,
	} {
		require.NoError(t, w.roles.GrantRole(ctx, adminAddr, principal, role))
	}
	w.policy = NewPolicyEngine(w.roles, w.sink, log)

	var err error
	w.registry, err = NewRegistryService(RegistryParams{
		Address:        registryAddr,
		FeeCollector:   collectorAddr,
		MintFeeBps:     300,
		TransferFeeBps: 200,
	}, w.assets, w.funds, w.policy, w.roles, w.sink, log)
	require.NoError(t, err)
	w.registry.now = func() time.Time { return w.clock }

	w.factory, err = NewFactoryService(FactoryParams{
		Address:        factoryAddr,
		FeeCollector:   collectorAddr,
		CreationFeeBps: 100,
	}, []ports.AssetCustodian{w.registry}, memory.ShareLedgers{}, w.funds, w.policy, w.roles, w.sink, log)
	require.NoError(t, err)

	w.sink.reset()
	return w
}

func (w *world) credit(t *testing.T, to domain.Address, amount uint64) {
	t.Helper()
	require.NoError(t, w.funds.Credit(context.Background(), to, amount))
}

func (w *world) balance(t *testing.T, holder domain.Address) uint64 {
	t.Helper()
	b, err := w.funds.BalanceOf(context.Background(), holder)
	require.NoError(t, err)
	return b
}

// mint registers an asset for owner, paying exactly the mint fee.
func (w *world) mint(t *testing.T, owner domain.Address, valuation uint64) *domain.Asset {
	t.Helper()
	fee, _ := domain.MulBps(valuation, w.registry.Settings().MintFeeBps)
	w.credit(t, minterAddr, fee)
	res, err := w.registry.Mint(context.Background(), ports.MintRequest{
		Caller:    minterAddr,
		Owner:     owner,
		Metadata:  domain.AssetMetadata{Title: "Warehouse 7", Category: "real-estate"},
		Valuation: valuation,
		Payment:   fee,
	})
	require.NoError(t, err)
	// Let the next mint through the per-minter cooldown.
	w.clock = w.clock.Add(time.Hour)
	return res.Asset
}
