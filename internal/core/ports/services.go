package ports

import (
	"context"
	"time"

	"fractional-asset-registry/internal/core/domain"

	"github.com/google/uuid"
)

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(principal domain.Address) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Principal domain.Address
}

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// IdempotencyLock marks an idempotency key as in flight so concurrent
// duplicates are rejected instead of executed twice.
type IdempotencyLock interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// IdempotencyService replays responses of payment-bearing requests.
type IdempotencyService interface {
	Lookup(ctx context.Context, key string) (*domain.IdempotencyLog, error) // nil when unseen
	Store(ctx context.Context, log *domain.IdempotencyLog) error
}

// EventPublisher fans a single notification out to live subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// EventSink receives the notifications of one committed mutation.
// Delivery is best-effort; a committed mutation is never undone by a sink.
type EventSink interface {
	Publish(ctx context.Context, events []domain.Event)
}

// WebhookService defines async webhook delivery.
type WebhookService interface {
	Enqueue(ctx context.Context, event domain.Event) error
}

// AuditService records audit entries asynchronously.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// HistoryService serves the persisted notification history.
type HistoryService interface {
	ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, int64, error)
}

// --- Service Ports (Business Logic) ---

// RoleManager is the flat capability table shared by every component.
type RoleManager interface {
	HasRole(principal domain.Address, role domain.Role) bool
	RolesOf(principal domain.Address) []domain.Role
	GrantRole(ctx context.Context, caller, principal domain.Address, role domain.Role) error
	RevokeRole(ctx context.Context, caller, principal domain.Address, role domain.Role) error
}

// TransferPolicy is the advisory decision consumers consult on every
// state-changing transfer path.
type TransferPolicy interface {
	Evaluate(ctx context.Context, from, to domain.Address, assetID uint64) domain.Decision
	IsPaused() bool
}

// PolicyEngine is TransferPolicy plus its privileged mutators.
type PolicyEngine interface {
	TransferPolicy
	SetBlacklist(ctx context.Context, caller, account domain.Address, blocked bool) error
	SetPairRestriction(ctx context.Context, caller, from, to domain.Address, restricted bool) error
	SetAssetRestriction(ctx context.Context, caller domain.Address, assetID uint64, restricted bool) error
	Pause(ctx context.Context, caller domain.Address) error
	Unpause(ctx context.Context, caller domain.Address) error
	Snapshot() domain.PolicySnapshot
}

// AssetCustodian is the slice of the registry a vault needs: existence,
// ownership and the fee-free custody path.
type AssetCustodian interface {
	Address() domain.Address
	Exists(ctx context.Context, id uint64) (bool, error)
	OwnerOf(ctx context.Context, id uint64) (domain.Address, error)
	TransferFrom(ctx context.Context, operator, from, to domain.Address, id uint64) error
}

// MintRequest holds validated input for minting.
type MintRequest struct {
	Caller    domain.Address
	Owner     domain.Address
	Metadata  domain.AssetMetadata
	Valuation uint64
	Payment   uint64
}

// MintResult is the minted asset plus its settlement.
type MintResult struct {
	Asset  *domain.Asset `json:"asset"`
	Fee    uint64        `json:"fee"`
	Refund uint64        `json:"refund"`
}

// TransferRequest holds validated input for a fee-bearing transfer.
type TransferRequest struct {
	Caller  domain.Address
	AssetID uint64
	To      domain.Address
	Payment uint64
}

// TransferResult is the settled quote of a fee-bearing transfer.
type TransferResult struct {
	Quote  domain.TransferQuote `json:"quote"`
	Refund uint64               `json:"refund"`
}

// RegistrySettings is the registry fee schedule.
type RegistrySettings struct {
	Address                    domain.Address `json:"address"`
	FeeCollector               domain.Address `json:"fee_collector"`
	MintFeeBps                 uint64         `json:"mint_fee_bps"`
	TransferFeeBps             uint64         `json:"transfer_fee_bps"`
	MintCooldown               time.Duration  `json:"mint_cooldown"`
	MinValuationUpdateInterval time.Duration  `json:"min_valuation_update_interval"`
}

// AssetRegistry defines the asset registry business logic.
type AssetRegistry interface {
	AssetCustodian

	Mint(ctx context.Context, req MintRequest) (*MintResult, error)
	Verify(ctx context.Context, caller domain.Address, id uint64, level uint8) error
	UpdateValuation(ctx context.Context, caller domain.Address, id uint64, valuation uint64) error
	Freeze(ctx context.Context, caller domain.Address, id uint64) error
	Unfreeze(ctx context.Context, caller domain.Address, id uint64) error
	Recover(ctx context.Context, caller domain.Address, id uint64) error
	TransferWithFee(ctx context.Context, req TransferRequest) (*TransferResult, error)
	Approve(ctx context.Context, caller, operator domain.Address, id uint64) error

	AddRoyaltyRecipient(ctx context.Context, caller domain.Address, id uint64, recipient domain.Address, shareBps uint64) error
	RemoveRoyaltyRecipient(ctx context.Context, caller domain.Address, id uint64, recipient domain.Address) error
	SetRoyaltyRate(ctx context.Context, caller domain.Address, id uint64, bps uint64) error
	SetTransferFeeOverride(ctx context.Context, caller domain.Address, id uint64, bps *uint64) error

	SetMintFeePercentage(ctx context.Context, caller domain.Address, bps uint64) error
	SetTransferFeePercentage(ctx context.Context, caller domain.Address, bps uint64) error
	SetFeeCollector(ctx context.Context, caller, collector domain.Address) error
	SetMintCooldown(ctx context.Context, caller domain.Address, cooldown time.Duration) error
	SetMinValuationUpdateInterval(ctx context.Context, caller domain.Address, interval time.Duration) error

	Asset(ctx context.Context, id uint64) (*domain.Asset, error)
	RoyaltyRecipients(ctx context.Context, id uint64) ([]domain.RoyaltyRecipient, error)
	QuoteTransfer(ctx context.Context, id uint64) (*domain.TransferQuote, error)
	Settings() RegistrySettings
}

// FractionalVault is one fractionalization vault instance.
type FractionalVault interface {
	ID() uuid.UUID
	Address() domain.Address
	Info(ctx context.Context) (*domain.VaultInfo, error)
	BalanceOf(ctx context.Context, holder domain.Address) (uint64, error)

	Buy(ctx context.Context, caller domain.Address, amount, payment uint64) (*domain.TradeReceipt, error)
	Sell(ctx context.Context, caller domain.Address, amount uint64) (*domain.TradeReceipt, error)
	DepositLiquidity(ctx context.Context, caller domain.Address, amount uint64) error
	WithdrawLiquidity(ctx context.Context, caller domain.Address, amount uint64) error
	EnableRedemption(ctx context.Context, caller domain.Address, price uint64) error
	Redeem(ctx context.Context, caller domain.Address) error
	Pause(ctx context.Context, caller domain.Address) error
	Unpause(ctx context.Context, caller domain.Address) error
}

// CreateVaultRequest holds validated input for fractionalizing an asset.
type CreateVaultRequest struct {
	Caller        domain.Address
	Name          string
	Symbol        string
	AssetContract domain.Address
	AssetID       uint64
	TotalShares   uint64
	UnitPrice     uint64
	Payment       uint64
}

// CreateVaultResult is the new vault plus its settlement.
type CreateVaultResult struct {
	Vault  *domain.VaultInfo `json:"vault"`
	Fee    uint64            `json:"fee"`
	Refund uint64            `json:"refund"`
}

// FactorySettings is the factory fee schedule.
type FactorySettings struct {
	Address        domain.Address `json:"address"`
	FeeCollector   domain.Address `json:"fee_collector"`
	CreationFeeBps uint64         `json:"creation_fee_bps"`
	Paused         bool           `json:"paused"`
}

// VaultFactory defines vault creation and lookup.
type VaultFactory interface {
	Create(ctx context.Context, req CreateVaultRequest) (*CreateVaultResult, error)
	Vault(ctx context.Context, id uuid.UUID) (FractionalVault, error)
	VaultFor(ctx context.Context, assetContract domain.Address, assetID uint64) (FractionalVault, error)
	VaultsByOwner(ctx context.Context, owner domain.Address) ([]domain.VaultInfo, error)

	SetCreationFeePercentage(ctx context.Context, caller domain.Address, bps uint64) error
	SetFeeCollector(ctx context.Context, caller, collector domain.Address) error
	Pause(ctx context.Context, caller domain.Address) error
	Unpause(ctx context.Context, caller domain.Address) error
	Settings() FactorySettings
}

// FundsService exposes balances and privileged top-ups.
type FundsService interface {
	Topup(ctx context.Context, caller, to domain.Address, amount uint64) (uint64, error) // returns the new balance
	Balance(ctx context.Context, holder domain.Address) (uint64, error)
}
