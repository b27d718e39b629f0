package dto

import "fractional-asset-registry/internal/core/domain"

// --- Assets ---

// MintRequest is the request body for registering a new asset.
type MintRequest struct {
	Owner          string `json:"owner" binding:"required,eth_addr"`
	Title          string `json:"title" binding:"required,min=1,max=200"`
	Category       string `json:"category" binding:"required,safe_id,max=64"`
	URI            string `json:"uri,omitempty" binding:"omitempty,max=512"`
	Fingerprint    string `json:"fingerprint,omitempty" binding:"omitempty,hexadecimal,max=66"`
	LifecycleStage string `json:"lifecycle_stage,omitempty" binding:"omitempty,oneof=REGISTERED ACTIVE ENCUMBERED RETIRED"`
	Valuation      uint64 `json:"valuation" binding:"required,gt=0"`
	Payment        uint64 `json:"payment"`
}

// VerifyRequest is the request body for raising an asset's verification level.
type VerifyRequest struct {
	Level uint8 `json:"level" binding:"required,gt=0"`
}

// ValuationRequest is the request body for a valuation update.
type ValuationRequest struct {
	Valuation uint64 `json:"valuation" binding:"required,gt=0"`
}

// TransferRequest is the request body for a fee-bearing transfer.
type TransferRequest struct {
	To      string `json:"to" binding:"required,eth_addr"`
	Payment uint64 `json:"payment"`
}

// ApproveRequest is the request body for approving an operator. An empty
// operator clears the approval.
type ApproveRequest struct {
	Operator string `json:"operator" binding:"omitempty,eth_addr"`
}

// RoyaltyRecipientRequest adds or removes a royalty recipient.
type RoyaltyRecipientRequest struct {
	Recipient string `json:"recipient" binding:"required,eth_addr"`
	ShareBps  uint64 `json:"share_bps" binding:"bps"`
}

// BpsRequest carries a single basis-point setting.
type BpsRequest struct {
	Bps uint64 `json:"bps" binding:"bps"`
}

// FeeOverrideRequest sets or clears (null) an asset's transfer fee override.
type FeeOverrideRequest struct {
	Bps *uint64 `json:"bps" binding:"omitempty,bps"`
}

// RegistrySettingsRequest updates any subset of the registry settings.
// Durations are capped at the largest whole-second time.Duration.
type RegistrySettingsRequest struct {
	MintFeeBps                        *uint64 `json:"mint_fee_bps,omitempty" binding:"omitempty,bps"`
	TransferFeeBps                    *uint64 `json:"transfer_fee_bps,omitempty" binding:"omitempty,bps"`
	FeeCollector                      *string `json:"fee_collector,omitempty" binding:"omitempty,eth_addr"`
	MintCooldownSeconds               *int64  `json:"mint_cooldown_seconds,omitempty" binding:"omitempty,gte=0,lte=9223372036"`
	MinValuationUpdateIntervalSeconds *int64  `json:"min_valuation_update_interval_seconds,omitempty" binding:"omitempty,gte=0,lte=9223372036"`
}

// --- Policy ---

// EvaluateQuery is the query string of a policy evaluation.
type EvaluateQuery struct {
	From    string `form:"from" binding:"required,eth_addr"`
	To      string `form:"to" binding:"required,eth_addr"`
	AssetID uint64 `form:"asset_id"`
}

// BlacklistRequest blocks or unblocks an account.
type BlacklistRequest struct {
	Account string `json:"account" binding:"required,eth_addr"`
	Blocked bool   `json:"blocked"`
}

// PairRestrictionRequest restricts or frees an ordered (from, to) pair.
type PairRestrictionRequest struct {
	From       string `json:"from" binding:"required,eth_addr"`
	To         string `json:"to" binding:"required,eth_addr"`
	Restricted bool   `json:"restricted"`
}

// AssetRestrictionRequest restricts or frees an asset id.
type AssetRestrictionRequest struct {
	AssetID    uint64 `json:"asset_id" binding:"required,gt=0"`
	Restricted bool   `json:"restricted"`
}

// --- Roles ---

// RoleRequest grants or revokes a role.
type RoleRequest struct {
	Principal string `json:"principal" binding:"required,eth_addr"`
	Role      string `json:"role" binding:"required,oneof=ADMIN MINTER VERIFIER RECOVERY POLICY OPERATOR"`
}

// --- Vaults ---

// CreateVaultRequest fractionalizes an asset.
type CreateVaultRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=64"`
	Symbol        string `json:"symbol" binding:"required,safe_id,max=16"`
	AssetContract string `json:"asset_contract" binding:"omitempty,eth_addr"` // defaults to the registry
	AssetID       uint64 `json:"asset_id" binding:"required,gt=0"`
	TotalShares   uint64 `json:"total_shares" binding:"required,gt=0"`
	UnitPrice     uint64 `json:"unit_price" binding:"required,gt=0"`
	Payment       uint64 `json:"payment"`
}

// BuyRequest buys shares from a vault.
type BuyRequest struct {
	Amount  uint64 `json:"amount" binding:"required,gt=0"`
	Payment uint64 `json:"payment"`
}

// AmountRequest carries a single positive amount.
type AmountRequest struct {
	Amount uint64 `json:"amount" binding:"required,gt=0"`
}

// RedemptionRequest enables redemption at a price.
type RedemptionRequest struct {
	Price uint64 `json:"price"`
}

// FactorySettingsRequest updates any subset of the factory settings.
type FactorySettingsRequest struct {
	CreationFeeBps *uint64 `json:"creation_fee_bps,omitempty" binding:"omitempty,bps"`
	FeeCollector   *string `json:"fee_collector,omitempty" binding:"omitempty,eth_addr"`
}

// VaultResponse is a vault view plus the caller's share balance.
type VaultResponse struct {
	*domain.VaultInfo
	CallerShares uint64 `json:"caller_shares"`
}

// --- Funds ---

// TopupRequest credits funds to an account.
type TopupRequest struct {
	Account string `json:"account" binding:"required,eth_addr"`
	Amount  uint64 `json:"amount" binding:"required,gt=0"`
}

// BalanceResponse is the funds balance of an account.
type BalanceResponse struct {
	Account domain.Address `json:"account"`
	Balance uint64         `json:"balance"`
}

// --- Events ---

// EventListQuery is the query string of the event history listing.
type EventListQuery struct {
	Type     string  `form:"type" binding:"omitempty,safe_id"`
	AssetID  *uint64 `form:"asset_id"`
	VaultID  string  `form:"vault_id" binding:"omitempty,uuid"`
	Actor    string  `form:"actor" binding:"omitempty,eth_addr"`
	From     *int64  `form:"from"`
	To       *int64  `form:"to"`
	Page     int     `form:"page" binding:"omitempty,min=1"`
	PageSize int     `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// Addr canonicalises an address that already passed eth_addr validation.
func Addr(s string) domain.Address {
	a, _ := domain.ParseAddress(s)
	return a
}
