package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a state mutation notification.
type EventType string

const (
	EventAssetMinted             EventType = "ASSET_MINTED"
	EventAssetVerified           EventType = "ASSET_VERIFIED"
	EventAssetFrozen             EventType = "ASSET_FROZEN"
	EventAssetUnfrozen           EventType = "ASSET_UNFROZEN"
	EventAssetRecovered          EventType = "ASSET_RECOVERED"
	EventAssetTransferred        EventType = "ASSET_TRANSFERRED"
	EventValuationUpdated        EventType = "VALUATION_UPDATED"
	EventRoyaltyRecipientSet     EventType = "ROYALTY_RECIPIENT_SET"
	EventRoyaltyRecipientRemoved EventType = "ROYALTY_RECIPIENT_REMOVED"
	EventRoyaltyRateSet          EventType = "ROYALTY_RATE_SET"
	EventTransferFeeOverrideSet  EventType = "TRANSFER_FEE_OVERRIDE_SET"
	EventRegistrySettingChanged  EventType = "REGISTRY_SETTING_CHANGED"

	EventAddressBlocked      EventType = "ADDRESS_BLOCKED"
	EventAddressUnblocked    EventType = "ADDRESS_UNBLOCKED"
	EventPairRestrictionSet  EventType = "PAIR_RESTRICTION_SET"
	EventAssetRestrictionSet EventType = "ASSET_RESTRICTION_SET"
	EventPolicyPaused        EventType = "POLICY_PAUSED"
	EventPolicyUnpaused      EventType = "POLICY_UNPAUSED"

	EventVaultCreated          EventType = "VAULT_CREATED"
	EventSharesBought          EventType = "SHARES_BOUGHT"
	EventSharesSold            EventType = "SHARES_SOLD"
	EventLiquidityDeposited    EventType = "LIQUIDITY_DEPOSITED"
	EventLiquidityWithdrawn    EventType = "LIQUIDITY_WITHDRAWN"
	EventRedemptionEnabled     EventType = "REDEMPTION_ENABLED"
	EventRedemptionExecuted    EventType = "REDEMPTION_EXECUTED"
	EventVaultPaused           EventType = "VAULT_PAUSED"
	EventVaultUnpaused         EventType = "VAULT_UNPAUSED"
	EventFactorySettingChanged EventType = "FACTORY_SETTING_CHANGED"
	EventFactoryPaused         EventType = "FACTORY_PAUSED"
	EventFactoryUnpaused       EventType = "FACTORY_UNPAUSED"

	EventRoleGranted   EventType = "ROLE_GRANTED"
	EventRoleRevoked   EventType = "ROLE_REVOKED"
	EventFundsCredited EventType = "FUNDS_CREDITED"
)

// Event is the structured notification emitted once per successful mutation.
type Event struct {
	ID         uuid.UUID      `json:"id"`
	Type       EventType      `json:"type"`
	Source     string         `json:"source"` // registry, policy, factory, access, vault
	Actor      Address        `json:"actor"`
	AssetID    uint64         `json:"asset_id,omitempty"`
	VaultID    *uuid.UUID     `json:"vault_id,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// NewEvent stamps a fresh event.
func NewEvent(typ EventType, source string, actor Address, data map[string]any) Event {
	return Event{
		ID:         uuid.New(),
		Type:       typ,
		Source:     source,
		Actor:      actor,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
}

// ForAsset attaches the asset id.
func (e Event) ForAsset(id uint64) Event {
	e.AssetID = id
	return e
}

// ForVault attaches the vault id.
func (e Event) ForVault(id uuid.UUID) Event {
	e.VaultID = &id
	return e
}

// EventFilter narrows an event history listing.
type EventFilter struct {
	Type     *EventType
	AssetID  *uint64
	VaultID  *uuid.UUID
	Actor    *Address
	From     *int64 // Unix timestamp
	To       *int64 // Unix timestamp
	Page     int
	PageSize int
}
