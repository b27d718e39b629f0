package domain

import (
	"time"

	"github.com/google/uuid"
)

// VaultInfo is a point-in-time view of a fractionalization vault.
type VaultInfo struct {
	ID                uuid.UUID `json:"id"`
	Address           Address   `json:"address"`
	Name              string    `json:"name"`
	Symbol            string    `json:"symbol"`
	AssetContract     Address   `json:"asset_contract"`
	AssetID           uint64    `json:"asset_id"`
	OriginalOwner     Address   `json:"original_owner"`
	TotalShares       uint64    `json:"total_shares"` // Cap, fixed at creation
	CirculatingShares uint64    `json:"circulating_shares"`
	UnitPrice         uint64    `json:"unit_price"`
	FeeCollector      Address   `json:"fee_collector"`
	Liquidity         uint64    `json:"liquidity"`
	RedemptionEnabled bool      `json:"redemption_enabled"`
	RedemptionPrice   uint64    `json:"redemption_price"`
	Redeemed          bool      `json:"redeemed"`
	Paused            bool      `json:"paused"`
	CreatedAt         time.Time `json:"created_at"`
}

// VaultKey identifies the asset a vault was created for.
type VaultKey struct {
	AssetContract Address
	AssetID       uint64
}

// TradeReceipt describes a settled buy or sell.
type TradeReceipt struct {
	VaultID  uuid.UUID `json:"vault_id"`
	Trader   Address   `json:"trader"`
	Amount   uint64    `json:"amount"`
	Price    uint64    `json:"price"`
	Fee      uint64    `json:"fee"`
	Refund   uint64    `json:"refund,omitempty"`
	Proceeds uint64    `json:"proceeds,omitempty"`
}
