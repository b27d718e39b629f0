package domain

import "math/bits"

const (
	// BpsDenominator is 100% in basis points.
	BpsDenominator uint64 = 10000
	// MaxFeeBps caps every configurable fee or royalty rate at 10%.
	MaxFeeBps uint64 = 1000
	// VaultTradeFeeBps is the fixed platform fee on vault buys and sells.
	VaultTradeFeeBps uint64 = 300
)

// MulBps returns amount * bps / 10000 truncated toward zero.
// ok is false when the result does not fit in a uint64.
func MulBps(amount, bps uint64) (uint64, bool) {
	hi, lo := bits.Mul64(amount, bps)
	if hi >= BpsDenominator {
		return 0, false
	}
	q, _ := bits.Div64(hi, lo, BpsDenominator)
	return q, true
}

// CheckedMul returns a*b, with ok false on overflow.
func CheckedMul(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

// CheckedAdd returns a+b, with ok false on overflow.
func CheckedAdd(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

// RoyaltyPayout is one recipient's cut of a royalty.
type RoyaltyPayout struct {
	Recipient Address `json:"recipient"`
	Amount    uint64  `json:"amount"`
}

// TransferQuote is the fee breakdown of a fee-bearing transfer.
// Royalty equals the sum of Payouts, so truncation dust is never charged.
type TransferQuote struct {
	AssetID     uint64          `json:"asset_id"`
	Valuation   uint64          `json:"valuation"`
	FeeBps      uint64          `json:"fee_bps"`
	RoyaltyBps  uint64          `json:"royalty_bps"`
	PlatformFee uint64          `json:"platform_fee"`
	Royalty     uint64          `json:"royalty"`
	Payouts     []RoyaltyPayout `json:"payouts"`
	Total       uint64          `json:"total"`
}

// SplitRoyalty divides total across recipients by their share of 10000.
// Each payout truncates, so the sum may fall short of total by at most
// len(recipients)-1 units when the shares sum to 10000.
func SplitRoyalty(total uint64, recipients []RoyaltyRecipient) ([]RoyaltyPayout, uint64) {
	payouts := make([]RoyaltyPayout, 0, len(recipients))
	var paid uint64
	for _, r := range recipients {
		amt, _ := MulBps(total, r.ShareBps) // ShareBps <= 10000 so this never overflows
		if amt == 0 {
			continue
		}
		payouts = append(payouts, RoyaltyPayout{Recipient: r.Recipient, Amount: amt})
		paid += amt
	}
	return payouts, paid
}

// QuoteTransfer computes the fee-bearing transfer quote for asset at the
// given platform rate. The asset's fee override, when set, replaces
// defaultFeeBps. ok is false on overflow.
func QuoteTransfer(asset *Asset, defaultFeeBps uint64) (*TransferQuote, bool) {
	feeBps := defaultFeeBps
	if asset.TransferFeeOverride != nil {
		feeBps = *asset.TransferFeeOverride
	}
	fee, ok := MulBps(asset.Valuation, feeBps)
	if !ok {
		return nil, false
	}
	royaltyPool, ok := MulBps(asset.Valuation, asset.RoyaltyBps)
	if !ok {
		return nil, false
	}
	payouts, royalty := SplitRoyalty(royaltyPool, asset.Royalties)
	total, ok := CheckedAdd(fee, royalty)
	if !ok {
		return nil, false
	}

	return &TransferQuote{
		AssetID:     asset.ID,
		Valuation:   asset.Valuation,
		FeeBps:      feeBps,
		RoyaltyBps:  asset.RoyaltyBps,
		PlatformFee: fee,
		Royalty:     royalty,
		Payouts:     payouts,
		Total:       total,
	}, true
}
