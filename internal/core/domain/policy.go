package domain

// DenyReason names the first policy rule that rejected a transfer.
// The evaluation order is part of the contract; callers surface it verbatim.
type DenyReason string

const (
	DenyReasonNone             DenyReason = "NONE"
	DenyReasonPaused           DenyReason = "PAUSED"
	DenyReasonSenderBlocked    DenyReason = "SENDER_BLOCKED"
	DenyReasonRecipientBlocked DenyReason = "RECIPIENT_BLOCKED"
	DenyReasonPairRestricted   DenyReason = "PAIR_RESTRICTED"
	DenyReasonAssetRestricted  DenyReason = "ASSET_RESTRICTED"
)

// Decision is the outcome of evaluating one transfer.
type Decision struct {
	Allowed bool       `json:"allowed"`
	Reason  DenyReason `json:"reason"`
}

// Allow is the decision for a permitted transfer.
func Allow() Decision {
	return Decision{Allowed: true, Reason: DenyReasonNone}
}

// Deny is the decision for a rejected transfer.
func Deny(reason DenyReason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// AddressPair is an ordered (from, to) pair.
type AddressPair struct {
	From Address `json:"from"`
	To   Address `json:"to"`
}

// PolicySnapshot is a copy of the engine state.
type PolicySnapshot struct {
	Paused           bool          `json:"paused"`
	Blacklist        []Address     `json:"blacklist"`
	PairRestrictions []AddressPair `json:"pair_restrictions"`
	AssetRestricted  []uint64      `json:"asset_restrictions"`
}
