package domain

import (
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/sha3"
)

// LifecycleStage tags where a registered asset is in its real-world lifecycle.
type LifecycleStage string

const (
	LifecycleStageRegistered LifecycleStage = "REGISTERED"
	LifecycleStageActive     LifecycleStage = "ACTIVE"
	LifecycleStageEncumbered LifecycleStage = "ENCUMBERED"
	LifecycleStageRetired    LifecycleStage = "RETIRED"
)

// AssetMetadata is the descriptive part of an asset supplied at mint time.
type AssetMetadata struct {
	Title          string         `json:"title"`
	Category       string         `json:"category"`
	URI            string         `json:"uri,omitempty"`
	Fingerprint    string         `json:"fingerprint"` // Opaque content hash
	LifecycleStage LifecycleStage `json:"lifecycle_stage"`
}

// RoyaltyRecipient is one entry of an asset's royalty split.
type RoyaltyRecipient struct {
	Recipient Address `json:"recipient"`
	ShareBps  uint64  `json:"share_bps"`
}

// Asset is the registry's record of a unique registered asset.
type Asset struct {
	ID                  uint64             `json:"id"`
	Metadata            AssetMetadata      `json:"metadata"`
	Owner               Address            `json:"owner"`
	OriginalOwner       Address            `json:"original_owner"`
	Valuation           uint64             `json:"valuation"`
	Verified            bool               `json:"verified"`
	VerificationLevel   uint8              `json:"verification_level"`
	Frozen              bool               `json:"frozen"`
	RoyaltyBps          uint64             `json:"royalty_bps"`
	TransferFeeOverride *uint64            `json:"transfer_fee_override_bps,omitempty"`
	Royalties           []RoyaltyRecipient `json:"royalties"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
	ValuationUpdatedAt  time.Time          `json:"valuation_updated_at"`
}

// RoyaltyShareTotal sums the recipients' shares.
func (a *Asset) RoyaltyShareTotal() uint64 {
	var total uint64
	for _, r := range a.Royalties {
		total += r.ShareBps
	}
	return total
}

// RoyaltyShareOf returns recipient's share and whether it is listed.
func (a *Asset) RoyaltyShareOf(recipient Address) (uint64, bool) {
	for _, r := range a.Royalties {
		if r.Recipient == recipient {
			return r.ShareBps, true
		}
	}
	return 0, false
}

// Clone returns a deep copy safe to hand outside the registry lock.
func (a *Asset) Clone() *Asset {
	cp := *a
	cp.Royalties = append([]RoyaltyRecipient(nil), a.Royalties...)
	if a.TransferFeeOverride != nil {
		v := *a.TransferFeeOverride
		cp.TransferFeeOverride = &v
	}
	return &cp
}

// CanonicalFingerprintInput renders metadata in a stable form for hashing.
// Each field carries its value's byte length, so no title or URI can be
// crafted to read as a different split of the same bytes.
func (m AssetMetadata) CanonicalFingerprintInput() []string {
	field := func(name, value string) string {
		return name + "=" + strconv.Itoa(len(value)) + ":" + value
	}
	return []string{
		field("category", m.Category),
		field("title", m.Title),
		field("uri", m.URI),
	}
}

// DeriveFingerprint hashes the canonical metadata with Keccak-256. It is
// used when a minter supplies no fingerprint of its own.
func DeriveFingerprint(m AssetMetadata) string {
	sum := sha3.NewLegacyKeccak256()
	sum.Write([]byte(strings.Join(m.CanonicalFingerprintInput(), "\n")))
	return "0x" + hex.EncodeToString(sum.Sum(nil))
}
