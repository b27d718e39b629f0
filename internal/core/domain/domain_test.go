package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Address
		ok   bool
	}{
		{"lowercase", "0x00000000000000000000000000000000000000aa", "0x00000000000000000000000000000000000000aa", true},
		{"mixed case", "0xABCDEF0000000000000000000000000000000001", "0xabcdef0000000000000000000000000000000001", true},
		{"upper prefix", "0X00000000000000000000000000000000000000aa", "0x00000000000000000000000000000000000000aa", true},
		{"surrounding space", " 0x00000000000000000000000000000000000000aa ", "0x00000000000000000000000000000000000000aa", true},
		{"too short", "0x1234", "", false},
		{"no prefix", "00000000000000000000000000000000000000aa00", "", false},
		{"non hex", "0xzz000000000000000000000000000000000000aa", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAddress(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMustParseAddress_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseAddress("nope") })
}

func TestDeriveAddress(t *testing.T) {
	a := DeriveAddress("vault", "0x000000000000000000000000000000000000fac7", "1")
	b := DeriveAddress("vault", "0x000000000000000000000000000000000000fac7", "1")
	c := DeriveAddress("vault", "0x000000000000000000000000000000000000fac7", "2")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	_, ok := ParseAddress(a.String())
	assert.True(t, ok)
	assert.False(t, a.IsZero())

	// Part boundaries matter.
	assert.NotEqual(t, DeriveAddress("ab", "c"), DeriveAddress("a", "bc"))
}

func TestAddress_IsZero(t *testing.T) {
	assert.True(t, Address("").IsZero())
	assert.True(t, ZeroAddress.IsZero())
	assert.False(t, MustParseAddress("0x00000000000000000000000000000000000000aa").IsZero())
}

func TestMulBps(t *testing.T) {
	tests := []struct {
		name   string
		amount uint64
		bps    uint64
		want   uint64
		ok     bool
	}{
		{"mint fee", 100000, 300, 3000, true},
		{"vault fee", 1000, 300, 30, true},
		{"truncates", 33, 300, 0, true},
		{"truncates partially", 1234, 250, 30, true},
		{"full", 777, BpsDenominator, 777, true},
		{"zero", 0, 1000, 0, true},
		{"large amount", math.MaxUint64, 1000, math.MaxUint64 / 10, true},
		{"overflow", math.MaxUint64, BpsDenominator + 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MulBps(tt.amount, tt.bps)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckedArithmetic(t *testing.T) {
	v, ok := CheckedMul(1000, 10)
	assert.True(t, ok)
	assert.Equal(t, uint64(10000), v)

	_, ok = CheckedMul(math.MaxUint64, 2)
	assert.False(t, ok)

	v, ok = CheckedAdd(1000, 30)
	assert.True(t, ok)
	assert.Equal(t, uint64(1030), v)

	_, ok = CheckedAdd(math.MaxUint64, 1)
	assert.False(t, ok)
}

func TestSplitRoyalty_LossBound(t *testing.T) {
	recipients := []RoyaltyRecipient{
		{Recipient: "0x0000000000000000000000000000000000000001", ShareBps: 3333},
		{Recipient: "0x0000000000000000000000000000000000000002", ShareBps: 3333},
		{Recipient: "0x0000000000000000000000000000000000000003", ShareBps: 3334},
	}

	for _, total := range []uint64{1, 7, 100, 999, 12345, 1_000_001} {
		payouts, paid := SplitRoyalty(total, recipients)
		var sum uint64
		for _, p := range payouts {
			assert.NotZero(t, p.Amount)
			sum += p.Amount
		}
		assert.Equal(t, sum, paid)
		assert.LessOrEqual(t, paid, total)
		assert.LessOrEqual(t, total-paid, uint64(len(recipients)-1), "total=%d", total)
	}
}

func TestSplitRoyalty_SkipsZeroPayouts(t *testing.T) {
	recipients := []RoyaltyRecipient{
		{Recipient: "0x0000000000000000000000000000000000000001", ShareBps: 9999},
		{Recipient: "0x0000000000000000000000000000000000000002", ShareBps: 1},
	}
	payouts, paid := SplitRoyalty(100, recipients)
	require.Len(t, payouts, 1)
	assert.Equal(t, uint64(99), paid)
	assert.Equal(t, recipients[0].Recipient, payouts[0].Recipient)
}

func TestAsset_RoyaltyHelpers(t *testing.T) {
	override := uint64(50)
	a := &Asset{
		ID: 1,
		Royalties: []RoyaltyRecipient{
			{Recipient: "0x0000000000000000000000000000000000000001", ShareBps: 6000},
			{Recipient: "0x0000000000000000000000000000000000000002", ShareBps: 4000},
		},
		TransferFeeOverride: &override,
	}

	assert.Equal(t, uint64(10000), a.RoyaltyShareTotal())

	share, ok := a.RoyaltyShareOf("0x0000000000000000000000000000000000000002")
	assert.True(t, ok)
	assert.Equal(t, uint64(4000), share)

	_, ok = a.RoyaltyShareOf("0x0000000000000000000000000000000000000003")
	assert.False(t, ok)

	cp := a.Clone()
	cp.Royalties[0].ShareBps = 1
	*cp.TransferFeeOverride = 999
	assert.Equal(t, uint64(6000), a.Royalties[0].ShareBps)
	assert.Equal(t, uint64(50), *a.TransferFeeOverride)
}

func TestAssetMetadata_CanonicalFingerprintInput(t *testing.T) {
	m := AssetMetadata{Title: "Harbour Warehouse", Category: "real-estate", URI: "ipfs://x"}
	assert.Equal(t, []string{"category=11:real-estate", "title=17:Harbour Warehouse", "uri=8:ipfs://x"}, m.CanonicalFingerprintInput())
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("MINTER")
	assert.True(t, ok)
	assert.Equal(t, RoleMinter, r)

	_, ok = ParseRole("minter")
	assert.False(t, ok)
}

func TestDecision(t *testing.T) {
	assert.Equal(t, Decision{Allowed: true, Reason: DenyReasonNone}, Allow())
	assert.Equal(t, Decision{Allowed: false, Reason: DenyReasonPairRestricted}, Deny(DenyReasonPairRestricted))
}

func TestEvent_Builders(t *testing.T) {
	e := NewEvent(EventAssetMinted, "registry", "0x0000000000000000000000000000000000000001", map[string]any{"valuation": 1})
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.OccurredAt.IsZero())

	e = e.ForAsset(7)
	assert.Equal(t, uint64(7), e.AssetID)
	assert.Nil(t, e.VaultID)
}

func TestBuildIdempotencyKey(t *testing.T) {
	key := BuildIdempotencyKey("0x00000000000000000000000000000000000000aa", "vault_buy", "ORD-001")
	assert.Equal(t, "0x00000000000000000000000000000000000000aa:vault_buy:ORD-001", key)
}

func TestDeriveFingerprint(t *testing.T) {
	m := AssetMetadata{Title: "Harbour Warehouse", Category: "real-estate"}
	fp := DeriveFingerprint(m)
	assert.Len(t, fp, 66)
	assert.Equal(t, fp, DeriveFingerprint(m))

	m.URI = "ipfs://x"
	assert.NotEqual(t, fp, DeriveFingerprint(m))

	// Fingerprint and lifecycle are not part of the canonical input.
	m2 := m
	m2.Fingerprint = "0xabc"
	m2.LifecycleStage = LifecycleStageActive
	assert.Equal(t, DeriveFingerprint(m), DeriveFingerprint(m2))
}

func TestDeriveFingerprint_FieldBoundaries(t *testing.T) {
	cases := []struct {
		name string
		a, b AssetMetadata
	}{
		{
			name: "newline in title",
			a:    AssetMetadata{Title: "a\nuri=b", Category: "c"},
			b:    AssetMetadata{Title: "a", Category: "c", URI: "b"},
		},
		{
			name: "value moved between fields",
			a:    AssetMetadata{Title: "ab", Category: "c"},
			b:    AssetMetadata{Title: "a", Category: "c", URI: "b"},
		},
		{
			name: "category swallowing the next line",
			a:    AssetMetadata{Category: "c\ntitle=t", Title: ""},
			b:    AssetMetadata{Category: "c", Title: "t"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotEqual(t, DeriveFingerprint(tc.a), DeriveFingerprint(tc.b))
		})
	}
}

func TestQuoteTransfer(t *testing.T) {
	recipients := []RoyaltyRecipient{
		{Recipient: "0x0000000000000000000000000000000000000001", ShareBps: 6000},
		{Recipient: "0x0000000000000000000000000000000000000002", ShareBps: 4000},
	}

	t.Run("default rate", func(t *testing.T) {
		q, ok := QuoteTransfer(&Asset{ID: 3, Valuation: 10_000, RoyaltyBps: 500, Royalties: recipients}, 200)
		require.True(t, ok)
		assert.Equal(t, uint64(200), q.FeeBps)
		assert.Equal(t, uint64(200), q.PlatformFee)
		assert.Equal(t, uint64(500), q.Royalty)
		require.Len(t, q.Payouts, 2)
		assert.Equal(t, uint64(300), q.Payouts[0].Amount)
		assert.Equal(t, uint64(200), q.Payouts[1].Amount)
		assert.Equal(t, uint64(700), q.Total)
	})

	t.Run("override replaces default", func(t *testing.T) {
		override := uint64(0)
		q, ok := QuoteTransfer(&Asset{Valuation: 10_000, TransferFeeOverride: &override}, 200)
		require.True(t, ok)
		assert.Equal(t, uint64(0), q.PlatformFee)
		assert.Equal(t, uint64(0), q.Total)
		assert.Empty(t, q.Payouts)
	})

	t.Run("royalty without recipients is not charged", func(t *testing.T) {
		q, ok := QuoteTransfer(&Asset{Valuation: 10_000, RoyaltyBps: 1000}, 100)
		require.True(t, ok)
		assert.Equal(t, uint64(0), q.Royalty)
		assert.Equal(t, uint64(100), q.Total)
	})

	t.Run("overflow", func(t *testing.T) {
		_, ok := QuoteTransfer(&Asset{Valuation: math.MaxUint64}, 10_000)
		assert.True(t, ok)
		_, ok = QuoteTransfer(&Asset{Valuation: math.MaxUint64, RoyaltyBps: 10_000, Royalties: recipients}, 10_000)
		assert.False(t, ok)
	})
}
