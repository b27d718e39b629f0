package domain

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Address identifies a principal: a user, a fee collector, or a component
// account such as the registry escrow or a vault. Canonical form is
// "0x" followed by 40 lowercase hex digits.
type Address string

// ZeroAddress is the unset address.
const ZeroAddress Address = "0x0000000000000000000000000000000000000000"

const addressHexLen = 40

// ParseAddress validates and canonicalises s.
func ParseAddress(s string) (Address, bool) {
	s = strings.TrimSpace(s)
	if len(s) != addressHexLen+2 || !(strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")) {
		return "", false
	}
	body := strings.ToLower(s[2:])
	if _, err := hex.DecodeString(body); err != nil {
		return "", false
	}
	return Address("0x" + body), true
}

// MustParseAddress is ParseAddress for constants and tests.
func MustParseAddress(s string) Address {
	a, ok := ParseAddress(s)
	if !ok {
		panic("invalid address: " + s)
	}
	return a
}

// DeriveAddress returns a deterministic address from the Keccak-256 of the
// joined parts, keeping the last 20 bytes.
func DeriveAddress(parts ...string) Address {
	h := sha3.NewLegacyKeccak256()
	for i, p := range parts {
		if i > 0 {
			h.Write([]byte{0})
		}
		h.Write([]byte(p))
	}
	sum := h.Sum(nil)
	return Address("0x" + hex.EncodeToString(sum[len(sum)-20:]))
}

// IsZero reports whether a is empty or the zero address.
func (a Address) IsZero() bool {
	return a == "" || a == ZeroAddress
}

func (a Address) String() string {
	return string(a)
}
