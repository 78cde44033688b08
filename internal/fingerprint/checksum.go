package fingerprint

import (
	"strings"

	"golang.org/x/crypto/sha3"
)

// ChecksumStatus is the result of an EIP-55 mixed-case checksum check.
type ChecksumStatus int

const (
	// ChecksumNotApplicable means the address is not a 20-byte hex address
	// written in mixed case, so it carries no checksum.
	ChecksumNotApplicable ChecksumStatus = iota
	// ChecksumValid means the casing matches the EIP-55 checksum.
	ChecksumValid
	// ChecksumInvalid means the casing contradicts the EIP-55 checksum.
	ChecksumInvalid
)

// String returns the string representation of the ChecksumStatus.
func (s ChecksumStatus) String() string {
	switch s {
	case ChecksumValid:
		return "valid"
	case ChecksumInvalid:
		return "invalid"
	default:
		return "not applicable"
	}
}

// eip55Length is the number of hex characters in a 20-byte address.
const eip55Length = 40

// Checksum verifies the EIP-55 casing of a raw address.
//
// Only 40-digit hex addresses that contain both upper- and lower-case letters
// carry a checksum; all-lowercase and all-uppercase addresses are not
// applicable. The check is advisory and never affects derivation, which
// always works on the lowercased form.
func Checksum(raw string) ChecksumStatus {
	addr := stripPrefix(raw)
	if len(addr) != eip55Length {
		return ChecksumNotApplicable
	}
	lower := strings.ToLower(addr)
	if !IsHex(lower) {
		return ChecksumNotApplicable
	}
	if addr == lower || addr == strings.ToUpper(addr) {
		return ChecksumNotApplicable
	}

	if addr == ToChecksumAddress(lower) {
		return ChecksumValid
	}
	return ChecksumInvalid
}

// ToChecksumAddress returns the EIP-55 mixed-case form of a 40-digit
// lowercase hex address, without prefix. Input of any other shape is
// returned unchanged.
func ToChecksumAddress(normalized string) string {
	if len(normalized) != eip55Length || !IsHex(normalized) {
		return normalized
	}

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(normalized))
	sum := h.Sum(nil)

	out := []byte(normalized)
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}
		nibble := sum[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0x0f >= 8 {
			out[i] = c - ('a' - 'A')
		}
	}
	return string(out)
}
