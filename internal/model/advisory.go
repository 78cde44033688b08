package model

import (
	"encoding/json"
	"fmt"
)

// AdvisoryKind identifies the kind of observation made about an address.
type AdvisoryKind int

const (
	// AdvisoryNonHex indicates the normalized address contains characters
	// outside 0-9a-f. Derivation still proceeds over the raw characters.
	AdvisoryNonHex AdvisoryKind = iota + 1

	// AdvisoryChecksumMismatch indicates a mixed-case 20-byte address whose
	// letter casing does not match its EIP-55 checksum.
	AdvisoryChecksumMismatch
)

// String returns a stable identifier for the kind.
func (k AdvisoryKind) String() string {
	switch k {
	case AdvisoryNonHex:
		return "non_hex"
	case AdvisoryChecksumMismatch:
		return "checksum_mismatch"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the kind by name.
func (k AdvisoryKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a kind previously encoded by MarshalJSON.
func (k *AdvisoryKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "non_hex":
		*k = AdvisoryNonHex
	case "checksum_mismatch":
		*k = AdvisoryChecksumMismatch
	default:
		return fmt.Errorf("unknown advisory kind %q", name)
	}
	return nil
}

// Advisory is a non-fatal observation about the input. It never changes
// the derived fields of a report.
type Advisory struct {
	Kind    AdvisoryKind `json:"kind"`
	Message string       `json:"message"`
}

// Advisory messages.
const (
	NonHexMessage           = "address contains non-hex characters; proceeding with hashing anyway."
	ChecksumMismatchMessage = "address casing does not match its EIP-55 checksum; it may contain a typo."
)

// NewNonHexAdvisory returns the advisory for addresses with non-hex characters.
func NewNonHexAdvisory() Advisory {
	return Advisory{Kind: AdvisoryNonHex, Message: NonHexMessage}
}

// NewChecksumMismatchAdvisory returns the advisory for a failed EIP-55 check.
func NewChecksumMismatchAdvisory() Advisory {
	return Advisory{Kind: AdvisoryChecksumMismatch, Message: ChecksumMismatchMessage}
}
