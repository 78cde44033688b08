package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
)

// DigestLength is the length of a hex-encoded digest.
const DigestLength = sha256.Size * 2

// Digest returns the lowercase hex SHA-256 digest of the UTF-8 bytes of s.
func Digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// digestBytes returns the raw SHA-256 digest of s.
func digestBytes(s string) [sha256.Size]byte {
	return sha256.Sum256([]byte(s))
}
