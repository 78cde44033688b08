package fingerprint

import "strings"

// hexPrefix is the optional prefix stripped from addresses. It is matched
// case-insensitively.
const hexPrefix = "0x"

// hexDigits are the characters considered valid in a normalized address.
const hexDigits = "0123456789abcdef"

// Normalize trims surrounding whitespace, removes a leading "0x" or "0X"
// and lowercases the remainder. It performs no character validation.
func Normalize(raw string) string {
	return strings.ToLower(stripPrefix(raw))
}

// stripPrefix trims whitespace and removes the hex prefix, preserving case.
func stripPrefix(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) >= len(hexPrefix) && strings.EqualFold(s[:len(hexPrefix)], hexPrefix) {
		s = s[len(hexPrefix):]
	}
	return s
}

// IsHex reports whether every character of a normalized address is a
// lowercase hex digit. The empty string is considered hex.
func IsHex(normalized string) bool {
	for _, c := range normalized {
		if !strings.ContainsRune(hexDigits, c) {
			return false
		}
	}
	return true
}
