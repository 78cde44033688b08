package config

import "strings"

// Format is an output format for reports.
type Format string

const (
	// FormatText is the human-readable line format.
	FormatText Format = "text"
	// FormatJSON is the key-ordered JSON document.
	FormatJSON Format = "json"
	// FormatMarkdown is a GitHub Flavored Markdown document.
	FormatMarkdown Format = "markdown"
)

// ParseFormat converts a case-insensitive name to a Format.
// "md" is accepted as a short form of "markdown".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", ErrInvalidFormat
	}
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatJSON, FormatMarkdown:
		return true
	default:
		return false
	}
}
