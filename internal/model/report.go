package model

// ShortIDLength is the number of fingerprint characters used for the short id.
const ShortIDLength = 8

// Report is the read-only aggregate derived from one address.
// Field order matches the JSON key order of the structured output.
//
// Fingerprint, ShortID, Identicon and Entropy are derived from the normalized
// address alone. Only Alias depends on the seed.
type Report struct {
	// Input is the address exactly as the caller supplied it.
	Input string `json:"input"`

	// Normalized is the trimmed, prefix-free, lowercase form of Input.
	Normalized string `json:"normalized"`

	// Fingerprint is the hex SHA-256 digest of Normalized (never seeded).
	Fingerprint string `json:"fingerprint"`

	// ShortID is the first ShortIDLength characters of Fingerprint.
	ShortID string `json:"short_id"`

	// Alias is the pronounceable name derived from Normalized and the seed.
	Alias string `json:"alias"`

	// Entropy is the normalized Shannon entropy of Normalized, 0..100.
	Entropy Score `json:"entropy_score"`

	// Identicon holds the rendered rows, top to bottom.
	Identicon []string `json:"identicon_lines"`

	// Advisories lists non-fatal observations about the input.
	Advisories []Advisory `json:"warnings,omitempty"`
}

// HasAdvisories reports whether the derivation produced any advisory.
func (r *Report) HasAdvisories() bool {
	return len(r.Advisories) > 0
}

// AddAdvisory appends an advisory to the report.
func (r *Report) AddAdvisory(a Advisory) {
	r.Advisories = append(r.Advisories, a)
}
