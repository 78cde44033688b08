package fingerprint

import "github.com/nao1215/addralias/internal/model"

// options holds the caller-supplied parameters of a derivation.
type options struct {
	seed     string
	gridSize int
}

// Option configures Derive.
type Option func(*options)

// WithSeed sets the seed mixed into the alias. The default is empty.
// The seed affects the alias only.
func WithSeed(seed string) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithGridSize sets the identicon size. Values of zero or less keep the
// default of DefaultGridSize.
func WithGridSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.gridSize = size
		}
	}
}

// Derive runs the whole pipeline for one address and returns its report.
//
// Derive never fails: any string, including an empty or non-hex one, is
// accepted and hashed. Suspicious input is flagged through the report's
// advisories instead.
func Derive(input string, opts ...Option) *model.Report {
	o := options{gridSize: DefaultGridSize}
	for _, opt := range opts {
		opt(&o)
	}

	normalized := Normalize(input)
	fp := Digest(normalized)

	report := &model.Report{
		Input:       input,
		Normalized:  normalized,
		Fingerprint: fp,
		ShortID:     fp[:model.ShortIDLength],
		Alias:       Alias(normalized, o.seed),
		Entropy:     model.Score(EntropyScore(normalized)),
		Identicon:   Identicon(normalized, o.gridSize),
	}

	if !IsHex(normalized) {
		report.AddAdvisory(model.NewNonHexAdvisory())
	}
	if Checksum(input) == ChecksumInvalid {
		report.AddAdvisory(model.NewChecksumMismatchAdvisory())
	}

	return report
}
