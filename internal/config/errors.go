package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and the seed resolver and
// can be matched with errors.Is().
var (
	// ErrNoTarget is returned when no address was given as an argument,
	// through --list, or on standard input.
	ErrNoTarget = errors.New("address required (positional, --list or from stdin)")

	// ErrInvalidGridSize is returned when the identicon size is outside 1..MaxGridSize.
	ErrInvalidGridSize = errors.New("invalid identicon size: must be between 1 and 64")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrInvalidFormat is returned when the output format is not text, json or markdown.
	ErrInvalidFormat = errors.New("invalid output format: must be text, json or markdown")

	// ErrConflictingReportFormats is returned when more than one output
	// format is requested at once.
	ErrConflictingReportFormats = errors.New("conflicting report formats: use only one of --format, --json and --markdown")

	// ErrUnknownSeedPreset is returned when --seed @name refers to a preset
	// that the configuration file does not define.
	ErrUnknownSeedPreset = errors.New("unknown seed preset")
)
