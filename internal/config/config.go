package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "addralias"

	// DefaultGridSize is the identicon width and height.
	DefaultGridSize = 7

	// MaxGridSize bounds the identicon so that a typo cannot allocate a
	// huge grid. 64 columns still fit a normal terminal.
	MaxGridSize = 64

	// DefaultBatchSize is the number of addresses derived concurrently when
	// more than one address is given.
	DefaultBatchSize = 4

	// DefaultHistoryLimit is the number of entries `history` lists by default.
	DefaultHistoryLimit = 20

	// seedPresetPrefix marks a seed value as a reference to a named preset.
	seedPresetPrefix = "@"
)

// Config holds all options for one addralias invocation.
// It is populated from defaults, then the configuration file, then CLI
// flags, and passed explicitly rather than kept in global state.
type Config struct {
	// Seed is mixed into the alias derivation only. It may reference a
	// preset from the configuration file as "@name".
	Seed string

	// GridSize is the identicon width and height.
	GridSize int

	// Format selects the report writer.
	Format Format

	// Verbose enables debug logging.
	Verbose bool

	// BatchSize is the number of concurrent derivations for multiple targets.
	BatchSize int

	// ConfigFilePath is the explicitly requested configuration file.
	// If empty, .addralias is searched in the current and home directories.
	ConfigFilePath string

	// File is the loaded configuration file, or nil if none was found.
	File *File

	// ReportFile is the output file path. Empty means stdout.
	ReportFile string

	// ListFile is a file with one address per line.
	ListFile string

	// Extract treats the list file and standard input as free text and
	// derives every address found in it.
	Extract bool

	// SaveHistory records each report in the history database.
	SaveHistory bool

	// DBDir is the directory of the history database.
	DBDir string

	// Targets are the raw addresses to derive, exactly as supplied.
	Targets []string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		GridSize:  DefaultGridSize,
		Format:    FormatText,
		BatchSize: DefaultBatchSize,
		DBDir:     XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for addralias, where the
// history database is stored.
// On Linux: ~/.local/share/addralias
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for addralias.
// On Linux: ~/.config/addralias
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ApplyFile copies the values set in the configuration file onto c.
// Zero values in the file leave the current setting untouched, so CLI
// flags applied afterwards still take precedence.
func (c *Config) ApplyFile(f *File) error {
	if f == nil {
		return nil
	}
	c.File = f

	if f.Seed != "" {
		c.Seed = f.Seed
	}
	if f.Size != 0 {
		c.GridSize = f.Size
	}
	if f.Format != "" {
		format, err := ParseFormat(f.Format)
		if err != nil {
			return fmt.Errorf("format %q in configuration file: %w", f.Format, err)
		}
		c.Format = format
	}
	if f.History {
		c.SaveHistory = true
	}
	if f.Batch != 0 {
		c.BatchSize = f.Batch
	}
	return nil
}

// ResolveSeed returns the seed to derive with. A seed of the form "@name"
// is looked up in the configuration file's presets; "@@text" stands for the
// literal seed "@text".
func (c *Config) ResolveSeed() (string, error) {
	if !strings.HasPrefix(c.Seed, seedPresetPrefix) {
		return c.Seed, nil
	}
	name := strings.TrimPrefix(c.Seed, seedPresetPrefix)
	if strings.HasPrefix(name, seedPresetPrefix) {
		return name, nil
	}

	if c.File != nil {
		if seed, ok := c.File.Seeds[name]; ok {
			return seed, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSeedPreset, name)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return ErrNoTarget
	}
	if c.GridSize <= 0 || c.GridSize > MaxGridSize {
		return ErrInvalidGridSize
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if !c.Format.Valid() {
		return ErrInvalidFormat
	}
	return nil
}
