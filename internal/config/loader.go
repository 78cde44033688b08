package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".addralias"

// XDGConfigFile is the configuration file name inside XDGConfigDir.
const XDGConfigFile = "config.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .addralias configuration file.
type File struct {
	// Seed is the default seed. It may name a preset as "@name".
	Seed string `yaml:"seed,omitempty"`

	// Format is the default output format (text, json or markdown).
	Format string `yaml:"format,omitempty"`

	// Size is the default identicon size.
	Size int `yaml:"size,omitempty"`

	// Batch is the default number of concurrent derivations.
	Batch int `yaml:"batch,omitempty"`

	// History enables saving every report to the history database.
	History bool `yaml:"history,omitempty"`

	// Seeds maps preset names to seed values for use as --seed @name.
	Seeds map[string]string `yaml:"seeds,omitempty"`
}

// LoadConfigFile loads a configuration file from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	if cf.Seeds == nil {
		cf.Seeds = make(map[string]string)
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .addralias in the current directory
// 3. Look for config.yaml in the XDG config directory (~/.config/addralias)
// 4. Look for .addralias in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	for _, path := range configCandidates() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// configCandidates lists the implicit configuration file locations in
// search order. Directories that cannot be resolved are skipped.
func configCandidates() []string {
	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), XDGConfigFile))
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}
	return candidates
}
