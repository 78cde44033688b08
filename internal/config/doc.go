// Package config provides configuration structures and utilities for addralias.
// It defines the derivation options (seed, identicon size), output preferences
// and the optional YAML configuration file with named seed presets.
package config
