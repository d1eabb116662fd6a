// File: config.go
// Title: Engine Configuration File Loader
// Description: Implements loading of engine options from TOML and YAML
//              files with format auto-detection from the file extension.
//              Unset fields fall back to the engine defaults.
// Author: SatinWuker
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/SatinWukerORIG/parssir"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FileConfig holds engine options read from a configuration file
type FileConfig struct {
	// MaxInputLength limits expression input length (0 = engine default)
	MaxInputLength int `toml:"max_input_length" yaml:"max_input_length"`

	// MaxDepth limits operator nesting depth (0 = engine default)
	MaxDepth int `toml:"max_depth" yaml:"max_depth"`

	// DisableGrouping turns off parenthesized sub-expressions
	DisableGrouping bool `toml:"disable_grouping" yaml:"disable_grouping"`

	// LogLevel selects the log verbosity ("debug", "info", "warn", "error")
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// DetectFormat determines the configuration format from the file
// extension
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatTOML, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
}

// Load reads a configuration file, auto-detecting TOML or YAML from the
// file extension
func Load(path string) (*FileConfig, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg FileConfig
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config %s: %w", path, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks the loaded configuration values
func (c *FileConfig) Validate() error {
	if c.MaxInputLength < 0 {
		return fmt.Errorf("max_input_length must not be negative: %d", c.MaxInputLength)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative: %d", c.MaxDepth)
	}

	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("unknown log_level: %s", c.LogLevel)
	}
}

// Options converts the file configuration into engine options. Zero
// values are left for the engine to default.
func (c *FileConfig) Options() parssir.Options {
	return parssir.Options{
		MaxInputLength:  c.MaxInputLength,
		MaxDepth:        c.MaxDepth,
		DisableGrouping: c.DisableGrouping,
	}
}
