// File: config_test.go
// Title: Configuration Loader Unit Tests
// Description: Unit tests for the configuration file loader. Tests cover
//              format detection, TOML and YAML parsing, validation, and
//              conversion to engine options.
// Author: SatinWuker
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-28 v0.1.0: Initial test suite

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"config.toml", FormatTOML, false},
		{"config.yaml", FormatYAML, false},
		{"config.yml", FormatYAML, false},
		{"CONFIG.TOML", FormatTOML, false},
		{"config.json", FormatTOML, true},
		{"config", FormatTOML, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeTempConfig(t, "parssir.toml", `
max_input_length = 2048
max_depth = 64
disable_grouping = true
log_level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.MaxInputLength != 2048 {
		t.Errorf("expected max_input_length 2048, got %d", cfg.MaxInputLength)
	}
	if cfg.MaxDepth != 64 {
		t.Errorf("expected max_depth 64, got %d", cfg.MaxDepth)
	}
	if !cfg.DisableGrouping {
		t.Error("expected disable_grouping true")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log_level 'debug', got %q", cfg.LogLevel)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeTempConfig(t, "parssir.yaml", `
max_input_length: 512
max_depth: 16
log_level: warn
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.MaxInputLength != 512 {
		t.Errorf("expected max_input_length 512, got %d", cfg.MaxInputLength)
	}
	if cfg.MaxDepth != 16 {
		t.Errorf("expected max_depth 16, got %d", cfg.MaxDepth)
	}
	if cfg.DisableGrouping {
		t.Error("expected disable_grouping false by default")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected log_level 'warn', got %q", cfg.LogLevel)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "Unsupported extension",
			file:    "parssir.json",
			content: `{}`,
		},
		{
			name:    "Malformed TOML",
			file:    "broken.toml",
			content: `max_depth = [`,
		},
		{
			name:    "Malformed YAML",
			file:    "broken.yaml",
			content: "max_depth: [1,",
		},
		{
			name:    "Negative depth",
			file:    "negative.toml",
			content: `max_depth = -1`,
		},
		{
			name:    "Unknown log level",
			file:    "level.toml",
			content: `log_level = "trace"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.file, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFileConfig_Options(t *testing.T) {
	cfg := &FileConfig{
		MaxInputLength:  100,
		MaxDepth:        10,
		DisableGrouping: true,
	}

	opts := cfg.Options()
	if opts.MaxInputLength != 100 {
		t.Errorf("expected MaxInputLength 100, got %d", opts.MaxInputLength)
	}
	if opts.MaxDepth != 10 {
		t.Errorf("expected MaxDepth 10, got %d", opts.MaxDepth)
	}
	if !opts.DisableGrouping {
		t.Error("expected DisableGrouping true")
	}
}

func TestFileConfig_Validate(t *testing.T) {
	valid := &FileConfig{MaxInputLength: 0, MaxDepth: 0, LogLevel: ""}
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error for zero config: %v", err)
	}

	for _, level := range []string{"debug", "info", "WARN", "Error"} {
		cfg := &FileConfig{LogLevel: level}
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error for log level %q: %v", level, err)
		}
	}
}
