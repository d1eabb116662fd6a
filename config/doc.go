// File: doc.go
// Title: Configuration Package Documentation
// Description: Documents the engine configuration file loader supporting
//              TOML and YAML formats with extension auto-detection.
// Author: SatinWuker
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation

/*
Package config loads Parssir engine options from TOML or YAML files.

The format is auto-detected from the file extension (.toml, .yaml, .yml).
Unset fields keep their zero value and fall back to the engine defaults
when converted with Options.

Example TOML file:

	max_input_length = 1024
	max_depth = 64
	disable_grouping = false
	log_level = "info"
*/
package config
