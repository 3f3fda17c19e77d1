// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for termdocs.
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Command line flags (wired in main)
//   - ~/.termdocs/config.toml
//   - Built-in defaults
//
// Every key is optional; an absent file is not an error.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    // malformed file; report it and run on defaults
//	}
package config
