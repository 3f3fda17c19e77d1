// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for termdocs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURE
// =============================================================================

// Config holds every termdocs setting.
type Config struct {
	// Theme selects the glamour/lipgloss color scheme: "dark", "light" or
	// "auto" (detect from the terminal).
	Theme string `toml:"theme"`

	// Prompt is rendered in front of the input line.
	Prompt string `toml:"prompt"`

	// DocsDir optionally points at a directory of *.md section files that
	// are added to the built-in sections. "~/" prefixes are expanded.
	DocsDir string `toml:"docs_dir"`

	// Plain skips the TUI and uses a line-oriented prompt.
	Plain bool `toml:"plain"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme:  "auto",
		Prompt: "visitor@termdocs:~$ ",
	}
}

// =============================================================================
// LOADING
// =============================================================================

// ConfigDir returns the termdocs configuration directory (~/.termdocs).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolving home directory: %w", err)
	}
	return filepath.Join(home, ".termdocs"), nil
}

// Load reads ~/.termdocs/config.toml over the defaults. A missing file is
// not an error; a malformed one is, and callers should keep the returned
// defaults after reporting it.
func Load() (*Config, error) {
	cfg := Default()

	dir, err := ConfigDir()
	if err != nil {
		return cfg, err
	}
	if err := cfg.loadFile(filepath.Join(dir, "config.toml")); err != nil {
		return Default(), err
	}
	cfg.normalize()
	return cfg, nil
}

// LoadFile reads a specific configuration file over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return Default(), err
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := toml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return nil
}

func (c *Config) normalize() {
	switch c.Theme {
	case "dark", "light", "auto":
	default:
		c.Theme = "auto"
	}
	if c.Prompt == "" {
		c.Prompt = Default().Prompt
	}
	c.DocsDir = expandHome(c.DocsDir)
}

// expandHome resolves a leading "~/" against the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
