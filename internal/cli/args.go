// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides argument parsing, terminal detection and the plain
// mode for the termdocs binary.
package cli

import (
	"fmt"
	"strings"
)

// =============================================================================
// ARGUMENT PARSING
// =============================================================================

// Args holds the parsed command line. Flags override the configuration
// file; empty strings mean "not given".
type Args struct {
	// Plain forces the line-oriented mode instead of the TUI.
	Plain bool

	// Docs overrides the configured docs directory.
	Docs string

	// Theme overrides the configured theme ("dark", "light", "auto").
	Theme string

	// ShowVersion prints version information and exits.
	ShowVersion bool

	// ShowHelp prints usage and exits.
	ShowHelp bool
}

// Parse parses argv (without the program name). Both "--flag value" and
// "--flag=value" forms are accepted.
func Parse(argv []string) (*Args, error) {
	args := &Args{}

	i := 0
	next := func(flag string) (string, error) {
		if i+1 >= len(argv) {
			return "", fmt.Errorf("cli: flag %s needs a value", flag)
		}
		i++
		return argv[i], nil
	}

	for ; i < len(argv); i++ {
		arg := argv[i]
		name, value, hasValue := strings.Cut(arg, "=")

		switch name {
		case "--plain", "-p":
			args.Plain = true
		case "--docs", "-d":
			if !hasValue {
				var err error
				if value, err = next(name); err != nil {
					return nil, err
				}
			}
			args.Docs = value
		case "--theme", "-t":
			if !hasValue {
				var err error
				if value, err = next(name); err != nil {
					return nil, err
				}
			}
			if value != "dark" && value != "light" && value != "auto" {
				return nil, fmt.Errorf("cli: unknown theme %q (dark, light or auto)", value)
			}
			args.Theme = value
		case "--version", "-v":
			args.ShowVersion = true
		case "--help", "-h":
			args.ShowHelp = true
		default:
			return nil, fmt.Errorf("cli: unknown argument %q", arg)
		}
	}

	return args, nil
}

// Usage returns the help text for the binary.
func Usage() string {
	return `termdocs - browse documentation from a command line

Usage:
  termdocs [flags]

Flags:
  -p, --plain          line-oriented mode instead of the TUI
  -d, --docs <dir>     load extra sections from a directory of *.md files
  -t, --theme <name>   color theme: dark, light or auto
  -v, --version        print version and exit
  -h, --help           show this help

Inside the terminal, type "help" for the available commands.`
}
