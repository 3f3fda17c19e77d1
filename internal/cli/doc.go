// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides argument parsing, terminal detection and the plain
// (non-TUI) mode for the termdocs binary.
//
// Plain mode drives the same command registry and interpreter as the TUI
// through a liner prompt, for dumb terminals and piped sessions. Sections
// print their rendered markdown to stdout instead of switching panels.
package cli
