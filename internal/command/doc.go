// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package command provides the command table and interpreter for termdocs.
//
// This package resolves a submitted input line against a fixed, enumerable
// command table and executes the matching action against two collaborators:
// a View (named content sections with an exclusive highlight) and an Output
// (the append-only scrollback log).
//
// # Key Types
//
//   - Registry: ordered command table, the single source of truth for aliases
//   - Command: one table entry (aliases, action kind, payload)
//   - Interpreter: stateless resolver, one submission at a time
//   - Output, View: collaborator interfaces implemented by the hosting UI
//
// # Resolution
//
// A submitted line is trimmed and lower-cased for matching only; the echo
// line and the echo argument always use the original text. Exact alias
// matches win; a line starting with "echo " falls through to the echo rule;
// anything else is rendered as an error plus a hint line.
//
// # Usage
//
//	reg := command.NewRegistry()
//	interp := command.NewInterpreter(reg, &command.Context{Output: out, View: view})
//	interp.Execute("keybindings")
package command
