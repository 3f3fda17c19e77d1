// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package editor provides the interactive line editor for termdocs.
//
// The editor owns the command history and the history/completion key
// handling over an abstract Buffer (the host's input widget). It never
// talks to the interpreter directly except by handing over the finalized
// line on Enter; Tab and the history keys are resolved entirely in here.
//
// # Key Classes
//
//   - Enter: push the line to history, submit it, clear the buffer
//   - Tab: prefix-complete against the command table's alias index
//   - ArrowUp / ArrowDown: browse history with a live-buffer snapshot
//
// The host is responsible for suppressing the input widget's default
// behavior for Tab and the arrow keys before routing them here.
package editor
