// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package term provides the Bubble Tea terminal view for termdocs.
//
// The model hosts four regions: a nav bar listing every section with an
// exclusive highlight, the rendered markdown panel of the visible section,
// the scrollback output log, and the always-present input line. Key events
// for Enter, Tab and the arrow keys are intercepted before the input widget
// sees them and routed to the line editor; everything else edits the buffer
// through the widget's default behavior.
//
// The model implements the interpreter's Output and View collaborator
// interfaces through pointer-backed state, so the synchronous command
// execution inside Update mutates exactly the state the next View call
// renders.
package term
