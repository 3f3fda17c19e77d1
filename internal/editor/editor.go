// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package editor provides the interactive line editor for termdocs.
package editor

import "strings"

// =============================================================================
// COLLABORATOR INTERFACES
// =============================================================================

// Buffer is the editable input line. The hosting UI backs it with its input
// widget; tests back it with a plain string.
type Buffer interface {
	// Value returns the current buffer text.
	Value() string

	// SetValue replaces the buffer text.
	SetValue(s string)
}

// CompletionSource supplies the alias index for tab completion: one alias
// list per command, both in table order. The command registry implements
// this, keeping the completion candidates and the exact-match table derived
// from the same declaration.
type CompletionSource interface {
	AliasGroups() [][]string
}

// =============================================================================
// KEY CLASSES
// =============================================================================

// Key identifies the key classes the editor handles. Printable characters
// stay with the host's input widget and never reach the editor.
type Key int

const (
	KeyEnter Key = iota
	KeyTab
	KeyUp
	KeyDown
)

// =============================================================================
// LINE EDITOR
// =============================================================================

// notBrowsing is the cursor value while the live buffer is being edited.
const notBrowsing = -1

// Editor maintains the command history and the history-browsing cursor.
//
// The cursor indexes the history most-recent-first; notBrowsing (-1) means
// the live buffer is showing. When browsing begins, the live buffer is
// snapshotted exactly once and restored verbatim when the cursor returns
// below the newest entry.
type Editor struct {
	history []string
	cursor  int
	saved   string

	source CompletionSource
	submit func(raw string)
	inform func(text string)
}

// New creates a line editor. submit receives the finalized line on Enter;
// inform receives informational lines (ambiguous completion listings).
func New(source CompletionSource, submit func(raw string), inform func(text string)) *Editor {
	return &Editor{
		cursor: notBrowsing,
		source: source,
		submit: submit,
		inform: inform,
	}
}

// History returns a copy of the submitted lines, most recent first.
func (e *Editor) History() []string {
	out := make([]string, len(e.history))
	copy(out, e.history)
	return out
}

// Browsing reports whether the buffer currently shows a history entry.
func (e *Editor) Browsing() bool {
	return e.cursor != notBrowsing
}

// HandleKey processes one key class against the buffer. The host must have
// already suppressed the widget's default behavior for Tab and the arrows.
func (e *Editor) HandleKey(key Key, buf Buffer) {
	switch key {
	case KeyEnter:
		e.pressEnter(buf)
	case KeyTab:
		e.pressTab(buf)
	case KeyUp:
		e.pressUp(buf)
	case KeyDown:
		e.pressDown(buf)
	}
}

// =============================================================================
// SUBMISSION
// =============================================================================

// pressEnter finalizes the buffer. Whitespace-only lines are deliberately
// ignored: no history entry, no echo, no dispatch.
func (e *Editor) pressEnter(buf Buffer) {
	raw := buf.Value()
	if strings.TrimSpace(raw) == "" {
		return
	}

	e.history = append([]string{raw}, e.history...)
	e.cursor = notBrowsing
	e.submit(raw)
	buf.SetValue("")
}

// =============================================================================
// TAB COMPLETION
// =============================================================================

// pressTab prefix-completes the buffer against the alias index.
//
// One matching alias replaces the buffer with "alias " (the trailing space
// primes an argument). Several matches leave the buffer alone and emit one
// listing line naming every alias of every matched command, in table order.
// No match is a silent no-op; only Enter produces a command-not-found error.
func (e *Editor) pressTab(buf Buffer) {
	prefix := strings.ToLower(strings.TrimSpace(buf.Value()))
	if prefix == "" {
		return
	}

	groups := e.source.AliasGroups()
	matched := make(map[int]bool)
	var matches []string
	for gi, group := range groups {
		for _, alias := range group {
			if strings.HasPrefix(strings.ToLower(alias), prefix) {
				matches = append(matches, alias)
				matched[gi] = true
			}
		}
	}

	switch len(matches) {
	case 0:
	case 1:
		buf.SetValue(matches[0] + " ")
	default:
		var listing []string
		for gi, group := range groups {
			if matched[gi] {
				listing = append(listing, group...)
			}
		}
		e.inform(strings.Join(listing, ", "))
	}
}

// =============================================================================
// HISTORY BROWSING
// =============================================================================

// pressUp moves one entry back in history, clamped at the oldest entry.
// Entering browse mode snapshots the live buffer first.
func (e *Editor) pressUp(buf Buffer) {
	if len(e.history) == 0 {
		return
	}
	if e.cursor == notBrowsing {
		e.saved = buf.Value()
	}
	if e.cursor < len(e.history)-1 {
		e.cursor++
	}
	buf.SetValue(e.history[e.cursor])
}

// pressDown moves one entry forward; stepping past the newest entry leaves
// browse mode and restores the snapshot, not an empty buffer.
func (e *Editor) pressDown(buf Buffer) {
	switch {
	case e.cursor > 0:
		e.cursor--
		buf.SetValue(e.history[e.cursor])
	case e.cursor == 0:
		e.cursor = notBrowsing
		buf.SetValue(e.saved)
	}
}
