// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package term provides the Bubble Tea terminal view for termdocs.
package term

import (
	"github.com/jeranaias/termdocs/internal/command"
	"github.com/jeranaias/termdocs/internal/content"
)

// =============================================================================
// OUTPUT LOG
// =============================================================================

// Line is one rendered entry of the scrollback log.
type Line struct {
	Text  string
	Style command.Style
}

// outputLog implements command.Output. It lives behind a pointer so the
// interpreter and the Bubble Tea model (a value type) share one log.
type outputLog struct {
	lines []Line
}

func (o *outputLog) AppendLine(text string, style command.Style) {
	o.lines = append(o.lines, Line{Text: text, Style: style})
}

func (o *outputLog) Clear() {
	o.lines = nil
}

func (o *outputLog) Lines() []Line {
	return o.lines
}

// =============================================================================
// SECTION VIEW
// =============================================================================

// sectionView implements command.View over the content store. Exactly one
// section is active; the nav highlight follows it but is tracked separately
// because the interpreter sets both explicitly.
type sectionView struct {
	store     *content.Store
	active    string
	navActive string
}

func newSectionView(store *content.Store, initial string) *sectionView {
	return &sectionView{store: store, active: initial, navActive: initial}
}

func (v *sectionView) ShowSection(id string) {
	v.active = id
}

func (v *sectionView) SetActiveNavEntry(id string) {
	v.navActive = id
}

func (v *sectionView) HasSection(id string) bool {
	return v.store.Has(id)
}

// Active returns the visible section.
func (v *sectionView) Active() (content.Section, bool) {
	return v.store.Get(v.active)
}
