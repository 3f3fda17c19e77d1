// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package term provides the Bubble Tea terminal view for termdocs.
package term

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/termdocs/internal/command"
	"github.com/jeranaias/termdocs/internal/content"
	"github.com/jeranaias/termdocs/internal/editor"
)

// =============================================================================
// MESSAGES
// =============================================================================

// SectionsChangedMsg is posted (via Program.Send) when the docs watcher
// sees a change. The actual reload happens on the event loop.
type SectionsChangedMsg struct {
	Dir string
}

// sectionsLoadedMsg carries the reload result back into Update.
type sectionsLoadedMsg struct {
	dir      string
	sections []content.Section
	err      error
}

// reloadSections reads the docs directory off the event loop.
func reloadSections(dir string) tea.Cmd {
	return func() tea.Msg {
		sections, err := content.LoadDir(dir)
		return sectionsLoadedMsg{dir: dir, sections: sections, err: err}
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model. All interpreter and editor work happens
// synchronously in here; one message is fully handled before the next one
// arrives, so the session state needs no locking.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case SectionsChangedMsg:
		return m, reloadSections(msg.Dir)

	case sectionsLoadedMsg:
		m.applyReload(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey routes one key press. The editor's key classes are consumed
// here; only plain editing keys fall through to the input widget.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	buf := inputBuffer{input: &m.input}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		m.editor.HandleKey(editor.KeyEnter, buf)
		m.refreshSection()
		m.refreshOutput(true)
		return m, nil

	case key.Matches(msg, m.keys.Complete):
		m.editor.HandleKey(editor.KeyTab, buf)
		m.refreshOutput(true)
		return m, nil

	case key.Matches(msg, m.keys.HistoryPrev):
		m.editor.HandleKey(editor.KeyUp, buf)
		return m, nil

	case key.Matches(msg, m.keys.HistoryNext):
		m.editor.HandleKey(editor.KeyDown, buf)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.outputVP.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.outputVP.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keys.ClearScreen):
		m.log.Clear()
		m.refreshOutput(false)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// SECTION RELOAD
// =============================================================================

// applyReload merges reloaded sections into the store and registers nav
// commands for their aliases. Failures surface as a single info line; a
// broken reload never takes the session down.
func (m *Model) applyReload(msg sectionsLoadedMsg) {
	if msg.err != nil {
		m.log.AppendLine("Reload failed: "+msg.err.Error(), command.StyleInfo)
		m.refreshOutput(true)
		return
	}

	for _, sec := range msg.sections {
		m.store.Put(sec)
		aliases := sec.Aliases
		if len(aliases) == 0 {
			aliases = []string{sec.ID}
		}
		m.registry.RegisterSection(sec.ID, "Show "+sec.Title, aliases)
	}

	m.log.AppendLine(fmt.Sprintf("Reloaded %d section(s) from %s", len(msg.sections), msg.dir), command.StyleInfo)
	m.refreshSection()
	m.refreshOutput(true)
}
