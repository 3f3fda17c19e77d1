// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package term provides the Bubble Tea terminal view for termdocs.
package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/termdocs/internal/command"
	"github.com/jeranaias/termdocs/internal/ui/styles"
	"github.com/jeranaias/termdocs/internal/util"
)

// =============================================================================
// MAIN RENDER
// =============================================================================

// View implements tea.Model.
// Layout: nav bar (2 lines) + section panel + output log + input + status.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	parts := []string{
		m.renderNav(),
		m.sectionVP.View(),
		m.outputVP.View(),
		m.input.View(),
		m.renderStatus(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// =============================================================================
// NAV BAR
// =============================================================================

// renderNav draws one entry per section in store order. Exactly one entry
// carries the active highlight.
func (m Model) renderNav() string {
	var entries []string
	for _, sec := range m.store.Sections() {
		style := styles.NavInactiveStyle
		if sec.ID == m.secView.navActive {
			style = styles.NavActiveStyle
		}
		entries = append(entries, style.Render(sec.Title))
	}

	bar := " " + strings.Join(entries, styles.NavInactiveStyle.Render("  |  ")) + " "
	return styles.NavBarStyle.Width(m.width).Render(util.TruncateWidth(bar, m.width))
}

// =============================================================================
// OUTPUT LOG
// =============================================================================

// renderLog renders the scrollback. Echo lines get the prompt glyph back so
// the log reads like a terminal transcript.
func (m Model) renderLog() string {
	lines := m.log.Lines()
	if len(lines) == 0 {
		return styles.HintStyle.Render("Type a command. Try \"help\".")
	}

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		if line.Style == command.StyleEcho {
			b.WriteString(styles.PromptStyle.Render(m.cfg.Prompt))
		}
		b.WriteString(styles.ForLine(line.Style).Render(line.Text))
	}
	return b.String()
}

// =============================================================================
// STATUS LINE
// =============================================================================

func (m Model) renderStatus() string {
	var parts []string
	for _, binding := range m.keys.ShortHelp() {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	status := " " + strings.Join(parts, "  ·  ")
	return styles.StatusStyle.Render(util.TruncateWidth(status, m.width))
}
