// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the termdocs TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/termdocs/internal/command"
)

// =============================================================================
// OUTPUT LINE STYLES
// =============================================================================

var (
	// EchoStyle renders the submitted command line.
	EchoStyle = lipgloss.NewStyle().Foreground(Emerald)

	// TextStyle renders regular command output.
	TextStyle = lipgloss.NewStyle().Foreground(TextPrimary)

	// ErrorStyle renders the command-not-found line.
	ErrorStyle = lipgloss.NewStyle().Foreground(Rose)

	// HintStyle renders the suggestion under an error.
	HintStyle = lipgloss.NewStyle().Foreground(TextMuted).Italic(true)

	// InfoStyle renders host notices and completion listings.
	InfoStyle = lipgloss.NewStyle().Foreground(Amber)
)

// ForLine returns the style for an interpreter style tag.
func ForLine(style command.Style) lipgloss.Style {
	switch style {
	case command.StyleEcho:
		return EchoStyle
	case command.StyleError:
		return ErrorStyle
	case command.StyleHint:
		return HintStyle
	case command.StyleInfo:
		return InfoStyle
	default:
		return TextStyle
	}
}

// =============================================================================
// CHROME STYLES
// =============================================================================

var (
	// PromptStyle renders the prompt in front of the input line.
	PromptStyle = lipgloss.NewStyle().Foreground(Cyan).Bold(true)

	// NavActiveStyle highlights the visible section's nav entry.
	NavActiveStyle = lipgloss.NewStyle().Foreground(Cyan).Bold(true).Underline(true)

	// NavInactiveStyle renders the remaining nav entries.
	NavInactiveStyle = lipgloss.NewStyle().Foreground(TextSecondary)

	// NavBarStyle frames the nav bar.
	NavBarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(Overlay)

	// StatusStyle renders the bottom status line.
	StatusStyle = lipgloss.NewStyle().Foreground(TextMuted)
)
