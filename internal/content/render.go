// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package content provides the documentation sections termdocs displays.
package content

import (
	"github.com/charmbracelet/glamour"
)

// =============================================================================
// MARKDOWN RENDERER
// =============================================================================

// Renderer turns section markdown into styled terminal text.
type Renderer struct {
	tr    *glamour.TermRenderer
	width int
}

// NewRenderer creates a renderer for the given wrap width and theme
// ("dark", "light" or "auto").
func NewRenderer(width int, theme string) (*Renderer, error) {
	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(wrapWidth(width)),
	}
	switch theme {
	case "dark", "light":
		opts = append(opts, glamour.WithStandardStyle(theme))
	default:
		opts = append(opts, glamour.WithAutoStyle())
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return &Renderer{tr: tr, width: width}, nil
}

// Render renders a section body. Rendering failures fall back to the raw
// markdown; a styled panel is never worth losing the content over.
func (r *Renderer) Render(sec Section) string {
	out, err := r.tr.Render("# " + sec.Title + "\n\n" + sec.Body)
	if err != nil {
		return sec.Title + "\n\n" + sec.Body
	}
	return out
}

func wrapWidth(width int) int {
	// Margin keeps glamour's own padding from overflowing the panel.
	w := width - 4
	if w < 20 {
		w = 20
	}
	return w
}
