// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides argument parsing, terminal detection and the plain
// mode for the termdocs binary.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/termdocs/internal/command"
	"github.com/jeranaias/termdocs/internal/config"
	"github.com/jeranaias/termdocs/internal/content"
	"github.com/jeranaias/termdocs/internal/ui/styles"
)

// =============================================================================
// PLAIN MODE OUTPUT
// =============================================================================

// plainOutput implements command.Output by printing to a writer.
//
// Echo lines are skipped: in a line-oriented session the terminal's own
// echo of the typed line, still visible above, already is the echo line.
type plainOutput struct {
	w     io.Writer
	color bool
}

func (o *plainOutput) AppendLine(text string, style command.Style) {
	if style == command.StyleEcho {
		return
	}
	if o.color {
		text = styles.ForLine(style).Render(text)
	}
	fmt.Fprintln(o.w, text)
}

// Clear wipes the screen and homes the cursor, the plain-mode equivalent of
// emptying the scrollback.
func (o *plainOutput) Clear() {
	fmt.Fprint(o.w, "\033[2J\033[H")
}

// =============================================================================
// PLAIN MODE VIEW
// =============================================================================

// plainView implements command.View. Navigation prints the rendered section
// instead of switching panels; the "nav highlight" is just the remembered
// current section.
type plainView struct {
	store    *content.Store
	renderer *content.Renderer
	w        io.Writer
	active   string
}

func (v *plainView) ShowSection(id string) {
	v.active = id
	sec, ok := v.store.Get(id)
	if !ok {
		return
	}
	if v.renderer != nil {
		fmt.Fprint(v.w, v.renderer.Render(sec))
		return
	}
	fmt.Fprintf(v.w, "%s\n\n%s\n", sec.Title, sec.Body)
}

func (v *plainView) SetActiveNavEntry(id string) {
	// No nav bar in plain mode; ShowSection already tracked the section.
}

func (v *plainView) HasSection(id string) bool {
	return v.store.Has(id)
}

// =============================================================================
// PLAIN MODE LOOP
// =============================================================================

// RunPlain runs the line-oriented session. liner supplies line editing,
// per-session history and tab completion; the completer is derived from the
// same registry the interpreter resolves against. History is deliberately
// not written to disk.
func RunPlain(cfg *config.Config, store *content.Store, registry *command.Registry, version string) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(completerFor(registry))

	out := &plainOutput{w: os.Stdout, color: SupportsColor()}
	view := &plainView{store: store, w: os.Stdout, active: command.SectionCommands}
	if renderer, err := content.NewRenderer(GetTerminalWidth(), cfg.Theme); err == nil {
		view.renderer = renderer
	}

	interp := command.NewInterpreter(registry, &command.Context{
		Output:  out,
		View:    view,
		Version: version,
	})

	fmt.Printf("termdocs %s - type \"help\" for available commands\n", version)

	for {
		input, err := line.Prompt(cfg.Prompt)
		switch {
		case errors.Is(err, liner.ErrPromptAborted), errors.Is(err, io.EOF):
			fmt.Println()
			return nil
		case err != nil:
			return fmt.Errorf("cli: reading input: %w", err)
		}

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
		interp.Execute(input)
	}
}

// completerFor returns a liner completer over the registry's alias index.
// A unique match completes to "alias " exactly like Tab in the TUI.
func completerFor(registry *command.Registry) liner.Completer {
	return func(line string) []string {
		prefix := strings.ToLower(strings.TrimSpace(line))
		if prefix == "" {
			return nil
		}
		var matches []string
		for _, group := range registry.AliasGroups() {
			for _, alias := range group {
				if strings.HasPrefix(strings.ToLower(alias), prefix) {
					matches = append(matches, alias)
				}
			}
		}
		if len(matches) == 1 {
			return []string{matches[0] + " "}
		}
		return matches
	}
}
