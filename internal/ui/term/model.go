// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package term provides the Bubble Tea terminal view for termdocs.
package term

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/termdocs/internal/command"
	"github.com/jeranaias/termdocs/internal/config"
	"github.com/jeranaias/termdocs/internal/content"
	"github.com/jeranaias/termdocs/internal/editor"
	"github.com/jeranaias/termdocs/internal/ui/styles"
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the termdocs terminal.
//
// Mutable session state (output log, active section, history) sits behind
// pointers so the interpreter's synchronous writes during Update survive the
// model's value semantics.
type Model struct {
	cfg      *config.Config
	store    *content.Store
	registry *command.Registry
	interp   *command.Interpreter
	editor   *editor.Editor
	log      *outputLog
	secView  *sectionView
	renderer *content.Renderer

	input     textinput.Model
	sectionVP viewport.Model
	outputVP  viewport.Model
	keys      KeyMap

	width  int
	height int
	ready  bool
}

// New creates the terminal model. The registry is shared with the plain
// mode and with watcher-driven section registration; the model itself owns
// the session state.
func New(cfg *config.Config, store *content.Store, registry *command.Registry, version string) Model {
	log := &outputLog{}
	secView := newSectionView(store, command.SectionCommands)

	interp := command.NewInterpreter(registry, &command.Context{
		Output:  log,
		View:    secView,
		Version: version,
	})

	ti := textinput.New()
	ti.Prompt = cfg.Prompt
	ti.PromptStyle = styles.PromptStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.TextPrimary)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.Cyan)
	ti.CharLimit = 256
	ti.Focus()

	m := Model{
		cfg:      cfg,
		store:    store,
		registry: registry,
		interp:   interp,
		log:      log,
		secView:  secView,
		input:    ti,
		keys:     DefaultKeyMap(),
	}

	m.editor = editor.New(
		registry,
		func(raw string) { interp.Execute(raw) },
		func(text string) { log.AppendLine(text, command.StyleInfo) },
	)

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// =============================================================================
// BUFFER ADAPTER
// =============================================================================

// inputBuffer adapts the textinput widget to the editor's Buffer interface.
// It is rebuilt per update over the current widget value so editor writes
// land on the copy that is about to be returned.
type inputBuffer struct {
	input *textinput.Model
}

func (b inputBuffer) Value() string {
	return b.input.Value()
}

func (b inputBuffer) SetValue(s string) {
	b.input.SetValue(s)
	b.input.CursorEnd()
}

// =============================================================================
// RESIZE
// =============================================================================

// Fixed chrome heights: nav bar with its border, input line, status line.
const (
	navHeight    = 2
	inputHeight  = 1
	statusHeight = 1
)

// handleResize recomputes the two viewport heights. The section panel gets
// the larger share; the output log keeps at least a few lines so command
// feedback never disappears entirely.
func (m *Model) handleResize(width, height int) {
	m.width = width
	m.height = height

	avail := height - navHeight - inputHeight - statusHeight
	if avail < 2 {
		avail = 2
	}
	sectionH := avail * 3 / 5
	if sectionH < 1 {
		sectionH = 1
	}
	outputH := avail - sectionH
	if outputH < 1 {
		outputH = 1
	}

	if !m.ready {
		m.sectionVP = viewport.New(width, sectionH)
		m.outputVP = viewport.New(width, outputH)
		m.ready = true
	} else {
		m.sectionVP.Width = width
		m.sectionVP.Height = sectionH
		m.outputVP.Width = width
		m.outputVP.Height = outputH
	}

	m.input.Width = width - lipgloss.Width(m.input.Prompt) - 2

	// Markdown is wrapped to the panel width, so the renderer is rebuilt
	// on every resize.
	if r, err := content.NewRenderer(width, m.cfg.Theme); err == nil {
		m.renderer = r
	}
	m.refreshSection()
	m.refreshOutput(false)
}

// =============================================================================
// CONTENT REFRESH
// =============================================================================

// refreshSection re-renders the active section into its viewport.
func (m *Model) refreshSection() {
	if !m.ready {
		return
	}
	sec, ok := m.secView.Active()
	if !ok {
		return
	}
	if m.renderer != nil {
		m.sectionVP.SetContent(m.renderer.Render(sec))
	} else {
		m.sectionVP.SetContent(sec.Title + "\n\n" + sec.Body)
	}
	m.sectionVP.GotoTop()
}

// refreshOutput re-renders the scrollback log. Submissions scroll to the
// bottom so the newest output is always visible.
func (m *Model) refreshOutput(scrollToBottom bool) {
	if !m.ready {
		return
	}
	m.outputVP.SetContent(m.renderLog())
	if scrollToBottom {
		m.outputVP.GotoBottom()
	}
}
