// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package command provides the command table and interpreter for termdocs.
package command

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// =============================================================================
// OUTPUT STYLES
// =============================================================================

// Style tags a rendered output line so the host can color it. The
// interpreter never inspects rendered content; the tag is write-only
// metadata.
type Style int

const (
	// StyleEcho is the rendition of a submitted command line.
	StyleEcho Style = iota

	// StyleText is regular command output.
	StyleText

	// StyleError is the "Command not found" line.
	StyleError

	// StyleHint is the follow-up suggestion under an error.
	StyleHint

	// StyleInfo is informational host output (completion listings, reloads).
	StyleInfo
)

// =============================================================================
// COLLABORATOR INTERFACES
// =============================================================================

// Output is the append-only scrollback log. Implementations render lines;
// the interpreter only appends and clears.
type Output interface {
	// AppendLine adds one rendered line to the log.
	AppendLine(text string, style Style)

	// Clear removes every logged line. The standing input line belongs to
	// the host UI and is unaffected.
	Clear()
}

// View is the sectioned content surface. Exactly one section is visible at
// a time; ShowSection hides all others.
type View interface {
	// ShowSection makes the named section the only visible one.
	ShowSection(id string)

	// SetActiveNavEntry moves the exclusive navigation highlight.
	SetActiveNavEntry(id string)

	// HasSection reports whether the view knows the section identifier.
	HasSection(id string) bool
}

// =============================================================================
// EXECUTION CONTEXT
// =============================================================================

// Context provides the collaborators and host facts commands execute
// against. It follows the dependency injection pattern: the interpreter
// itself keeps no UI state, so several terminal instances can share one
// registry with independent contexts.
type Context struct {
	// Output receives echo, text, error and hint lines.
	Output Output

	// View switches sections and the navigation highlight.
	View View

	// Version is the build version shown by the about command.
	Version string

	// Now supplies the clock for the date command. Defaults to time.Now;
	// tests inject a fixed clock.
	Now func() time.Time
}

// =============================================================================
// INTERPRETER
// =============================================================================

// Interpreter resolves one submitted line at a time against the command
// table. It is stateless between submissions; all mutable state lives in
// the Output and View collaborators.
type Interpreter struct {
	registry *Registry
	ctx      *Context
}

// NewInterpreter creates an interpreter over the given table and context.
func NewInterpreter(registry *Registry, ctx *Context) *Interpreter {
	return &Interpreter{registry: registry, ctx: ctx}
}

// Registry returns the command table the interpreter resolves against.
func (i *Interpreter) Registry() *Registry {
	return i.registry
}

// echoPrefix is the one prefix-match rule in the table: anything starting
// with "echo " prints the remainder verbatim.
const echoPrefix = "echo "

// Execute resolves and runs a finalized input line.
//
// The trimmed line is lower-cased for matching only; the echo line and the
// echo payload always use the original text. Empty submissions are a
// deliberate no-op: the line editor filters them, but Execute guards again
// so a host driving it directly cannot produce a stray echo line.
func (i *Interpreter) Execute(raw string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return
	}

	out := i.ctx.Output
	out.AppendLine(raw, StyleEcho)

	lowered := strings.ToLower(trimmed)

	if cmd := i.registry.Get(lowered); cmd != nil {
		i.run(cmd)
		return
	}

	if strings.HasPrefix(lowered, echoPrefix) {
		// Payload is cut from the original line so internal case and
		// whitespace beyond the separating space survive untouched.
		original := strings.TrimLeftFunc(raw, unicode.IsSpace)
		out.AppendLine(original[len(echoPrefix):], StyleText)
		return
	}

	out.AppendLine("Command not found: "+trimmed, StyleError)
	out.AppendLine(`Type "help" for available commands`, StyleHint)
}

// run executes a resolved table entry.
func (i *Interpreter) run(cmd *Command) {
	switch cmd.Kind {
	case ActionNavigate:
		// A target the view does not know is a bug in the static table,
		// not user error. Fail loudly rather than silently no-op.
		if !i.ctx.View.HasSection(cmd.Section) {
			panic(fmt.Sprintf("command: %q targets unknown section %q", cmd.Name(), cmd.Section))
		}
		i.ctx.View.ShowSection(cmd.Section)
		i.ctx.View.SetActiveNavEntry(cmd.Section)

	case ActionClear:
		i.ctx.Output.Clear()

	case ActionPrint, ActionNoop:
		for _, line := range cmd.Lines(i.ctx) {
			i.ctx.Output.AppendLine(line, StyleText)
		}

	case ActionEcho:
		// Unreachable: echo aliases are kept out of the exact-match index
		// and handled by the prefix rule in Execute.
	}
}
