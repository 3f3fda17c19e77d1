// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package command provides the command table and interpreter for termdocs.
package command

import (
	"strings"
	"testing"
	"time"
)

// =============================================================================
// TEST FIXTURES
// =============================================================================

type loggedLine struct {
	text  string
	style Style
}

// fakeOutput records appended lines in order.
type fakeOutput struct {
	lines []loggedLine
}

func (o *fakeOutput) AppendLine(text string, style Style) {
	o.lines = append(o.lines, loggedLine{text: text, style: style})
}

func (o *fakeOutput) Clear() {
	o.lines = nil
}

// fakeView tracks the exclusive visible section and nav highlight.
type fakeView struct {
	known     map[string]bool
	visible   string
	navActive string
}

func newFakeView() *fakeView {
	return &fakeView{
		known: map[string]bool{
			SectionCommands:         true,
			SectionConfig:           true,
			SectionKeybindings:      true,
			SectionDemo:             true,
			SectionFriendlyProjects: true,
		},
		visible: SectionCommands,
	}
}

func (v *fakeView) ShowSection(id string)       { v.visible = id }
func (v *fakeView) SetActiveNavEntry(id string) { v.navActive = id }
func (v *fakeView) HasSection(id string) bool   { return v.known[id] }

func newTestInterpreter() (*Interpreter, *fakeOutput, *fakeView) {
	out := &fakeOutput{}
	view := newFakeView()
	interp := NewInterpreter(NewRegistry(), &Context{
		Output:  out,
		View:    view,
		Version: "v1.2.3",
		Now: func() time.Time {
			return time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)
		},
	})
	return interp, out, view
}

// =============================================================================
// NAVIGATION
// =============================================================================

func TestNavigationCommands(t *testing.T) {
	tests := []struct {
		input       string
		wantSection string
	}{
		{"help", SectionCommands},
		{"config", SectionConfig},
		{"keybindings", SectionKeybindings},
		{"keys", SectionKeybindings},
		{"bindings", SectionKeybindings},
		{"demo", SectionDemo},
		{"projects", SectionFriendlyProjects},
		{"friendly", SectionFriendlyProjects},
		{"friends", SectionFriendlyProjects},
	}

	for _, tc := range tests {
		interp, out, view := newTestInterpreter()

		interp.Execute(tc.input)

		if view.visible != tc.wantSection {
			t.Errorf("Execute(%q): visible section = %q, want %q", tc.input, view.visible, tc.wantSection)
		}
		if view.navActive != tc.wantSection {
			t.Errorf("Execute(%q): nav highlight = %q, want %q", tc.input, view.navActive, tc.wantSection)
		}
		if len(out.lines) != 1 || out.lines[0].style != StyleEcho {
			t.Errorf("Execute(%q): output = %v, want a single echo line", tc.input, out.lines)
		}
	}
}

func TestNavigationMatchingIsCaseInsensitive(t *testing.T) {
	interp, out, view := newTestInterpreter()

	interp.Execute("KeyBindings")

	if view.visible != SectionKeybindings {
		t.Errorf("visible section = %q, want %q", view.visible, SectionKeybindings)
	}
	// Echo keeps the original case.
	if out.lines[0].text != "KeyBindings" {
		t.Errorf("echo line = %q, want original text", out.lines[0].text)
	}
}

func TestNavigationToUnknownSectionPanics(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&Command{
		Aliases: []string{"void"},
		Kind:    ActionNavigate,
		Section: "does-not-exist",
	})
	interp := NewInterpreter(reg, &Context{Output: &fakeOutput{}, View: newFakeView()})

	defer func() {
		if recover() == nil {
			t.Error("Execute should panic on a command targeting an unknown section")
		}
	}()
	interp.Execute("void")
}

// =============================================================================
// TEXT COMMANDS
// =============================================================================

func TestAboutPrintsThreeLines(t *testing.T) {
	interp, out, _ := newTestInterpreter()

	interp.Execute("about")

	if len(out.lines) != 4 { // echo + three text lines
		t.Fatalf("output = %d lines, want 4", len(out.lines))
	}
	if !strings.Contains(out.lines[1].text, "v1.2.3") {
		t.Errorf("banner = %q, want the injected version", out.lines[1].text)
	}
	for _, line := range out.lines[1:] {
		if line.style != StyleText {
			t.Errorf("line %q style = %v, want StyleText", line.text, line.style)
		}
	}
}

func TestDateUsesInjectedClock(t *testing.T) {
	interp, out, _ := newTestInterpreter()

	interp.Execute("date")

	if len(out.lines) != 2 {
		t.Fatalf("output = %d lines, want echo + date", len(out.lines))
	}
	if got, want := out.lines[1].text, "Fri Mar 14 09:26:53 UTC 2025"; got != want {
		t.Errorf("date line = %q, want %q", got, want)
	}
}

func TestExitPrintsTwoLinesAndKeepsSection(t *testing.T) {
	interp, out, view := newTestInterpreter()
	view.visible = SectionDemo

	interp.Execute("exit")

	if len(out.lines) != 3 { // echo + two info lines
		t.Fatalf("output = %d lines, want 3", len(out.lines))
	}
	if view.visible != SectionDemo {
		t.Errorf("visible section = %q, exit must not navigate", view.visible)
	}
}

// =============================================================================
// ECHO PREFIX RULE
// =============================================================================

func TestEchoArgument(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"echo hello", "hello"},
		{"echo   Hello World  ", "  Hello World  "},
		{"echo Mixed CASE, punctuation!", "Mixed CASE, punctuation!"},
		{"ECHO shouting", "shouting"},
		{"  echo indented", "indented"},
	}

	for _, tc := range tests {
		interp, out, _ := newTestInterpreter()

		interp.Execute(tc.input)

		if len(out.lines) != 2 {
			t.Fatalf("Execute(%q): output = %d lines, want echo + payload", tc.input, len(out.lines))
		}
		if out.lines[1].text != tc.want {
			t.Errorf("Execute(%q): payload = %q, want %q", tc.input, out.lines[1].text, tc.want)
		}
	}
}

func TestBareEchoIsUnrecognized(t *testing.T) {
	interp, out, _ := newTestInterpreter()

	interp.Execute("echo")

	if len(out.lines) != 3 || out.lines[1].style != StyleError {
		t.Errorf("bare echo should be unrecognized, output = %v", out.lines)
	}
}

// =============================================================================
// CLEAR, EMPTY, UNRECOGNIZED
// =============================================================================

func TestClearEmptiesTheLog(t *testing.T) {
	interp, out, _ := newTestInterpreter()
	interp.Execute("about")
	interp.Execute("date")

	interp.Execute("clear")

	if len(out.lines) != 0 {
		t.Errorf("output after clear = %v, want empty", out.lines)
	}
}

func TestEmptySubmissionIsNoop(t *testing.T) {
	interp, out, view := newTestInterpreter()

	interp.Execute("")
	interp.Execute("   ")

	if len(out.lines) != 0 {
		t.Errorf("output = %v, want none (no echo for empty lines)", out.lines)
	}
	if view.visible != SectionCommands {
		t.Errorf("visible section changed to %q", view.visible)
	}
}

func TestUnrecognizedCommand(t *testing.T) {
	interp, out, view := newTestInterpreter()

	interp.Execute("frobnicate")

	if len(out.lines) != 3 {
		t.Fatalf("output = %d lines, want echo + error + hint", len(out.lines))
	}
	if out.lines[1].text != "Command not found: frobnicate" || out.lines[1].style != StyleError {
		t.Errorf("error line = %+v", out.lines[1])
	}
	if out.lines[2].text != `Type "help" for available commands` || out.lines[2].style != StyleHint {
		t.Errorf("hint line = %+v", out.lines[2])
	}
	if view.visible != SectionCommands {
		t.Errorf("visible section = %q, must be unchanged", view.visible)
	}
}

func TestEveryExecutionEchoesFirst(t *testing.T) {
	inputs := []string{"help", "about", "date", "exit", "echo hi", "frobnicate"}

	for _, input := range inputs {
		interp, out, _ := newTestInterpreter()

		interp.Execute(input)

		if len(out.lines) == 0 || out.lines[0].style != StyleEcho || out.lines[0].text != input {
			t.Errorf("Execute(%q): first line = %+v, want verbatim echo", input, out.lines)
		}
	}
}
