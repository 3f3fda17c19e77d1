// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides argument parsing, terminal detection and the plain
// mode for the termdocs binary.
package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jeranaias/termdocs/internal/command"
	"github.com/jeranaias/termdocs/internal/content"
)

// =============================================================================
// ARGUMENT PARSING TESTS
// =============================================================================

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		want    Args
		wantErr bool
	}{
		{name: "no arguments", argv: nil, want: Args{}},
		{name: "plain flag", argv: []string{"--plain"}, want: Args{Plain: true}},
		{name: "short plain flag", argv: []string{"-p"}, want: Args{Plain: true}},
		{name: "docs with space", argv: []string{"--docs", "/tmp/docs"}, want: Args{Docs: "/tmp/docs"}},
		{name: "docs with equals", argv: []string{"--docs=/tmp/docs"}, want: Args{Docs: "/tmp/docs"}},
		{name: "theme", argv: []string{"-t", "light"}, want: Args{Theme: "light"}},
		{name: "version", argv: []string{"--version"}, want: Args{ShowVersion: true}},
		{name: "combined", argv: []string{"-p", "--theme=dark"}, want: Args{Plain: true, Theme: "dark"}},
		{name: "unknown flag", argv: []string{"--what"}, wantErr: true},
		{name: "missing value", argv: []string{"--docs"}, wantErr: true},
		{name: "bad theme", argv: []string{"--theme", "solarized"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.argv)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%v) succeeded, want error", tc.argv)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%v) failed: %v", tc.argv, err)
			}
			if *got != tc.want {
				t.Errorf("Parse(%v) = %+v, want %+v", tc.argv, *got, tc.want)
			}
		})
	}
}

// =============================================================================
// PLAIN MODE COLLABORATOR TESTS
// =============================================================================

func TestPlainOutputSkipsEchoLines(t *testing.T) {
	var buf bytes.Buffer
	out := &plainOutput{w: &buf}

	out.AppendLine("help", command.StyleEcho)
	out.AppendLine("hello", command.StyleText)

	if got := buf.String(); got != "hello\n" {
		t.Errorf("output = %q, want only the text line", got)
	}
}

func TestPlainViewPrintsSections(t *testing.T) {
	var buf bytes.Buffer
	view := &plainView{store: content.NewStore(), w: &buf}

	view.ShowSection(command.SectionDemo)

	if !strings.Contains(buf.String(), "Demo") {
		t.Errorf("output %q should contain the section title", buf.String())
	}
	if !view.HasSection(command.SectionDemo) {
		t.Error("HasSection should know built-in sections")
	}
}

func TestCompleterMatchesTuiSemantics(t *testing.T) {
	complete := completerFor(command.NewRegistry())

	if got := complete("hel"); len(got) != 1 || got[0] != "help " {
		t.Errorf("complete(hel) = %v, want [\"help \"]", got)
	}
	if got := complete("ke"); len(got) != 2 {
		t.Errorf("complete(ke) = %v, want the two matching aliases", got)
	}
	if got := complete(""); got != nil {
		t.Errorf("complete(\"\") = %v, want nil", got)
	}
	if got := complete("frob"); len(got) != 0 {
		t.Errorf("complete(frob) = %v, want none", got)
	}
}
