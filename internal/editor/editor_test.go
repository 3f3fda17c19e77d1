// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package editor provides the interactive line editor for termdocs.
package editor

import (
	"testing"
)

// =============================================================================
// TEST FIXTURES
// =============================================================================

// stringBuffer is a plain in-memory Buffer for tests.
type stringBuffer struct {
	value string
}

func (b *stringBuffer) Value() string     { return b.value }
func (b *stringBuffer) SetValue(s string) { b.value = s }

// fakeSource mirrors the shape of the built-in command table.
type fakeSource struct {
	groups [][]string
}

func (f *fakeSource) AliasGroups() [][]string { return f.groups }

func testSource() *fakeSource {
	return &fakeSource{groups: [][]string{
		{"help"},
		{"config"},
		{"keybindings", "keys", "bindings"},
		{"demo"},
		{"projects", "friendly", "friends"},
		{"about"},
		{"date"},
		{"echo"},
		{"clear"},
		{"exit"},
	}}
}

// harness wires an editor to recording callbacks.
type harness struct {
	editor    *Editor
	buf       *stringBuffer
	submitted []string
	informed  []string
}

func newHarness() *harness {
	h := &harness{buf: &stringBuffer{}}
	h.editor = New(
		testSource(),
		func(raw string) { h.submitted = append(h.submitted, raw) },
		func(text string) { h.informed = append(h.informed, text) },
	)
	return h
}

func (h *harness) press(key Key) {
	h.editor.HandleKey(key, h.buf)
}

func (h *harness) typeLine(s string) {
	h.buf.SetValue(s)
	h.press(KeyEnter)
}

// =============================================================================
// SUBMISSION TESTS
// =============================================================================

func TestEnterSubmitsAndClears(t *testing.T) {
	h := newHarness()

	h.typeLine("help")

	if len(h.submitted) != 1 || h.submitted[0] != "help" {
		t.Fatalf("submitted = %v, want [help]", h.submitted)
	}
	if h.buf.Value() != "" {
		t.Errorf("buffer after submit = %q, want empty", h.buf.Value())
	}
}

func TestEnterIgnoresWhitespaceOnlyLines(t *testing.T) {
	h := newHarness()

	for _, line := range []string{"", "   ", "\t"} {
		h.typeLine(line)
	}

	if len(h.submitted) != 0 {
		t.Errorf("submitted = %v, want none", h.submitted)
	}
	if got := len(h.editor.History()); got != 0 {
		t.Errorf("history length = %d, want 0", got)
	}
}

func TestHistoryIsPrependOnlyAndKeepsDuplicates(t *testing.T) {
	h := newHarness()

	h.typeLine("help")
	h.typeLine("config")
	h.typeLine("help")

	want := []string{"help", "config", "help"}
	got := h.editor.History()
	if len(got) != len(want) {
		t.Fatalf("history length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("history[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// =============================================================================
// HISTORY BROWSING TESTS
// =============================================================================

func TestArrowUpWithEmptyHistoryIsNoop(t *testing.T) {
	h := newHarness()
	h.buf.SetValue("typing")

	h.press(KeyUp)

	if h.buf.Value() != "typing" {
		t.Errorf("buffer = %q, want %q", h.buf.Value(), "typing")
	}
	if h.editor.Browsing() {
		t.Error("editor should not enter browse mode with empty history")
	}
}

func TestArrowUpWalksMostRecentFirst(t *testing.T) {
	h := newHarness()
	h.typeLine("first")
	h.typeLine("second")
	h.typeLine("third")

	h.press(KeyUp)
	if h.buf.Value() != "third" {
		t.Errorf("after 1 up: buffer = %q, want %q", h.buf.Value(), "third")
	}
	h.press(KeyUp)
	if h.buf.Value() != "second" {
		t.Errorf("after 2 up: buffer = %q, want %q", h.buf.Value(), "second")
	}
	h.press(KeyUp)
	if h.buf.Value() != "first" {
		t.Errorf("after 3 up: buffer = %q, want %q", h.buf.Value(), "first")
	}
}

func TestArrowUpClampsAtOldestEntry(t *testing.T) {
	h := newHarness()
	h.typeLine("first")
	h.typeLine("second")

	for range 10 {
		h.press(KeyUp)
	}

	if h.buf.Value() != "first" {
		t.Errorf("buffer = %q, want oldest entry %q", h.buf.Value(), "first")
	}
}

func TestRoundTripRestoresLiveBuffer(t *testing.T) {
	h := newHarness()
	h.typeLine("first")
	h.typeLine("second")
	h.typeLine("third")

	const live = "draft comm"
	h.buf.SetValue(live)

	for k := 1; k <= 3; k++ {
		for range k {
			h.press(KeyUp)
		}
		for range k {
			h.press(KeyDown)
		}
		if h.buf.Value() != live {
			t.Errorf("k=%d: buffer = %q, want %q", k, h.buf.Value(), live)
		}
		if h.editor.Browsing() {
			t.Errorf("k=%d: still browsing after round trip", k)
		}
	}
}

func TestSnapshotTakenOnlyOnBrowseEntry(t *testing.T) {
	h := newHarness()
	h.typeLine("first")
	h.typeLine("second")

	h.buf.SetValue("draft")
	h.press(KeyUp)   // snapshot "draft", shows "second"
	h.press(KeyUp)   // shows "first"
	h.press(KeyDown) // shows "second"
	h.press(KeyDown) // restores snapshot

	if h.buf.Value() != "draft" {
		t.Errorf("buffer = %q, want snapshot %q", h.buf.Value(), "draft")
	}
}

func TestArrowDownOutsideBrowseModeIsNoop(t *testing.T) {
	h := newHarness()
	h.typeLine("first")

	h.buf.SetValue("live")
	h.press(KeyDown)

	if h.buf.Value() != "live" {
		t.Errorf("buffer = %q, want %q", h.buf.Value(), "live")
	}
}

// =============================================================================
// TAB COMPLETION TESTS
// =============================================================================

func TestTabCompletion(t *testing.T) {
	tests := []struct {
		name        string
		buffer      string
		wantBuffer  string
		wantListing string
	}{
		{
			name:       "single match completes with trailing space",
			buffer:     "hel",
			wantBuffer: "help ",
		},
		{
			name:        "multiple matches list the full alias groups",
			buffer:      "ke",
			wantBuffer:  "ke",
			wantListing: "keybindings, keys, bindings",
		},
		{
			name:        "matches across commands list each group",
			buffer:      "c",
			wantBuffer:  "c",
			wantListing: "config, clear",
		},
		{
			name:       "no match is a silent no-op",
			buffer:     "frob",
			wantBuffer: "frob",
		},
		{
			name:       "empty buffer is a no-op",
			buffer:     "",
			wantBuffer: "",
		},
		{
			name:       "completion is case-insensitive",
			buffer:     "HEL",
			wantBuffer: "help ",
		},
		{
			name:       "secondary alias completes independently",
			buffer:     "bind",
			wantBuffer: "bindings ",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness()
			h.buf.SetValue(tc.buffer)

			h.press(KeyTab)

			if h.buf.Value() != tc.wantBuffer {
				t.Errorf("buffer = %q, want %q", h.buf.Value(), tc.wantBuffer)
			}
			switch {
			case tc.wantListing == "" && len(h.informed) != 0:
				t.Errorf("unexpected listing %v", h.informed)
			case tc.wantListing != "" && (len(h.informed) != 1 || h.informed[0] != tc.wantListing):
				t.Errorf("listing = %v, want [%q]", h.informed, tc.wantListing)
			}
		})
	}
}
