// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package content provides the documentation sections termdocs displays.
package content

import "github.com/jeranaias/termdocs/internal/command"

// =============================================================================
// SECTION
// =============================================================================

// Section is one named content panel. Exactly one section is visible in the
// TUI at a time.
type Section struct {
	// ID is the section identifier navigation commands target.
	ID string

	// Title is shown in the nav bar and above the rendered body.
	Title string

	// Body is the markdown content.
	Body string

	// Aliases are extra navigation aliases for sections loaded from disk.
	// Built-in sections get their aliases from the command table instead.
	Aliases []string
}

// =============================================================================
// STORE
// =============================================================================

// Store holds sections in display order.
//
// The store is mutated only from the host's event loop (initial load and
// watcher-triggered reloads are applied as events), so it carries no lock.
type Store struct {
	ordered []Section
	byID    map[string]int
}

// NewStore creates a store populated with the built-in sections.
func NewStore() *Store {
	s := &Store{byID: make(map[string]int)}
	for _, sec := range builtinSections() {
		s.Put(sec)
	}
	return s
}

// Put adds a section, replacing any existing section with the same ID while
// keeping its display position.
func (s *Store) Put(sec Section) {
	if idx, ok := s.byID[sec.ID]; ok {
		s.ordered[idx] = sec
		return
	}
	s.byID[sec.ID] = len(s.ordered)
	s.ordered = append(s.ordered, sec)
}

// Get returns the section with the given ID.
func (s *Store) Get(id string) (Section, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return Section{}, false
	}
	return s.ordered[idx], true
}

// Has reports whether the store knows the section ID.
func (s *Store) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Sections returns all sections in display order.
func (s *Store) Sections() []Section {
	out := make([]Section, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// IDs returns the section identifiers in display order.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.ordered))
	for _, sec := range s.ordered {
		ids = append(ids, sec.ID)
	}
	return ids
}

// =============================================================================
// BUILT-IN SECTIONS
// =============================================================================

func builtinSections() []Section {
	return []Section{
		{
			ID:    command.SectionCommands,
			Title: "Commands",
			Body: `Type a command and press Enter. Tab completes, arrow keys browse history.

| Command | Description |
|---------|-------------|
| ` + "`help`" + ` | Show this command reference |
| ` + "`config`" + ` | Show the configuration reference |
| ` + "`keybindings`" + `, ` + "`keys`" + `, ` + "`bindings`" + ` | Show the keybinding reference |
| ` + "`demo`" + ` | Show the demo section |
| ` + "`projects`" + `, ` + "`friendly`" + `, ` + "`friends`" + ` | Show friendly projects |
| ` + "`about`" + ` | Version and attribution |
| ` + "`date`" + ` | Print the current date and time |
| ` + "`echo <text>`" + ` | Print the given text back |
| ` + "`clear`" + ` | Clear the terminal output |
| ` + "`exit`" + ` | Nice try |
`,
		},
		{
			ID:    command.SectionConfig,
			Title: "Configuration",
			Body: `termdocs reads ` + "`~/.termdocs/config.toml`" + `. Every key is optional.

` + "```toml" + `
# dark, light or auto
theme = "auto"

# shown in front of the input line
prompt = "visitor@termdocs:~$ "

# extra sections loaded from *.md files
docs_dir = "~/docs/sections"

# skip the TUI and use a plain prompt
plain = false
` + "```" + `

Sections found in ` + "`docs_dir`" + ` are added to the nav bar and get their
own navigation commands. Files are reloaded when they change.
`,
		},
		{
			ID:    command.SectionKeybindings,
			Title: "Keybindings",
			Body: `The input line is always focused.

| Key | Action |
|-----|--------|
| Enter | Run the typed command |
| Tab | Complete the command |
| Up / Down | Browse command history |
| PgUp / PgDn | Scroll the output |
| Ctrl+L | Clear the output (same as ` + "`clear`" + `) |
| Ctrl+C | Quit |

History is kept for the session only and is never written to disk.
`,
		},
		{
			ID:    command.SectionDemo,
			Title: "Demo",
			Body: `A short tour:

1. Type ` + "`ke`" + ` and press Tab twice to see completion at work.
2. Run ` + "`echo   spacing is preserved  `" + ` and compare the output.
3. Press Up a few times, then Down until your half-typed line comes back.
4. Finish with ` + "`clear`" + `.

Everything here is resolved against a fixed command table; nothing you type
is ever executed as a real shell command.
`,
		},
		{
			ID:    command.SectionFriendlyProjects,
			Title: "Friendly Projects",
			Body: `Projects in the same spirit:

- **rigrun** - local LLM chat for the terminal
- **glamour** - the markdown renderer behind these panels
- **bubbletea** - the event loop this UI runs on

Send a patch to get your project listed.
`,
		},
	}
}
