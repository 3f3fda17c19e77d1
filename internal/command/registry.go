// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package command provides the command table and interpreter for termdocs.
package command

import (
	"fmt"
	"strings"
	"time"
)

// =============================================================================
// SECTION IDENTIFIERS
// =============================================================================

// Built-in section identifiers targeted by the navigation commands. The view
// must know every one of these; a mismatch is a table/view contract bug.
const (
	SectionCommands         = "commands"
	SectionConfig           = "config"
	SectionKeybindings      = "keybindings"
	SectionDemo             = "demo"
	SectionFriendlyProjects = "friendly-projects"
)

// =============================================================================
// ACTION KINDS
// =============================================================================

// ActionKind is the tagged variant a command resolves to.
type ActionKind int

const (
	// ActionNavigate switches the visible section to Command.Section.
	ActionNavigate ActionKind = iota

	// ActionPrint appends the command's fixed (or computed) text lines.
	ActionPrint

	// ActionClear empties the output log.
	ActionClear

	// ActionEcho marks the owner of the "echo " prefix rule. The alias is
	// completable but never matched exactly; only the prefix form fires.
	ActionEcho

	// ActionNoop renders informational text and changes nothing else.
	ActionNoop
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Command is one entry in the static command table.
type Command struct {
	// Aliases are every literal the user may type, canonical name first.
	// Matching is case-insensitive; the declared order is the table order
	// used by tab completion listings.
	Aliases []string

	// Description is shown in the commands section and completion listings.
	Description string

	// Kind selects the action variant.
	Kind ActionKind

	// Section is the navigation target for ActionNavigate.
	Section string

	// Lines produces the output for ActionPrint and ActionNoop.
	Lines func(ctx *Context) []string
}

// Name returns the canonical command name.
func (c *Command) Name() string {
	return c.Aliases[0]
}

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry holds the command table. It is the single source of truth for
// aliases: exact-match lookup and the completion index are both derived from
// it, so the two can never drift apart.
type Registry struct {
	commands []*Command
	aliases  map[string]*Command
}

// NewRegistry creates a registry populated with the built-in commands.
func NewRegistry() *Registry {
	r := &Registry{
		aliases: make(map[string]*Command),
	}
	r.registerBuiltins()
	return r
}

// Register adds a command to the table. Alias strings must be unique across
// the whole table; a duplicate is a programming error in the static table
// and panics rather than silently shadowing an earlier entry.
func (r *Registry) Register(cmd *Command) {
	if len(cmd.Aliases) == 0 {
		panic("command: Register called with no aliases")
	}
	r.commands = append(r.commands, cmd)
	if cmd.Kind == ActionEcho {
		// The echo alias participates in completion only; exact matching is
		// handled by the interpreter's prefix rule.
		return
	}
	for _, alias := range cmd.Aliases {
		key := strings.ToLower(alias)
		if _, exists := r.aliases[key]; exists {
			panic(fmt.Sprintf("command: duplicate alias %q in command table", alias))
		}
		r.aliases[key] = cmd
	}
}

// Get retrieves a command by alias. Matching is case-insensitive exact.
// Returns nil when no alias matches.
func (r *Registry) Get(alias string) *Command {
	return r.aliases[strings.ToLower(alias)]
}

// Commands returns the table in registration order.
func (r *Registry) Commands() []*Command {
	return r.commands
}

// AliasGroups returns each command's alias list in table order. The line
// editor derives its completion index from this, including secondary aliases
// so that e.g. "keys" and "bindings" are independently completable.
func (r *Registry) AliasGroups() [][]string {
	groups := make([][]string, 0, len(r.commands))
	for _, cmd := range r.commands {
		groups = append(groups, cmd.Aliases)
	}
	return groups
}

// RegisterSection adds a navigation command for a content section that was
// loaded at runtime (on-disk sections). Aliases already taken are skipped so
// a user file cannot shadow a built-in.
func (r *Registry) RegisterSection(section, description string, aliases []string) {
	free := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		if r.Get(alias) == nil {
			free = append(free, alias)
		}
	}
	if len(free) == 0 {
		return
	}
	r.Register(&Command{
		Aliases:     free,
		Description: description,
		Kind:        ActionNavigate,
		Section:     section,
	})
}

// =============================================================================
// BUILT-IN COMMANDS
// =============================================================================

func (r *Registry) registerBuiltins() {
	// Navigation
	r.Register(&Command{
		Aliases:     []string{"help"},
		Description: "Show the list of available commands",
		Kind:        ActionNavigate,
		Section:     SectionCommands,
	})

	r.Register(&Command{
		Aliases:     []string{"config"},
		Description: "Show the configuration reference",
		Kind:        ActionNavigate,
		Section:     SectionConfig,
	})

	r.Register(&Command{
		Aliases:     []string{"keybindings", "keys", "bindings"},
		Description: "Show the keybinding reference",
		Kind:        ActionNavigate,
		Section:     SectionKeybindings,
	})

	r.Register(&Command{
		Aliases:     []string{"demo"},
		Description: "Show the demo section",
		Kind:        ActionNavigate,
		Section:     SectionDemo,
	})

	r.Register(&Command{
		Aliases:     []string{"projects", "friendly", "friends"},
		Description: "Show friendly projects",
		Kind:        ActionNavigate,
		Section:     SectionFriendlyProjects,
	})

	// Text output
	r.Register(&Command{
		Aliases:     []string{"about"},
		Description: "Show version and attribution",
		Kind:        ActionPrint,
		Lines:       aboutLines,
	})

	r.Register(&Command{
		Aliases:     []string{"date"},
		Description: "Print the current date and time",
		Kind:        ActionPrint,
		Lines:       dateLines,
	})

	// Everything else
	r.Register(&Command{
		Aliases:     []string{"echo"},
		Description: "Print the given text back",
		Kind:        ActionEcho,
	})

	r.Register(&Command{
		Aliases:     []string{"clear"},
		Description: "Clear the terminal output",
		Kind:        ActionClear,
	})

	r.Register(&Command{
		Aliases:     []string{"exit"},
		Description: "You cannot leave that easily",
		Kind:        ActionNoop,
		Lines:       exitLines,
	})
}

// =============================================================================
// FIXED TEXT
// =============================================================================

func aboutLines(ctx *Context) []string {
	version := ctx.Version
	if version == "" {
		version = "dev"
	}
	return []string{
		"termdocs " + version,
		"A command-line interface for browsing documentation in the terminal.",
		"Made by Morgan Forge.",
	}
}

func dateLines(ctx *Context) []string {
	now := time.Now
	if ctx.Now != nil {
		now = ctx.Now
	}
	return []string{now().Format("Mon Jan 2 15:04:05 MST 2006")}
}

func exitLines(ctx *Context) []string {
	return []string{
		"This session cannot be closed from here.",
		"Close the terminal window or press Ctrl+C to leave.",
	}
}
