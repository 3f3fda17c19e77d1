// termdocs - browse documentation from a command line in your terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/termdocs/internal/cli"
	"github.com/jeranaias/termdocs/internal/command"
	"github.com/jeranaias/termdocs/internal/config"
	"github.com/jeranaias/termdocs/internal/content"
	"github.com/jeranaias/termdocs/internal/ui/term"
)

// Version information (set at build time)
var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	args, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, cli.Usage())
		os.Exit(2)
	}

	switch {
	case args.ShowHelp:
		fmt.Println(cli.Usage())
		return
	case args.ShowVersion:
		fmt.Printf("termdocs %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		// Malformed config is reported but never fatal; the defaults work.
		fmt.Fprintln(os.Stderr, err)
	}
	if args.Theme != "" {
		cfg.Theme = args.Theme
	}
	if args.Docs != "" {
		cfg.DocsDir = args.Docs
	}
	if args.Plain {
		cfg.Plain = true
	}

	registry := command.NewRegistry()
	store := content.NewStore()
	loadSections(cfg, store, registry)

	if cfg.Plain || !cli.IsTTY() {
		if err := cli.RunPlain(cfg, store, registry, Version); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	runTUI(cfg, store, registry)
}

// loadSections merges the docs directory into the built-in sections before
// the UI starts, so completion knows every alias from the first keystroke.
func loadSections(cfg *config.Config, store *content.Store, registry *command.Registry) {
	if cfg.DocsDir == "" {
		return
	}
	sections, err := content.LoadDir(cfg.DocsDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	for _, sec := range sections {
		store.Put(sec)
		aliases := sec.Aliases
		if len(aliases) == 0 {
			aliases = []string{sec.ID}
		}
		registry.RegisterSection(sec.ID, "Show "+sec.Title, aliases)
	}
}

// runTUI starts the Bubble Tea program and, when a docs directory is
// configured, a watcher that feeds reload events into it.
func runTUI(cfg *config.Config, store *content.Store, registry *command.Registry) {
	model := term.New(cfg, store, registry, Version)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if cfg.DocsDir != "" {
		watcher, err := content.NewWatcher(cfg.DocsDir, func() {
			program.Send(term.SectionsChangedMsg{Dir: cfg.DocsDir})
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "termdocs: watching docs dir:", err)
		} else {
			watcher.Watch()
			defer watcher.Close()
		}
	}

	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "termdocs:", err)
		os.Exit(1)
	}
}
