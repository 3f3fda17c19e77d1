// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package content provides the documentation sections termdocs displays.
//
// A Section is a named markdown panel; the Store holds them in display
// order. Built-in sections cover the command reference, configuration,
// keybindings, the demo and friendly projects. A docs directory can add or
// override sections at runtime (*.md files with optional TOML front
// matter), and a Watcher reloads them when files change.
//
// Rendering goes through glamour so section bodies are regular markdown
// with fenced code blocks, emphasis and links.
package content
