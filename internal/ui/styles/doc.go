// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the termdocs TUI.
//
// All colors use Lip Gloss AdaptiveColor so the same palette works on light
// and dark terminals. The output-line styles map one-to-one onto the
// interpreter's style tags; the UI never invents its own line colors.
package styles
