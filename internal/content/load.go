// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package content provides the documentation sections termdocs displays.
package content

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// ON-DISK SECTIONS
// =============================================================================

// frontMatter is the optional TOML block at the top of a section file,
// delimited by "+++" lines:
//
//	+++
//	title = "FAQ"
//	aliases = ["faq", "questions"]
//	+++
//	Body markdown follows.
type frontMatter struct {
	Title   string   `toml:"title"`
	Aliases []string `toml:"aliases"`
}

// frontMatterDelim separates metadata from the markdown body.
const frontMatterDelim = "+++"

// LoadDir reads every *.md file in dir as a section. The file name (without
// extension) becomes the section ID and the default title; front matter can
// override the title and add navigation aliases. Files are returned in name
// order so reloads are deterministic.
func LoadDir(dir string) ([]Section, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("content: reading docs dir: %w", err)
	}

	var sections []Section
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		sec, err := loadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		sections = append(sections, sec)
	}

	sort.Slice(sections, func(i, j int) bool { return sections[i].ID < sections[j].ID })
	return sections, nil
}

func loadFile(path string) (Section, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Section{}, fmt.Errorf("content: reading %s: %w", path, err)
	}

	id := strings.TrimSuffix(filepath.Base(path), ".md")
	meta, body := splitFrontMatter(raw)

	sec := Section{
		ID:    id,
		Title: id,
		Body:  string(body),
	}
	if len(meta) > 0 {
		var fm frontMatter
		if err := toml.Unmarshal(meta, &fm); err != nil {
			return Section{}, fmt.Errorf("content: front matter of %s: %w", path, err)
		}
		if fm.Title != "" {
			sec.Title = fm.Title
		}
		sec.Aliases = fm.Aliases
	}
	return sec, nil
}

// splitFrontMatter separates an optional leading "+++" TOML block from the
// body. Files without front matter come back with nil metadata.
func splitFrontMatter(raw []byte) (meta, body []byte) {
	delim := []byte(frontMatterDelim + "\n")
	if !bytes.HasPrefix(raw, delim) {
		return nil, raw
	}
	rest := raw[len(delim):]
	end := bytes.Index(rest, delim)
	if end < 0 {
		// Unterminated block: treat the whole file as body.
		return nil, raw
	}
	return rest[:end], rest[end+len(delim):]
}
