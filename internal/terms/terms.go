// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package terms loads the set of literal strings to suppress from document
// text. The canonical format is a plain-text file with one term per line;
// a YAML profile format carries per-profile matching options as well.
package terms

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Profile is the on-disk YAML representation of a term set with options.
// Options left unset fall back to the run configuration.
type Profile struct {
	// Terms lists the literal strings to redact, in file order.
	Terms []string `yaml:"terms"`

	// CaseSensitive overrides the run-level matching mode when present.
	CaseSensitive *bool `yaml:"case_sensitive,omitempty"`

	// Marker overrides the run-level replacement literal when non-empty.
	Marker string `yaml:"marker,omitempty"`
}

// Load reads a term file and returns the ordered term set. Lines are
// trimmed of surrounding whitespace and blank lines are dropped; order is
// otherwise preserved. Paths ending in .yaml or .yml are parsed as a
// Profile instead. A missing or unreadable file is an error: the caller
// cannot proceed meaningfully without its term set.
func Load(path string) ([]string, error) {
	p, err := LoadProfile(path)
	if err != nil {
		return nil, err
	}
	return p.Terms, nil
}

// LoadProfile reads a term file as a full Profile. Plain-text files yield
// a Profile with only Terms populated.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading terms file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(path, data)
	default:
		return &Profile{Terms: splitLines(string(data))}, nil
	}
}

// splitLines splits newline-delimited text into trimmed, non-blank terms.
func splitLines(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		term := strings.TrimSpace(line)
		if term == "" {
			continue
		}
		out = append(out, term)
	}
	return out
}

func parseYAML(path string, data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing term profile %s: %w", path, err)
	}

	// Profiles get the same normalization as plain files: trimmed entries,
	// blanks dropped, order preserved.
	var cleaned []string
	for _, t := range p.Terms {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		cleaned = append(cleaned, t)
	}
	p.Terms = cleaned
	return &p, nil
}
