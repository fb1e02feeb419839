// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package redact replaces literal term occurrences in extracted text with a
// fixed marker. Terms are never interpreted as patterns: every term is
// neutralized with regexp.QuoteMeta before matching, so "a.b" matches only
// the exact substring "a.b".
package redact

import (
	"regexp"
	"sort"
)

// DefaultMarker is the replacement literal used when no override is configured.
const DefaultMarker = "[REDACTED]"

// Options control how a Redactor matches.
type Options struct {
	// CaseSensitive disables the default case-insensitive matching.
	CaseSensitive bool

	// Marker overrides DefaultMarker when non-empty.
	Marker string
}

// Redactor applies a fixed term set to text. It is immutable after New and
// safe to reuse across documents.
type Redactor struct {
	matchers []*regexp.Regexp
	marker   string
}

// New compiles a redactor from the given term set. Empty terms are skipped
// rather than matching everywhere. Terms are ordered longest-first (stable
// within equal lengths) so that overlapping terms prefer the maximal match:
// with both "John" and "John Smith" loaded, "John Smith" is replaced by a
// single marker instead of leaving a dangling " Smith".
func New(terms []string, opts Options) *Redactor {
	marker := opts.Marker
	if marker == "" {
		marker = DefaultMarker
	}

	ordered := make([]string, 0, len(terms))
	for _, t := range terms {
		if t == "" {
			continue
		}
		ordered = append(ordered, t)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})

	prefix := "(?i)"
	if opts.CaseSensitive {
		prefix = ""
	}

	matchers := make([]*regexp.Regexp, len(ordered))
	for i, t := range ordered {
		// QuoteMeta output is always a valid expression, so compilation
		// cannot fail here.
		matchers[i] = regexp.MustCompile(prefix + regexp.QuoteMeta(t))
	}

	return &Redactor{matchers: matchers, marker: marker}
}

// Marker returns the replacement literal this redactor substitutes.
func (r *Redactor) Marker() string {
	return r.marker
}

// TermCount returns the number of active (non-empty) terms.
func (r *Redactor) TermCount() int {
	return len(r.matchers)
}

// Apply returns text with every term occurrence replaced by the marker.
// Substitution is a sequential fold: each term operates on the output of
// the previous one, so a term earlier in the (longest-first) order takes
// precedence where terms overlap. Empty input and empty term sets are
// no-ops, and text without any occurrence is returned byte-for-byte
// unchanged.
func (r *Redactor) Apply(text string) string {
	if text == "" || len(r.matchers) == 0 {
		return text
	}
	for _, m := range r.matchers {
		text = m.ReplaceAllLiteralString(text, r.marker)
	}
	return text
}

// String is a one-shot convenience for callers that do not hold a Redactor.
func String(text string, terms []string, opts Options) string {
	return New(terms, opts).Apply(text)
}
