// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"fmt"
	"strings"

	"github.com/pdiddy/redactor/pkg/types"
)

// BuildDocumentText concatenates per-page text into a single document
// string. Each page with non-empty text is preceded by a boundary marker
// carrying its 1-based page number; pages without text contribute nothing,
// not even a marker. An all-empty document yields the empty string, which
// is a valid "nothing to redact" result rather than an error.
func BuildDocumentText(pages []types.Page) string {
	var b strings.Builder
	for _, p := range pages {
		if p.Text == "" {
			continue
		}
		fmt.Fprintf(&b, "\n\n--- Page %d ---\n\n", p.Number)
		b.WriteString(p.Text)
	}
	return b.String()
}
