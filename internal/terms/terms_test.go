// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package terms

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "preserves order and trims whitespace",
			content: "John Smith\n  ACME Corp  \nproject-x\n",
			want:    []string{"John Smith", "ACME Corp", "project-x"},
		},
		{
			name:    "drops blank lines",
			content: "alpha\n\n   \n\t\nbeta\n",
			want:    []string{"alpha", "beta"},
		},
		{
			name:    "blank-only file yields empty set",
			content: "\n\n   \n",
			want:    nil,
		},
		{
			name:    "empty file yields empty set",
			content: "",
			want:    nil,
		},
		{
			name:    "duplicates are kept",
			content: "secret\nsecret\n",
			want:    []string{"secret", "secret"},
		},
		{
			name:    "no trailing newline",
			content: "last-term",
			want:    []string{"last-term"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTerms(t, "terms_to_redact.txt", tt.content)
			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadIdempotent(t *testing.T) {
	path := writeTerms(t, "terms_to_redact.txt", "one\n\ntwo\nthree  \n")

	first, err := Load(path)
	require.NoError(t, err)
	second, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.txt")
}

func TestLoadProfileYAML(t *testing.T) {
	content := `terms:
  - John Smith
  - "  ACME Corp "
  - ""
case_sensitive: true
marker: "███"
`
	path := writeTerms(t, "profile.yaml", content)

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"John Smith", "ACME Corp"}, p.Terms)
	require.NotNil(t, p.CaseSensitive)
	assert.True(t, *p.CaseSensitive)
	assert.Equal(t, "███", p.Marker)
}

func TestLoadProfilePlainTextHasNoOptions(t *testing.T) {
	path := writeTerms(t, "terms.txt", "secret\n")

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"secret"}, p.Terms)
	assert.Nil(t, p.CaseSensitive)
	assert.Empty(t, p.Marker)
}

func TestLoadProfileBadYAML(t *testing.T) {
	path := writeTerms(t, "profile.yaml", "terms: [unclosed")

	_, err := LoadProfile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing term profile")
}

func writeTerms(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
