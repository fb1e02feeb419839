// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestOutputFileName(t *testing.T) {
	got := OutputFileName("contract", "20260823_141500")
	want := "text_redacted_contract_20260823_141500.txt"
	if got != want {
		t.Errorf("OutputFileName() = %q, want %q", got, want)
	}
}

func TestWriteRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	processed := time.Date(2026, 8, 23, 14, 15, 0, 0, time.UTC)
	body := "\n\n--- Page 1 ---\n\nContact: [REDACTED]"

	if err := WriteRecord(path, "contract.pdf", body, processed); err != nil {
		t.Fatalf("WriteRecord: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading record: %v", err)
	}
	got := string(data)

	want := "# Redacted Content from contract.pdf\n" +
		"# Extraction Method: plain text\n" +
		"# Processed: 2026-08-23 14:15:00\n\n" +
		body
	if got != want {
		t.Errorf("record content = %q, want %q", got, want)
	}

	// Header is exactly three lines followed by a blank line.
	lines := strings.Split(got, "\n")
	if !strings.HasPrefix(lines[0], "# Redacted Content from ") {
		t.Errorf("line 1 = %q", lines[0])
	}
	if lines[1] != "# Extraction Method: plain text" {
		t.Errorf("line 2 = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "# Processed: ") {
		t.Errorf("line 3 = %q", lines[2])
	}
	if lines[3] != "" {
		t.Errorf("line 4 should be blank, got %q", lines[3])
	}
}

func TestWriteRecordBadPath(t *testing.T) {
	err := WriteRecord(filepath.Join(t.TempDir(), "missing", "out.txt"), "a.pdf", "body", time.Now())
	if err == nil {
		t.Fatal("expected error for nonexistent directory")
	}
}
