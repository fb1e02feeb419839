// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// outputPrefix starts every output filename so redacted artifacts are
	// recognizable next to other files in the output directory.
	outputPrefix = "text_redacted_"

	// batchStampFmt is the filename timestamp shared by one batch run.
	batchStampFmt = "20060102_150405"

	// headerStampFmt is the human-readable processing timestamp in the
	// output record header.
	headerStampFmt = "2006-01-02 15:04:05"
)

// OutputFileName returns the deterministic output name for a source stem
// and batch timestamp: text_redacted_<stem>_<stamp>.txt. The shared stamp
// groups one run's outputs and keeps them from colliding with earlier runs.
func OutputFileName(stem, batchStamp string) string {
	return outputPrefix + stem + "_" + batchStamp + ".txt"
}

// WriteRecord writes one output record: a three-line header naming the
// source file, the extraction method, and the processing time, then a
// blank line and the redacted body.
func WriteRecord(path, sourceName, body string, processed time.Time) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# Redacted Content from %s\n", sourceName)
	b.WriteString("# Extraction Method: plain text\n")
	fmt.Fprintf(&b, "# Processed: %s\n\n", processed.Format(headerStampFmt))
	b.WriteString(body)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing output record %s: %w", path, err)
	}
	return nil
}
