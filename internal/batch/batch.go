// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch runs the redaction pipeline over every PDF in an input
// directory: extract page text, build the document record, redact, and
// write one output record per document.
package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/pdiddy/redactor/internal/extract"
	"github.com/pdiddy/redactor/internal/ledger"
	"github.com/pdiddy/redactor/internal/redact"
	"github.com/pdiddy/redactor/pkg/types"
)

// now is the batch clock. Tests override it to pin timestamps.
var now = time.Now

// Summary holds the outcome counts of one batch run. It lives only for the
// duration of the run and is reported through the log and status writer.
type Summary struct {
	Written int
	Failed  int
	Skipped int
}

// Total returns the number of documents attempted.
func (s Summary) Total() int {
	return s.Written + s.Failed + s.Skipped
}

// HasFailures reports whether any document failed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Runner drives one batch over an input directory. Documents are processed
// sequentially in discovery order; a per-document failure is counted and
// logged but never halts the batch.
type Runner struct {
	extractor extract.Extractor
	redactor  *redact.Redactor
	cfg       types.BatchConfig
	log       hclog.Logger
	ledger    *ledger.Ledger
}

// NewRunner wires a batch runner from its collaborators. The ledger may be
// nil when skip-processed tracking is disabled.
func NewRunner(e extract.Extractor, r *redact.Redactor, cfg types.BatchConfig, led *ledger.Ledger, log hclog.Logger) *Runner {
	return &Runner{
		extractor: e,
		redactor:  r,
		cfg:       cfg,
		log:       log,
		ledger:    led,
	}
}

// Run processes every .pdf file directly inside the input directory,
// writing per-document status lines to w and returning the run summary.
// Configuration problems (missing input directory, uncreatable output
// directory) abort the whole run with an error before any document is
// touched; everything past that point is per-document and recoverable.
func (r *Runner) Run(w io.Writer) (Summary, error) {
	docs, err := Discover(r.cfg.InputDir)
	if err != nil {
		return Summary{}, err
	}

	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating output directory %s: %w", r.cfg.OutputDir, err)
	}

	if r.redactor.TermCount() == 0 {
		r.log.Warn("no redaction terms found - nothing to redact")
		return Summary{}, nil
	}
	if len(docs) == 0 {
		r.log.Warn("no PDF files found", "dir", r.cfg.InputDir)
		return Summary{}, nil
	}

	r.log.Info("starting batch", "documents", len(docs), "terms", r.redactor.TermCount())

	batchStamp := now().Format(batchStampFmt)

	var summary Summary
	for _, doc := range docs {
		switch r.processOne(doc, batchStamp, w) {
		case types.StatusWritten:
			summary.Written++
		case types.StatusSkipped:
			summary.Skipped++
		case types.StatusFailed:
			summary.Failed++
		}
	}

	r.log.Info("batch complete", "successful", summary.Written, "failed", summary.Failed, "skipped", summary.Skipped)
	fmt.Fprintf(w, "\nBatch summary: %d redacted, %d failed, %d skipped (total: %d)\n",
		summary.Written, summary.Failed, summary.Skipped, summary.Total())
	return summary, nil
}

// processOne takes a single document through extract, build, redact, and
// write. Every failure path logs a reason specific enough to identify the
// document and what stage lost it.
func (r *Runner) processOne(doc types.Document, batchStamp string, w io.Writer) types.DocumentStatus {
	name := filepath.Base(doc.PDFPath)
	r.log.Info("processing", "file", name)

	var sum string
	if r.cfg.SkipProcessed && r.ledger != nil {
		var err error
		sum, err = ledger.Checksum(doc.PDFPath)
		if err != nil {
			r.log.Error("checksum failed", "file", name, "error", err)
			fmt.Fprintf(w, "failed:  %s (%v)\n", doc.ID, err)
			return types.StatusFailed
		}
		seen, err := r.ledger.Seen(doc.PDFPath, sum)
		if err != nil {
			r.log.Error("ledger lookup failed", "file", name, "error", err)
			fmt.Fprintf(w, "failed:  %s (%v)\n", doc.ID, err)
			return types.StatusFailed
		}
		if seen {
			r.log.Info("already processed", "file", name)
			fmt.Fprintf(w, "skipped: %s (already processed)\n", doc.ID)
			return types.StatusSkipped
		}
	}

	pages, err := r.extractor.Extract(doc.PDFPath)
	if err != nil {
		r.log.Error("extraction failed", "file", name, "error", err)
		fmt.Fprintf(w, "failed:  %s (%v)\n", doc.ID, err)
		return types.StatusFailed
	}

	text := BuildDocumentText(pages)
	redacted := r.redactor.Apply(text)
	if strings.TrimSpace(redacted) == "" {
		r.log.Error("no text extracted", "file", name, "pages", len(pages))
		fmt.Fprintf(w, "failed:  %s (no text extracted)\n", doc.ID)
		return types.StatusFailed
	}

	outPath := filepath.Join(r.cfg.OutputDir, OutputFileName(doc.ID, batchStamp))
	if err := WriteRecord(outPath, name, redacted, now()); err != nil {
		r.log.Error("write failed", "file", name, "error", err)
		fmt.Fprintf(w, "failed:  %s (%v)\n", doc.ID, err)
		return types.StatusFailed
	}

	if r.cfg.SkipProcessed && r.ledger != nil {
		if err := r.ledger.Record(doc.PDFPath, sum, outPath, batchStamp); err != nil {
			// The output record was written, so the document still counts
			// as a success; it just will not be skipped next run.
			r.log.Warn("ledger update failed", "file", name, "error", err)
		}
	}

	r.log.Info("redaction completed", "file", name, "output", outPath)
	fmt.Fprintf(w, "redacted: %s -> %s\n", doc.ID, filepath.Base(outPath))
	return types.StatusWritten
}

// Discover lists the .pdf files directly inside dir, in directory order,
// without descending into subdirectories. A missing or unreadable input
// directory is a configuration error.
func Discover(dir string) ([]types.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %s: %w", dir, err)
	}

	var docs []types.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), ".pdf") {
			continue
		}
		docs = append(docs, types.Document{
			ID:      strings.TrimSuffix(name, filepath.Ext(name)),
			PDFPath: filepath.Join(dir, name),
		})
	}
	return docs, nil
}
