// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DocumentStatus indicates the terminal state of one document within a batch.
type DocumentStatus string

const (
	StatusWritten DocumentStatus = "written"
	StatusFailed  DocumentStatus = "failed"
	StatusSkipped DocumentStatus = "skipped"
)

// Page is the extracted text of a single PDF page.
type Page struct {
	// Number is the 1-based page number within the source document.
	Number int `json:"number" yaml:"number"`

	// Text is the raw extracted page text; may be empty for pages that
	// carry no text content.
	Text string `json:"text" yaml:"text"`
}

// Document identifies one input PDF within a batch.
type Document struct {
	// ID is the source filename with the extension stripped.
	ID string `json:"id" yaml:"id"`

	// PDFPath is the filesystem path to the source PDF.
	PDFPath string `json:"pdf_path" yaml:"pdf_path"`
}
