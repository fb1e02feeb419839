// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls per-page plain text out of PDF documents.
package extract

import (
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/redactor/pkg/types"
)

// Extractor turns a document path into ordered per-page text. Implementations
// return an error when the document cannot be opened or parsed at all; a
// single unreadable page is not fatal to the document.
type Extractor interface {
	Extract(path string) ([]types.Page, error)
}

// PDFExtractor reads PDFs with github.com/ledongthuc/pdf.
type PDFExtractor struct{}

// NewPDFExtractor returns the default PDF text extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract opens the PDF at path and returns its pages in order. Pages whose
// text cannot be decoded are returned with empty text so page numbering
// stays aligned with the source document.
func (e *PDFExtractor) Extract(path string) ([]types.Page, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	total := r.NumPage()
	pages := make([]types.Page, 0, total)
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, types.Page{Number: i})
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			pages = append(pages, types.Page{Number: i})
			continue
		}
		pages = append(pages, types.Page{Number: i, Text: text})
	}

	return pages, nil
}
