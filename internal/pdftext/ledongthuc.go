package pdftext

import (
	"fmt"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFExtractor reads page text with ledongthuc/pdf.
type PDFExtractor struct{}

// NewPDFExtractor returns the default PDF-backed extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Pages extracts plain text from every page of the PDF at path. Pages whose
// content cannot be decoded come back as empty strings so page indexes stay
// aligned with the document.
func (e *PDFExtractor) Pages(path string) ([]string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}
