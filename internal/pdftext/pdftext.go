package pdftext

// Extractor supplies the text of a PDF, one string per page in page order.
// Extraction itself is an external concern; the answering pipeline only
// depends on this contract.
type Extractor interface {
	Pages(path string) ([]string, error)
}
