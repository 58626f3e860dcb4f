package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pdfHeaderX  = 50.0
	pdfContentX = 200.0
	pdfTopY     = 700.0
	pdfLineStep = 50.0
)

// pdfCanvas is the drawing surface behind the adapter. Coordinates are in
// page units with the origin at the bottom-left corner.
type pdfCanvas interface {
	Text(x, y float64, s string)
	Output() ([]byte, error)
}

// PDFAdapter draws the header fields as a label column at x=50 and the
// content fields as a value column at x=200. Both columns start at y=700 and
// step down 50 units per field, producing a two-column layout.
type PDFAdapter struct {
	canvas   pdfCanvas
	headerY  float64
	contentY float64
}

func NewPDFAdapter() *PDFAdapter {
	return &PDFAdapter{}
}

func (a *PDFAdapter) Open() {
	if a.canvas == nil {
		a.canvas = newFpdfCanvas()
	}
	a.headerY = pdfTopY
	a.contentY = pdfTopY
}

func (a *PDFAdapter) WriteHeader(fields []string) error {
	for _, f := range fields {
		a.canvas.Text(pdfHeaderX, a.headerY, f)
		a.headerY -= pdfLineStep
	}
	return nil
}

func (a *PDFAdapter) WriteContent(fields []string) error {
	for _, f := range fields {
		a.canvas.Text(pdfContentX, a.contentY, f)
		a.contentY -= pdfLineStep
	}
	return nil
}

// Finalize closes the page and saves the document. Skipping this would
// yield a corrupt or empty file.
func (a *PDFAdapter) Finalize() (File, error) {
	raw, err := a.canvas.Output()
	if err != nil {
		return File{}, fmt.Errorf("failed to save pdf document: %w", err)
	}
	return File{
		Bytes:    raw,
		MIMEType: "application/pdf",
		Filename: "result." + FormatPDF,
	}, nil
}

// fpdfCanvas adapts fpdf's top-left origin to the bottom-left coordinates
// the adapter works in.
type fpdfCanvas struct {
	pdf        *fpdf.Fpdf
	pageHeight float64
}

func newFpdfCanvas() *fpdfCanvas {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)
	_, pageHeight := pdf.GetPageSize()
	return &fpdfCanvas{pdf: pdf, pageHeight: pageHeight}
}

func (c *fpdfCanvas) Text(x, y float64, s string) {
	c.pdf.Text(x, c.pageHeight-y, s)
}

func (c *fpdfCanvas) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
