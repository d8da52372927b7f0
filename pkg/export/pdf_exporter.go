package export

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Section is one titled table inside a document.
type Section struct {
	Heading string
	Headers []string
	Rows    [][]string
}

// Document describes a transcript-style PDF: a title, a block of label/value
// pairs, and a list of tabular sections.
type Document struct {
	Title  string
	Fields [][2]string
	Tables []Section
}

// PDFExporter renders documents into PDF. When FontPath points at a readable
// TTF it is registered as a UTF-8 font; otherwise the exporter falls back to
// the core Arial font and transliterates Cyrillic text to Latin, since the
// core fonts cannot encode it.
type PDFExporter struct {
	fontPath string
	fontName string
}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter(fontPath, fontName string) *PDFExporter {
	if fontName == "" {
		fontName = "DejaVuSans"
	}
	return &PDFExporter{fontPath: fontPath, fontName: fontName}
}

// Render creates the PDF document.
func (e *PDFExporter) Render(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)

	font := "Arial"
	sanitize := Transliterate
	if e.fontPath != "" {
		if _, err := os.Stat(e.fontPath); err == nil {
			pdf.AddUTF8Font(e.fontName, "", e.fontPath)
			pdf.AddUTF8Font(e.fontName, "B", e.fontPath)
			font = e.fontName
			sanitize = func(s string) string { return s }
		}
	}

	pdf.AddPage()

	if doc.Title != "" {
		pdf.SetFont(font, "B", 14)
		pdf.CellFormat(0, 10, strings.ToUpper(sanitize(doc.Title)), "", 1, "C", false, 0, "")
		pdf.Ln(3)
	}

	pdf.SetFont(font, "", 10)
	for _, field := range doc.Fields {
		pdf.SetFont(font, "B", 10)
		pdf.CellFormat(50, 7, sanitize(field[0]), "", 0, "", false, 0, "")
		pdf.SetFont(font, "", 10)
		pdf.CellFormat(0, 7, sanitize(field[1]), "", 1, "", false, 0, "")
	}

	for _, table := range doc.Tables {
		if len(table.Headers) == 0 {
			continue
		}
		pdf.Ln(5)
		if table.Heading != "" {
			pdf.SetFont(font, "B", 12)
			pdf.CellFormat(0, 8, sanitize(table.Heading), "", 1, "", false, 0, "")
		}

		colWidth := 190.0 / float64(len(table.Headers))
		pdf.SetFont(font, "B", 9)
		for _, header := range table.Headers {
			pdf.CellFormat(colWidth, 8, sanitize(header), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont(font, "", 9)
		for _, row := range table.Rows {
			for i := 0; i < len(table.Headers); i++ {
				value := ""
				if i < len(row) {
					value = row[i]
				}
				pdf.CellFormat(colWidth, 7, sanitize(value), "1", 0, "", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
