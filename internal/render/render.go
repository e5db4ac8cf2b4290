// Package render turns an assembled document into an A4 PDF. It walks
// the section list in order and draws each section kind with a fixed
// layout, so the section order decided at assembly time is exactly the
// print order.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/aiclex/crux-invoice/internal/model"
)

const (
	pageMargin  = 15.0
	contentW    = 180.0 // A4 width minus both margins
	rowHeight   = 7.0
	headerShade = 235
)

// itemWidths are the item grid column widths in millimetres, summing to
// the content width.
var itemWidths = []float64{12, 30, 48, 20, 14, 26, 30}

// Renderer draws documents as PDFs
type Renderer struct{}

// New creates a renderer
func New() *Renderer {
	return &Renderer{}
}

// Render draws the document and returns the PDF bytes
func (r *Renderer) Render(doc *model.Document) ([]byte, error) {
	if doc == nil {
		return nil, model.NewAssemblyError("document", "nothing to render", nil)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	for _, section := range doc.Sections {
		switch section.Kind {
		case model.SectionTitle:
			drawTitle(pdf, section)
		case model.SectionContact:
			drawContact(pdf, section)
		case model.SectionParties:
			drawParties(pdf, section)
		case model.SectionItems:
			drawGrid(pdf, section.Table, itemWidths, 4)
		case model.SectionTotals:
			drawTotals(pdf, section)
		case model.SectionWords:
			drawWords(pdf, section)
		case model.SectionSignature:
			drawSignature(pdf, section)
		case model.SectionAppendix:
			drawAppendix(pdf, section)
		default:
			return nil, model.NewAssemblyError("section",
				fmt.Sprintf("unknown section kind %q", section.Kind), nil)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, model.NewAssemblyError("pdf", "pdf generation failed", err)
	}
	return buf.Bytes(), nil
}

// printable rewrites text the core fonts cannot encode. The rupee sign
// becomes its Latin abbreviation.
func printable(s string) string {
	return strings.ReplaceAll(s, "₹", "Rs.")
}

func drawTitle(pdf *gofpdf.Fpdf, section model.Section) {
	for i, line := range section.Lines {
		size := 16.0
		if i > 0 {
			size = 13
		}
		pdf.SetFont("Arial", "B", size)
		pdf.CellFormat(contentW, 8, printable(line), "", 1, "C", false, 0, "")
	}
	pdf.Ln(1)
}

func drawContact(pdf *gofpdf.Fpdf, section model.Section) {
	pdf.SetFont("Arial", "", 9)
	for _, line := range section.Lines {
		pdf.CellFormat(contentW, 5, printable(line), "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)
}

func drawParties(pdf *gofpdf.Fpdf, section model.Section) {
	const colW = contentW / 2
	top := pdf.GetY()

	pdf.SetFont("Arial", "", 9)
	for _, f := range section.Left {
		pdf.SetX(pageMargin)
		drawField(pdf, f, colW)
	}
	leftBottom := pdf.GetY()

	pdf.SetY(top)
	for _, f := range section.Right {
		pdf.SetX(pageMargin + colW)
		drawField(pdf, f, colW)
	}

	if pdf.GetY() < leftBottom {
		pdf.SetY(leftBottom)
	}
	pdf.Ln(3)
}

func drawField(pdf *gofpdf.Fpdf, f model.Field, width float64) {
	text := f.Value
	if f.Label != "" {
		text = f.Label + " " + f.Value
		pdf.SetFont("Arial", "B", 9)
	} else {
		pdf.SetFont("Arial", "", 9)
	}
	pdf.MultiCell(width, 5, printable(text), "", "L", false)
}

// drawGrid draws a bordered table. Columns from rightAlignFrom onward
// are right-aligned, for numeric cells.
func drawGrid(pdf *gofpdf.Fpdf, table *model.Table, widths []float64, rightAlignFrom int) {
	if table == nil {
		return
	}
	if len(widths) != len(table.Columns) {
		widths = equalWidths(len(table.Columns))
	}

	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(headerShade, headerShade, headerShade)
	for i, col := range table.Columns {
		pdf.CellFormat(widths[i], rowHeight, printable(col), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, row := range table.Rows {
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			align := "L"
			if i >= rightAlignFrom {
				align = "R"
			}
			pdf.CellFormat(widths[i], rowHeight, printable(cell), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(3)
}

func drawTotals(pdf *gofpdf.Fpdf, section model.Section) {
	const labelW, amountW = 60.0, 40.0

	for _, line := range section.Totals {
		style := ""
		if line.Bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 9)
		pdf.SetX(pageMargin + contentW - labelW - amountW)
		pdf.CellFormat(labelW, 6, printable(line.Label), "", 0, "R", false, 0, "")
		pdf.CellFormat(amountW, 6, printable(line.Amount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(2)
}

func drawWords(pdf *gofpdf.Fpdf, section model.Section) {
	pdf.SetFont("Arial", "B", 9)
	for _, line := range section.Lines {
		pdf.MultiCell(contentW, 6, printable(line), "", "L", false)
	}
	pdf.Ln(4)
}

func drawSignature(pdf *gofpdf.Fpdf, section model.Section) {
	// First two lines are the signing block; anything after is footer text
	for i, line := range section.Lines {
		switch {
		case i == 0:
			pdf.Ln(6)
			pdf.SetFont("Arial", "B", 10)
			pdf.CellFormat(contentW, 6, printable(line), "", 1, "R", false, 0, "")
		case i == 1:
			pdf.Ln(10)
			pdf.SetFont("Arial", "", 9)
			pdf.CellFormat(contentW, 6, printable(line), "", 1, "R", false, 0, "")
		default:
			pdf.Ln(4)
			pdf.SetFont("Arial", "I", 7)
			pdf.MultiCell(contentW, 4, printable(line), "T", "C", false)
		}
	}
}

func drawAppendix(pdf *gofpdf.Fpdf, section model.Section) {
	pdf.AddPage()
	if section.Title != "" {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(contentW, 8, printable(section.Title), "", 1, "L", false, 0, "")
		pdf.Ln(1)
	}
	if section.Table != nil {
		cols := len(section.Table.Columns)
		drawGrid(pdf, section.Table, equalWidths(cols), cols)
	}
}

func equalWidths(n int) []float64 {
	if n == 0 {
		return nil
	}
	widths := make([]float64, n)
	for i := range widths {
		widths[i] = contentW / float64(n)
	}
	return widths
}
