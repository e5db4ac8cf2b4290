package model

import (
	"github.com/shopspring/decimal"
)

// SectionKind identifies a document section
type SectionKind string

const (
	SectionTitle     SectionKind = "title"
	SectionContact   SectionKind = "contact"
	SectionParties   SectionKind = "parties"
	SectionItems     SectionKind = "items"
	SectionTotals    SectionKind = "totals"
	SectionWords     SectionKind = "words"
	SectionSignature SectionKind = "signature"
	SectionAppendix  SectionKind = "appendix"
)

// Field is a labelled value inside a parties block
type Field struct {
	Label string `json:"label,omitempty"`
	Value string `json:"value"`
}

// Table is a rendered grid: column headings plus text rows. Cells hold
// display text only; blank quantity/rate/taxable cells are already blank
// here, by the display rule in the assembler.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// TotalLine is one row of the totals block
type TotalLine struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
	Bold   bool   `json:"bold,omitempty"`
}

// Section is one ordered part of the assembled document. Which fields are
// populated depends on Kind: Lines for title/contact/words/signature,
// Left/Right for the parties block, Table for item and appendix grids,
// Totals for the totals block.
type Section struct {
	Kind   SectionKind `json:"kind"`
	Title  string      `json:"title,omitempty"`
	Lines  []string    `json:"lines,omitempty"`
	Left   []Field     `json:"left,omitempty"`
	Right  []Field     `json:"right,omitempty"`
	Table  *Table      `json:"table,omitempty"`
	Totals []TotalLine `json:"totals,omitempty"`
}

// Document is the assembled invoice, ready for a rendering back end.
// Sections appear in print order. The numeric results are carried
// alongside so callers can persist them without re-parsing cell text.
type Document struct {
	Number   string       `json:"number"`
	Date     string       `json:"date"`
	Sections []Section    `json:"sections"`
	Items    []PricedRow  `json:"items"`
	Tax      TaxBreakdown `json:"tax"`

	// Payable is Total minus the advance received. It is intentionally
	// not clamped at zero; whether an advance may exceed the total is a
	// caller-level decision.
	Payable decimal.Decimal `json:"payable"`
}

// Section returns the first section of the given kind, or nil
func (d *Document) Section(kind SectionKind) *Section {
	for i := range d.Sections {
		if d.Sections[i].Kind == kind {
			return &d.Sections[i]
		}
	}
	return nil
}

// Appendices returns all appendix sections in order
func (d *Document) Appendices() []*Section {
	var out []*Section
	for i := range d.Sections {
		if d.Sections[i].Kind == SectionAppendix {
			out = append(out, &d.Sections[i])
		}
	}
	return out
}
