// Package assemble builds the ordered section list of a printable tax
// invoice from a single invoice request. The assembler is deterministic:
// the same request always yields a structurally identical document, and
// any invalid input fails the whole assembly instead of producing a
// document with blank mandatory fields.
package assemble

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/aiclex/crux-invoice/internal/config"
	"github.com/aiclex/crux-invoice/internal/model"
	"github.com/aiclex/crux-invoice/internal/money"
	"github.com/aiclex/crux-invoice/internal/pricing"
	"github.com/aiclex/crux-invoice/internal/tax"
	"github.com/aiclex/crux-invoice/internal/words"
)

// DocumentTitle is the fixed invoice heading line
const DocumentTitle = "TAX INVOICE"

// CurrencyPrefix precedes every printed money cell
const CurrencyPrefix = "₹ "

// MaxAppendixColumns bounds the width of one appendix column group so a
// wide supporting dataset still fits the page
const MaxAppendixColumns = 6

// DefaultAppendixTitle is used when the supporting dataset has no title
const DefaultAppendixTitle = "Supporting Documents / Excel data"

// ItemColumns are the item table headings, in print order
var ItemColumns = []string{
	"S.NO", "PARTICULARS", "DESCRIPTION of SAC CODE", "SAC CODE",
	"QTY", "RATE", "TAXABLE AMOUNT",
}

// Assembler turns invoice requests into documents for a fixed seller
type Assembler struct {
	company config.CompanyProfile
}

// New creates an assembler for the given seller profile
func New(company config.CompanyProfile) *Assembler {
	return &Assembler{company: company}
}

// Assemble prices the request's line items, resolves the tax regime and
// lays the invoice out as an ordered list of sections.
func (a *Assembler) Assemble(req model.InvoiceRequest) (*model.Document, error) {
	if strings.TrimSpace(req.Client.Name) == "" {
		return nil, model.NewAssemblyError("client.name", "no client selected", nil)
	}
	if strings.TrimSpace(req.Number) == "" {
		return nil, model.NewAssemblyError("number", "invoice number is required", nil)
	}
	if !money.IsNonNegative(req.Advance) {
		return nil, model.NewAssemblyError("advance", "advance received must not be negative", nil)
	}

	priced, subtotal := pricing.Price(req.Items)
	breakdown := tax.Resolve(subtotal, a.company.StateCode(), tax.StateCode(req.Client.GSTIN), req.Override)

	// Deliberately unclamped: an advance larger than the total shows up
	// as a negative payable amount for the caller to deal with.
	payable := money.Sub(breakdown.Total, req.Advance)

	doc := &model.Document{
		Number:  req.Number,
		Date:    req.Date,
		Items:   priced,
		Tax:     breakdown,
		Payable: payable,
	}

	doc.Sections = append(doc.Sections,
		a.titleSection(),
		a.contactSection(),
		a.partiesSection(req),
		a.itemsSection(req, priced),
		totalsSection(breakdown, req.Advance, payable),
		wordsSection(payable),
		a.signatureSection(),
	)
	doc.Sections = append(doc.Sections, appendixSections(req.Supporting)...)

	return doc, nil
}

func (a *Assembler) titleSection() model.Section {
	return model.Section{
		Kind:  model.SectionTitle,
		Lines: []string{a.company.Heading(), DocumentTitle},
	}
}

func (a *Assembler) contactSection() model.Section {
	var lines []string
	if a.company.Address != "" {
		lines = append(lines, a.company.Address)
	}
	if a.company.Phone != "" {
		lines = append(lines, "Phone: "+a.company.Phone)
	}
	if a.company.Email != "" {
		lines = append(lines, "email: "+a.company.Email)
	}
	return model.Section{Kind: model.SectionContact, Lines: lines}
}

func (a *Assembler) partiesSection(req model.InvoiceRequest) model.Section {
	left := []model.Field{
		{Label: "To:", Value: req.Client.Name},
	}
	if req.Client.Address != "" {
		left = append(left, model.Field{Value: req.Client.Address})
	}
	left = append(left, model.Field{Label: "GSTIN NO:", Value: strings.ToUpper(req.Client.GSTIN)})

	right := []model.Field{
		{Label: "INVOICE NO.:", Value: req.Number},
		{Label: "DATE:", Value: req.Date},
		{Value: "Vendor Electronic Remittance"},
		{Label: "Bank Name:", Value: a.company.Bank.Name},
		{Label: "A/C No :", Value: a.company.Bank.Account},
		{Label: "IFS Code :", Value: a.company.Bank.IFSC},
		{Label: "Swift Code :", Value: a.company.Bank.Swift},
		{Label: "MICR No :", Value: a.company.Bank.MICR},
		{Label: "Branch :", Value: a.company.Bank.Branch},
	}

	return model.Section{Kind: model.SectionParties, Left: left, Right: right}
}

func (a *Assembler) itemsSection(req model.InvoiceRequest, priced []model.PricedRow) model.Section {
	rows := lo.Map(priced, func(row model.PricedRow, _ int) []string {
		return []string{
			strconv.Itoa(row.Seq),
			row.Particulars,
			row.Description,
			row.SACCode,
			quantityCell(row.Quantity),
			moneyCell(row.Rate),
			moneyCell(row.Taxable),
		}
	})

	// Conditional rows share the item grid: metadata first, then the
	// advance, each with its value in the description column.
	for _, meta := range req.Metadata {
		if strings.TrimSpace(meta.Value) == "" {
			continue
		}
		rows = append(rows, []string{"", meta.Label, meta.Value, "", "", "", ""})
	}
	if money.IsPositive(req.Advance) {
		rows = append(rows, []string{
			"", "ADVANCE RECEIVED", CurrencyPrefix + money.Format(req.Advance), "", "", "", "",
		})
	}

	return model.Section{
		Kind:  model.SectionItems,
		Table: &model.Table{Columns: ItemColumns, Rows: rows},
	}
}

func totalsSection(b model.TaxBreakdown, advance, payable decimal.Decimal) model.Section {
	totals := []model.TotalLine{
		{Label: "Sub Total", Amount: CurrencyPrefix + money.Format(b.Subtotal)},
	}

	if b.Regime == model.RegimeSplit {
		totals = append(totals,
			model.TotalLine{
				Label:  fmt.Sprintf("CGST (%d%%)", tax.SplitHalfRate),
				Amount: CurrencyPrefix + money.Format(b.CGST),
			},
			model.TotalLine{
				Label:  fmt.Sprintf("SGST (%d%%)", tax.SplitHalfRate),
				Amount: CurrencyPrefix + money.Format(b.SGST),
			},
		)
	} else {
		totals = append(totals, model.TotalLine{
			Label:  fmt.Sprintf("IGST (%d%%)", tax.IntegratedRate),
			Amount: CurrencyPrefix + money.Format(b.IGST),
		})
	}

	totals = append(totals, model.TotalLine{
		Label:  "TOTAL",
		Amount: CurrencyPrefix + money.Format(b.Total),
		Bold:   true,
	})

	if money.IsPositive(advance) {
		totals = append(totals, model.TotalLine{
			Label:  "Less: Advance Received",
			Amount: CurrencyPrefix + money.Format(advance),
		})
	}

	totals = append(totals, model.TotalLine{
		Label:  "NET PAYABLE",
		Amount: CurrencyPrefix + money.Format(payable),
		Bold:   true,
	})

	return model.Section{Kind: model.SectionTotals, Totals: totals}
}

func wordsSection(payable decimal.Decimal) model.Section {
	return model.Section{
		Kind:  model.SectionWords,
		Lines: []string{"In Words : ( " + words.Rupees(payable) + " )"},
	}
}

func (a *Assembler) signatureSection() model.Section {
	lines := []string{
		"For " + a.company.Name,
		"Authorised Signatory",
	}

	footer := strings.Join(lo.Compact([]string{
		a.company.Address,
		phoneFooter(a.company.Phone),
		emailFooter(a.company.Email),
	}), " | ")
	if footer != "" {
		lines = append(lines, footer)
	}

	return model.Section{Kind: model.SectionSignature, Lines: lines}
}

func phoneFooter(phone string) string {
	if phone == "" {
		return ""
	}
	return "Phone: " + phone
}

func emailFooter(email string) string {
	if email == "" {
		return ""
	}
	return "email: " + email
}

// appendixSections splits a supporting dataset into column groups so
// wide sheets print as successive page-width tables.
func appendixSections(ds *model.Dataset) []model.Section {
	if ds.Empty() {
		return nil
	}

	title := ds.Title
	if title == "" {
		title = DefaultAppendixTitle
	}

	indexes := lo.Range(len(ds.Columns))
	groups := lo.Chunk(indexes, MaxAppendixColumns)

	sections := make([]model.Section, 0, len(groups))
	for i, group := range groups {
		cols := make([]string, 0, len(group))
		for _, idx := range group {
			cols = append(cols, ds.Columns[idx])
		}

		rows := make([][]string, 0, len(ds.Rows))
		for _, src := range ds.Rows {
			row := make([]string, 0, len(group))
			for _, idx := range group {
				if idx < len(src) {
					row = append(row, src[idx])
				} else {
					row = append(row, "")
				}
			}
			rows = append(rows, row)
		}

		sectionTitle := title
		if len(groups) > 1 {
			sectionTitle = fmt.Sprintf("%s (%d/%d)", title, i+1, len(groups))
		}

		sections = append(sections, model.Section{
			Kind:  model.SectionAppendix,
			Title: sectionTitle,
			Table: &model.Table{Columns: cols, Rows: rows},
		})
	}

	return sections
}

// quantityCell renders a quantity for the item grid. Absent and zero
// both print blank; the distinction lives in the data, not the cell.
func quantityCell(v decimal.NullDecimal) string {
	if !v.Valid || v.Decimal.IsZero() {
		return ""
	}
	return v.Decimal.String()
}

// moneyCell renders a rate or taxable amount, blank for absent or zero
func moneyCell(v decimal.NullDecimal) string {
	if !v.Valid || v.Decimal.IsZero() {
		return ""
	}
	return CurrencyPrefix + money.Format(v.Decimal)
}
