package model

import (
	"github.com/shopspring/decimal"
)

// Regime identifies how GST is levied on an invoice
type Regime string

const (
	// RegimeSplit is intra-state supply: CGST and SGST at half the rate each
	RegimeSplit Regime = "SPLIT"
	// RegimeIntegrated is inter-state supply: IGST at the full rate
	RegimeIntegrated Regime = "INTEGRATED"
)

// Override is the manual regime selection. The zero value leaves the
// decision to the jurisdiction codes.
type Override string

const (
	OverrideAuto            Override = ""
	OverrideForceSplit      Override = "split"
	OverrideForceIntegrated Override = "integrated"
)

// Party represents the seller or the client on an invoice
type Party struct {
	Name    string `json:"name"`
	GSTIN   string `json:"gstin,omitempty"`
	PAN     string `json:"pan,omitempty"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
}

// RawRow is one user-entered line item before pricing. Quantity and Rate
// carry the original source text: an empty or non-numeric field means
// "not applicable", which is different from an explicit "0".
type RawRow struct {
	Seq         int    `json:"seq"`
	Particulars string `json:"particulars"`
	Description string `json:"description,omitempty"`
	SACCode     string `json:"sac_code,omitempty"`
	Quantity    string `json:"quantity,omitempty"`
	Rate        string `json:"rate,omitempty"`
}

// PricedRow is a line item after pricing. Quantity, Rate and Taxable use
// NullDecimal so that an absent value survives round-trips without
// collapsing into zero; Taxable is present only when both factors are.
type PricedRow struct {
	Seq         int                 `json:"seq"`
	Particulars string              `json:"particulars"`
	Description string              `json:"description,omitempty"`
	SACCode     string              `json:"sac_code,omitempty"`
	Quantity    decimal.NullDecimal `json:"quantity"`
	Rate        decimal.NullDecimal `json:"rate"`
	Taxable     decimal.NullDecimal `json:"taxable"`
}

// TaxBreakdown holds the resolved tax components for one invoice.
// Exactly one of the two component sets is non-zero: CGST+SGST under
// RegimeSplit, IGST under RegimeIntegrated. Subtotal plus all three
// components always equals Total.
type TaxBreakdown struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Regime   Regime          `json:"regime"`
	CGST     decimal.Decimal `json:"cgst"`
	SGST     decimal.Decimal `json:"sgst"`
	IGST     decimal.Decimal `json:"igst"`
	Total    decimal.Decimal `json:"total"`
}

// MetaLine is an optional free-text metadata row, e.g. training dates or
// process name. A line with an empty value is simply not shown.
type MetaLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Dataset is supplementary tabular data attached to an invoice, rendered
// as appendix pages after the signature block.
type Dataset struct {
	Title   string     `json:"title,omitempty"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Empty reports whether the dataset has nothing to show
func (d *Dataset) Empty() bool {
	return d == nil || len(d.Rows) == 0
}

// InvoiceRequest is the single input to document assembly. It is built by
// the caller (CLI, HTTP layer) from user input plus a registry lookup and
// is read-only during assembly.
type InvoiceRequest struct {
	Number   string          `json:"number"`
	Date     string          `json:"date"`
	Client   Party           `json:"client"`
	Items    []RawRow        `json:"items"`
	Advance  decimal.Decimal `json:"advance"`
	Override Override        `json:"override,omitempty"`
	Metadata []MetaLine      `json:"metadata,omitempty"`

	// Supporting is an optional appendix dataset
	Supporting *Dataset `json:"supporting,omitempty"`
}
