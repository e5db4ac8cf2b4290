// Package gstinvoice provides a public API for assembling and rendering
// GST tax invoices.
//
// Example usage:
//
//	engine := gstinvoice.NewEngine(nil)
//	doc, err := engine.Assemble(gstinvoice.InvoiceRequest{
//	    Number: "INV-2026-001",
//	    Date:   "18-01-2026",
//	    Client: gstinvoice.Party{Name: "ACME SKILLING PVT LTD", GSTIN: "27AABCU9603R1ZM"},
//	    Items:  gstinvoice.DefaultRows(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pdf, err := engine.Render(doc)
package gstinvoice

import (
	"github.com/aiclex/crux-invoice/internal/model"
	"github.com/aiclex/crux-invoice/internal/registry"
)

// Re-export core types for public API
type (
	InvoiceRequest = model.InvoiceRequest
	Party          = model.Party
	RawRow         = model.RawRow
	PricedRow      = model.PricedRow
	MetaLine       = model.MetaLine
	Dataset        = model.Dataset
	Document       = model.Document
	Section        = model.Section
	SectionKind    = model.SectionKind
	TaxBreakdown   = model.TaxBreakdown
	Regime         = model.Regime
	Override       = model.Override
)

// Re-export section kinds
const (
	SectionTitle     = model.SectionTitle
	SectionContact   = model.SectionContact
	SectionParties   = model.SectionParties
	SectionItems     = model.SectionItems
	SectionTotals    = model.SectionTotals
	SectionWords     = model.SectionWords
	SectionSignature = model.SectionSignature
	SectionAppendix  = model.SectionAppendix
)

// Re-export regimes and overrides
const (
	RegimeSplit      = model.RegimeSplit
	RegimeIntegrated = model.RegimeIntegrated

	OverrideAuto            = model.OverrideAuto
	OverrideForceSplit      = model.OverrideForceSplit
	OverrideForceIntegrated = model.OverrideForceIntegrated
)

// Re-export error types
type (
	AssemblyError   = model.AssemblyError
	ValidationError = model.ValidationError
)

// Re-export the client directory
type (
	Client    = registry.Client
	Directory = registry.Directory
)

// DefaultRows returns the standard catalog line items
func DefaultRows() []RawRow {
	return registry.DefaultRows()
}
