package tax_test

import (
	"testing"

	dec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/aiclex/crux-invoice/internal/model"
	"github.com/aiclex/crux-invoice/internal/tax"
)

func TestStateCode(t *testing.T) {
	tests := []struct {
		name     string
		gstin    string
		expected string
	}{
		{"valid Telangana GSTIN", "36AABCC4754D1ZX", "36"},
		{"valid Maharashtra GSTIN", "27AABCU9603R1ZM", "27"},
		{"padded", "  36AABCC4754D1ZX  ", "36"},
		{"empty", "", ""},
		{"too short", "36AABCC", ""},
		{"too long", "36AABCC4754D1ZX9", ""},
		{"non-digit prefix", "XXAABCC4754D1ZX", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tax.StateCode(tt.gstin))
		})
	}
}

func assertAmounts(t *testing.T, b model.TaxBreakdown, cgst, sgst, igst, total string) {
	t.Helper()
	assert.True(t, b.CGST.Equal(dec.RequireFromString(cgst)), "CGST: got %s, want %s", b.CGST, cgst)
	assert.True(t, b.SGST.Equal(dec.RequireFromString(sgst)), "SGST: got %s, want %s", b.SGST, sgst)
	assert.True(t, b.IGST.Equal(dec.RequireFromString(igst)), "IGST: got %s, want %s", b.IGST, igst)
	assert.True(t, b.Total.Equal(dec.RequireFromString(total)), "Total: got %s, want %s", b.Total, total)
}

func TestResolve_InterState(t *testing.T) {
	b := tax.Resolve(dec.NewFromInt(1000), "36", "27", model.OverrideAuto)

	assert.Equal(t, model.RegimeIntegrated, b.Regime)
	assertAmounts(t, b, "0", "0", "180.00", "1180.00")
}

func TestResolve_IntraState(t *testing.T) {
	b := tax.Resolve(dec.NewFromInt(1000), "36", "36", model.OverrideAuto)

	assert.Equal(t, model.RegimeSplit, b.Regime)
	assertAmounts(t, b, "90.00", "90.00", "0", "1180.00")
}

func TestResolve_OverrideWins(t *testing.T) {
	// Differing jurisdictions, but split forced manually
	b := tax.Resolve(dec.NewFromInt(1000), "36", "27", model.OverrideForceSplit)
	assert.Equal(t, model.RegimeSplit, b.Regime)
	assertAmounts(t, b, "90.00", "90.00", "0", "1180.00")

	// Same jurisdiction, integrated forced manually
	b = tax.Resolve(dec.NewFromInt(1000), "36", "36", model.OverrideForceIntegrated)
	assert.Equal(t, model.RegimeIntegrated, b.Regime)
	assertAmounts(t, b, "0", "0", "180.00", "1180.00")
}

func TestResolve_UnknownClientDefaultsToSplit(t *testing.T) {
	b := tax.Resolve(dec.NewFromInt(1000), "36", "", model.OverrideAuto)

	assert.Equal(t, model.RegimeSplit, b.Regime)
	assertAmounts(t, b, "90.00", "90.00", "0", "1180.00")
}

func TestResolve_UnknownIssuerDefaultsToSplit(t *testing.T) {
	b := tax.Resolve(dec.NewFromInt(1000), "", "27", model.OverrideAuto)
	assert.Equal(t, model.RegimeSplit, b.Regime)
}

func TestResolve_SplitHalvesEqualIntegratedRate(t *testing.T) {
	subtotal := dec.RequireFromString("1817.20")

	split := tax.Resolve(subtotal, "36", "36", model.OverrideAuto)
	integrated := tax.Resolve(subtotal, "36", "27", model.OverrideAuto)

	splitTax := split.CGST.Add(split.SGST)
	assert.True(t, splitTax.Equal(integrated.IGST),
		"split halves %s should equal integrated %s", splitTax, integrated.IGST)
	assert.True(t, split.Total.Equal(integrated.Total))
}

func TestResolve_InvariantHolds(t *testing.T) {
	subtotals := []string{"0", "0.01", "999.99", "1000", "123456.78"}

	for _, s := range subtotals {
		subtotal := dec.RequireFromString(s)
		for _, b := range []model.TaxBreakdown{
			tax.Resolve(subtotal, "36", "27", model.OverrideAuto),
			tax.Resolve(subtotal, "36", "36", model.OverrideAuto),
		} {
			sum := b.Subtotal.Add(b.CGST).Add(b.SGST).Add(b.IGST)
			assert.True(t, sum.Equal(b.Total),
				"subtotal=%s regime=%s: components sum to %s, total is %s",
				s, b.Regime, sum, b.Total)
		}
	}
}

func TestResolve_ZeroSubtotal(t *testing.T) {
	b := tax.Resolve(dec.Zero, "36", "27", model.OverrideAuto)
	assert.Equal(t, model.RegimeIntegrated, b.Regime)
	assert.True(t, b.Total.IsZero())
}
