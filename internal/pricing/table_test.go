package pricing_test

import (
	"testing"

	dec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiclex/crux-invoice/internal/model"
	"github.com/aiclex/crux-invoice/internal/pricing"
)

func TestPrice_BothPresent(t *testing.T) {
	rows := []model.RawRow{
		{Seq: 1, Particulars: "DEGREE", Quantity: "2", Rate: "101.005"},
	}

	priced, subtotal := pricing.Price(rows)
	require.Len(t, priced, 1)

	require.True(t, priced[0].Taxable.Valid)
	assert.True(t, priced[0].Taxable.Decimal.Equal(dec.RequireFromString("202.01")),
		"got %s, want 202.01", priced[0].Taxable.Decimal)
	assert.True(t, subtotal.Equal(dec.RequireFromString("202.01")))
}

func TestPrice_EitherAbsentMeansNoTaxable(t *testing.T) {
	tests := []struct {
		name string
		qty  string
		rate string
	}{
		{"both blank", "", ""},
		{"quantity blank", "", "100"},
		{"rate blank", "3", ""},
		{"quantity non-numeric", "abc", "100"},
		{"rate non-numeric", "3", "n/a"},
		{"negative rate", "3", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			priced, subtotal := pricing.Price([]model.RawRow{
				{Seq: 1, Particulars: "EXAM FEE", Quantity: tt.qty, Rate: tt.rate},
			})

			require.Len(t, priced, 1)
			assert.False(t, priced[0].Taxable.Valid, "taxable must be absent, not zero")
			assert.True(t, subtotal.IsZero())
		})
	}
}

func TestPrice_ZeroIsPresentNotAbsent(t *testing.T) {
	priced, subtotal := pricing.Price([]model.RawRow{
		{Seq: 1, Particulars: "HAND BOOKS", Quantity: "0", Rate: "104"},
	})

	require.Len(t, priced, 1)
	assert.True(t, priced[0].Quantity.Valid, "explicit 0 quantity is a present value")
	require.True(t, priced[0].Taxable.Valid, "0 x 104 is a present taxable amount")
	assert.True(t, priced[0].Taxable.Decimal.IsZero())
	assert.True(t, subtotal.IsZero())
}

func TestPrice_RowsNeverDroppedAndOrderKept(t *testing.T) {
	rows := []model.RawRow{
		{Seq: 1, Particulars: "DEGREE", Quantity: "1", Rate: "100"},
		{Seq: 2, Particulars: "NON DEGREE"},
		{Seq: 3, Particulars: "NO OF CANDIDATES", Quantity: "3", Rate: "102"},
	}

	priced, subtotal := pricing.Price(rows)
	require.Len(t, priced, 3)

	assert.Equal(t, 1, priced[0].Seq)
	assert.Equal(t, 2, priced[1].Seq)
	assert.Equal(t, 3, priced[2].Seq)
	assert.Equal(t, "NON DEGREE", priced[1].Particulars)
	assert.False(t, priced[1].Taxable.Valid)

	// 100 + 306; the blank row contributes nothing
	assert.True(t, subtotal.Equal(dec.RequireFromString("406.00")),
		"got %s, want 406.00", subtotal)
}

func TestPrice_DefaultCatalogAmounts(t *testing.T) {
	rows := []model.RawRow{
		{Seq: 1, Particulars: "DEGREE", SACCode: "999293", Quantity: "1", Rate: "100"},
		{Seq: 2, Particulars: "NON DEGREE", SACCode: "999293", Quantity: "2", Rate: "101"},
		{Seq: 3, Particulars: "NO OF CANDIDATES", SACCode: "999293", Quantity: "3", Rate: "102"},
		{Seq: 4, Particulars: "EXAM FEE", SACCode: "999293", Quantity: "4", Rate: "103"},
		{Seq: 5, Particulars: "HAND BOOKS", SACCode: "999293", Quantity: "5", Rate: "104"},
	}

	_, subtotal := pricing.Price(rows)
	// 100 + 202 + 306 + 412 + 520
	assert.True(t, subtotal.Equal(dec.RequireFromString("1540.00")),
		"got %s, want 1540.00", subtotal)
}

func TestPrice_Empty(t *testing.T) {
	priced, subtotal := pricing.Price(nil)
	assert.Empty(t, priced)
	assert.True(t, subtotal.IsZero())
}
