// Package pricing normalizes user-entered line item rows into priced rows.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/aiclex/crux-invoice/internal/model"
	"github.com/aiclex/crux-invoice/internal/money"
)

// Price converts raw rows into priced rows and computes the subtotal.
//
// Quantity and rate are parsed independently; each is present only when
// its source text is non-empty and parses to a non-negative number. The
// taxable amount exists only when both factors are present. Rows are
// never dropped and keep their caller-assigned order and sequence
// numbers; a row without a taxable amount simply contributes nothing to
// the subtotal, which is not the same as contributing zero.
func Price(rows []model.RawRow) ([]model.PricedRow, decimal.Decimal) {
	priced := make([]model.PricedRow, 0, len(rows))
	subtotal := money.Zero

	for _, raw := range rows {
		row := model.PricedRow{
			Seq:         raw.Seq,
			Particulars: raw.Particulars,
			Description: raw.Description,
			SACCode:     raw.SACCode,
			Quantity:    money.ParseOptional(raw.Quantity),
			Rate:        money.ParseOptional(raw.Rate),
			Taxable:     money.Absent(),
		}

		if row.Quantity.Valid && row.Rate.Valid {
			row.Taxable = money.Present(money.Mul(row.Quantity.Decimal, row.Rate.Decimal))
			subtotal = money.Add(subtotal, row.Taxable.Decimal)
		}

		priced = append(priced, row)
	}

	return priced, subtotal
}
