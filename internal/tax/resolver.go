// Package tax decides between intra-state (CGST+SGST) and inter-state
// (IGST) GST treatment and computes the component amounts.
package tax

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aiclex/crux-invoice/internal/model"
	"github.com/aiclex/crux-invoice/internal/money"
)

// GST rates in percent. The two split halves must sum to the integrated
// rate: an invoice carries the same tax either way, only the components
// differ.
const (
	SplitHalfRate  = 9
	IntegratedRate = 18
)

// GSTINLength is the length of a valid GST registration number
const GSTINLength = 15

// StateCode extracts the 2-character jurisdiction code from a GSTIN.
// A GSTIN that is absent, the wrong length, or does not start with two
// digits yields an empty code, which callers treat as "jurisdiction
// unknown" rather than as an error.
func StateCode(gstin string) string {
	gstin = strings.TrimSpace(gstin)
	if len(gstin) != GSTINLength {
		return ""
	}
	if gstin[0] < '0' || gstin[0] > '9' || gstin[1] < '0' || gstin[1] > '9' {
		return ""
	}
	return gstin[:2]
}

// Resolve computes the tax breakdown for a subtotal.
//
// With no override, IGST applies only when both jurisdiction codes are
// known and differ. An unknown client jurisdiction therefore falls back
// to the split regime, the same treatment as a same-state client; that
// is deliberate policy, not an error. A manual override always wins.
func Resolve(subtotal decimal.Decimal, issuerCode, clientCode string, override model.Override) model.TaxBreakdown {
	autoIntegrated := issuerCode != "" && clientCode != "" && issuerCode != clientCode

	integrated := autoIntegrated
	switch override {
	case model.OverrideForceIntegrated:
		integrated = true
	case model.OverrideForceSplit:
		integrated = false
	}

	b := model.TaxBreakdown{
		Subtotal: subtotal.Round(2),
		CGST:     money.Zero,
		SGST:     money.Zero,
		IGST:     money.Zero,
	}

	if integrated {
		b.Regime = model.RegimeIntegrated
		b.IGST = money.Percent(subtotal, IntegratedRate)
	} else {
		b.Regime = model.RegimeSplit
		b.CGST = money.Percent(subtotal, SplitHalfRate)
		b.SGST = money.Percent(subtotal, SplitHalfRate)
	}

	b.Total = money.Sum([]decimal.Decimal{b.Subtotal, b.CGST, b.SGST, b.IGST})
	return b
}
