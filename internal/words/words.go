// Package words renders invoice amounts as Indian-English text for the
// "In Words" line, e.g. 1817.20 -> "One Thousand Eight Hundred Seventeen
// Rupees and Twenty Paise Only".
//
// Integer grouping follows the Indian numbering system: hundred, thousand,
// lakh (1,00,000) and crore (1,00,00,000), with amounts of a hundred crore
// or more expressed as crores of crores.
package words

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

const (
	thousand = 1_000
	lakh     = 100_000
	crore    = 10_000_000
)

// Rupees converts a money amount into its words line. The rupee clause and
// the paise clause are each emitted only when non-zero and joined with
// "and"; a fully zero amount reads "Zero Rupees Only". Negative amounts are
// rendered as the words of their absolute value prefixed with "Minus".
func Rupees(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	amount = amount.Abs().Round(2)

	rupees := amount.IntPart()
	paise := amount.Sub(decimal.NewFromInt(rupees)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	var parts []string
	if rupees > 0 {
		parts = append(parts, toIndianWords(rupees)+" Rupees")
	}
	if paise > 0 {
		parts = append(parts, toIndianWords(paise)+" Paise")
	}
	if len(parts) == 0 {
		parts = []string{"Zero Rupees"}
	}

	out := strings.Join(parts, " and ") + " Only"
	if neg {
		out = "Minus " + out
	}
	return out
}

// FromString converts amount text into its words line. Non-numeric text
// yields an empty string rather than an error; a row still being edited is
// a normal state, not a failure.
func FromString(s string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return Rupees(d)
}

func toIndianWords(n int64) string {
	if n == 0 {
		return ""
	}

	var parts []string

	if n >= crore {
		parts = append(parts, toIndianWords(n/crore)+" Crore")
		n %= crore
	}
	if n >= lakh {
		parts = append(parts, under100(n/lakh)+" Lakh")
		n %= lakh
	}
	if n >= thousand {
		parts = append(parts, under100(n/thousand)+" Thousand")
		n %= thousand
	}
	if n >= 100 {
		parts = append(parts, ones[n/100]+" Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, under100(n))
	}

	return strings.Join(parts, " ")
}

func under100(n int64) string {
	if n < 20 {
		return ones[n]
	}
	result := tens[n/10]
	if n%10 != 0 {
		result += " " + ones[n%10]
	}
	return result
}
