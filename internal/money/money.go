// Package money provides fixed-point rupee arithmetic for invoice amounts.
//
// Every arithmetic boundary (multiply, add, subtract, percent, sum)
// rounds its result to two fractional digits half away from zero, which
// is half-up for the non-negative amounts being priced; only a negative
// result of Sub can round away from zero downward. Parsed input keeps
// its full precision so that rounding happens once, at the arithmetic
// boundary, never before it.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// FromString parses a money value from string
func FromString(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, err
	}
	return d.Round(2), nil
}

// Mul multiplies quantity by rate, rounds half-up to paise
func Mul(qty, rate decimal.Decimal) decimal.Decimal {
	return qty.Mul(rate).Round(2)
}

// Add adds two money values, rounds to paise
func Add(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b).Round(2)
}

// Sub subtracts b from a, rounds to paise. The result may be negative;
// callers decide whether a negative amount is meaningful for them.
func Sub(a, b decimal.Decimal) decimal.Decimal {
	return a.Sub(b).Round(2)
}

// Percent computes amount * (percent/100), rounded half-up to paise
func Percent(amount decimal.Decimal, percent int64) decimal.Decimal {
	if percent == 0 {
		return Zero
	}
	rate := decimal.NewFromInt(percent)
	hundred := decimal.NewFromInt(100)
	return amount.Mul(rate).Div(hundred).Round(2)
}

// Sum sums a slice of money values
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result.Round(2)
}

// IsPositive returns true if the value is greater than zero
func IsPositive(d decimal.Decimal) bool {
	return d.GreaterThan(Zero)
}

// IsNonNegative returns true if the value is >= zero
func IsNonNegative(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(Zero)
}

// Present wraps a value as a present optional amount. Zero is a valid
// present value, distinct from Absent. The value is kept exact: a parsed
// rate like 101.005 must reach the multiply boundary unrounded.
func Present(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// Absent returns the absent optional amount
func Absent() decimal.NullDecimal {
	return decimal.NullDecimal{}
}

// ParseOptional parses optional user-entered text into an optional amount.
// The field is present only if the text is non-empty and parses to a
// non-negative number; anything else is absent, never an error.
func ParseOptional(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return Absent()
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return Absent()
	}
	return Present(d)
}

// Format renders a money value with exactly two decimal places and
// thousands separators, e.g. "1,234,567.89".
func Format(d decimal.Decimal) string {
	s := d.Round(2).StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}
