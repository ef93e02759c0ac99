package model

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency matches the rupee sign the list has always been shown with.
const DefaultCurrency = money.INR

var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)
)

// KnownCurrency reports whether code is an ISO 4217 code go-money can format.
func KnownCurrency(code string) bool {
	return money.GetCurrency(strings.ToUpper(strings.TrimSpace(code))) != nil
}

// FormatPrice renders p in the given currency (e.g. "₹12.50"). Prices with
// more fractional digits than the currency's minor unit are shown exactly
// ("₹12.555"). Unknown codes fall back to the plain decimal text.
func FormatPrice(p decimal.Decimal, code string) string {
	cur := money.GetCurrency(strings.ToUpper(strings.TrimSpace(code)))
	if cur == nil {
		return p.String()
	}
	frac := int32(cur.Fraction)
	if places := fractionDigits(p, frac); places > frac {
		return formatDecimal(p, cur, places)
	}
	minor := p.Shift(frac).Round(0)
	if minor.GreaterThan(maxMinor) || minor.LessThan(minMinor) {
		return formatDecimal(p, cur, frac)
	}
	return money.New(minor.IntPart(), cur.Code).Display()
}

// fractionDigits is the number of fractional digits p needs, at least min.
func fractionDigits(p decimal.Decimal, min int32) int32 {
	places := min
	for places < -p.Exponent() && !p.Equal(p.Round(places)) {
		places++
	}
	return places
}

// formatDecimal lays p out with the currency's template and separators
// without going through int64 minor units.
func formatDecimal(p decimal.Decimal, cur *money.Currency, places int32) string {
	s := p.Abs().StringFixed(places)
	intPart, fracPart, _ := strings.Cut(s, ".")
	if cur.Thousand != "" {
		for i := len(intPart) - 3; i > 0; i -= 3 {
			intPart = intPart[:i] + cur.Thousand + intPart[i:]
		}
	}
	if fracPart != "" {
		intPart += cur.Decimal + fracPart
	}
	out := strings.Replace(cur.Template, "1", intPart, 1)
	out = strings.Replace(out, "$", cur.Grapheme, 1)
	if p.IsNegative() {
		out = "-" + out
	}
	return out
}
