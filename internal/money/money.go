package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format renders an amount with thousands separators and two decimals: 1,160.00.
// The integer part is grouped as an int64 and the cents come from the exact
// decimal, so no digits are lost to float conversion.
func Format(d decimal.Decimal) string {
	r := d.Round(2)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Neg()
	}
	whole := r.Truncate(0)
	if !whole.BigInt().IsInt64() {
		return sign + r.StringFixed(2)
	}
	cents := r.Sub(whole).StringFixed(2)[1:]
	return sign + printer.Sprintf("%d", whole.IntPart()) + cents
}

// Dollars renders an amount with a leading dollar sign: $1,160.00.
func Dollars(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + Format(d.Neg())
	}
	return "$" + Format(d)
}

// Round2 rounds to cents, half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
