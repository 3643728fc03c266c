package aggregate

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is shown when no amount has contributed a currency yet.
const DefaultCurrency = "₹"

// CountLabel renders a count with the noun pluralized: "1 deal", "3 deals".
func CountLabel(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

// FormatMoney renders amount as currency symbol, thousands separators and
// two decimals ("₹1,234.56"). An empty currency falls back to
// DefaultCurrency.
func FormatMoney(currency string, amount decimal.Decimal) string {
	if currency == "" {
		currency = DefaultCurrency
	}

	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	fixed := amount.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	return sign + currency + groupThousands(whole) + "." + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
