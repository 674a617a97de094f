package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders an amount the way printed tickets show it: the integer
// part grouped in thousands with spaces, followed by the currency suffix.
// Fractions are dropped.
func Format(amount decimal.Decimal, currency string) string {
	digits := amount.Truncate(0).String()
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := strings.Join(groups, " ")
	if neg {
		out = "-" + out
	}
	return out + " " + currency
}
