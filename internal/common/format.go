package common

import (
	"fmt"
	"math"

	money "github.com/Rhymond/go-money"
)

// FormatCurrency formats a value as a US dollar string with two decimals and
// thousand separators. Non-finite input renders as a zero amount — NaN must
// never reach display.
func FormatCurrency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return money.New(0, money.USD).Display()
	}
	// Round to whole cents first — NewFromFloat truncates.
	cents := int64(math.Round(v * 100))
	return money.New(cents, money.USD).Display()
}

// FormatSignedMoney formats a dollar amount with a +/- prefix.
func FormatSignedMoney(v float64) string {
	if v >= 0 {
		return "+" + FormatCurrency(v)
	}
	return FormatCurrency(v)
}

// FormatSignedPct formats a percentage with a +/- prefix and two decimals.
// Non-finite input renders as "0.00%".
func FormatSignedPct(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0.00%"
	}
	if v >= 0 {
		return fmt.Sprintf("+%.2f%%", v)
	}
	return fmt.Sprintf("%.2f%%", v)
}
