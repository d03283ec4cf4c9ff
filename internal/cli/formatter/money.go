package formatter

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders an amount as US dollars with thousands separators,
// rounded to cents for display only.
func FormatUSD(amount float64) string {
	return usd.Sprintf("$%.2f", amount)
}

// FormatOptionalUSD renders a nullable amount, showing TBD when unset.
func FormatOptionalUSD(amount *float64) string {
	if amount == nil {
		return Dim("TBD")
	}
	return FormatUSD(*amount)
}

// FormatHours renders a duration in hours without trailing zeros.
func FormatHours(hours float64) string {
	if hours == float64(int(hours)) {
		return fmt.Sprintf("%dh", int(hours))
	}
	return fmt.Sprintf("%.1fh", hours)
}
