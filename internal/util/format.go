package util

import (
	"github.com/shopspring/decimal"
)

// FormatEGP renders a price with two decimal places and the EGP
// currency suffix. Example: 1250.5 -> "1250.50 EGP".
func FormatEGP(amount decimal.Decimal) string {
	return amount.StringFixed(2) + " EGP"
}

// TruncateContent shortens long free-text fields for display. The cut
// is made on runes, not bytes; Arabic medicine names and comments must
// survive truncation as valid UTF-8.
func TruncateContent(content string, maxLength int) string {
	runes := []rune(content)
	if len(runes) <= maxLength {
		return content
	}
	return string(runes[:maxLength]) + "..."
}
