// Package amountutils normalizes raw spreadsheet amount cells into decimal
// values.
package amountutils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency glyphs, quote characters, and whitespace stripped before parsing.
var strippedRe = regexp.MustCompile("[฿€$£¥₣₤₧₹₺₽₩₫₲₴₸₼₪'\"\\s]")

// Normalize strips currency symbols, thousands separators, quote characters
// and whitespace from a raw cell and parses the remainder as a decimal
// number. Empty, non-numeric, or otherwise malformed input yields zero so a
// single bad cell can never abort ingestion of a source.
func Normalize(raw string) decimal.Decimal {
	cleaned := strippedRe.ReplaceAllString(raw, "")
	cleaned = strings.ReplaceAll(cleaned, "THB", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// Format renders an amount for display with two decimal places and the baht
// symbol, e.g. "฿1234.50".
func Format(amount decimal.Decimal) string {
	return "฿" + amount.StringFixed(2)
}
