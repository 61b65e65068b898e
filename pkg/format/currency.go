// Package format renders currency amounts for display.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	cents := math.Round(math.Abs(amount) * 100)
	formatted := printer.Sprintf("%.2f", cents/100)
	if amount < 0 && cents > 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// WholeCurrency returns a currency string rounded to whole units (e.g., "$13,388").
func WholeCurrency(amount float64) string {
	rounded := int64(math.Round(amount))
	if rounded < 0 {
		return "-$" + printer.Sprintf("%d", -rounded)
	}
	return "$" + printer.Sprintf("%d", rounded)
}
