package format

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Value formats a metric value with its unit: currency with a rupee sign
// and digit grouping, percentages with a % suffix, everything else to two
// decimals.
func Value(v float64, unit string) string {
	switch {
	case unit == "INR" || strings.HasPrefix(unit, "INR ") || strings.Contains(unit, "₹"):
		return printer.Sprintf("₹%.0f", v)
	case strings.Contains(unit, "%"):
		return fmt.Sprintf("%.1f%%", v)
	default:
		return printer.Sprintf("%.2f", v)
	}
}

// Percent formats a 0..1 fraction as a whole percentage.
func Percent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// Signed formats v with an explicit sign.
func Signed(v float64) string {
	return fmt.Sprintf("%+.2f", v)
}

// Truncate shortens s to maxLen runes, ending in "..." when cut.
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
