// Package format renders amounts and ratios for human-readable output.
package format

import (
	"fmt"
	"math"

	"github.com/iwvelando/debt-capacity/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amount returns a whole-unit amount with thousands separators (e.g., "-1,234,568").
// Non-finite values render as 0.
func Amount(amount float64) string {
	amount = math.Round(mathutil.Finite(amount))
	if amount == 0 {
		return "0"
	}
	return message.NewPrinter(language.English).Sprintf("%.0f", amount)
}

// Ratio returns a ratio with two decimals (e.g., "2.92"). Non-finite values render as 0.00.
func Ratio(ratio float64) string {
	return fmt.Sprintf("%.2f", mathutil.Finite(ratio))
}

// OptionalRatio renders a missing ratio as "n/a".
func OptionalRatio(ratio *float64) string {
	if ratio == nil {
		return "n/a"
	}
	return Ratio(*ratio)
}

// Percent returns a rate as a percentage with two decimals (e.g., "8.00%").
func Percent(rate float64) string {
	return fmt.Sprintf("%.2f%%", mathutil.Finite(rate)*100)
}
