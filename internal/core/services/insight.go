package services

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Insight thresholds: profit growth above praiseThreshold earns a
// congratulation, a drop below warnThreshold prompts an expense review,
// anything in between is reported as steady.
var (
	praiseThreshold = decimal.NewFromInt(20)
	warnThreshold   = decimal.NewFromInt(-10)
)

// RedactedInsight replaces the smart insight for roles that may not see
// financial figures.
const RedactedInsight = "Detailed insights are available to store managers."

// GenerateInsight turns the profit delta and the top product into a one-line
// summary. Pure function: no state, no I/O.
func GenerateInsight(profitChangePct decimal.Decimal, topProduct string) string {
	if topProduct == "" {
		topProduct = "your top product"
	}
	switch {
	case profitChangePct.GreaterThan(praiseThreshold):
		return fmt.Sprintf("Great job! Profit is up %s%% over the previous period, led by %s.",
			profitChangePct.Round(1).String(), topProduct)
	case profitChangePct.LessThan(warnThreshold):
		return fmt.Sprintf("Profit is down %s%% compared to the previous period. Consider reviewing your expenses.",
			profitChangePct.Abs().Round(1).String())
	default:
		return fmt.Sprintf("Steady performance this period. %s remains your best seller.", topProduct)
	}
}
