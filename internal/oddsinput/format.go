package oddsinput

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatAmericanOdds renders "+150", "-200" or "Even (Pick-em)" for zero
func FormatAmericanOdds(odds int) string {
	switch {
	case odds > 0:
		return "+" + strconv.Itoa(odds)
	case odds == 0:
		return DisplayEvenAmerican
	default:
		return strconv.Itoa(odds)
	}
}

// FormatOddsRatio renders a ratio as "9:1" or "2.5:1"; ratios at or below 1 are "Even"
func FormatOddsRatio(ratio float64) string {
	if ratio <= MinOddsRatio {
		return DisplayEvenRatio
	}
	return decimal.NewFromFloat(ratio).Round(2).String() + ":1"
}
