package pick6

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatPoints renders points with exactly one decimal, e.g. "430.0"
func FormatPoints(points float64) string {
	return decimal.NewFromFloat(points).StringFixed(1)
}

// FormatOdds renders a line the way sportsbooks show it: "+150", "-200", "Even"
func FormatOdds(americanOdds int) string {
	switch {
	case americanOdds > 0:
		return "+" + strconv.Itoa(americanOdds)
	case americanOdds == 0:
		return FormatEvenOdds
	default:
		return strconv.Itoa(americanOdds)
	}
}

// IsUnderdog reports whether the line is positive
func IsUnderdog(americanOdds int) bool {
	return americanOdds > 0
}

// FighterStatus labels a fighter from their line
func FighterStatus(americanOdds int) string {
	switch {
	case americanOdds > 0:
		return StatusUnderdog
	case americanOdds < 0:
		return StatusFavorite
	default:
		return StatusPickEm
	}
}
