package odds

import "math"

// AmericanToDecimal converts American odds to a decimal odds ratio
// Example: +150 → 2.5, -150 → 1.6667, 0 (pick-em) → 1.0
func AmericanToDecimal(american int) float64 {
	if american == 0 {
		return 1.0
	}

	if american > 0 {
		// Underdog: (odds / 100) + 1
		return float64(american)/100.0 + 1.0
	}
	// Favorite: (100 / |odds|) + 1
	return 100.0/math.Abs(float64(american)) + 1.0
}

// DecimalToAmerican converts a decimal odds ratio back to American odds.
// The result is rounded to the nearest integer, so a round trip through
// AmericanToDecimal is only exact to within one point.
func DecimalToAmerican(decimal float64) int {
	if decimal == 1.0 {
		return 0
	}

	if decimal >= 2.0 {
		// Underdog branch
		return int(math.Round((decimal - 1.0) * 100.0))
	}
	// Favorite branch
	return int(math.Round(-100.0 / (decimal - 1.0)))
}

// ImpliedProbability converts American odds to the win probability they imply
// Example: -150 → 0.6, +150 → 0.4
// Zero odds have no implied probability; callers handle pick-em first.
func ImpliedProbability(american int) float64 {
	if american > 0 {
		return 100.0 / (float64(american) + 100.0)
	}
	abs := math.Abs(float64(american))
	return abs / (abs + 100.0)
}
