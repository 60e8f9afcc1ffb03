package oddsinput

import (
	"fmt"

	"github.com/osse101/Pickem_Go/internal/matchpoints"
)

// OddsDescription labels a ratio with its risk tier
func OddsDescription(ratio float64) string {
	switch {
	case ratio <= TierCeilingEven:
		return DescEven
	case ratio <= TierCeilingSlight:
		return DescSlight
	case ratio <= TierCeilingModerate:
		return DescModerate
	case ratio <= TierCeilingHeavy:
		return DescHeavy
	default:
		return DescExtreme
	}
}

// AmericanOddsDescription labels a line by the favorite's implied win
// probability and appends the balanced point values for both sides, e.g.
// "Moderate favorite (-250): favorite 400 pts, underdog 1000 pts".
func AmericanOddsDescription(americanOdds, basePoints int) string {
	pts := matchpoints.CalculateMatchPointsFromAmerican(americanOdds, basePoints)
	if pts.IsPickEm {
		return fmt.Sprintf("%s (Pick-em): both sides %d pts", DescEven, pts.FavoritePoints)
	}

	return fmt.Sprintf("%s (%s): favorite %d pts, underdog %d pts",
		probabilityTier(pts.FavoriteWinProbability),
		FormatAmericanOdds(americanOdds),
		pts.FavoritePoints,
		pts.UnderdogPoints,
	)
}

// probabilityTier maps a favorite win probability onto the ratio tiers.
// A ratio r corresponds to a probability of r/(r+1).
func probabilityTier(p float64) string {
	switch {
	case p <= ratioToProbability(TierCeilingEven):
		return DescEven
	case p <= ratioToProbability(TierCeilingSlight):
		return DescSlight
	case p <= ratioToProbability(TierCeilingModerate):
		return DescModerate
	case p <= ratioToProbability(TierCeilingHeavy):
		return DescHeavy
	default:
		return DescExtreme
	}
}

func ratioToProbability(r float64) float64 {
	return r / (r + 1)
}
