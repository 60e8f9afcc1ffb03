package matchpoints

import (
	"math"

	"github.com/osse101/Pickem_Go/internal/domain"
)

// CalculateMatchPoints applies the ratio rule: the underdog is worth a fixed
// 1000 points and the favorite 1000/ratio, floored at 50.
// The result only describes point values. Which competitor is favored is
// decided by the caller through AssignFavorite.
func CalculateMatchPoints(oddsRatio float64) domain.MatchPoints {
	ratio := math.Max(MinOddsRatio, oddsRatio)

	favorite := int(math.Floor(float64(RatioUnderdogPoints) / ratio))
	if favorite < RatioFavoriteFloor {
		favorite = RatioFavoriteFloor
	}

	return domain.MatchPoints{
		FavoritePoints: favorite,
		UnderdogPoints: RatioUnderdogPoints,
		OddsRatio:      ratio,
	}
}

// AssignFavorite attaches the favored side to a points-only result
func AssignFavorite(points domain.MatchPoints, favorite domain.Side) domain.SidedMatchPoints {
	return domain.SidedMatchPoints{
		MatchPoints: points,
		Favorite:    favorite,
	}
}
