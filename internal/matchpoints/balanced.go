package matchpoints

import (
	"math"

	"github.com/osse101/Pickem_Go/internal/domain"
	"github.com/osse101/Pickem_Go/internal/odds"
)

// CalculateMatchPointsFromAmerican applies the balanced expected-value rule.
//
// The underdog is pinned at basePoints and the favorite is scaled so that
// probability × points is the same for both sides:
//
//	favorite = floor(pUnderdog × base / pFavorite)
//
// Odds within ±5 of zero are a pick-em and both sides earn basePoints.
// Both values are floored at 10% of basePoints. Inputs are not validated.
func CalculateMatchPointsFromAmerican(americanOdds, basePoints int) domain.BalancedMatchPoints {
	if americanOdds == 0 || absInt(americanOdds) <= PickEmThreshold {
		return domain.BalancedMatchPoints{
			MatchPoints: domain.MatchPoints{
				FavoritePoints: basePoints,
				UnderdogPoints: basePoints,
				OddsRatio:      MinOddsRatio,
			},
			AmericanOdds:           0,
			FavoriteWinProbability: 0.5,
			UnderdogWinProbability: 0.5,
			IsPickEm:               true,
		}
	}

	var favoriteProb, underdogProb float64
	if americanOdds < 0 {
		favoriteProb = odds.ImpliedProbability(americanOdds)
		underdogProb = 1 - favoriteProb
	} else {
		underdogProb = odds.ImpliedProbability(americanOdds)
		favoriteProb = 1 - underdogProb
	}

	base := float64(basePoints)
	floor := int(math.Floor(base * BalancedFloorFraction))

	favorite := int(math.Floor(underdogProb * base / favoriteProb))
	underdog := basePoints

	if favorite < floor {
		favorite = floor
	}
	if underdog < floor {
		underdog = floor
	}

	return domain.BalancedMatchPoints{
		MatchPoints: domain.MatchPoints{
			FavoritePoints: favorite,
			UnderdogPoints: underdog,
			OddsRatio:      favoriteProb / underdogProb,
		},
		AmericanOdds:           americanOdds,
		FavoriteWinProbability: favoriteProb,
		UnderdogWinProbability: underdogProb,
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
