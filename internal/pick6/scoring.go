package pick6

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/osse101/Pickem_Go/internal/domain"
)

// BasePoints prices a selection from its American odds alone.
// An underdog's line is its base value (+150 → 150); a favorite earns
// 10000/|odds| rounded to one decimal (-150 → 66.7).
func BasePoints(americanOdds int) float64 {
	if americanOdds > 0 {
		return float64(americanOdds)
	}
	if americanOdds == 0 {
		return PickEmBasePoints
	}
	return round1(FavoriteScale / math.Abs(float64(americanOdds)))
}

// FinishBonus is awarded for any recorded finish other than a decision
func FinishBonus(finish domain.FinishType) float64 {
	if finish == domain.FinishNone || finish == domain.FinishDecision {
		return 0
	}
	return FinishBonusPoints
}

// UnderdogBonus adds 10% of base points for selections at +100 or longer
func UnderdogBonus(americanOdds int, basePoints float64) float64 {
	if americanOdds < UnderdogBonusMinOdds {
		return 0
	}
	return round1(basePoints * UnderdogBonusRate)
}

// ScoreSelection computes the points a single selection earned.
// A losing selection scores zero in every component, double down included.
func ScoreSelection(sel domain.Pick6Selection) domain.Pick6Score {
	if !sel.IsWinner {
		return domain.Pick6Score{}
	}

	base := BasePoints(sel.AmericanOdds)
	finish := FinishBonus(sel.FinishType)
	underdog := UnderdogBonus(sel.AmericanOdds, base)
	multiplier := multiplierFor(sel.IsDoubleDown)

	return domain.Pick6Score{
		BasePoints:           base,
		FinishBonus:          finish,
		UnderdogBonus:        underdog,
		DoubleDownMultiplier: multiplier,
		TotalPoints:          round1((base + finish + underdog) * float64(multiplier)),
	}
}

// PotentialPoints is the best case for a selection before the result is
// known: a win by finish, doubled if the selection is the double down.
func PotentialPoints(americanOdds int, isDoubleDown bool) float64 {
	base := BasePoints(americanOdds)
	underdog := UnderdogBonus(americanOdds, base)
	return round1((base + FinishBonusPoints + underdog) * float64(multiplierFor(isDoubleDown)))
}

func multiplierFor(isDoubleDown bool) int {
	if isDoubleDown {
		return DoubleDownMultiplier
	}
	return 1
}

// round1 rounds half away from zero to one decimal place
func round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}
