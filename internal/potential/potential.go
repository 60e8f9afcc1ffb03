// Package potential folds per-match point values into event-wide totals.
package potential

import (
	"github.com/osse101/Pickem_Go/internal/domain"
	"github.com/osse101/Pickem_Go/internal/matchpoints"
)

// Calculate sums the point range of an event card.
// Each match contributes independently, so the result does not depend on order.
func Calculate(matches []domain.Match) domain.EventPotential {
	var total domain.EventPotential

	for _, m := range matches {
		pp := matchpoints.PickingPoints(m)
		high, low := pp.SideAPoints, pp.SideBPoints
		if low > high {
			high, low = low, high
		}
		total.MaxPossible += high
		total.MinPossible += low

		if m.Favorite == domain.SideNone {
			total.AllFavorites += matchpoints.EvenMatchPoints
			total.AllUnderdogs += matchpoints.EvenMatchPoints
			continue
		}
		total.AllFavorites += m.FavoritePoints
		total.AllUnderdogs += m.UnderdogPoints
	}

	return total
}
