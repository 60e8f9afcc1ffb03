package matchpoints

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Pickem_Go/internal/domain"
)

func TestCalculateMatchPoints(t *testing.T) {
	tests := []struct {
		name          string
		ratio         float64
		wantFavorite  int
		wantUnderdog  int
		wantRatioUsed float64
	}{
		{"Even ratio", 1.0, 1000, 1000, 1.0},
		{"Below one normalizes up", 0.5, 1000, 1000, 1.0},
		{"Zero normalizes up", 0, 1000, 1000, 1.0},
		{"Two to one", 2.0, 500, 1000, 2.0},
		{"Nine to one", 9.0, 111, 1000, 9.0},
		{"Twenty to one", 20.0, 50, 1000, 20.0},
		{"Beyond floor", 50.0, 50, 1000, 50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateMatchPoints(tt.ratio)

			assert.Equal(t, tt.wantFavorite, got.FavoritePoints)
			assert.Equal(t, tt.wantUnderdog, got.UnderdogPoints)
			assert.Equal(t, tt.wantRatioUsed, got.OddsRatio)
		})
	}
}

func TestCalculateMatchPoints_Properties(t *testing.T) {
	t.Run("favorite never exceeds underdog", func(t *testing.T) {
		for ratio := 1.0; ratio <= 25.0; ratio += 0.25 {
			got := CalculateMatchPoints(ratio)
			assert.GreaterOrEqual(t, got.UnderdogPoints, got.FavoritePoints, "ratio=%v", ratio)
			assert.GreaterOrEqual(t, got.FavoritePoints, RatioFavoriteFloor, "ratio=%v", ratio)
		}
	})

	t.Run("favorite points fall as ratio grows", func(t *testing.T) {
		prev := CalculateMatchPoints(1.0).FavoritePoints
		for ratio := 1.5; ratio <= 25.0; ratio += 0.5 {
			current := CalculateMatchPoints(ratio).FavoritePoints
			assert.LessOrEqual(t, current, prev, "ratio=%v", ratio)
			prev = current
		}
	})
}

func TestAssignFavorite(t *testing.T) {
	points := CalculateMatchPoints(4.0)

	sided := AssignFavorite(points, domain.SideB)

	assert.Equal(t, domain.SideB, sided.Favorite)
	assert.Equal(t, 250, sided.FavoritePoints)
	assert.Equal(t, 1000, sided.UnderdogPoints)
}
