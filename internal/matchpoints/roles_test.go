package matchpoints

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Pickem_Go/internal/domain"
)

func favoredMatch() domain.Match {
	return domain.Match{
		WrestlerA:      "Rhea",
		WrestlerB:      "Iyo",
		Favorite:       domain.SideA,
		FavoritePoints: 400,
		UnderdogPoints: 1000,
	}
}

func TestWrestlerRole(t *testing.T) {
	m := favoredMatch()

	assert.Equal(t, domain.RoleFavorite, WrestlerRole(m, domain.SideA))
	assert.Equal(t, domain.RoleUnderdog, WrestlerRole(m, domain.SideB))

	m.Favorite = domain.SideNone
	assert.Equal(t, domain.RoleEven, WrestlerRole(m, domain.SideA))
	assert.Equal(t, domain.RoleEven, WrestlerRole(m, domain.SideB))
}

func TestPickingPoints(t *testing.T) {
	t.Run("favorite on side A", func(t *testing.T) {
		got := PickingPoints(favoredMatch())
		assert.Equal(t, domain.PickingPoints{SideAPoints: 400, SideBPoints: 1000}, got)
	})

	t.Run("favorite on side B", func(t *testing.T) {
		m := favoredMatch()
		m.Favorite = domain.SideB
		got := PickingPoints(m)
		assert.Equal(t, domain.PickingPoints{SideAPoints: 1000, SideBPoints: 400}, got)
	})

	t.Run("no favorite defaults to even", func(t *testing.T) {
		got := PickingPoints(domain.Match{})
		assert.Equal(t, domain.PickingPoints{SideAPoints: 500, SideBPoints: 500}, got)
	})
}

func TestCalculatePickPoints(t *testing.T) {
	tests := []struct {
		name     string
		favorite domain.Side
		winner   domain.Side
		selected domain.Side
		expected int
	}{
		{"No result yet", domain.SideA, domain.SideNone, domain.SideA, 0},
		{"No selection", domain.SideA, domain.SideA, domain.SideNone, 0},
		{"Wrong pick", domain.SideA, domain.SideB, domain.SideA, 0},
		{"Correct favorite", domain.SideA, domain.SideA, domain.SideA, 400},
		{"Correct underdog", domain.SideA, domain.SideB, domain.SideB, 1000},
		{"Correct pick on even match", domain.SideNone, domain.SideB, domain.SideB, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := favoredMatch()
			m.Favorite = tt.favorite
			m.Winner = tt.winner
			pick := domain.Pick{SelectedSide: tt.selected}

			assert.Equal(t, tt.expected, CalculatePickPoints(m, pick))
		})
	}
}
