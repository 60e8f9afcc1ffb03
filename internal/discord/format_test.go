package discord

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Pickem_Go/internal/domain"
	"github.com/osse101/Pickem_Go/internal/handler"
)

func TestFormatOdds(t *testing.T) {
	conv := &handler.ConvertOddsResponse{American: -150, Decimal: 1.6667, ImpliedProbability: 0.6, Formatted: "-150"}
	pick6 := &handler.PotentialPointsResponse{Status: "Favorite", BasePoints: 66.7, Formatted: "116.7"}

	t.Run("priced", func(t *testing.T) {
		balanced := &domain.BalancedMatchPoints{MatchPoints: domain.MatchPoints{FavoritePoints: 666, UnderdogPoints: 1000}}
		out := formatOdds(conv, balanced, pick6)

		assert.Contains(t, out, "-150 (Favorite)")
		assert.Contains(t, out, "1.67")
		assert.Contains(t, out, "60.0%")
		assert.Contains(t, out, "favorite 666 pts, underdog 1000 pts")
		assert.Contains(t, out, "66.7 pts (best case 116.7)")
	})

	t.Run("pick'em", func(t *testing.T) {
		balanced := &domain.BalancedMatchPoints{MatchPoints: domain.MatchPoints{FavoritePoints: 1000, UnderdogPoints: 1000}, IsPickEm: true}
		out := formatOdds(conv, balanced, pick6)

		assert.Contains(t, out, "pick'em, both sides 1000 pts")
	})
}

func TestFormatPotential(t *testing.T) {
	p := &handler.PotentialPointsResponse{FormattedOdds: "+150", Status: "Underdog", Formatted: "430.0", IsDoubleDown: true}

	assert.Equal(t, "A underdog win at **+150** with double down by finish is worth up to **430.0** points.", formatPotential(p))

	p.IsDoubleDown = false
	assert.NotContains(t, formatPotential(p), "double down")
}

func TestFormatLeaderboard(t *testing.T) {
	assert.Equal(t, MsgNoEntries, formatLeaderboard(nil))

	out := formatLeaderboard([]domain.LeaderboardEntry{
		{Rank: 1, UserID: "ana", TotalPoints: 645, PicksMade: 3, PicksWon: 2},
		{Rank: 2, UserID: "ben", TotalPoints: 215, PicksMade: 3, PicksWon: 1},
		{Rank: 4, UserID: "cy", TotalPoints: 0, PicksMade: 1, PicksWon: 0},
	})
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 3)
	assert.Equal(t, "🥇 **ana** · 645.0 pts (2/3 won)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "🥈"))
	assert.True(t, strings.HasPrefix(lines[2], "#4"))
}

func TestLeaderboardTitle(t *testing.T) {
	evt := &domain.Event{Name: "Fight Night", Status: domain.EventStatusLocked}
	assert.Equal(t, "🏆 Fight Night · Locked", leaderboardTitle(evt))
}
