package discord

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/Pickem_Go/internal/domain"
	"github.com/osse101/Pickem_Go/internal/handler"
)

var titleCaser = cases.Title(language.English)

// formatOdds summarises a line: notation, probability, legacy points and Pick 6 value
func formatOdds(conv *handler.ConvertOddsResponse, balanced *domain.BalancedMatchPoints, pick6 *handler.PotentialPointsResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**Line:** %s (%s)\n", conv.Formatted, pick6.Status)
	fmt.Fprintf(&b, "**Decimal:** %.2f\n", conv.Decimal)
	fmt.Fprintf(&b, "**Implied win chance:** %.1f%%\n\n", conv.ImpliedProbability*100)

	if balanced.IsPickEm {
		fmt.Fprintf(&b, "**Match picks:** pick'em, both sides %d pts\n", balanced.UnderdogPoints)
	} else {
		fmt.Fprintf(&b, "**Match picks:** favorite %d pts, underdog %d pts\n", balanced.FavoritePoints, balanced.UnderdogPoints)
	}
	fmt.Fprintf(&b, "**Pick 6 base:** %.1f pts (best case %s)", pick6.BasePoints, pick6.Formatted)

	return b.String()
}

// formatPotential describes a Pick 6 selection's best case
func formatPotential(p *handler.PotentialPointsResponse) string {
	dd := ""
	if p.IsDoubleDown {
		dd = " with double down"
	}
	return fmt.Sprintf("A %s win at **%s**%s by finish is worth up to **%s** points.",
		strings.ToLower(p.Status), p.FormattedOdds, dd, p.Formatted)
}

// formatLeaderboard renders ranked entries one per line
func formatLeaderboard(entries []domain.LeaderboardEntry) string {
	if len(entries) == 0 {
		return MsgNoEntries
	}

	var b strings.Builder
	for _, e := range entries {
		medal := rankMedal(e.Rank)
		fmt.Fprintf(&b, "%s **%s** · %.1f pts (%d/%d won)\n", medal, e.UserID, e.TotalPoints, e.PicksWon, e.PicksMade)
	}
	return strings.TrimRight(b.String(), "\n")
}

func rankMedal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("#%d", rank)
	}
}

// leaderboardTitle names the event and its status, e.g. "🏆 Fight Night · Locked"
func leaderboardTitle(evt *domain.Event) string {
	return fmt.Sprintf("🏆 %s · %s", evt.Name, titleCaser.String(string(evt.Status)))
}
