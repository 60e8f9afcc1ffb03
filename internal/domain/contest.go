package domain

import (
	"time"

	"github.com/google/uuid"
)

// Side identifies one of the two competitors in a match by position.
// Favorite, underdog and winner are labels stored alongside it.
type Side string

const (
	SideNone Side = ""
	SideA    Side = "A"
	SideB    Side = "B"
)

// IsValid reports whether s names one of the two positions
func (s Side) IsValid() bool {
	return s == SideA || s == SideB
}

// FinishType describes how a match ended
type FinishType string

const (
	FinishNone       FinishType = ""
	FinishDecision   FinishType = "decision"
	FinishKOTKO      FinishType = "ko_tko"
	FinishSubmission FinishType = "submission"
)

// IsValid reports whether f is a known finish type (absent counts as valid)
func (f FinishType) IsValid() bool {
	switch f {
	case FinishNone, FinishDecision, FinishKOTKO, FinishSubmission:
		return true
	}
	return false
}

// ContestFormat selects how an event is played and scored
type ContestFormat string

const (
	FormatMatchPicks ContestFormat = "match_picks"
	FormatPick6      ContestFormat = "pick6"
)

// PointsRule selects how legacy match points are derived from odds
type PointsRule string

const (
	PointsRuleRatio    PointsRule = "ratio"
	PointsRuleBalanced PointsRule = "balanced"
)

// EventStatus tracks whether picks are still accepted
type EventStatus string

const (
	EventStatusOpen     EventStatus = "open"
	EventStatusLocked   EventStatus = "locked"
	EventStatusComplete EventStatus = "complete"
)

// Event is a card of matches users make picks against
type Event struct {
	ID         uuid.UUID     `json:"id"`
	Name       string        `json:"name"`
	Format     ContestFormat `json:"format"`
	PointsRule PointsRule    `json:"points_rule,omitempty"`
	PickCount  int           `json:"pick_count,omitempty"`
	BasePoints int           `json:"base_points"`
	Status     EventStatus   `json:"status"`
	StartsAt   time.Time     `json:"starts_at"`
	CreatedAt  time.Time     `json:"created_at"`
	Matches    []Match       `json:"matches,omitempty"`
}

// Match is a single bout on an event card.
// Favorite, Winner and FinishType are empty until known.
type Match struct {
	ID             uuid.UUID  `json:"id"`
	EventID        uuid.UUID  `json:"event_id"`
	Position       int        `json:"position"`
	WrestlerA      string     `json:"wrestler_a"`
	WrestlerB      string     `json:"wrestler_b"`
	Favorite       Side       `json:"favorite,omitempty"`
	OddsRatio      float64    `json:"odds_ratio,omitempty"`
	AmericanOdds   int        `json:"american_odds"`
	FavoritePoints int        `json:"favorite_points"`
	UnderdogPoints int        `json:"underdog_points"`
	SideAOdds      int        `json:"side_a_odds,omitempty"`
	SideBOdds      int        `json:"side_b_odds,omitempty"`
	Winner         Side       `json:"winner,omitempty"`
	FinishType     FinishType `json:"finish_type,omitempty"`
}

// OddsFor returns the Pick 6 American odds of the fighter on side s
func (m Match) OddsFor(s Side) int {
	if s == SideB {
		return m.SideBOdds
	}
	return m.SideAOdds
}

// HasResult reports whether a winner has been recorded
func (m Match) HasResult() bool {
	return m.Winner != SideNone
}

// Pick is one user selection on one match.
// AmericanOdds is the selected fighter's line at the time the pick was made.
type Pick struct {
	ID           uuid.UUID `json:"id"`
	EventID      uuid.UUID `json:"event_id"`
	MatchID      uuid.UUID `json:"match_id"`
	UserID       string    `json:"user_id"`
	SelectedSide Side      `json:"selected_side"`
	AmericanOdds int       `json:"american_odds"`
	IsDoubleDown bool      `json:"is_double_down"`
	PointsEarned float64   `json:"points_earned"`
	CreatedAt    time.Time `json:"created_at"`
}

// LeaderboardEntry is one ranked participant of an event
type LeaderboardEntry struct {
	Rank        int     `json:"rank"`
	UserID      string  `json:"user_id"`
	TotalPoints float64 `json:"total_points"`
	PicksMade   int     `json:"picks_made"`
	PicksWon    int     `json:"picks_won"`
}
