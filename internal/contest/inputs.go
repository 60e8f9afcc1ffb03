package contest

import (
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Pickem_Go/internal/domain"
)

// NewEvent describes an event card before it is stored.
// The JSON shape is shared by the HTTP API and event card files.
type NewEvent struct {
	Name       string               `json:"name" validate:"required,max=200"`
	Format     domain.ContestFormat `json:"format" validate:"required,contest_format"`
	PointsRule domain.PointsRule    `json:"points_rule,omitempty" validate:"omitempty,points_rule"`
	PickCount  int                  `json:"pick_count,omitempty" validate:"omitempty,min=1,max=20"`
	BasePoints int                  `json:"base_points,omitempty" validate:"omitempty,min=1,max=100000"`
	StartsAt   time.Time            `json:"starts_at"`
	Matches    []NewMatch           `json:"matches" validate:"required,min=1,max=50,dive"`
}

// NewMatch is one bout on a NewEvent.
// Ratio events use Favorite and OddsRatio, balanced events use AmericanOdds
// quoted for side A, and pick6 events price each side separately.
type NewMatch struct {
	WrestlerA    string      `json:"wrestler_a" validate:"required,max=100"`
	WrestlerB    string      `json:"wrestler_b" validate:"required,max=100"`
	Favorite     domain.Side `json:"favorite,omitempty" validate:"omitempty,side"`
	OddsRatio    float64     `json:"odds_ratio,omitempty" validate:"omitempty,min=1,max=20"`
	AmericanOdds int         `json:"american_odds,omitempty" validate:"american_odds"`
	SideAOdds    int         `json:"side_a_odds,omitempty" validate:"american_odds"`
	SideBOdds    int         `json:"side_b_odds,omitempty" validate:"american_odds"`
}

// PickInput is one selection in a submitted entry
type PickInput struct {
	MatchID      uuid.UUID   `json:"match_id" validate:"required"`
	Side         domain.Side `json:"side" validate:"required,side"`
	IsDoubleDown bool        `json:"is_double_down,omitempty"`
}
