package domain

// MatchPoints is the points-only result of the ratio rule.
// It deliberately carries no side; see SidedMatchPoints.
type MatchPoints struct {
	FavoritePoints int     `json:"favorite_points"`
	UnderdogPoints int     `json:"underdog_points"`
	OddsRatio      float64 `json:"odds_ratio"`
}

// SidedMatchPoints is MatchPoints after the caller has decided which side is favored
type SidedMatchPoints struct {
	MatchPoints
	Favorite Side `json:"favorite"`
}

// BalancedMatchPoints is the result of the balanced expected-value rule
type BalancedMatchPoints struct {
	MatchPoints
	AmericanOdds           int     `json:"american_odds"`
	FavoriteWinProbability float64 `json:"favorite_win_probability"`
	UnderdogWinProbability float64 `json:"underdog_win_probability"`
	IsPickEm               bool    `json:"is_pick_em"`
}

// Role is the derived label of a side within a match
type Role string

const (
	RoleFavorite Role = "favorite"
	RoleUnderdog Role = "underdog"
	RoleEven     Role = "even"
)

// PickingPoints holds what each side of a match is worth if picked correctly
type PickingPoints struct {
	SideAPoints int `json:"side_a_points"`
	SideBPoints int `json:"side_b_points"`
}

// Pick6Selection is the input for scoring one Pick 6 fighter selection
type Pick6Selection struct {
	AmericanOdds int        `json:"american_odds"`
	IsWinner     bool       `json:"is_winner"`
	FinishType   FinishType `json:"finish_type,omitempty"`
	IsDoubleDown bool       `json:"is_double_down"`
}

// Pick6Score breaks down the points earned by a Pick 6 selection
type Pick6Score struct {
	BasePoints           float64 `json:"base_points"`
	FinishBonus          float64 `json:"finish_bonus"`
	UnderdogBonus        float64 `json:"underdog_bonus"`
	DoubleDownMultiplier int     `json:"double_down_multiplier"`
	TotalPoints          float64 `json:"total_points"`
}

// EntryValidation reports every problem found with a Pick 6 entry
type EntryValidation struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// OddsValidation reports the first rule an odds input violates
type OddsValidation struct {
	IsValid bool   `json:"is_valid"`
	Error   string `json:"error,omitempty"`
}

// EventPotential summarises the point range of a whole event card
type EventPotential struct {
	MaxPossible  int `json:"max_possible"`
	MinPossible  int `json:"min_possible"`
	AllFavorites int `json:"all_favorites"`
	AllUnderdogs int `json:"all_underdogs"`
}

// EntryPotential is one user's standing on an event: points already
// banked plus the best case for picks whose match is still undecided.
type EntryPotential struct {
	EventID     string  `json:"event_id"`
	UserID      string  `json:"user_id"`
	Earned      float64 `json:"earned"`
	Remaining   float64 `json:"remaining"`
	MaxPossible float64 `json:"max_possible"`
	OpenPicks   int     `json:"open_picks"`
}
