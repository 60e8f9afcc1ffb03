package domain

// Leaderboard limits
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// DefaultPick6Count is the number of selections a standard Pick 6 entry needs
const DefaultPick6Count = 6
