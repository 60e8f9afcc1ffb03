package oddsinput

// American odds bounds
const (
	MinUnderdogOdds  = 100
	MaxFavoriteOdds  = -100
	MaxOddsMagnitude = 10000
)

// Odds ratio bounds
const (
	MinOddsRatio = 1.0
	MaxOddsRatio = 20.0
)

// Tier names accepted by the suggest helpers
const (
	TierSlight   = "slight"
	TierModerate = "moderate"
	TierHeavy    = "heavy"
	TierExtreme  = "extreme"
)

// Ratio ceilings for each description tier; anything above TierCeilingHeavy is extreme
const (
	TierCeilingEven     = 1.1
	TierCeilingSlight   = 2.0
	TierCeilingModerate = 4.0
	TierCeilingHeavy    = 8.0
)

// Validation messages
const (
	ErrMsgUnderdogTooShort = "Positive odds must be +100 or higher"
	ErrMsgFavoriteTooShort = "Negative odds must be -100 or lower"
	ErrMsgOddsTooLarge     = "Odds cannot exceed 10000 in either direction"
	ErrMsgRatioTooSmall    = "Odds ratio must be at least 1.0"
	ErrMsgRatioTooLarge    = "Odds ratio cannot exceed 20.0"
)

// Descriptions
const (
	DescEven     = "Even matchup"
	DescSlight   = "Slight favorite"
	DescModerate = "Moderate favorite"
	DescHeavy    = "Heavy favorite"
	DescExtreme  = "Extreme favorite"
)

// Display strings
const (
	DisplayEvenAmerican = "Even (Pick-em)"
	DisplayEvenRatio    = "Even"
)
