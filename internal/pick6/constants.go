package pick6

// ============================================================================
// Base Points
// ============================================================================

// FavoriteScale is divided by |odds| to price a favorite.
// Pick 6 uses a larger pool than the legacy 1000-point engine.
const FavoriteScale = 10000.0

// PickEmBasePoints is what an even (0 odds) fighter is worth, the same as ±100
const PickEmBasePoints = 100.0

// ============================================================================
// Bonuses
// ============================================================================

// FinishBonusPoints is awarded when a win comes by KO/TKO or submission
const FinishBonusPoints = 50.0

// UnderdogBonusRate is the extra share of base points for an underdog win
const UnderdogBonusRate = 0.1

// UnderdogBonusMinOdds is the lowest line that counts as an underdog for the bonus
const UnderdogBonusMinOdds = 100

// ============================================================================
// Double Down
// ============================================================================

// DoubleDownMultiplier applies to a winning double-down selection
const DoubleDownMultiplier = 2

// MaxDoubleDowns is how many selections in one entry may be doubled down
const MaxDoubleDowns = 1

// ============================================================================
// Display
// ============================================================================

// Fighter status labels
const (
	StatusUnderdog = "Underdog"
	StatusFavorite = "Favorite"
	StatusPickEm   = "Pick'em"
)

// FormatEvenOdds is shown in place of a zero line
const FormatEvenOdds = "Even"

// Entry validation messages
const (
	ErrMsgWrongPickCountFmt = "Must select exactly %d fighters (selected %d)"
	ErrMsgDuplicateMatch    = "Cannot select more than one fighter from the same match"
	ErrMsgTooManyDoubleDown = "Only one double down is allowed per entry"
)
