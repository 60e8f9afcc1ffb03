package matchpoints

// ============================================================================
// Ratio Rule
// ============================================================================

// RatioUnderdogPoints is the fixed value of a correct underdog pick under the ratio rule
const RatioUnderdogPoints = 1000

// RatioFavoriteFloor is the least a correct favorite pick can be worth under the ratio rule
const RatioFavoriteFloor = 50

// MinOddsRatio is the ratio every input is normalized up to before dividing
const MinOddsRatio = 1.0

// ============================================================================
// Balanced Expected-Value Rule
// ============================================================================

// DefaultBasePoints is the underdog value used when a caller has no event override
const DefaultBasePoints = 1000

// PickEmThreshold is the largest |American odds| still treated as a true pick-em
const PickEmThreshold = 5

// BalancedFloorFraction is the share of base points neither side may drop below
const BalancedFloorFraction = 0.1

// ============================================================================
// Match Defaults
// ============================================================================

// EvenMatchPoints is what either side is worth when no favorite was recorded
const EvenMatchPoints = 500
