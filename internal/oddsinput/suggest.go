package oddsinput

import (
	"fmt"

	"github.com/osse101/Pickem_Go/internal/domain"
)

var suggestedAmerican = map[string]int{
	TierSlight:   -150,
	TierModerate: -250,
	TierHeavy:    -500,
	TierExtreme:  -1000,
}

var suggestedRatio = map[string]float64{
	TierSlight:   1.5,
	TierModerate: 3.0,
	TierHeavy:    6.0,
	TierExtreme:  12.0,
}

// Tiers lists the accepted tier names from mildest to most lopsided
func Tiers() []string {
	return []string{TierSlight, TierModerate, TierHeavy, TierExtreme}
}

// SuggestAmericanOdds returns the canonical favorite line for a tier
func SuggestAmericanOdds(tier string) (int, error) {
	odds, ok := suggestedAmerican[tier]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownOddsTier, tier)
	}
	return odds, nil
}

// SuggestOddsRatio returns the canonical ratio for a tier
func SuggestOddsRatio(tier string) (float64, error) {
	ratio, ok := suggestedRatio[tier]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownOddsTier, tier)
	}
	return ratio, nil
}
