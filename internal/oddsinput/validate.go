package oddsinput

import "github.com/osse101/Pickem_Go/internal/domain"

// ValidateAmericanOdds reports the first rule the line breaks, if any.
// Zero is a valid pick-em line.
func ValidateAmericanOdds(odds int) domain.OddsValidation {
	switch {
	case odds == 0:
		return valid()
	case odds > 0 && odds < MinUnderdogOdds:
		return invalid(ErrMsgUnderdogTooShort)
	case odds < 0 && odds > MaxFavoriteOdds:
		return invalid(ErrMsgFavoriteTooShort)
	case odds > MaxOddsMagnitude || odds < -MaxOddsMagnitude:
		return invalid(ErrMsgOddsTooLarge)
	}
	return valid()
}

// ValidateOddsRatio checks a ratio lies within [1.0, 20.0]
func ValidateOddsRatio(ratio float64) domain.OddsValidation {
	if ratio < MinOddsRatio {
		return invalid(ErrMsgRatioTooSmall)
	}
	if ratio > MaxOddsRatio {
		return invalid(ErrMsgRatioTooLarge)
	}
	return valid()
}

func valid() domain.OddsValidation {
	return domain.OddsValidation{IsValid: true}
}

func invalid(msg string) domain.OddsValidation {
	return domain.OddsValidation{IsValid: false, Error: msg}
}
