package pick6

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/Pickem_Go/internal/domain"
)

// ValidateEntry checks a Pick 6 entry before it is accepted.
// Every check runs and every failure is reported.
func ValidateEntry(picks []domain.Pick, requiredCount int) domain.EntryValidation {
	errs := []string{}

	if len(picks) != requiredCount {
		errs = append(errs, fmt.Sprintf(ErrMsgWrongPickCountFmt, requiredCount, len(picks)))
	}

	seen := make(map[uuid.UUID]struct{}, len(picks))
	duplicate := false
	doubleDowns := 0
	for _, p := range picks {
		if _, ok := seen[p.MatchID]; ok {
			duplicate = true
		}
		seen[p.MatchID] = struct{}{}

		if p.IsDoubleDown {
			doubleDowns++
		}
	}

	if duplicate {
		errs = append(errs, ErrMsgDuplicateMatch)
	}
	if doubleDowns > MaxDoubleDowns {
		errs = append(errs, ErrMsgTooManyDoubleDown)
	}

	return domain.EntryValidation{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
