package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Pickem_Go/internal/domain"
	"github.com/osse101/Pickem_Go/internal/oddsinput"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator builds the shared validator and registers the contest tags
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("american_odds", validateAmericanOdds)
	_ = v.RegisterValidation("odds_tier", validateOddsTier)
	_ = v.RegisterValidation("finish_type", validateFinishType)
	_ = v.RegisterValidation("side", validateSide)
	_ = v.RegisterValidation("contest_format", validateContestFormat)
	_ = v.RegisterValidation("points_rule", validatePointsRule)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	validateOnce.Do(func() {
		if validate == nil {
			InitValidator()
		}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by JSON-ish field name
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "american_odds":
			errs[field] = "Invalid American odds"
		case "odds_tier":
			errs[field] = fmt.Sprintf("Must be one of: %s", strings.Join(oddsinput.Tiers(), ", "))
		case "finish_type":
			errs[field] = "Must be decision, ko_tko or submission"
		case "side":
			errs[field] = "Must be A or B"
		case "contest_format":
			errs[field] = "Must be match_picks or pick6"
		case "points_rule":
			errs[field] = "Must be ratio or balanced"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validateAmericanOdds accepts zero (pick-em) and any line oddsinput accepts
func validateAmericanOdds(fl validator.FieldLevel) bool {
	return oddsinput.ValidateAmericanOdds(int(fl.Field().Int())).IsValid
}

func validateOddsTier(fl validator.FieldLevel) bool {
	_, err := oddsinput.SuggestAmericanOdds(fl.Field().String())
	return err == nil
}

func validateFinishType(fl validator.FieldLevel) bool {
	return domain.FinishType(fl.Field().String()).IsValid()
}

func validateSide(fl validator.FieldLevel) bool {
	return domain.Side(fl.Field().String()).IsValid()
}

func validateContestFormat(fl validator.FieldLevel) bool {
	switch domain.ContestFormat(fl.Field().String()) {
	case domain.FormatMatchPicks, domain.FormatPick6:
		return true
	}
	return false
}

func validatePointsRule(fl validator.FieldLevel) bool {
	switch domain.PointsRule(fl.Field().String()) {
	case domain.PointsRuleRatio, domain.PointsRuleBalanced:
		return true
	}
	return false
}
