package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Pickem_Go/internal/domain"
)

type oddsInput struct {
	Odds int `validate:"american_odds"`
}

type tierInput struct {
	Tier string `validate:"required,odds_tier"`
}

type resultInput struct {
	Winner domain.Side       `validate:"required,side"`
	Finish domain.FinishType `validate:"omitempty,finish_type"`
}

type cardInput struct {
	Format domain.ContestFormat `validate:"required,contest_format"`
	Rule   domain.PointsRule    `validate:"omitempty,points_rule"`
}

func TestValidator_AmericanOdds(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		odds    int
		wantErr bool
	}{
		{"pick-em", 0, false},
		{"even underdog", 100, false},
		{"even favorite", -100, false},
		{"long shot at limit", 10000, false},
		{"heavy favorite at limit", -10000, false},
		{"underdog too short", 99, true},
		{"favorite too short", -99, true},
		{"beyond upper", 10001, true},
		{"beyond lower", -10001, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(oddsInput{Odds: tt.odds})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_OddsTier(t *testing.T) {
	v := GetValidator()

	for _, tier := range []string{"slight", "moderate", "heavy", "extreme"} {
		assert.NoError(t, v.ValidateStruct(tierInput{Tier: tier}), tier)
	}
	assert.Error(t, v.ValidateStruct(tierInput{Tier: "lopsided"}))
	assert.Error(t, v.ValidateStruct(tierInput{Tier: ""}))
}

func TestValidator_Result(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		in      resultInput
		wantErr bool
	}{
		{"side A decision", resultInput{domain.SideA, domain.FinishDecision}, false},
		{"side B no finish", resultInput{domain.SideB, domain.FinishNone}, false},
		{"submission", resultInput{domain.SideB, domain.FinishSubmission}, false},
		{"missing winner", resultInput{domain.SideNone, domain.FinishKOTKO}, true},
		{"lowercase side", resultInput{"a", domain.FinishKOTKO}, true},
		{"unknown finish", resultInput{domain.SideA, "dq"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_FormatAndRule(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(cardInput{Format: domain.FormatPick6}))
	assert.NoError(t, v.ValidateStruct(cardInput{Format: domain.FormatMatchPicks, Rule: domain.PointsRuleBalanced}))
	assert.Error(t, v.ValidateStruct(cardInput{Format: "bracket"}))
	assert.Error(t, v.ValidateStruct(cardInput{Format: domain.FormatMatchPicks, Rule: "elo"}))
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	err := v.ValidateStruct(resultInput{Winner: "C", Finish: "dq"})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "Must be A or B", fields["winner"])
	assert.Equal(t, "Must be decision, ko_tko or submission", fields["finish"])

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
}
