package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/osse101/Pickem_Go/internal/contest"
	"github.com/osse101/Pickem_Go/internal/domain"
	"github.com/osse101/Pickem_Go/internal/metrics"
	"github.com/osse101/Pickem_Go/internal/pick6"
)

// ScoreSelectionRequest is one Pick 6 selection with its outcome
type ScoreSelectionRequest struct {
	AmericanOdds int               `json:"american_odds" validate:"american_odds"`
	IsWinner     bool              `json:"is_winner"`
	FinishType   domain.FinishType `json:"finish_type,omitempty" validate:"omitempty,finish_type"`
	IsDoubleDown bool              `json:"is_double_down"`
}

// ValidateEntryRequest is a Pick 6 entry checked without storing it
type ValidateEntryRequest struct {
	PickCount int                 `json:"pick_count" validate:"required,min=1,max=20"`
	Picks     []contest.PickInput `json:"picks" validate:"dive"`
}

// PotentialPointsResponse is the best case for a selection
type PotentialPointsResponse struct {
	AmericanOdds    int     `json:"american_odds"`
	FormattedOdds   string  `json:"formatted_odds"`
	Status          string  `json:"status"`
	IsDoubleDown    bool    `json:"is_double_down"`
	BasePoints      float64 `json:"base_points"`
	PotentialPoints float64 `json:"potential_points"`
	Formatted       string  `json:"formatted"`
}

// HandleScoreSelection scores a single Pick 6 selection
// @Summary Score a Pick 6 selection
// @Tags pick6
// @Accept json
// @Produce json
// @Param request body ScoreSelectionRequest true "Selection"
// @Success 200 {object} domain.Pick6Score
// @Failure 400 {object} ValidationErrorResponse
// @Router /pick6/score [post]
func HandleScoreSelection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ScoreSelectionRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpScoreSelection); err != nil {
			return
		}

		score := pick6.ScoreSelection(domain.Pick6Selection(req))

		outcome := metrics.OutcomeLost
		if req.IsWinner {
			outcome = metrics.OutcomeWon
		}
		metrics.SelectionsScored.WithLabelValues(outcome).Inc()

		respondJSON(w, http.StatusOK, score)
	}
}

// HandlePotentialPoints returns the best case for a selection before the result
// @Summary Pick 6 potential points
// @Tags pick6
// @Produce json
// @Param american query int true "American odds of the selected fighter"
// @Param double_down query bool false "Selection is the entry's double down"
// @Success 200 {object} PotentialPointsResponse
// @Failure 400 {object} ErrorResponse
// @Router /pick6/potential [get]
func HandlePotentialPoints() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := GetQueryParam(r, w, "american")
		if !ok {
			return
		}
		american, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, "american"))
			return
		}
		doubleDown, ok := GetBoolQueryParam(r, w, "double_down")
		if !ok {
			return
		}

		potential := pick6.PotentialPoints(american, doubleDown)
		respondJSON(w, http.StatusOK, PotentialPointsResponse{
			AmericanOdds:    american,
			FormattedOdds:   pick6.FormatOdds(american),
			Status:          pick6.FighterStatus(american),
			IsDoubleDown:    doubleDown,
			BasePoints:      pick6.BasePoints(american),
			PotentialPoints: potential,
			Formatted:       pick6.FormatPoints(potential),
		})
	}
}

// HandleValidateEntry checks a Pick 6 entry and reports every problem
// @Summary Validate a Pick 6 entry
// @Tags pick6
// @Accept json
// @Produce json
// @Param request body ValidateEntryRequest true "Entry"
// @Success 200 {object} domain.EntryValidation
// @Failure 400 {object} ValidationErrorResponse
// @Router /pick6/validate-entry [post]
func HandleValidateEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ValidateEntryRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpValidatePick6); err != nil {
			return
		}

		picks := make([]domain.Pick, 0, len(req.Picks))
		for _, p := range req.Picks {
			picks = append(picks, domain.Pick{MatchID: p.MatchID, SelectedSide: p.Side, IsDoubleDown: p.IsDoubleDown})
		}

		respondJSON(w, http.StatusOK, pick6.ValidateEntry(picks, req.PickCount))
	}
}
