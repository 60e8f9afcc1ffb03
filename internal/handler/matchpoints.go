package handler

import (
	"net/http"

	"github.com/osse101/Pickem_Go/internal/domain"
	"github.com/osse101/Pickem_Go/internal/matchpoints"
)

// RatioPointsRequest prices a match with the ratio rule
type RatioPointsRequest struct {
	OddsRatio float64     `json:"odds_ratio" validate:"required,min=1,max=20"`
	Favorite  domain.Side `json:"favorite,omitempty" validate:"omitempty,side"`
}

// AmericanPointsRequest prices a match with the balanced expected-value rule
type AmericanPointsRequest struct {
	AmericanOdds int `json:"american_odds" validate:"american_odds"`
	BasePoints   int `json:"base_points,omitempty" validate:"omitempty,min=1,max=100000"`
}

// HandleRatioPoints applies the ratio rule
// @Summary Ratio match points
// @Description Underdog earns 1000, favorite 1000/ratio floored at 50
// @Tags match-points
// @Accept json
// @Produce json
// @Param request body RatioPointsRequest true "Odds ratio and optional favored side"
// @Success 200 {object} domain.SidedMatchPoints
// @Failure 400 {object} ValidationErrorResponse
// @Router /match-points/ratio [post]
func HandleRatioPoints() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RatioPointsRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpRatioPoints); err != nil {
			return
		}

		points := matchpoints.CalculateMatchPoints(req.OddsRatio)
		respondJSON(w, http.StatusOK, matchpoints.AssignFavorite(points, req.Favorite))
	}
}

// HandleAmericanPoints applies the balanced rule
// @Summary Balanced match points
// @Description Underdog pinned at base points, favorite scaled to equal expected value
// @Tags match-points
// @Accept json
// @Produce json
// @Param request body AmericanPointsRequest true "American odds and base points"
// @Success 200 {object} domain.BalancedMatchPoints
// @Failure 400 {object} ValidationErrorResponse
// @Router /match-points/american [post]
func HandleAmericanPoints(defaultBase int) http.HandlerFunc {
	if defaultBase <= 0 {
		defaultBase = matchpoints.DefaultBasePoints
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req AmericanPointsRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpAmericanPoints); err != nil {
			return
		}

		base := req.BasePoints
		if base == 0 {
			base = defaultBase
		}
		respondJSON(w, http.StatusOK, matchpoints.CalculateMatchPointsFromAmerican(req.AmericanOdds, base))
	}
}
