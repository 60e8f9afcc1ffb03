package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/osse101/Pickem_Go/internal/domain"
	"github.com/osse101/Pickem_Go/internal/logger"
	"github.com/osse101/Pickem_Go/internal/matchpoints"
	"github.com/osse101/Pickem_Go/internal/odds"
	"github.com/osse101/Pickem_Go/internal/oddsinput"
)

// ConvertOddsResponse shows one line in every supported notation
type ConvertOddsResponse struct {
	American           int     `json:"american"`
	Decimal            float64 `json:"decimal"`
	ImpliedProbability float64 `json:"implied_probability"`
	Formatted          string  `json:"formatted"`
}

// SuggestOddsResponse is the canonical line for a favorite tier
type SuggestOddsResponse struct {
	Tier         string  `json:"tier"`
	AmericanOdds int     `json:"american_odds"`
	OddsRatio    float64 `json:"odds_ratio"`
	Description  string  `json:"description"`
}

// DescribeOddsResponse is a human readable summary of a line
type DescribeOddsResponse struct {
	Description string `json:"description"`
}

// oneOf reads exactly one of two query parameters, writing a 400 otherwise
func oneOf(r *http.Request, w http.ResponseWriter, a, b string) (name, value string, ok bool) {
	av, bv := r.URL.Query().Get(a), r.URL.Query().Get(b)
	switch {
	case av != "" && bv == "":
		return a, av, true
	case bv != "" && av == "":
		return b, bv, true
	}
	respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgOneOfParams, a, b))
	return "", "", false
}

// HandleConvertOdds converts between American and decimal odds
// @Summary Convert odds
// @Description Convert American odds to decimal (or back) with the implied win probability
// @Tags odds
// @Produce json
// @Param american query int false "American odds"
// @Param decimal query number false "Decimal odds (>= 1.0)"
// @Success 200 {object} ConvertOddsResponse
// @Failure 400 {object} ErrorResponse
// @Router /odds/convert [get]
func HandleConvertOdds() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, raw, ok := oneOf(r, w, "american", "decimal")
		if !ok {
			return
		}

		var american int
		if name == "american" {
			v, err := strconv.Atoi(raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, name))
				return
			}
			american = v
		} else {
			d, err := strconv.ParseFloat(raw, 64)
			if err != nil || d < 1.0 {
				respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, name))
				return
			}
			american = odds.DecimalToAmerican(d)
		}

		if v := oddsinput.ValidateAmericanOdds(american); !v.IsValid {
			respondServiceError(w, r, OpConvertOdds, fmt.Errorf("%w: %s", domain.ErrInvalidOdds, v.Error))
			return
		}

		prob := 0.5
		if american != 0 {
			prob = odds.ImpliedProbability(american)
		}

		respondJSON(w, http.StatusOK, ConvertOddsResponse{
			American:           american,
			Decimal:            odds.AmericanToDecimal(american),
			ImpliedProbability: prob,
			Formatted:          oddsinput.FormatAmericanOdds(american),
		})
	}
}

// HandleValidateOdds checks a line or ratio against the accepted bounds
// @Summary Validate odds
// @Description Report the first rule an American line or odds ratio breaks
// @Tags odds
// @Produce json
// @Param american query int false "American odds"
// @Param ratio query number false "Odds ratio"
// @Success 200 {object} domain.OddsValidation
// @Failure 400 {object} ErrorResponse
// @Router /odds/validate [get]
func HandleValidateOdds() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, raw, ok := oneOf(r, w, "american", "ratio")
		if !ok {
			return
		}

		var result domain.OddsValidation
		if name == "american" {
			v, err := strconv.Atoi(raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, name))
				return
			}
			result = oddsinput.ValidateAmericanOdds(v)
		} else {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, name))
				return
			}
			result = oddsinput.ValidateOddsRatio(v)
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleSuggestOdds returns canonical lines for favorite tiers
// @Summary Suggest odds
// @Description Canonical American odds and ratio for a tier, or every tier when none is given
// @Tags odds
// @Produce json
// @Param tier query string false "slight, moderate, heavy or extreme"
// @Success 200 {array} SuggestOddsResponse
// @Failure 400 {object} ErrorResponse
// @Router /odds/suggest [get]
func HandleSuggestOdds() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tiers := oddsinput.Tiers()
		if tier := r.URL.Query().Get("tier"); tier != "" {
			tiers = []string{tier}
		}

		out := make([]SuggestOddsResponse, 0, len(tiers))
		for _, tier := range tiers {
			american, err := oddsinput.SuggestAmericanOdds(tier)
			if err != nil {
				respondServiceError(w, r, OpSuggestOdds, err)
				return
			}
			ratio, err := oddsinput.SuggestOddsRatio(tier)
			if err != nil {
				respondServiceError(w, r, OpSuggestOdds, err)
				return
			}
			out = append(out, SuggestOddsResponse{
				Tier:         tier,
				AmericanOdds: american,
				OddsRatio:    ratio,
				Description:  oddsinput.OddsDescription(ratio),
			})
		}

		respondJSON(w, http.StatusOK, out)
	}
}

// HandleDescribeOdds summarises a line with the balanced points for both sides,
// or labels a ratio with its tier
// @Summary Describe odds
// @Tags odds
// @Produce json
// @Param american query int false "American odds"
// @Param base_points query int false "Underdog base points (default 1000)"
// @Param ratio query number false "Odds ratio"
// @Success 200 {object} DescribeOddsResponse
// @Failure 400 {object} ErrorResponse
// @Router /odds/describe [get]
func HandleDescribeOdds() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, raw, ok := oneOf(r, w, "american", "ratio")
		if !ok {
			return
		}

		if name == "ratio" {
			ratio, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, name))
				return
			}
			respondJSON(w, http.StatusOK, DescribeOddsResponse{Description: oddsinput.OddsDescription(ratio)})
			return
		}

		american, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, name))
			return
		}
		base, ok := GetIntQueryParam(r, w, "base_points", matchpoints.DefaultBasePoints)
		if !ok {
			return
		}
		if base <= 0 {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, "base_points"))
			return
		}

		logger.FromContext(r.Context()).Debug(OpDescribeOdds, "american", american, "base_points", base)
		respondJSON(w, http.StatusOK, DescribeOddsResponse{
			Description: oddsinput.AmericanOddsDescription(american, base),
		})
	}
}
