package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Pickem_Go/internal/domain"
)

func get(t *testing.T, h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandleConvertOdds(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		american int
		decimal  float64
		prob     float64
		display  string
	}{
		{"underdog line", "american=150", 150, 2.5, 0.4, "+150"},
		{"favorite line", "american=-150", -150, 100.0/150 + 1, 0.6, "-150"},
		{"pick-em", "american=0", 0, 1.0, 0.5, "Even (Pick-em)"},
		{"decimal underdog", "decimal=3.0", 200, 3.0, 100.0 / 300, "+200"},
		{"decimal favorite", "decimal=1.5", -200, 1.5, 200.0 / 300, "-200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, HandleConvertOdds(), "/odds/convert?"+tt.query)
			require.Equal(t, http.StatusOK, w.Code)

			var resp ConvertOddsResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.american, resp.American)
			assert.InDelta(t, tt.decimal, resp.Decimal, 1e-9)
			assert.InDelta(t, tt.prob, resp.ImpliedProbability, 1e-9)
			assert.Equal(t, tt.display, resp.Formatted)
		})
	}
}

func TestHandleConvertOdds_BadInput(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"no parameter", ""},
		{"both parameters", "american=150&decimal=2.5"},
		{"not a number", "american=abc"},
		{"decimal below one", "decimal=0.5"},
		{"line inside the dead zone", "american=50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, HandleConvertOdds(), "/odds/convert?"+tt.query)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

func TestHandleValidateOdds(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  domain.OddsValidation
	}{
		{"valid line", "american=-250", domain.OddsValidation{IsValid: true}},
		{"short underdog", "american=50", domain.OddsValidation{Error: "Positive odds must be +100 or higher"}},
		{"valid ratio", "ratio=2.5", domain.OddsValidation{IsValid: true}},
		{"ratio below one", "ratio=0.5", domain.OddsValidation{Error: "Odds ratio must be at least 1.0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, HandleValidateOdds(), "/odds/validate?"+tt.query)
			require.Equal(t, http.StatusOK, w.Code)

			var got domain.OddsValidation
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.want.IsValid, got.IsValid)
			if !tt.want.IsValid {
				assert.NotEmpty(t, got.Error)
			}
		})
	}
}

func TestHandleSuggestOdds(t *testing.T) {
	t.Run("single tier", func(t *testing.T) {
		w := get(t, HandleSuggestOdds(), "/odds/suggest?tier=moderate")
		require.Equal(t, http.StatusOK, w.Code)

		var got []SuggestOddsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, -250, got[0].AmericanOdds)
		assert.Equal(t, 3.0, got[0].OddsRatio)
	})

	t.Run("all tiers", func(t *testing.T) {
		w := get(t, HandleSuggestOdds(), "/odds/suggest")
		require.Equal(t, http.StatusOK, w.Code)

		var got []SuggestOddsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 4)
		assert.Equal(t, "slight", got[0].Tier)
		assert.Equal(t, "extreme", got[3].Tier)
	})

	t.Run("unknown tier", func(t *testing.T) {
		w := get(t, HandleSuggestOdds(), "/odds/suggest?tier=lopsided")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), domain.ErrMsgUnknownOddsTier)
	})
}

func TestHandleDescribeOdds(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"moderate favorite", "american=-250", "Moderate favorite (-250): favorite 400 pts, underdog 1000 pts"},
		{"pick-em", "american=0", "Even matchup (Pick-em): both sides 1000 pts"},
		{"custom base", "american=0&base_points=500", "Even matchup (Pick-em): both sides 500 pts"},
		{"ratio", "ratio=1.0", "Even matchup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, HandleDescribeOdds(), "/odds/describe?"+tt.query)
			require.Equal(t, http.StatusOK, w.Code)

			var got DescribeOddsResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got.Description)
		})
	}

	t.Run("non-positive base", func(t *testing.T) {
		w := get(t, HandleDescribeOdds(), "/odds/describe?american=-250&base_points=0")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
