package discord

import (
	"context"
	"math"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Pickem_Go/internal/domain"
	"github.com/osse101/Pickem_Go/internal/handler"
)

func TestAPIClient_ConvertOdds(t *testing.T) {
	tc := setupTestContext(t)
	tc.Mux.HandleFunc("GET /api/v1/odds/convert", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-api-key", r.Header.Get(HeaderAPIKey))
		assert.Equal(t, "-150", r.URL.Query().Get("american"))
		writeJSON(w, http.StatusOK, handler.ConvertOddsResponse{American: -150, Decimal: 1.67, ImpliedProbability: 0.6, Formatted: "-150"})
	})

	got, err := tc.Client.ConvertOdds(context.Background(), -150)

	require.NoError(t, err)
	assert.Equal(t, "-150", got.Formatted)
	assert.InDelta(t, 0.6, got.ImpliedProbability, 1e-9)
}

func TestAPIClient_RetriesServerErrors(t *testing.T) {
	tc := setupTestContext(t)
	var calls atomic.Int32
	tc.Mux.HandleFunc("POST /api/v1/match-points/american", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, domain.BalancedMatchPoints{MatchPoints: domain.MatchPoints{FavoritePoints: 666, UnderdogPoints: 1000}})
	})

	got, err := tc.Client.AmericanPoints(context.Background(), -150)

	require.NoError(t, err)
	assert.Equal(t, 666, got.FavoritePoints)
	assert.Equal(t, int32(3), calls.Load())
}

func TestAPIClient_GivesUpAfterMaxRetries(t *testing.T) {
	tc := setupTestContext(t)
	var calls atomic.Int32
	tc.Mux.HandleFunc("GET /api/v1/pick6/potential", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := tc.Client.Pick6Potential(context.Background(), 150, true)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "max retries exceeded")
	assert.Equal(t, http.StatusServiceUnavailable, statusOf(err))
	assert.Equal(t, int32(MaxRetries+1), calls.Load())
}

func TestAPIClient_ClientErrorsAreNotRetried(t *testing.T) {
	tc := setupTestContext(t)
	var calls atomic.Int32
	id := uuid.New()
	tc.Mux.HandleFunc("GET /api/v1/events/{id}", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusNotFound, handler.ErrorResponse{Error: "Event not found"})
	})

	_, err := tc.Client.GetEvent(context.Background(), id)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Event not found", apiErr.Message)
	assert.Equal(t, int32(1), calls.Load())
}

func TestAPIClient_RespectsContext(t *testing.T) {
	tc := setupTestContext(t)
	tc.Client.retryDelay = BaseRetryDelay
	tc.Mux.HandleFunc("GET /api/v1/odds/convert", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tc.Client.ConvertOdds(ctx, 200)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestAPIClient_StopsRetryingWhenCancelled(t *testing.T) {
	tc := setupTestContext(t)
	tc.Client.retryDelay = BaseRetryDelay
	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	tc.Mux.HandleFunc("GET /api/v1/odds/convert", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		cancel()
		w.WriteHeader(http.StatusBadGateway)
	})

	start := time.Now()
	_, err := tc.Client.ConvertOdds(ctx, 200)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(1), calls.Load())
	assert.Less(t, time.Since(start), BaseRetryDelay, "no backoff wait after cancel")
}

func TestAPIClient_RetryPolicy(t *testing.T) {
	c := NewAPIClient("http://api", "")
	policy := c.retryPolicy(context.Background())

	var delays []time.Duration
	for d := policy.NextBackOff(); d != backoff.Stop; d = policy.NextBackOff() {
		delays = append(delays, d)
	}

	require.Len(t, delays, MaxRetries)
	for i, d := range delays {
		base := float64(BaseRetryDelay) * math.Pow(RetryMultiplier, float64(i))
		assert.InDelta(t, base, float64(d), base*RetryJitterFactor+1, "retry %d", i+1)
	}
}

func TestAPIClient_Leaderboard(t *testing.T) {
	tc := setupTestContext(t)
	id := uuid.New()
	tc.Mux.HandleFunc("GET /api/v1/events/{id}/leaderboard", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, id.String(), r.PathValue("id"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		writeJSON(w, http.StatusOK, []domain.LeaderboardEntry{{Rank: 1, UserID: "viewer-1", TotalPoints: 645}})
	})

	got, err := tc.Client.GetLeaderboard(context.Background(), id, 5)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "viewer-1", got[0].UserID)
}

func TestAPIClient_Healthy(t *testing.T) {
	tc := setupTestContext(t)
	assert.False(t, tc.Client.Healthy(context.Background()), "no /healthz route yet")

	tc.Mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	assert.True(t, tc.Client.Healthy(context.Background()))
}
