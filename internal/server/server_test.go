package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Pickem_Go/internal/contest"
	"github.com/osse101/Pickem_Go/internal/domain"
)

const testAPIKey = "test-key"

type pingPool struct{ err error }

func (p pingPool) Ping(ctx context.Context) error { return p.err }
func (p pingPool) Close()                         {}

func testRouter() http.Handler {
	// The engine routes never reach the contest service
	var svc contest.Service
	return NewRouter(Options{APIKey: testAPIKey, ServiceName: "pickem", Version: "test", BasePoints: 1000}, pingPool{}, svc)
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	handler := requestIDMiddleware(loggingMiddleware(okHandler()))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/odds/convert", nil)
	req.Header.Set("X-API-Key", "secret-key-123")
	req.Header.Set("Authorization", "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, "TestAgent")
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
}

func TestRequestIDMiddleware_KeepsCallerRequestID(t *testing.T) {
	handler := requestIDMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/odds/convert", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(HeaderRequestID))
}

func TestRequestIDMiddleware_SkipsProbes(t *testing.T) {
	handler := requestIDMiddleware(loggingMiddleware(okHandler()))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Empty(t, rec.Header().Get(HeaderRequestID))
}

func TestRouter_AuthFailureLoggedWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/odds/convert?american=150", nil)
	req.Header.Set(HeaderAPIKey, "wrong-key")
	req.Header.Set(HeaderRequestID, "req-auth-1")
	rec := httptest.NewRecorder()

	testRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "req-auth-1", rec.Header().Get(HeaderRequestID))
	var authLine string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, LogMsgAuthFailed) {
			authLine = line
		}
	}
	require.NotEmpty(t, authLine)
	assert.Contains(t, authLine, "request_id=req-auth-1")
}

func TestRouter_PublicRoutes(t *testing.T) {
	router := testRouter()

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestRouter_APIRequiresKey(t *testing.T) {
	router := testRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/odds/convert?american=-150", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_EngineRoutes(t *testing.T) {
	router := testRouter()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   string
	}{
		{"convert", http.MethodGet, "/api/v1/odds/convert?american=200", "", `"decimal":3`},
		{"ratio points", http.MethodPost, "/api/v1/match-points/ratio", `{"odds_ratio":2.5,"favorite":"A"}`, `"favorite_points":400`},
		{"american points", http.MethodPost, "/api/v1/match-points/american", `{"american_odds":-150}`, `"favorite_points":666`},
		{"pick6 score", http.MethodPost, "/api/v1/pick6/score", `{"american_odds":150,"is_winner":true,"finish_type":"ko_tko"}`, `"total_points":215`},
		{"pick6 potential", http.MethodGet, "/api/v1/pick6/potential?american=-150&double_down=true", "", `"formatted":"233.4"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set(HeaderAPIKey, testAPIKey)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestRouter_RequestSizeLimit(t *testing.T) {
	router := testRouter()

	big := `{"american_odds":150,"is_winner":true,"finish_type":"` + strings.Repeat("x", MaxRequestBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pick6/score", strings.NewReader(big))
	req.Header.Set(HeaderAPIKey, testAPIKey)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_VersionBody(t *testing.T) {
	router := testRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "pickem", body["service"])
	assert.Equal(t, "test", body["version"])
}

func TestRouter_UnknownFormatIsValidationError(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(`{"name":"X","format":"parlay","matches":[{"wrestler_a":"A","wrestler_b":"B"}]}`))
	req.Header.Set(HeaderAPIKey, testAPIKey)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), string(domain.FormatMatchPicks))
}
