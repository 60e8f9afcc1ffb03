package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/osse101/Pickem_Go/internal/domain"
	"github.com/osse101/Pickem_Go/internal/handler"
)

// Client retry and timeout settings
const (
	APIPrefix         = "/api/v1"
	RequestTimeout    = 10 * time.Second
	MaxRetries        = 3
	BaseRetryDelay    = 500 * time.Millisecond
	RetryMultiplier   = 2
	RetryJitterFactor = 0.2
	HeaderAPIKey      = "X-API-Key"
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// APIError is a non-2xx answer from the scoring API
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error: %s", e.Message)
	}
	return fmt.Sprintf("API returned status: %d", e.Status)
}

// APIClient talks to the pick'em HTTP API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string

	// retryDelay is the first backoff step; tests shrink it
	retryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		Client:     &http.Client{Timeout: RequestTimeout},
		APIKey:     apiKey,
		retryDelay: BaseRetryDelay,
	}
}

// doRequest performs a request with exponential backoff on transport
// failures and 5xx answers. 4xx answers are returned immediately.
func (c *APIClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		if reqBody, err = json.Marshal(body); err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path

	var resp *http.Response
	var stopped bool
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			stopped = true
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		req.Header.Set(HeaderContentType, ContentTypeJSON)
		if c.APIKey != "" {
			req.Header.Set(HeaderAPIKey, c.APIKey)
		}

		r, err := c.Client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				stopped = true
				return backoff.Permanent(ctx.Err())
			}
			return err
		}
		if r.StatusCode >= http.StatusInternalServerError {
			r.Body.Close()
			return &APIError{Status: r.StatusCode}
		}

		resp = r
		return nil
	}

	notify := func(err error, delay time.Duration) {
		slog.Warn("API request failed, will retry", "path", path, "error", err, "delay", delay)
	}

	err := backoff.RetryNotify(operation, c.retryPolicy(ctx), notify)
	switch {
	case err == nil:
		return resp, nil
	case stopped, ctx.Err() != nil:
		return nil, err
	default:
		return nil, fmt.Errorf("max retries exceeded: %w", err)
	}
}

// retryPolicy allows MaxRetries retries after the first attempt, doubling
// the delay from retryDelay and stopping early when ctx is done
func (c *APIClient) retryPolicy(ctx context.Context) backoff.BackOffContext {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retryDelay
	b.RandomizationFactor = RetryJitterFactor
	b.Multiplier = RetryMultiplier
	b.MaxElapsedTime = 0
	b.Reset()
	return backoff.WithContext(backoff.WithMaxRetries(b, MaxRetries), ctx)
}

// getJSON issues a request and decodes a 2xx body into out
func (c *APIClient) getJSON(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResp handler.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			return &APIError{Status: resp.StatusCode, Message: errResp.Error}
		}
		return &APIError{Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ConvertOdds returns a line in decimal and probability form
func (c *APIClient) ConvertOdds(ctx context.Context, american int) (*handler.ConvertOddsResponse, error) {
	var out handler.ConvertOddsResponse
	path := APIPrefix + "/odds/convert?american=" + strconv.Itoa(american)
	if err := c.getJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AmericanPoints prices a line with the balanced rule at the server's base points
func (c *APIClient) AmericanPoints(ctx context.Context, american int) (*domain.BalancedMatchPoints, error) {
	var out domain.BalancedMatchPoints
	req := handler.AmericanPointsRequest{AmericanOdds: american}
	if err := c.getJSON(ctx, http.MethodPost, APIPrefix+"/match-points/american", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RatioPoints prices a ratio with the ratio rule
func (c *APIClient) RatioPoints(ctx context.Context, ratio float64) (*domain.SidedMatchPoints, error) {
	var out domain.SidedMatchPoints
	req := handler.RatioPointsRequest{OddsRatio: ratio}
	if err := c.getJSON(ctx, http.MethodPost, APIPrefix+"/match-points/ratio", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Pick6Potential returns the best case for a Pick 6 selection
func (c *APIClient) Pick6Potential(ctx context.Context, american int, doubleDown bool) (*handler.PotentialPointsResponse, error) {
	params := url.Values{}
	params.Set("american", strconv.Itoa(american))
	params.Set("double_down", strconv.FormatBool(doubleDown))

	var out handler.PotentialPointsResponse
	if err := c.getJSON(ctx, http.MethodGet, APIPrefix+"/pick6/potential?"+params.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetEvent fetches an event card
func (c *APIClient) GetEvent(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	var out domain.Event
	if err := c.getJSON(ctx, http.MethodGet, APIPrefix+"/events/"+eventID.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLeaderboard fetches the top entries of an event
func (c *APIClient) GetLeaderboard(ctx context.Context, eventID uuid.UUID, limit int) ([]domain.LeaderboardEntry, error) {
	path := fmt.Sprintf("%s/events/%s/leaderboard?limit=%d", APIPrefix, eventID, limit)

	var out []domain.LeaderboardEntry
	if err := c.getJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Healthy reports whether the API answers its liveness probe
func (c *APIClient) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/healthz", nil)
	if err != nil {
		return false
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// statusOf extracts the HTTP status from an API error, or 0
func statusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
