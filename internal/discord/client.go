package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/LootForge_Go/internal/handler"
)

// APIClient talks to the LootForge HTTP API
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	MaxRetries int
	RetryDelay time.Duration
}

// APIError is a non-2xx answer from the API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %d %s", e.StatusCode, e.Message)
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		Client:     &http.Client{Timeout: DefaultClientTimeout},
		APIKey:     apiKey,
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// retryable reports whether a status is worth another attempt.
// 503 is the definitive no-compendium answer and is not retried.
func retryable(status int) bool {
	return status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable
}

// doRequest performs an HTTP request with exponential backoff on transport
// errors and retryable statuses.
func (c *APIClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.RetryDelay*time.Duration(1<<uint(attempt-1)) + jitter(c.RetryDelay)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		if !retryable(resp.StatusCode) {
			return resp, nil
		}

		_ = resp.Body.Close()
		lastErr = &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

func jitter(base time.Duration) time.Duration {
	if base <= 0 {
		return 0
	}
	return time.Duration(rand.Int64N(int64(base)/5+1))
}

// decode reads a 2xx body into out, or turns the error body into an APIError
func decode(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		var errResp handler.ErrorResponse
		msg := http.StatusText(resp.StatusCode)
		if json.Unmarshal(raw, &errResp) == nil && errResp.Error != "" {
			msg = errResp.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// GenerateLoot creates a loot container and places its token
func (c *APIClient) GenerateLoot(ctx context.Context, req handler.GenerateLootRequest) (*handler.GenerateLootResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, PathGenerate, req)
	if err != nil {
		return nil, err
	}
	var out handler.GenerateLootResponse
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PreviewLoot runs the selection without creating anything
func (c *APIClient) PreviewLoot(ctx context.Context, req handler.GenerateLootRequest) (*handler.PreviewLootResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, PathPreview, req)
	if err != nil {
		return nil, err
	}
	var out handler.PreviewLootResponse
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBudget fetches the gold budget for a party
func (c *APIClient) GetBudget(ctx context.Context, level, partySize int) (*handler.BudgetResponse, error) {
	q := url.Values{}
	q.Set("level", strconv.Itoa(level))
	q.Set("party_size", strconv.Itoa(partySize))

	resp, err := c.doRequest(ctx, http.MethodGet, PathBudget+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	var out handler.BudgetResponse
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Healthy reports whether the API answers its liveness probe
func (c *APIClient) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+PathHealthz, nil)
	if err != nil {
		return false
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// statusOf extracts the API status code from err, or 0
func statusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
