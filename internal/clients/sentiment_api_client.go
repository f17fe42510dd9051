package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/spacesedan/sentiment-api/internal/models"
)

// SentimentAPIClient calls a running sentiment API.
type SentimentAPIClient struct {
	baseURL string
	Client  *http.Client
}

// APIError is a non-2xx answer from the sentiment API.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Detail)
}

func NewSentimentAPIClient(baseURL string, timeout time.Duration) *SentimentAPIClient {
	if timeout <= 0 {
		timeout = DEFAULT_TIMEOUT
	}
	return &SentimentAPIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
	}
}

func (c *SentimentAPIClient) Health(ctx context.Context) (models.HealthResponse, error) {
	var result models.HealthResponse
	err := c.doJSON(ctx, http.MethodGet, "/health", nil, &result)
	return result, err
}

func (c *SentimentAPIClient) Classify(ctx context.Context, text string) (models.SentimentResponse, error) {
	var result models.SentimentResponse
	start := time.Now()

	err := c.doJSON(ctx, http.MethodPost, "/sentiment", models.SentimentRequest{Text: text}, &result)
	if err != nil {
		return result, err
	}

	slog.Debug("[SentimentAPIClient] Classification received",
		slog.String("label", result.Label),
		slog.Duration("elapsed", time.Since(start)))
	return result, nil
}

func (c *SentimentAPIClient) doJSON(ctx context.Context, method, path string, input any, output any) error {
	var body io.Reader
	if input != nil {
		payload, err := json.Marshal(input)
		if err != nil {
			return fmt.Errorf("failed to marshal input: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if input != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr models.ErrorResponse
		if json.Unmarshal(respBody, &apiErr) != nil || apiErr.Detail == "" {
			apiErr.Detail = getPreview(respBody)
		}
		return &APIError{StatusCode: resp.StatusCode, Detail: apiErr.Detail}
	}

	if err := json.Unmarshal(respBody, output); err != nil {
		slog.Error("[SentimentAPIClient] Failed to unmarshal response",
			slog.String("path", path),
			slog.String("error", err.Error()),
			slog.String("raw_response", getPreview(respBody)))
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

func getPreview(respBody []byte) string {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return raw
}
