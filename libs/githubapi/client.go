// Package githubapi is a minimal GitHub REST v3 client covering the
// endpoints the analyzer needs: repository metadata, README, contents
// listing, language statistics and contributors.
package githubapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ddekshina/ProjectProbe/config"
	"go.uber.org/zap"
)

// Client talks to the GitHub REST API. A zero token means unauthenticated
// requests with the lower rate limit.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	l       *zap.Logger
}

func New(l *zap.Logger) *Client {
	return &Client{
		baseURL: config.GitHub.BaseURL(),
		token:   config.GitHub.Token(),
		http:    &http.Client{Timeout: 30 * time.Second},
		l:       l,
	}
}

// NewWithBaseURL is used by tests to point the client at a fake server.
func NewWithBaseURL(l *zap.Logger, baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
		l:       l,
	}
}

// StatusError is a non-2xx response from the API.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("github api: %d %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is, or wraps, a 404 from the API.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// getJSON performs a GET against an API path and decodes the response body
// into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("github request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Message string `json:"message"`
		}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = json.Unmarshal(body, &apiErr)
		return &StatusError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
