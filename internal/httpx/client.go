// Package httpx provides a small HTTP client wrapper with a fixed
// timeout, a default user agent, and typed status errors. It is shared
// by the Dinox API client and the video fetcher's URL probe.
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultTimeout = 30 * time.Second

	// DesktopUserAgent mimics a desktop Chrome browser. Some video hosts
	// refuse requests without a browser-looking user agent.
	DesktopUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Config holds HTTP client configuration.
type Config struct {
	// Timeout for individual HTTP requests. Defaults to 30 seconds.
	Timeout time.Duration
	// UserAgent for HTTP requests. Defaults to DesktopUserAgent.
	UserAgent string
}

// Client wraps an HTTP client with fixed timeout and error typing.
type Client struct {
	base      *http.Client
	userAgent string
}

// New creates a new HTTP client with the given configuration.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = DesktopUserAgent
	}
	return &Client{
		base:      &http.Client{Timeout: timeout},
		userAgent: ua,
	}
}

// Response represents an HTTP response with status code and body.
type Response struct {
	StatusCode int
	Body       []byte
}

// HTTPError indicates a non-2xx HTTP response.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

// Error returns a string representation of the HTTP error.
func (e *HTTPError) Error() string {
	if len(e.Body) > 0 {
		return fmt.Sprintf("http error: status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// Get performs a GET request. Non-2xx statuses are returned as *HTTPError.
func (c *Client) Get(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	return c.do(ctx, http.MethodGet, url, nil, headers)
}

// PostJSON marshals payload and POSTs it as application/json.
// Non-2xx statuses are returned as *HTTPError.
func (c *Client) PostJSON(ctx context.Context, url string, payload any, headers map[string]string) (*Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	merged := map[string]string{"Content-Type": "application/json"}
	for k, v := range headers {
		merged[k] = v
	}
	return c.do(ctx, http.MethodPost, url, bytes.NewReader(data), merged)
}

func (c *Client) do(ctx context.Context, method, url string, body io.Reader, headers map[string]string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: respBody}
	}

	return &Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}
