package square

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"menu.GO/config"
)

// ErrSourceUnavailable wraps any transport or provider failure from Square.
// The adapter does not retry; the refresh orchestrator owns that policy.
var ErrSourceUnavailable = errors.New("square: source unavailable")

const apiVersion = "2024-06-04"

// Client talks to the Square REST API for the three calls this site needs:
// catalog listing, inventory counts and payment links.
type Client struct {
	cfg     *config.SquareConfig
	baseURL string
	http    *http.Client
}

func NewClient(cfg *config.SquareConfig) *Client {
	return &Client{
		cfg:     cfg,
		baseURL: cfg.BaseURL(),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// NewClientWithBaseURL overrides the API host (tests point this at httptest).
func NewClientWithBaseURL(cfg *config.SquareConfig, baseURL string) *Client {
	c := NewClient(cfg)
	c.baseURL = baseURL
	return c
}

// do performs one authenticated call and decodes the JSON response into out.
// Non-2xx responses and transport errors both surface as ErrSourceUnavailable.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encode request: %v", ErrSourceUnavailable, err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	req.Header.Set("Square-Version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Log the provider body server-side; callers only see the sentinel.
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		log.Printf("square: %s %s returned %d: %s", method, path, resp.StatusCode, b)
		return fmt.Errorf("%w: status %d", ErrSourceUnavailable, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrSourceUnavailable, err)
	}
	return nil
}
