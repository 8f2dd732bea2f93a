// Package myquran talks to the myquran.com v2 API family, the primary
// provider for prayer schedules, Quran text and duas. Field names are
// Indonesian (nomor, nama_latin, id_kategori, ...).
package myquran

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sakinah-app/sakinah/internal/provider"
)

const (
	providerName   = "myquran"
	defaultBaseURL = "https://api.myquran.com/v2"
)

// Client communicates with one myquran.com deployment.
type Client struct {
	httpClient *http.Client
	// BaseURL is exported for testing with httptest.
	BaseURL string
}

// NewClient creates a client with sensible defaults. An empty baseURL selects
// the public deployment.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    baseURL,
	}
}

// getJSON issues a GET for path and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, op, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return &provider.UpstreamError{Provider: providerName, Op: op, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &provider.UpstreamError{Provider: providerName, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &provider.UpstreamError{
			Provider: providerName,
			Op:       op,
			Err:      fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &provider.MalformedError{Provider: providerName, Op: op, Reason: err.Error()}
	}
	return nil
}
