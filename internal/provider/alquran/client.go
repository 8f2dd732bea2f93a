// Package alquran talks to the alquran.cloud API family: English field names
// (number, englishName, ...), surah detail in a single call with embedded
// ayahs, and server-side full-text search. It serves as the secondary Quran
// provider for per-field enrichment and as the search backend.
package alquran

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sakinah-app/sakinah/internal/provider"
)

const (
	providerName   = "alquran"
	defaultBaseURL = "https://api.alquran.cloud/v1"

	// defaultEdition selects the Indonesian translation used for
	// enrichment when the caller does not ask for another one.
	defaultEdition = "id.indonesian"
)

// Client communicates with one alquran.cloud deployment.
type Client struct {
	httpClient *http.Client
	// BaseURL is exported for testing with httptest.
	BaseURL string
	// Edition is the translation edition requested for surah detail.
	Edition string
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
		Edition:    defaultEdition,
	}
}

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
