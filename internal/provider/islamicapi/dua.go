// Package islamicapi talks to the older dua provider generation: English
// envelope names ({category, duas}) around records that may still use either
// field-naming convention. It exists as the retry target when the primary
// dua provider fails or answers with an unrecognized shape.
package islamicapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sakinah-app/sakinah/internal/model"
	"github.com/sakinah-app/sakinah/internal/provider"
)

const (
	providerName   = "islamicapi"
	defaultBaseURL = "https://doa.islamicapi.com/api/v1"
)

// Client communicates with one legacy dua deployment.
type Client struct {
	httpClient *http.Client
	// BaseURL is exported for testing with httptest.
	BaseURL string
}

// NewClient creates a client with sensible defaults.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    baseURL,
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

type categoriesResponse struct {
	Categories []map[string]any `json:"categories"`
	Data       []map[string]any `json:"data"`
}

type duasResponse struct {
	// Both envelope generations are declared; whichever pair the upstream
	// fills wins.
	Category map[string]any   `json:"category"`
	Duas     []map[string]any `json:"duas"`
	Kategori map[string]any   `json:"kategori"`
	Doa      []map[string]any `json:"doa"`
}

// FetchDuaCategories lists the thematic dua groups.
func (c *Client) FetchDuaCategories(ctx context.Context) ([]model.DuaCategory, error) {
	const op = "fetch dua categories"

	var raw categoriesResponse
	if err := c.getJSON(ctx, op, "/categories", &raw); err != nil {
		return nil, err
	}
	entries := raw.Categories
	if entries == nil {
		entries = raw.Data
	}
	if entries == nil {
		return nil, &provider.MalformedError{Provider: providerName, Op: op, Reason: "missing categories array"}
	}

	categories := make([]model.DuaCategory, 0, len(entries))
	for _, entry := range entries {
		categories = append(categories, provider.DecodeDuaCategory(entry))
	}
	return categories, nil
}

// FetchDuasByCategory returns one category's descriptor and supplications,
// accepting either envelope generation.
func (c *Client) FetchDuasByCategory(ctx context.Context, categoryID int) (model.DuaCategory, []model.Dua, error) {
	op := fmt.Sprintf("fetch duas for category %d", categoryID)

	var raw duasResponse
	if err := c.getJSON(ctx, op, fmt.Sprintf("/category/%d", categoryID), &raw); err != nil {
		return model.DuaCategory{}, nil, err
	}

	category, entries := raw.Category, raw.Duas
	if category == nil && raw.Kategori != nil {
		category, entries = raw.Kategori, raw.Doa
	}
	if category == nil || entries == nil {
		return model.DuaCategory{}, nil, &provider.MalformedError{Provider: providerName, Op: op, Reason: "unrecognized envelope"}
	}

	duas := make([]model.Dua, 0, len(entries))
	for _, entry := range entries {
		duas = append(duas, provider.DecodeDua(entry))
	}
	return provider.DecodeDuaCategory(category), duas, nil
}
