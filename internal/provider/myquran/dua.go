package myquran

import (
	"context"
	"fmt"

	"github.com/sakinah-app/sakinah/internal/model"
	"github.com/sakinah-app/sakinah/internal/provider"
)

// Dua payloads are decoded loosely because this family has shipped more than
// one naming generation for the same fields; provider.DecodeDua reconciles.
type duaCategoriesResponse struct {
	Status bool             `json:"status"`
	Data   []map[string]any `json:"data"`
}

type duasResponse struct {
	Status bool `json:"status"`
	Data   struct {
		Kategori map[string]any   `json:"kategori"`
		Doa      []map[string]any `json:"doa"`
	} `json:"data"`
}

// FetchDuaCategories lists the thematic dua groups.
func (c *Client) FetchDuaCategories(ctx context.Context) ([]model.DuaCategory, error) {
	const op = "fetch dua categories"

	var raw duaCategoriesResponse
	if err := c.getJSON(ctx, op, "/doa/kategoridoa", &raw); err != nil {
		return nil, err
	}
	if !raw.Status || raw.Data == nil {
		return nil, &provider.MalformedError{Provider: providerName, Op: op, Reason: "missing data array"}
	}

	categories := make([]model.DuaCategory, 0, len(raw.Data))
	for _, entry := range raw.Data {
		categories = append(categories, provider.DecodeDuaCategory(entry))
	}
	return categories, nil
}

// FetchDuasByCategory returns one category's descriptor and supplications.
func (c *Client) FetchDuasByCategory(ctx context.Context, categoryID int) (model.DuaCategory, []model.Dua, error) {
	op := fmt.Sprintf("fetch duas for category %d", categoryID)

	var raw duasResponse
	if err := c.getJSON(ctx, op, fmt.Sprintf("/doa/kategoridoa/%d", categoryID), &raw); err != nil {
		return model.DuaCategory{}, nil, err
	}
	if !raw.Status || raw.Data.Kategori == nil || raw.Data.Doa == nil {
		return model.DuaCategory{}, nil, &provider.MalformedError{Provider: providerName, Op: op, Reason: "missing kategori or doa"}
	}

	duas := make([]model.Dua, 0, len(raw.Data.Doa))
	for _, entry := range raw.Data.Doa {
		duas = append(duas, provider.DecodeDua(entry))
	}
	return provider.DecodeDuaCategory(raw.Data.Kategori), duas, nil
}
