package alquran

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/sakinah-app/sakinah/internal/model"
	"github.com/sakinah-app/sakinah/internal/provider"
)

type searchResponse struct {
	Code int `json:"code"`
	Data *struct {
		Count   int `json:"count"`
		Matches []struct {
			Number        int    `json:"number"`
			Text          string `json:"text"`
			NumberInSurah int    `json:"numberInSurah"`
			Surah         struct {
				Number      int    `json:"number"`
				EnglishName string `json:"englishName"`
			} `json:"surah"`
		} `json:"matches"`
	} `json:"data"`
}

// SearchQuran delegates full-text search to the provider. The edition picks
// the searched translation; empty means the configured default. Match text
// arrives with the provider's own highlighting markup and is passed through.
func (c *Client) SearchQuran(ctx context.Context, query, edition string) ([]model.SearchResult, error) {
	op := fmt.Sprintf("search %q", query)
	if edition == "" {
		edition = c.Edition
	}
	path := fmt.Sprintf("/search/%s/all/%s", url.PathEscape(query), url.PathEscape(edition))

	var raw searchResponse
	if err := c.getJSON(ctx, op, path, &raw); err != nil {
		return nil, err
	}
	if raw.Data == nil {
		return nil, &provider.MalformedError{Provider: providerName, Op: op, Reason: "missing data"}
	}

	results := make([]model.SearchResult, 0, len(raw.Data.Matches))
	for _, match := range raw.Data.Matches {
		result := model.SearchResult{
			SurahNumber: match.Surah.Number,
			SurahName:   match.Surah.EnglishName,
			InSurah:     match.NumberInSurah,
			Text:        match.Text,
			Excerpt:     match.Text,
		}
		// Arabic originals use the "quran-" edition family; anything else
		// delivers the verse in translation.
		if !strings.HasPrefix(edition, "quran-") {
			result.Translation = match.Text
		}
		results = append(results, result)
	}
	return results, nil
}
