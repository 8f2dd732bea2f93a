package adapter

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/sakinah-app/sakinah/internal/model"
)

// ListDuaCategories returns the thematic dua groups. The dua feature never
// shows a hard error for this listing: any failure substitutes the built-in
// categories, tagged as fallback.
func (a *Adapter) ListDuaCategories(ctx context.Context) model.DuaCategoryList {
	if a.duaPrimary != nil {
		categories, err := a.duaPrimary.FetchDuaCategories(ctx)
		if err == nil && len(categories) > 0 {
			return model.DuaCategoryList{Categories: categories, Source: model.SourceLive}
		}
		log.Warn().Err(err).Msg("dua categories unavailable, serving built-in set")
	}
	return model.DuaCategoryList{Categories: BuiltinDuaCategories(), Source: model.SourceFallback}
}

// GetDuasByCategory returns one category's supplications. The primary
// provider is tried first, then the legacy-shaped provider, and finally the
// built-in samples; the result is never empty. categoryName, when known from
// an earlier listing, names the fallback descriptor.
func (a *Adapter) GetDuasByCategory(ctx context.Context, categoryID int, categoryName string) model.DuaGroup {
	if a.duaPrimary != nil {
		category, duas, err := a.duaPrimary.FetchDuasByCategory(ctx, categoryID)
		if err == nil && len(duas) > 0 {
			return model.DuaGroup{Category: category, Duas: duas, Source: model.SourceLive}
		}
		log.Warn().Err(err).Int("category", categoryID).Msg("primary dua provider failed, retrying legacy endpoint")
	}

	if a.duaLegacy != nil {
		category, duas, err := a.duaLegacy.FetchDuasByCategory(ctx, categoryID)
		if err == nil && len(duas) > 0 {
			return model.DuaGroup{Category: category, Duas: duas, Source: model.SourceLive}
		}
		log.Warn().Err(err).Int("category", categoryID).Msg("legacy dua provider failed, serving built-in samples")
	}

	return model.DuaGroup{
		Category: FallbackDuaCategory(categoryID, categoryName),
		Duas:     BuiltinDuas(),
		Source:   model.SourceFallback,
	}
}
