// Package provider declares the capability interfaces implemented by each
// upstream API family, plus the error taxonomy shared by all of them. The
// adapter package composes implementations of these interfaces; nothing here
// depends on any concrete provider.
package provider

import (
	"context"

	"github.com/sakinah-app/sakinah/internal/model"
)

// PrayerProvider publishes city lists and daily prayer schedules.
type PrayerProvider interface {
	// FetchCities returns the raw city list as the provider publishes it;
	// the adapter filters and sorts.
	FetchCities(ctx context.Context) ([]model.City, error)
	// FetchPrayerTimes returns the schedule for one city and calendar date.
	// Time fields are already sentinel-normalized (model.NormalizeClock).
	FetchPrayerTimes(ctx context.Context, cityID string, year, month, day int) (model.PrayerTimes, error)
}

// QuranProvider publishes the surah list and per-surah verse data.
type QuranProvider interface {
	FetchSurahList(ctx context.Context) ([]model.QuranSurah, error)
	FetchSurahDetail(ctx context.Context, number int) (model.QuranSurahDetail, error)
}

// QuranSearcher is implemented by providers with server-side full-text
// search. Matching is entirely the provider's; no local search exists.
type QuranSearcher interface {
	SearchQuran(ctx context.Context, query, edition string) ([]model.SearchResult, error)
}

// DuaProvider publishes dua categories and per-category supplications.
type DuaProvider interface {
	FetchDuaCategories(ctx context.Context) ([]model.DuaCategory, error)
	FetchDuasByCategory(ctx context.Context, categoryID int) (model.DuaCategory, []model.Dua, error)
}
