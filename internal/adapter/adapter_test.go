package adapter

import (
	"context"
	"sync/atomic"

	"github.com/sakinah-app/sakinah/internal/model"
)

// In-memory providers for exercising the composition logic without HTTP.

type fakePrayer struct {
	cities    []model.City
	citiesErr error
	times     model.PrayerTimes
	timesErr  error
}

func (f *fakePrayer) FetchCities(ctx context.Context) ([]model.City, error) {
	return f.cities, f.citiesErr
}

func (f *fakePrayer) FetchPrayerTimes(ctx context.Context, cityID string, year, month, day int) (model.PrayerTimes, error) {
	return f.times, f.timesErr
}

type fakeQuran struct {
	list      []model.QuranSurah
	listErr   error
	detail    model.QuranSurahDetail
	detailErr error
	listCalls atomic.Int32
}

func (f *fakeQuran) FetchSurahList(ctx context.Context) ([]model.QuranSurah, error) {
	f.listCalls.Add(1)
	return f.list, f.listErr
}

func (f *fakeQuran) FetchSurahDetail(ctx context.Context, number int) (model.QuranSurahDetail, error) {
	return f.detail, f.detailErr
}

type fakeSearcher struct {
	fakeQuran
	results   []model.SearchResult
	searchErr error
}

func (f *fakeSearcher) SearchQuran(ctx context.Context, query, edition string) ([]model.SearchResult, error) {
	return f.results, f.searchErr
}

type fakeDua struct {
	categories    []model.DuaCategory
	categoriesErr error
	category      model.DuaCategory
	duas          []model.Dua
	duasErr       error
}

func (f *fakeDua) FetchDuaCategories(ctx context.Context) ([]model.DuaCategory, error) {
	return f.categories, f.categoriesErr
}

func (f *fakeDua) FetchDuasByCategory(ctx context.Context, categoryID int) (model.DuaCategory, []model.Dua, error) {
	return f.category, f.duas, f.duasErr
}

func surahMeta(number, verses int, transliteration, translation string) model.QuranSurah {
	return model.QuranSurah{
		Number:         number,
		NumberOfVerses: verses,
		Name: model.SurahName{
			Transliteration: transliteration,
			Translation:     translation,
		},
	}
}

func verse(inSurah int, translation string) model.QuranVerse {
	return model.QuranVerse{
		Position:    model.VersePosition{InSurah: inSurah},
		Text:        model.VerseText{Arab: "..."},
		Translation: translation,
	}
}
