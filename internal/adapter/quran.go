package adapter

import (
	"context"
	"sort"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/sakinah-app/sakinah/internal/model"
	"github.com/sakinah-app/sakinah/internal/provider"
)

// ListSurahs returns the canonical 114-surah index, memoized for the session.
// When a secondary provider is configured its localized names override the
// primary's per field, but a failing secondary call never fails the result.
func (a *Adapter) ListSurahs(ctx context.Context) ([]model.QuranSurah, error) {
	a.mu.Lock()
	cached := a.surahList
	a.mu.Unlock()
	if cached != nil {
		return cached, nil
	}

	// The enrichment call does not depend on the primary result, so both
	// run concurrently.
	type secondary struct {
		list []model.QuranSurah
		err  error
	}
	var secCh chan secondary
	if a.quranSecondary != nil {
		secCh = make(chan secondary, 1)
		go func() {
			list, err := a.quranSecondary.FetchSurahList(ctx)
			secCh <- secondary{list: list, err: err}
		}()
	}

	surahs, err := a.quranPrimary.FetchSurahList(ctx)
	if err != nil {
		return nil, err
	}

	if secCh != nil {
		sec := <-secCh
		if sec.err != nil {
			log.Warn().Err(sec.err).Msg("surah list enrichment unavailable, keeping primary names")
		} else {
			mergeSurahNames(surahs, sec.list)
		}
	}

	a.mu.Lock()
	a.surahList = surahs
	a.mu.Unlock()
	return surahs, nil
}

// mergeSurahNames overlays the secondary provider's localized name fields
// onto the primary list, keyed by surah number. Only non-empty fields win.
func mergeSurahNames(primary, secondary []model.QuranSurah) {
	byNumber := make(map[int]model.QuranSurah, len(secondary))
	for _, surah := range secondary {
		byNumber[surah.Number] = surah
	}
	for i := range primary {
		sec, ok := byNumber[primary[i].Number]
		if !ok {
			continue
		}
		if sec.Name.Transliteration != "" {
			primary[i].Name.Transliteration = sec.Name.Transliteration
		}
		if sec.Name.Translation != "" {
			primary[i].Name.Translation = sec.Name.Translation
		}
	}
}

// GetSurah returns one surah with its verses, ordered by in-surah number.
// Metadata comes from the session index, verses from the primary provider,
// and per-verse localized fields from the secondary when available.
func (a *Adapter) GetSurah(ctx context.Context, number int) (model.QuranSurahDetail, error) {
	if number < 1 || number > 114 {
		return model.QuranSurahDetail{}, &provider.NotFoundError{Kind: "surah", ID: strconv.Itoa(number)}
	}

	surahs, err := a.ListSurahs(ctx)
	if err != nil {
		return model.QuranSurahDetail{}, err
	}
	var meta *model.QuranSurah
	for i := range surahs {
		if surahs[i].Number == number {
			meta = &surahs[i]
			break
		}
	}
	if meta == nil {
		return model.QuranSurahDetail{}, &provider.NotFoundError{Kind: "surah", ID: strconv.Itoa(number)}
	}

	detail, err := a.quranPrimary.FetchSurahDetail(ctx, number)
	if err != nil {
		return model.QuranSurahDetail{}, err
	}
	detail.QuranSurah = *meta

	if a.quranSecondary != nil {
		enriched, err := a.quranSecondary.FetchSurahDetail(ctx, number)
		if err != nil {
			log.Warn().Err(err).Int("surah", number).Msg("verse enrichment unavailable, keeping primary text")
		} else {
			mergeVerses(detail.Verses, enriched.Verses)
		}
	}

	// Every surah has at least one verse; an empty list means the upstream
	// answered with the wrong shape.
	if len(detail.Verses) == 0 {
		return model.QuranSurahDetail{}, &provider.MalformedError{
			Provider: "adapter",
			Op:       "get surah",
			Reason:   "upstream delivered no verses",
		}
	}

	// Upstream order is usually correct but never assumed.
	sort.Slice(detail.Verses, func(i, j int) bool {
		return detail.Verses[i].Position.InSurah < detail.Verses[j].Position.InSurah
	})
	for i, verse := range detail.Verses {
		if verse.Position.InSurah != i+1 {
			return model.QuranSurahDetail{}, &provider.MalformedError{
				Provider: "adapter",
				Op:       "get surah",
				Reason:   "verse numbering has gaps or duplicates",
			}
		}
	}
	// Providers occasionally disagree on the verse count; the verses
	// actually delivered are authoritative.
	if detail.NumberOfVerses != len(detail.Verses) {
		detail.NumberOfVerses = len(detail.Verses)
	}

	return detail, nil
}

// mergeVerses overlays localized per-verse fields from the secondary
// provider, keyed by in-surah number. The secondary wins only for the
// specific field it supplies; division metadata fills gaps the primary left
// at zero.
func mergeVerses(primary, secondary []model.QuranVerse) {
	byNumber := make(map[int]model.QuranVerse, len(secondary))
	for _, verse := range secondary {
		byNumber[verse.Position.InSurah] = verse
	}
	for i := range primary {
		sec, ok := byNumber[primary[i].Position.InSurah]
		if !ok {
			continue
		}
		if sec.Translation != "" {
			primary[i].Translation = sec.Translation
		}
		if sec.Text.Transliteration != "" && primary[i].Text.Transliteration == "" {
			primary[i].Text.Transliteration = sec.Text.Transliteration
		}
		if primary[i].Position.InQuran == 0 {
			primary[i].Position.InQuran = sec.Position.InQuran
		}
		if primary[i].Meta.Juz == 0 {
			primary[i].Meta.Juz = sec.Meta.Juz
		}
		if primary[i].Meta.Page == 0 {
			primary[i].Meta.Page = sec.Meta.Page
		}
		if primary[i].Meta.Manzil == 0 {
			primary[i].Meta.Manzil = sec.Meta.Manzil
		}
		if primary[i].Meta.Ruku == 0 {
			primary[i].Meta.Ruku = sec.Meta.Ruku
		}
		if primary[i].Meta.HizbQuarter == 0 {
			primary[i].Meta.HizbQuarter = sec.Meta.HizbQuarter
		}
		if !primary[i].Meta.Sajda.Recommended && !primary[i].Meta.Sajda.Obligatory {
			primary[i].Meta.Sajda = sec.Meta.Sajda
		}
		if primary[i].Audio.Primary == "" {
			primary[i].Audio.Primary = sec.Audio.Primary
		}
		if len(primary[i].Audio.Alternate) == 0 {
			primary[i].Audio.Alternate = sec.Audio.Alternate
		}
	}
}

// SearchQuran delegates full-text search to the search-capable provider.
func (a *Adapter) SearchQuran(ctx context.Context, query, edition string) ([]model.SearchResult, error) {
	if a.searcher == nil {
		return nil, &provider.UpstreamError{
			Provider: "adapter",
			Op:       "search",
			Err:      errNoSearchProvider,
		}
	}
	return a.searcher.SearchQuran(ctx, query, edition)
}
