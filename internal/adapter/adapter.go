// Package adapter composes the configured upstream providers into the single
// normalized schema the view-models consume. It owns every cross-provider
// decision: enrichment merges, ordering repair, fallback substitution and
// provenance tagging. Providers fetch; the adapter decides.
package adapter

import (
	"errors"
	"sync"

	"github.com/sakinah-app/sakinah/internal/model"
	"github.com/sakinah-app/sakinah/internal/provider"
)

var errNoSearchProvider = errors.New("no search-capable provider configured")

// Adapter is the resilient fetch/normalize layer. Zero-value fields mean the
// corresponding capability is not configured; the adapter degrades per the
// fallback policy instead of failing.
type Adapter struct {
	prayer         provider.PrayerProvider
	quranPrimary   provider.QuranProvider
	quranSecondary provider.QuranProvider
	searcher       provider.QuranSearcher
	duaPrimary     provider.DuaProvider
	duaLegacy      provider.DuaProvider

	// The surah index is fetched once and kept for the session; everything
	// else is refetched on demand.
	mu        sync.Mutex
	surahList []model.QuranSurah
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithPrayerProvider sets the prayer-time provider.
func WithPrayerProvider(p provider.PrayerProvider) Option {
	return func(a *Adapter) { a.prayer = p }
}

// WithQuranProvider sets the primary Quran provider.
func WithQuranProvider(p provider.QuranProvider) Option {
	return func(a *Adapter) { a.quranPrimary = p }
}

// WithQuranEnrichment sets the secondary Quran provider used for best-effort
// localized enrichment. If it also implements provider.QuranSearcher it
// becomes the search backend.
func WithQuranEnrichment(p provider.QuranProvider) Option {
	return func(a *Adapter) {
		a.quranSecondary = p
		if s, ok := p.(provider.QuranSearcher); ok {
			a.searcher = s
		}
	}
}

// WithDuaProvider sets the primary dua provider.
func WithDuaProvider(p provider.DuaProvider) Option {
	return func(a *Adapter) { a.duaPrimary = p }
}

// WithLegacyDuaProvider sets the differently-shaped dua provider retried when
// the primary fails.
func WithLegacyDuaProvider(p provider.DuaProvider) Option {
	return func(a *Adapter) { a.duaLegacy = p }
}

// New builds an Adapter from the given options.
func New(opts ...Option) *Adapter {
	a := &Adapter{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
