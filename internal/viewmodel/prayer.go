// Package viewmodel holds the per-feature state consumed by the presentation
// layer (HTTP handlers, CLI). Each view-model owns its state exclusively and
// guards it with a mutex; a monotonically increasing sequence token makes
// sure a stale in-flight response can never overwrite a newer selection.
package viewmodel

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sakinah-app/sakinah/internal/adapter"
	"github.com/sakinah-app/sakinah/internal/model"
)

const (
	msgCitiesFailed = "Gagal memuat daftar kota. Silakan coba lagi."
	msgTimesFailed  = "Gagal memuat jadwal sholat. Silakan coba lagi."
)

// PrayerState is the presentation-facing snapshot of the prayer feature.
type PrayerState struct {
	Cities         []model.City       `json:"cities"`
	SelectedCityID string             `json:"selectedCityId"`
	PrayerTimes    *model.PrayerTimes `json:"prayerTimes"`
	Loading        bool               `json:"loading"`
	Err            string             `json:"error"`
}

// Prayer drives the prayer-times feature.
type Prayer struct {
	adapter *adapter.Adapter
	now     func() time.Time

	mu    sync.Mutex
	seq   uint64
	state PrayerState
}

// NewPrayer creates the prayer view-model.
func NewPrayer(a *adapter.Adapter) *Prayer {
	return &Prayer{adapter: a, now: time.Now}
}

// State returns a copy of the current snapshot.
func (p *Prayer) State() PrayerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Init loads the city list once, preselects the default city and loads its
// schedule. Called on mount.
func (p *Prayer) Init(ctx context.Context) {
	p.mu.Lock()
	p.state.Loading = true
	p.state.Err = ""
	p.mu.Unlock()

	cities, err := p.adapter.ListCities(ctx)

	p.mu.Lock()
	if err != nil {
		p.state.Loading = false
		p.state.Err = msgCitiesFailed
		p.mu.Unlock()
		log.Error().Err(err).Msg("loading cities failed")
		return
	}
	p.state.Cities = cities
	selected := p.state.SelectedCityID
	if selected == "" {
		selected = adapter.DefaultCity(cities)
	}
	p.mu.Unlock()

	p.SelectCity(ctx, selected)
}

// SelectCity switches the schedule to another city. An unknown id is
// surfaced immediately without touching the upstream; a response from a
// superseded selection is discarded.
func (p *Prayer) SelectCity(ctx context.Context, cityID string) {
	p.mu.Lock()
	if !hasCity(p.state.Cities, cityID) {
		// Still a superseding selection: an in-flight fetch for the
		// previous city must not land on top of this error.
		p.seq++
		p.state.Loading = false
		p.state.Err = msgTimesFailed
		p.mu.Unlock()
		log.Error().Str("city", cityID).Msg("unknown city selected")
		return
	}
	p.seq++
	token := p.seq
	p.state.SelectedCityID = cityID
	p.state.Loading = true
	p.state.Err = ""
	p.mu.Unlock()

	today := p.now()
	times, err := p.adapter.GetPrayerTimes(ctx, cityID, today.Year(), int(today.Month()), today.Day())

	p.mu.Lock()
	defer p.mu.Unlock()
	if token != p.seq {
		// A newer selection is in flight or already applied.
		return
	}
	p.state.Loading = false
	if err != nil {
		p.state.Err = msgTimesFailed
		p.state.PrayerTimes = nil
		log.Error().Err(err).Str("city", cityID).Msg("loading prayer times failed")
		return
	}
	p.state.PrayerTimes = &times
}

func hasCity(cities []model.City, id string) bool {
	for _, city := range cities {
		if city.ID == id {
			return true
		}
	}
	return false
}
