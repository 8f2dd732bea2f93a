package viewmodel

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/sakinah-app/sakinah/internal/adapter"
	"github.com/sakinah-app/sakinah/internal/model"
)

const (
	msgSurahsFailed = "Failed to load Quran surahs. Please try again later."
	msgSurahFailed  = "Failed to load surah details. Please try again later."
)

// QuranState is the presentation-facing snapshot of the Quran reader.
type QuranState struct {
	Surahs             []model.QuranSurah      `json:"surahs"`
	CurrentSurahNumber int                     `json:"currentSurahNumber"`
	Detail             *model.QuranSurahDetail `json:"detail"`
	Loading            bool                    `json:"loading"`
	Err                string                  `json:"error"`
}

// Quran drives the Quran reader feature.
type Quran struct {
	adapter *adapter.Adapter

	mu    sync.Mutex
	seq   uint64
	state QuranState
}

// NewQuran creates the Quran view-model.
func NewQuran(a *adapter.Adapter) *Quran {
	return &Quran{adapter: a}
}

// State returns a copy of the current snapshot.
func (q *Quran) State() QuranState {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Init loads the surah index. Called on mount.
func (q *Quran) Init(ctx context.Context) {
	q.mu.Lock()
	q.state.Loading = true
	q.state.Err = ""
	q.mu.Unlock()

	surahs, err := q.adapter.ListSurahs(ctx)

	q.mu.Lock()
	defer q.mu.Unlock()
	q.state.Loading = false
	if err != nil {
		q.state.Err = msgSurahsFailed
		log.Error().Err(err).Msg("loading surah list failed")
		return
	}
	q.state.Surahs = surahs
}

// SelectSurah opens one surah. A stale response is discarded when a newer
// selection has been made meanwhile.
func (q *Quran) SelectSurah(ctx context.Context, number int) {
	q.mu.Lock()
	q.seq++
	token := q.seq
	q.state.CurrentSurahNumber = number
	q.state.Loading = true
	q.state.Err = ""
	q.mu.Unlock()

	detail, err := q.adapter.GetSurah(ctx, number)

	q.mu.Lock()
	defer q.mu.Unlock()
	if token != q.seq {
		return
	}
	q.state.Loading = false
	if err != nil {
		q.state.Err = msgSurahFailed
		q.state.Detail = nil
		log.Error().Err(err).Int("surah", number).Msg("loading surah failed")
		return
	}
	q.state.Detail = &detail
}

// ClearSurah returns the reader to the surah list.
func (q *Quran) ClearSurah() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.seq++
	q.state.CurrentSurahNumber = 0
	q.state.Detail = nil
	q.state.Loading = false
	q.state.Err = ""
}
