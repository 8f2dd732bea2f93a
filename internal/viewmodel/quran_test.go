package viewmodel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakinah-app/sakinah/internal/adapter"
	"github.com/sakinah-app/sakinah/internal/model"
)

type staticQuran struct {
	list   []model.QuranSurah
	detail model.QuranSurahDetail
}

func (s *staticQuran) FetchSurahList(ctx context.Context) ([]model.QuranSurah, error) {
	return s.list, nil
}

func (s *staticQuran) FetchSurahDetail(ctx context.Context, number int) (model.QuranSurahDetail, error) {
	return s.detail, nil
}

func quranVM() *Quran {
	meta := model.QuranSurah{
		Number:         1,
		NumberOfVerses: 1,
		Name:           model.SurahName{Transliteration: "Al-Fatihah", Translation: "Pembukaan"},
	}
	p := &staticQuran{
		list: []model.QuranSurah{meta},
		detail: model.QuranSurahDetail{
			QuranSurah: meta,
			Verses: []model.QuranVerse{{
				Position: model.VersePosition{InSurah: 1},
				Text:     model.VerseText{Arab: "..."},
			}},
		},
	}
	return NewQuran(adapter.New(adapter.WithQuranProvider(p)))
}

func TestQuranInitAndSelect(t *testing.T) {
	vm := quranVM()
	ctx := context.Background()

	vm.Init(ctx)
	state := vm.State()
	require.Len(t, state.Surahs, 1)
	assert.Empty(t, state.Err)

	vm.SelectSurah(ctx, 1)
	state = vm.State()
	assert.Equal(t, 1, state.CurrentSurahNumber)
	require.NotNil(t, state.Detail)
	assert.Len(t, state.Detail.Verses, 1)
}

func TestQuranSelect_OutOfRange(t *testing.T) {
	vm := quranVM()
	ctx := context.Background()
	vm.Init(ctx)

	vm.SelectSurah(ctx, 115)

	state := vm.State()
	assert.Equal(t, "Failed to load surah details. Please try again later.", state.Err)
	assert.Nil(t, state.Detail)
}

func TestQuranClearSurah(t *testing.T) {
	vm := quranVM()
	ctx := context.Background()
	vm.Init(ctx)
	vm.SelectSurah(ctx, 1)

	vm.ClearSurah()

	state := vm.State()
	assert.Zero(t, state.CurrentSurahNumber)
	assert.Nil(t, state.Detail)
}
