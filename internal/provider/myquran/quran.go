package myquran

import (
	"context"
	"fmt"

	"github.com/sakinah-app/sakinah/internal/model"
	"github.com/sakinah-app/sakinah/internal/provider"
)

type rawSurah struct {
	Nomor       int    `json:"nomor"`
	Nama        string `json:"nama"`
	NamaLatin   string `json:"nama_latin"`
	JumlahAyat  int    `json:"jumlah_ayat"`
	TempatTurun string `json:"tempat_turun"`
	Arti        string `json:"arti"`
	Deskripsi   string `json:"deskripsi"`
}

type surahListResponse struct {
	Data []rawSurah `json:"data"`
}

type surahResponse struct {
	Data *rawSurah `json:"data"`
}

type rawAyah struct {
	ID    int    `json:"id"`
	Nomor int    `json:"nomor"`
	Arab  string `json:"arab"`
	Latin string `json:"latin"`
	Terj  string `json:"terjemahan"`
	Audio string `json:"audio"`
	Juz   int    `json:"juz"`
	Page  int    `json:"page"`
	Tafs  string `json:"tafsir"`
}

type ayahListResponse struct {
	Data struct {
		Ayat []rawAyah `json:"ayat"`
	} `json:"data"`
}

func normalizeSurah(raw rawSurah) model.QuranSurah {
	revelation := model.Revelation{Arab: "مدينة", En: "Medinan", ID: "Madaniyyah"}
	if raw.TempatTurun == "mekah" {
		revelation = model.Revelation{Arab: "مكة", En: "Meccan", ID: "Makkiyyah"}
	}
	return model.QuranSurah{
		Number:         raw.Nomor,
		NumberOfVerses: raw.JumlahAyat,
		Name: model.SurahName{
			Transliteration: raw.NamaLatin,
			Translation:     raw.Arti,
		},
		Revelation:  revelation,
		Description: raw.Deskripsi,
	}
}

// FetchSurahList returns the canonical 114-surah index.
func (c *Client) FetchSurahList(ctx context.Context) ([]model.QuranSurah, error) {
	const op = "fetch surah list"

	var raw surahListResponse
	if err := c.getJSON(ctx, op, "/quran/surat", &raw); err != nil {
		return nil, err
	}
	if raw.Data == nil {
		return nil, &provider.MalformedError{Provider: providerName, Op: op, Reason: "missing data array"}
	}

	surahs := make([]model.QuranSurah, 0, len(raw.Data))
	for _, entry := range raw.Data {
		surahs = append(surahs, normalizeSurah(entry))
	}
	return surahs, nil
}

// FetchSurahDetail fetches a surah and its verses. This family splits the
// data over two endpoints, so two sequential calls are needed.
func (c *Client) FetchSurahDetail(ctx context.Context, number int) (model.QuranSurahDetail, error) {
	op := fmt.Sprintf("fetch surah %d", number)

	var rawSurahResp surahResponse
	if err := c.getJSON(ctx, op, fmt.Sprintf("/quran/surat/%d", number), &rawSurahResp); err != nil {
		return model.QuranSurahDetail{}, err
	}
	if rawSurahResp.Data == nil {
		return model.QuranSurahDetail{}, &provider.MalformedError{Provider: providerName, Op: op, Reason: "missing surah data"}
	}

	var rawAyahs ayahListResponse
	if err := c.getJSON(ctx, op, fmt.Sprintf("/quran/ayat/%d", number), &rawAyahs); err != nil {
		return model.QuranSurahDetail{}, err
	}
	if rawAyahs.Data.Ayat == nil {
		return model.QuranSurahDetail{}, &provider.MalformedError{Provider: providerName, Op: op, Reason: "missing ayat array"}
	}

	verses := make([]model.QuranVerse, 0, len(rawAyahs.Data.Ayat))
	for _, ayah := range rawAyahs.Data.Ayat {
		verses = append(verses, model.QuranVerse{
			Position: model.VersePosition{InSurah: ayah.Nomor, InQuran: ayah.ID},
			Meta:     model.VerseMeta{Juz: ayah.Juz, Page: ayah.Page},
			Text: model.VerseText{
				Arab:            ayah.Arab,
				Transliteration: ayah.Latin,
			},
			Translation: ayah.Terj,
			Audio:       model.VerseAudio{Primary: ayah.Audio},
			Tafsir:      model.Tafsir{Short: ayah.Tafs},
		})
	}

	return model.QuranSurahDetail{
		QuranSurah: normalizeSurah(*rawSurahResp.Data),
		Verses:     verses,
	}, nil
}
