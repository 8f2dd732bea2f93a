package alquran

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sakinah-app/sakinah/internal/model"
	"github.com/sakinah-app/sakinah/internal/provider"
)

type rawSurah struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	EnglishName string `json:"englishName"`
	Translation string `json:"englishNameTranslation"`
	NumAyahs    int    `json:"numberOfAyahs"`
	Revelation  string `json:"revelationType"`
}

// rawSajda is either the literal false or an object with the prostration
// flags, depending on the verse.
type rawSajda struct {
	Recommended bool
	Obligatory  bool
}

func (s *rawSajda) UnmarshalJSON(data []byte) error {
	var flag bool
	if err := json.Unmarshal(data, &flag); err == nil {
		*s = rawSajda{Recommended: flag}
		return nil
	}
	var obj struct {
		Recommended bool `json:"recommended"`
		Obligatory  bool `json:"obligatory"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*s = rawSajda(obj)
	return nil
}

type rawAyah struct {
	Number          int      `json:"number"`
	NumberInSurah   int      `json:"numberInSurah"`
	Text            string   `json:"text"`
	Translation     string   `json:"translation"`
	Transliteration string   `json:"transliteration"`
	Juz             int      `json:"juz"`
	Manzil          int      `json:"manzil"`
	Page            int      `json:"page"`
	Ruku            int      `json:"ruku"`
	HizbQuarter     int      `json:"hizbQuarter"`
	Sajda           rawSajda `json:"sajda"`
	Audio           string   `json:"audio"`
	AudioSecondary  []string `json:"audioSecondary"`
}

type surahListResponse struct {
	Code int        `json:"code"`
	Data []rawSurah `json:"data"`
}

type surahDetailResponse struct {
	Code int `json:"code"`
	Data *struct {
		rawSurah
		Ayahs []rawAyah `json:"ayahs"`
	} `json:"data"`
}

func normalizeSurah(raw rawSurah) model.QuranSurah {
	revelation := model.Revelation{Arab: "مدينة", En: "Medinan", ID: "Madaniyyah"}
	if raw.Revelation == "Meccan" {
		revelation = model.Revelation{Arab: "مكة", En: "Meccan", ID: "Makkiyyah"}
	}
	return model.QuranSurah{
		Number:         raw.Number,
		NumberOfVerses: raw.NumAyahs,
		Name: model.SurahName{
			Transliteration: raw.EnglishName,
			Translation:     raw.Translation,
		},
		Revelation: revelation,
	}
}

// FetchSurahList returns the canonical 114-surah index.
func (c *Client) FetchSurahList(ctx context.Context) ([]model.QuranSurah, error) {
	const op = "fetch surah list"

	var raw surahListResponse
	if err := c.getJSON(ctx, op, "/surah", &raw); err != nil {
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

// FetchSurahDetail fetches a surah with its verses in a single call. The
// configured edition decides the translation language.
func (c *Client) FetchSurahDetail(ctx context.Context, number int) (model.QuranSurahDetail, error) {
	op := fmt.Sprintf("fetch surah %d", number)
	path := fmt.Sprintf("/surah/%d/%s", number, url.PathEscape(c.Edition))

	var raw surahDetailResponse
	if err := c.getJSON(ctx, op, path, &raw); err != nil {
		return model.QuranSurahDetail{}, err
	}
	if raw.Data == nil || raw.Data.Ayahs == nil {
		return model.QuranSurahDetail{}, &provider.MalformedError{Provider: providerName, Op: op, Reason: "missing ayahs"}
	}

	verses := make([]model.QuranVerse, 0, len(raw.Data.Ayahs))
	for _, ayah := range raw.Data.Ayahs {
		verses = append(verses, model.QuranVerse{
			Position: model.VersePosition{InSurah: ayah.NumberInSurah, InQuran: ayah.Number},
			Meta: model.VerseMeta{
				Juz:         ayah.Juz,
				Page:        ayah.Page,
				Manzil:      ayah.Manzil,
				Ruku:        ayah.Ruku,
				HizbQuarter: ayah.HizbQuarter,
				Sajda: model.Sajda{
					Recommended: ayah.Sajda.Recommended,
					Obligatory:  ayah.Sajda.Obligatory,
				},
			},
			Text: model.VerseText{
				Arab:            ayah.Text,
				Transliteration: ayah.Transliteration,
			},
			Translation: ayah.Translation,
			Audio: model.VerseAudio{
				Primary:   ayah.Audio,
				Alternate: ayah.AudioSecondary,
			},
		})
	}

	return model.QuranSurahDetail{
		QuranSurah: normalizeSurah(raw.Data.rawSurah),
		Verses:     verses,
	}, nil
}
