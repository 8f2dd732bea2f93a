package model

// SurahName carries the latin reading of a surah name and its localized
// meaning ("Al-Fatihah" / "Pembukaan").
type SurahName struct {
	Transliteration string `json:"transliteration"`
	Translation     string `json:"translation"`
}

// Revelation localizes where a surah was revealed.
type Revelation struct {
	Arab string `json:"arab"`
	En   string `json:"en"`
	ID   string `json:"id"`
}

// QuranSurah is one entry of the canonical 114-surah list.
type QuranSurah struct {
	Number         int        `json:"number"`
	NumberOfVerses int        `json:"numberOfVerses"`
	Name           SurahName  `json:"name"`
	Revelation     Revelation `json:"revelation"`
	Description    string     `json:"description"`
}

// VersePosition numbers a verse within its surah and within the whole Quran.
type VersePosition struct {
	InSurah int `json:"inSurah"`
	InQuran int `json:"inQuran"`
}

// Sajda marks verses after which prostration is recommended or obligatory.
type Sajda struct {
	Recommended bool `json:"recommended"`
	Obligatory  bool `json:"obligatory"`
}

// VerseMeta holds recitation-division metadata. Providers that do not carry a
// division leave it zero.
type VerseMeta struct {
	Juz         int   `json:"juz"`
	Page        int   `json:"page"`
	Manzil      int   `json:"manzil"`
	Ruku        int   `json:"ruku"`
	HizbQuarter int   `json:"hizbQuarter"`
	Sajda       Sajda `json:"sajda"`
}

// VerseText pairs the Arabic text with its latin transliteration.
type VerseText struct {
	Arab            string `json:"arab"`
	Transliteration string `json:"transliteration"`
}

// VerseAudio carries recitation URLs. Primary may be empty when the provider
// publishes no audio.
type VerseAudio struct {
	Primary   string   `json:"primary"`
	Alternate []string `json:"alternate"`
}

// Tafsir is per-verse commentary; either field may be empty.
type Tafsir struct {
	Short string `json:"short"`
	Long  string `json:"long"`
}

// QuranVerse is one ayah of a surah.
type QuranVerse struct {
	Position    VersePosition `json:"position"`
	Meta        VerseMeta     `json:"meta"`
	Text        VerseText     `json:"text"`
	Translation string        `json:"translation"`
	Audio       VerseAudio    `json:"audio"`
	Tafsir      Tafsir        `json:"tafsir"`
}

// QuranSurahDetail is a surah together with its verses, ordered by
// Position.InSurah starting at 1 with no gaps.
type QuranSurahDetail struct {
	QuranSurah
	Verses []QuranVerse `json:"verses"`
}

// SearchResult is one full-text match returned by a searching provider.
type SearchResult struct {
	SurahNumber int    `json:"surahNumber"`
	SurahName   string `json:"surahName"`
	InSurah     int    `json:"inSurah"`
	Text        string `json:"text"`
	Translation string `json:"translation"`
	Excerpt     string `json:"excerpt"`
}
