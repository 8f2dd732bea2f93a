package alquran

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	c := NewClient(server.URL)
	return c, server
}

func TestFetchSurahList_Normalization(t *testing.T) {
	c, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/surah" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"code":200,"data":[{
			"number":2,
			"name":"سورة البقرة",
			"englishName":"Al-Baqara",
			"englishNameTranslation":"The Cow",
			"numberOfAyahs":286,
			"revelationType":"Medinan"
		}]}`))
	})
	defer server.Close()

	surahs, err := c.FetchSurahList(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := surahs[0]
	if got.Number != 2 || got.NumberOfVerses != 286 {
		t.Errorf("surah = %+v", got)
	}
	if got.Name.Transliteration != "Al-Baqara" || got.Name.Translation != "The Cow" {
		t.Errorf("name = %+v", got.Name)
	}
	if got.Revelation.ID != "Madaniyyah" {
		t.Errorf("revelation = %+v", got.Revelation)
	}
}

func TestFetchSurahDetail_SajdaShapes(t *testing.T) {
	c, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/surah/32/id.indonesian" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		// sajda arrives as false on most verses and as an object on
		// prostration verses
		w.Write([]byte(`{"code":200,"data":{
			"number":32,"englishName":"As-Sajda","numberOfAyahs":2,"revelationType":"Meccan",
			"ayahs":[
				{"number":3518,"numberInSurah":14,"text":"...","juz":21,"manzil":5,"page":416,"ruku":2,"hizbQuarter":167,"sajda":false},
				{"number":3519,"numberInSurah":15,"text":"...","juz":21,"manzil":5,"page":416,"ruku":2,"hizbQuarter":167,
				 "sajda":{"id":10,"recommended":true,"obligatory":false},
				 "audio":"https://cdn.example/3519.mp3","audioSecondary":["https://cdn2.example/3519.mp3"]}
			]
		}}`))
	})
	defer server.Close()

	detail, err := c.FetchSurahDetail(context.Background(), 32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(detail.Verses) != 2 {
		t.Fatalf("len = %d, want 2", len(detail.Verses))
	}
	if detail.Verses[0].Meta.Sajda.Recommended {
		t.Error("verse 14 should carry no sajda")
	}
	verse := detail.Verses[1]
	if !verse.Meta.Sajda.Recommended || verse.Meta.Sajda.Obligatory {
		t.Errorf("sajda = %+v", verse.Meta.Sajda)
	}
	if verse.Meta.HizbQuarter != 167 || verse.Meta.Manzil != 5 {
		t.Errorf("meta = %+v", verse.Meta)
	}
	if verse.Audio.Primary == "" || len(verse.Audio.Alternate) != 1 {
		t.Errorf("audio = %+v", verse.Audio)
	}
}

func TestSearchQuran(t *testing.T) {
	c, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/sabar/all/id.indonesian" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"code":200,"data":{"count":1,"matches":[{
			"number":153,
			"text":"Wahai orang-orang yang beriman! Mohonlah pertolongan dengan <b>sabar</b> dan shalat.",
			"numberInSurah":153,
			"surah":{"number":2,"englishName":"Al-Baqara"}
		}]}}`))
	})
	defer server.Close()

	results, err := c.SearchQuran(context.Background(), "sabar", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len = %d, want 1", len(results))
	}
	got := results[0]
	if got.SurahNumber != 2 || got.SurahName != "Al-Baqara" || got.InSurah != 153 {
		t.Errorf("result = %+v", got)
	}
	if got.Excerpt == "" {
		t.Error("excerpt must carry the provider's highlighted text")
	}
	if got.Text == "" {
		t.Error("text must carry the matched verse")
	}
	if got.Translation != got.Text {
		t.Errorf("translation edition: Translation = %q, want the matched text", got.Translation)
	}
}

func TestSearchQuran_ArabicEditionHasNoTranslation(t *testing.T) {
	c, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/sabar/all/quran-uthmani" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"code":200,"data":{"count":1,"matches":[{
			"number":153,
			"text":"...",
			"numberInSurah":153,
			"surah":{"number":2,"englishName":"Al-Baqara"}
		}]}}`))
	})
	defer server.Close()

	results, err := c.SearchQuran(context.Background(), "sabar", "quran-uthmani")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len = %d, want 1", len(results))
	}
	if results[0].Text == "" {
		t.Error("text must carry the matched verse")
	}
	if results[0].Translation != "" {
		t.Errorf("Translation = %q, want empty for an Arabic edition", results[0].Translation)
	}
}
