package provider

import (
	"strconv"

	"github.com/sakinah-app/sakinah/internal/model"
)

// Dua providers have gone through several field-naming generations
// (judul/arab/terjemahan vs title/arabic/translation). Rather than chained
// fallback expressions at every call site, each internal field lists its
// known upstream names, checked in order.
var duaFields = map[string][]string{
	"id":          {"id_doa", "id", "dua_id"},
	"title":       {"judul", "title", "nama"},
	"arabic":      {"arab", "arabic"},
	"latin":       {"latin", "transliteration"},
	"translation": {"terjemahan", "translation", "arti"},
	"notes":       {"catatan", "notes"},
	"fawaid":      {"faedah", "fawaid", "benefit"},
	"narration":   {"riwayat", "source"},
}

var duaCategoryFields = map[string][]string{
	"id":          {"id_kategori", "id", "category_id"},
	"name":        {"nama_kategori", "name", "nama"},
	"description": {"keterangan", "description"},
	"image":       {"image", "gambar"},
}

func pickString(raw map[string]any, candidates []string) string {
	for _, key := range candidates {
		switch v := raw[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

func pickInt(raw map[string]any, candidates []string) int {
	for _, key := range candidates {
		switch v := raw[key].(type) {
		case float64:
			return int(v)
		case string:
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
	}
	return 0
}

// DecodeDua reconciles one loosely-typed dua record into the internal shape,
// whichever naming generation it uses.
func DecodeDua(raw map[string]any) model.Dua {
	return model.Dua{
		ID:          pickInt(raw, duaFields["id"]),
		Title:       pickString(raw, duaFields["title"]),
		Arabic:      pickString(raw, duaFields["arabic"]),
		Latin:       pickString(raw, duaFields["latin"]),
		Translation: pickString(raw, duaFields["translation"]),
		Notes:       pickString(raw, duaFields["notes"]),
		Fawaid:      pickString(raw, duaFields["fawaid"]),
		Narration:   pickString(raw, duaFields["narration"]),
	}
}

// DecodeDuaCategory reconciles one loosely-typed category record.
func DecodeDuaCategory(raw map[string]any) model.DuaCategory {
	return model.DuaCategory{
		ID:          pickInt(raw, duaCategoryFields["id"]),
		Name:        pickString(raw, duaCategoryFields["name"]),
		Description: pickString(raw, duaCategoryFields["description"]),
		Image:       pickString(raw, duaCategoryFields["image"]),
	}
}
