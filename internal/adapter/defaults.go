package adapter

import "github.com/sakinah-app/sakinah/internal/model"

// Built-in content served when every dua provider is unreachable or answers
// with an unrecognized shape. The lists are copied on every call so callers
// can never mutate the originals.

var builtinDuaCategories = []model.DuaCategory{
	{ID: 1, Name: "Doa Harian", Description: "Doa-doa dalam aktivitas sehari-hari"},
	{ID: 2, Name: "Doa Pagi & Petang", Description: "Dzikir dan doa di waktu pagi dan petang"},
	{ID: 3, Name: "Doa Ibadah", Description: "Doa seputar shalat, puasa, dan ibadah lainnya"},
	{ID: 4, Name: "Doa Perjalanan", Description: "Doa ketika bepergian dan kembali"},
	{ID: 5, Name: "Doa Perlindungan", Description: "Doa memohon perlindungan dan keselamatan"},
}

var builtinDuas = []model.Dua{
	{
		ID:          1001,
		Title:       "Doa Sebelum Makan",
		Arabic:      "اَللّٰهُمَّ بَارِكْ لَنَا فِيْمَا رَزَقْتَنَا وَقِنَا عَذَابَ النَّارِ",
		Latin:       "Allahumma baarik lanaa fiimaa razaqtanaa wa qinaa 'adzaaban naar",
		Translation: "Ya Allah, berkahilah rezeki yang Engkau berikan kepada kami, dan peliharalah kami dari siksa api neraka.",
		Narration:   "HR. Ibnu Sunni",
	},
	{
		ID:          1002,
		Title:       "Doa Sesudah Makan",
		Arabic:      "اَلْحَمْدُ لِلّٰهِ الَّذِيْ أَطْعَمَنَا وَسَقَانَا وَجَعَلَنَا مُسْلِمِيْنَ",
		Latin:       "Alhamdulillaahil ladzii ath'amanaa wa saqaanaa wa ja'alanaa muslimiin",
		Translation: "Segala puji bagi Allah yang telah memberi kami makan dan minum, serta menjadikan kami orang-orang muslim.",
		Narration:   "HR. Abu Dawud",
	},
}

// BuiltinDuaCategories returns the fixed category set used when no provider
// can serve a listing.
func BuiltinDuaCategories() []model.DuaCategory {
	out := make([]model.DuaCategory, len(builtinDuaCategories))
	copy(out, builtinDuaCategories)
	return out
}

// BuiltinDuas returns the fixed sample pair used when no provider can serve
// a category's duas.
func BuiltinDuas() []model.Dua {
	out := make([]model.Dua, len(builtinDuas))
	copy(out, builtinDuas)
	return out
}

// FallbackDuaCategory builds the descriptor paired with the built-in
// samples, reusing the requested name when the caller knows it.
func FallbackDuaCategory(id int, name string) model.DuaCategory {
	if name == "" {
		name = "Kumpulan Doa"
	}
	return model.DuaCategory{
		ID:          id,
		Name:        name,
		Description: "Doa-doa pilihan yang tersedia tanpa koneksi",
	}
}
