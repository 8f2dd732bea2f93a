package packets

// SelectSurahRequest opens one surah in the reader.
type SelectSurahRequest struct {
	Number int `json:"number" binding:"required"`
}
