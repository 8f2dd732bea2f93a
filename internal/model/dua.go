package model

// Source records whether a normalized record came from a live upstream call
// or from a built-in fallback. Callers that only care about the payload can
// ignore it; the degraded result is returned either way.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// DuaCategory groups supplications thematically.
type DuaCategory struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Dua is a single supplication. Notes, Fawaid and Narration are optional and
// omitted from JSON when empty.
type Dua struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Arabic      string `json:"arabic"`
	Latin       string `json:"latin"`
	Translation string `json:"translation"`
	Notes       string `json:"notes,omitempty"`
	Fawaid      string `json:"fawaid,omitempty"`
	Narration   string `json:"source,omitempty"`
}

// DuaCategoryList is the category listing plus where it came from.
type DuaCategoryList struct {
	Categories []DuaCategory `json:"categories"`
	Source     Source        `json:"source"`
}

// DuaGroup is one category's supplications plus where they came from.
type DuaGroup struct {
	Category DuaCategory `json:"category"`
	Duas     []Dua       `json:"duas"`
	Source   Source      `json:"source"`
}
