package model

import "regexp"

// TimeSentinel replaces a prayer time that is absent upstream or does not
// look like a wall-clock value.
const TimeSentinel = "--:--"

var clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// City identifies a municipality for which prayer schedules are published.
type City struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PrayerTimes holds one day's schedule for a city. All six canonical fields
// are always populated; malformed upstream values become TimeSentinel.
type PrayerTimes struct {
	Date    string `json:"date"`
	Imsak   string `json:"imsak"`
	Subuh   string `json:"subuh"`
	Dzuhur  string `json:"dzuhur"`
	Ashar   string `json:"ashar"`
	Maghrib string `json:"maghrib"`
	Isya    string `json:"isya"`
}

// NormalizeClock passes a well-formed "HH:MM" value through unchanged and
// maps anything else to TimeSentinel.
func NormalizeClock(s string) string {
	if clockPattern.MatchString(s) {
		return s
	}
	return TimeSentinel
}
