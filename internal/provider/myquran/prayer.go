package myquran

import (
	"context"
	"fmt"

	"github.com/sakinah-app/sakinah/internal/model"
	"github.com/sakinah-app/sakinah/internal/provider"
)

type citiesResponse struct {
	Status bool `json:"status"`
	Data   []struct {
		ID     string `json:"id"`
		Lokasi string `json:"lokasi"`
	} `json:"data"`
}

type rawSchedule struct {
	Tanggal string `json:"tanggal"`
	Imsak   string `json:"imsak"`
	Subuh   string `json:"subuh"`
	Terbit  string `json:"terbit"`
	Dhuha   string `json:"dhuha"`
	Dzuhur  string `json:"dzuhur"`
	Ashar   string `json:"ashar"`
	Maghrib string `json:"maghrib"`
	Isya    string `json:"isya"`
}

type scheduleResponse struct {
	Status bool `json:"status"`
	Data   struct {
		ID     string       `json:"id"`
		Lokasi string       `json:"lokasi"`
		Daerah string       `json:"daerah"`
		Jadwal *rawSchedule `json:"jadwal"`
	} `json:"data"`
}

// FetchCities lists every city the schedule endpoint knows about.
func (c *Client) FetchCities(ctx context.Context) ([]model.City, error) {
	const op = "fetch cities"

	var raw citiesResponse
	if err := c.getJSON(ctx, op, "/sholat/kota/semua", &raw); err != nil {
		return nil, err
	}
	if !raw.Status || raw.Data == nil {
		return nil, &provider.MalformedError{Provider: providerName, Op: op, Reason: "missing data array"}
	}

	cities := make([]model.City, 0, len(raw.Data))
	for _, entry := range raw.Data {
		cities = append(cities, model.City{ID: entry.ID, Name: entry.Lokasi})
	}
	return cities, nil
}

// FetchPrayerTimes returns the schedule for one city and date. A missing or
// malformed time field becomes the sentinel instead of failing the call:
// partial data beats a hard failure here.
func (c *Client) FetchPrayerTimes(ctx context.Context, cityID string, year, month, day int) (model.PrayerTimes, error) {
	op := fmt.Sprintf("fetch schedule for city %s", cityID)
	path := fmt.Sprintf("/sholat/jadwal/%s/%04d/%02d/%02d", cityID, year, month, day)

	var raw scheduleResponse
	if err := c.getJSON(ctx, op, path, &raw); err != nil {
		return model.PrayerTimes{}, err
	}
	if !raw.Status || raw.Data.Jadwal == nil {
		return model.PrayerTimes{}, &provider.MalformedError{Provider: providerName, Op: op, Reason: "missing jadwal"}
	}

	jadwal := raw.Data.Jadwal
	return model.PrayerTimes{
		Date:    jadwal.Tanggal,
		Imsak:   model.NormalizeClock(jadwal.Imsak),
		Subuh:   model.NormalizeClock(jadwal.Subuh),
		Dzuhur:  model.NormalizeClock(jadwal.Dzuhur),
		Ashar:   model.NormalizeClock(jadwal.Ashar),
		Maghrib: model.NormalizeClock(jadwal.Maghrib),
		Isya:    model.NormalizeClock(jadwal.Isya),
	}, nil
}
