package adapter

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/sakinah-app/sakinah/internal/model"
	"github.com/sakinah-app/sakinah/internal/provider"
)

// DefaultCityID is Jakarta Pusat, preselected when present in the list.
const DefaultCityID = "1301"

// ListCities returns the published city list, sorted ascending by the
// numeric value of the id. Entries missing an id or a name are dropped
// silently; the call fails only when nothing valid remains.
func (a *Adapter) ListCities(ctx context.Context) ([]model.City, error) {
	raw, err := a.prayer.FetchCities(ctx)
	if err != nil {
		return nil, err
	}

	cities := make([]model.City, 0, len(raw))
	for _, city := range raw {
		if city.ID == "" || city.Name == "" {
			continue
		}
		cities = append(cities, city)
	}
	if len(cities) == 0 {
		return nil, &provider.MalformedError{Provider: "adapter", Op: "list cities", Reason: "no valid city entries"}
	}

	sort.Slice(cities, func(i, j int) bool {
		a, aerr := strconv.Atoi(cities[i].ID)
		b, berr := strconv.Atoi(cities[j].ID)
		if aerr != nil || berr != nil {
			return cities[i].ID < cities[j].ID
		}
		return a < b
	})
	return cities, nil
}

// DefaultCity picks the preselected city from an already-sorted list.
func DefaultCity(cities []model.City) string {
	for _, city := range cities {
		if city.ID == DefaultCityID {
			return city.ID
		}
	}
	if len(cities) > 0 {
		return cities[0].ID
	}
	return ""
}

// GetPrayerTimes returns the schedule for one city and date. Individual time
// fields are already sentinel-normalized by the provider; the adapter only
// repairs the date, falling back to the requested one when the upstream
// value does not parse.
func (a *Adapter) GetPrayerTimes(ctx context.Context, cityID string, year, month, day int) (model.PrayerTimes, error) {
	times, err := a.prayer.FetchPrayerTimes(ctx, cityID, year, month, day)
	if err != nil {
		return model.PrayerTimes{}, err
	}

	if !validDate(times.Date) {
		times.Date = fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	}
	return times, nil
}

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
}

// The provider may prefix the date with a localized day name
// ("Senin, 01/01/2024"), so a bare substring match is also accepted.
var datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}|\d{2}/\d{2}/\d{4}`)

func validDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return datePattern.MatchString(s)
}
