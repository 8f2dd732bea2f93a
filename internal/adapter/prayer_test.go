package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakinah-app/sakinah/internal/model"
	"github.com/sakinah-app/sakinah/internal/provider"
)

func TestListCities_SortsNumericallyAndDropsInvalid(t *testing.T) {
	a := New(WithPrayerProvider(&fakePrayer{cities: []model.City{
		{ID: "1301", Name: "KOTA JAKARTA PUSAT"},
		{ID: "", Name: "NO ID"},
		{ID: "105", Name: "KOTA BANDA ACEH"},
		{ID: "999", Name: ""},
		{ID: "1204", Name: "KOTA MEDAN"},
	}}))

	cities, err := a.ListCities(context.Background())
	require.NoError(t, err)
	require.Len(t, cities, 3)
	assert.Equal(t, []string{"105", "1204", "1301"}, []string{cities[0].ID, cities[1].ID, cities[2].ID})
}

func TestListCities_NoValidEntries(t *testing.T) {
	a := New(WithPrayerProvider(&fakePrayer{cities: []model.City{
		{ID: "", Name: "x"},
		{ID: "1", Name: ""},
	}}))

	_, err := a.ListCities(context.Background())
	var malformed *provider.MalformedError
	require.ErrorAs(t, err, &malformed)
}

func TestListCities_UpstreamErrorPropagates(t *testing.T) {
	wantErr := &provider.UpstreamError{Provider: "myquran", Op: "fetch cities", Err: errors.New("boom")}
	a := New(WithPrayerProvider(&fakePrayer{citiesErr: wantErr}))

	_, err := a.ListCities(context.Background())
	assert.ErrorIs(t, err, wantErr)
}

func TestDefaultCity(t *testing.T) {
	withJakarta := []model.City{{ID: "105", Name: "a"}, {ID: "1301", Name: "b"}}
	assert.Equal(t, "1301", DefaultCity(withJakarta))

	withoutJakarta := []model.City{{ID: "105", Name: "a"}, {ID: "1204", Name: "b"}}
	assert.Equal(t, "105", DefaultCity(withoutJakarta))

	assert.Equal(t, "", DefaultCity(nil))
}

func TestGetPrayerTimes_RepairsMalformedDate(t *testing.T) {
	a := New(WithPrayerProvider(&fakePrayer{times: model.PrayerTimes{
		Date:  "not a date",
		Subuh: "04:37",
	}}))

	times, err := a.GetPrayerTimes(context.Background(), "1301", 2026, 8, 31)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31", times.Date)
	assert.Equal(t, "04:37", times.Subuh)
}

func TestGetPrayerTimes_KeepsLocalizedDate(t *testing.T) {
	a := New(WithPrayerProvider(&fakePrayer{times: model.PrayerTimes{
		Date: "Senin, 31/08/2026",
	}}))

	times, err := a.GetPrayerTimes(context.Background(), "1301", 2026, 8, 31)
	require.NoError(t, err)
	assert.Equal(t, "Senin, 31/08/2026", times.Date)
}
