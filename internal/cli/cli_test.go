package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/sakinah-app/sakinah/internal/adapter"
	"github.com/sakinah-app/sakinah/internal/model"
)

type cliPrayer struct{}

func (cliPrayer) FetchCities(ctx context.Context) ([]model.City, error) {
	return []model.City{
		{ID: "1301", Name: "Kota Jakarta Pusat"},
		{ID: "1219", Name: "Kota Bandung"},
	}, nil
}

func (cliPrayer) FetchPrayerTimes(ctx context.Context, cityID string, year, month, day int) (model.PrayerTimes, error) {
	return model.PrayerTimes{
		Date:    "2026-08-31",
		Imsak:   "04:20",
		Subuh:   "04:30",
		Dzuhur:  "11:55",
		Ashar:   "15:12",
		Maghrib: "17:54",
		Isya:    "19:05",
	}, nil
}

// withAdapter swaps the adapter constructor for the duration of one test and
// restores it afterwards.
func withAdapter(t *testing.T, a *adapter.Adapter) {
	t.Helper()
	prev := buildAdapter
	buildAdapter = func() *adapter.Adapter { return a }
	t.Cleanup(func() {
		buildAdapter = prev
		FlagCity = ""
		FlagJSON = false
	})
}

// runCommand executes the root command with args and returns captured stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	prev := os.Stdout
	os.Stdout = w

	cmd := NewRootCmd("test")
	cmd.SetArgs(args)
	runErr := cmd.Execute()

	os.Stdout = prev
	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read captured output: %v", err)
	}
	return string(out), runErr
}

func TestTodayCommand_JSON(t *testing.T) {
	withAdapter(t, adapter.New(adapter.WithPrayerProvider(cliPrayer{})))

	out, err := runCommand(t, "today", "--json")
	if err != nil {
		t.Fatalf("today --json failed: %v", err)
	}

	var times model.PrayerTimes
	if err := json.Unmarshal([]byte(out), &times); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if times.Subuh != "04:30" {
		t.Errorf("Subuh = %q, want %q", times.Subuh, "04:30")
	}
}

func TestTodayCommand_DefaultCityName(t *testing.T) {
	withAdapter(t, adapter.New(adapter.WithPrayerProvider(cliPrayer{})))

	out, err := runCommand(t, "today")
	if err != nil {
		t.Fatalf("today failed: %v", err)
	}
	if !strings.Contains(out, "Kota Jakarta Pusat") {
		t.Errorf("output missing default city name:\n%s", out)
	}
	if !strings.Contains(out, "Maghrib") || !strings.Contains(out, "17:54") {
		t.Errorf("output missing schedule rows:\n%s", out)
	}
}

func TestCitiesCommand_SortedByID(t *testing.T) {
	withAdapter(t, adapter.New(adapter.WithPrayerProvider(cliPrayer{})))

	out, err := runCommand(t, "cities")
	if err != nil {
		t.Fatalf("cities failed: %v", err)
	}
	bandung := strings.Index(out, "Kota Bandung")
	jakarta := strings.Index(out, "Kota Jakarta Pusat")
	if bandung < 0 || jakarta < 0 {
		t.Fatalf("output missing cities:\n%s", out)
	}
	if bandung > jakarta {
		t.Errorf("cities not sorted by id:\n%s", out)
	}
}

func TestDuaCommand_FallbackListing(t *testing.T) {
	// No dua provider configured: the built-in catalog must still render.
	withAdapter(t, adapter.New())

	out, err := runCommand(t, "dua")
	if err != nil {
		t.Fatalf("dua failed: %v", err)
	}
	if !strings.Contains(out, "Doa Harian") {
		t.Errorf("output missing built-in category:\n%s", out)
	}
}

func TestDuaCommand_Category(t *testing.T) {
	withAdapter(t, adapter.New())

	out, err := runCommand(t, "dua", "1")
	if err != nil {
		t.Fatalf("dua 1 failed: %v", err)
	}
	if !strings.Contains(out, "Doa Sebelum Makan") {
		t.Errorf("output missing built-in dua:\n%s", out)
	}
}

func TestSurahCommand_BadNumber(t *testing.T) {
	withAdapter(t, adapter.New())

	if _, err := runCommand(t, "surah", "abc"); err == nil {
		t.Error("expected an error for a non-numeric surah number")
	}
}
