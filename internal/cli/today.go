package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sakinah-app/sakinah/internal/adapter"
)

func newTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's prayer schedule",
		RunE:  runToday,
	}
}

func runToday(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a := buildAdapter()

	cityID := FlagCity
	cityName := ""
	cities, err := a.ListCities(ctx)
	if err != nil {
		return err
	}
	if cityID == "" {
		cityID = adapter.DefaultCity(cities)
	}
	for _, city := range cities {
		if city.ID == cityID {
			cityName = city.Name
			break
		}
	}

	now := time.Now()
	times, err := a.GetPrayerTimes(ctx, cityID, now.Year(), int(now.Month()), now.Day())
	if err != nil {
		return err
	}

	if FlagJSON {
		return json.NewEncoder(os.Stdout).Encode(times)
	}

	fmt.Printf("Jadwal sholat %s (%s)\n\n", cityName, times.Date)
	rows := []struct{ name, value string }{
		{"Imsak", times.Imsak},
		{"Subuh", times.Subuh},
		{"Dzuhur", times.Dzuhur},
		{"Ashar", times.Ashar},
		{"Maghrib", times.Maghrib},
		{"Isya", times.Isya},
	}
	for _, row := range rows {
		fmt.Printf("  %-8s %s\n", row.name, row.value)
	}
	return nil
}
