package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newCitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List cities with published prayer schedules",
		RunE: func(cmd *cobra.Command, args []string) error {
			cities, err := buildAdapter().ListCities(context.Background())
			if err != nil {
				return err
			}
			if FlagJSON {
				return json.NewEncoder(os.Stdout).Encode(cities)
			}
			for _, city := range cities {
				fmt.Printf("%6s  %s\n", city.ID, city.Name)
			}
			return nil
		},
	}
}
