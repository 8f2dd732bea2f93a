package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func newSurahCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "surah [number]",
		Short: "List surahs, or read one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a := buildAdapter()

			if len(args) == 0 {
				surahs, err := a.ListSurahs(ctx)
				if err != nil {
					return err
				}
				if FlagJSON {
					return json.NewEncoder(os.Stdout).Encode(surahs)
				}
				for _, surah := range surahs {
					fmt.Printf("%3d  %-20s %-20s %3d ayat  %s\n",
						surah.Number,
						surah.Name.Transliteration,
						surah.Name.Translation,
						surah.NumberOfVerses,
						surah.Revelation.ID,
					)
				}
				return nil
			}

			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("surah number must be an integer: %q", args[0])
			}
			detail, err := a.GetSurah(ctx, number)
			if err != nil {
				return err
			}
			if FlagJSON {
				return json.NewEncoder(os.Stdout).Encode(detail)
			}

			fmt.Printf("%d. %s (%s), %d ayat\n\n",
				detail.Number,
				detail.Name.Transliteration,
				detail.Name.Translation,
				detail.NumberOfVerses,
			)
			for _, verse := range detail.Verses {
				fmt.Printf("(%d) %s\n", verse.Position.InSurah, verse.Text.Arab)
				if verse.Text.Transliteration != "" {
					fmt.Printf("    %s\n", verse.Text.Transliteration)
				}
				if verse.Translation != "" {
					fmt.Printf("    %s\n", verse.Translation)
				}
				fmt.Println()
			}
			return nil
		},
	}
}
