package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/sakinah-app/sakinah/internal/model"
	"github.com/spf13/cobra"
)

func newDuaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dua [categoryID]",
		Short: "List dua categories, or show one category's duas",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a := buildAdapter()

			if len(args) == 0 {
				listing := a.ListDuaCategories(ctx)
				if FlagJSON {
					return json.NewEncoder(os.Stdout).Encode(listing)
				}
				for _, category := range listing.Categories {
					fmt.Printf("%4d  %s\n", category.ID, category.Name)
				}
				if listing.Source == model.SourceFallback {
					fmt.Fprintln(os.Stderr, "\n(daftar bawaan, penyedia doa tidak terjangkau)")
				}
				return nil
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("category id must be an integer: %q", args[0])
			}
			group := a.GetDuasByCategory(ctx, id, "")
			if FlagJSON {
				return json.NewEncoder(os.Stdout).Encode(group)
			}

			fmt.Printf("%s\n\n", group.Category.Name)
			for _, dua := range group.Duas {
				fmt.Printf("%s\n%s\n%s\n%s\n", dua.Title, dua.Arabic, dua.Latin, dua.Translation)
				if dua.Narration != "" {
					fmt.Printf("(%s)\n", dua.Narration)
				}
				fmt.Println()
			}
			if group.Source == model.SourceFallback {
				fmt.Fprintln(os.Stderr, "(doa bawaan, penyedia doa tidak terjangkau)")
			}
			return nil
		},
	}
}
