// Package cli is the terminal front end. Like the HTTP handlers it only
// renders view-model state; it holds no fetch or normalization logic of its
// own.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/sakinah-app/sakinah/internal/adapter"
	"github.com/sakinah-app/sakinah/internal/app"
	"github.com/sakinah-app/sakinah/internal/config"
)

// Global flags shared across all subcommands.
var (
	FlagCity string
	FlagJSON bool
)

// buildAdapter is swapped out by tests.
var buildAdapter = func() *adapter.Adapter {
	return app.BuildAdapter(config.Load())
}

// NewRootCmd creates the root command for the sakinah CLI.
// The version parameter is set by the calling binary via ldflags.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "sakinah",
		Short:   "Prayer schedules, Quran reader and dua browser",
		Long:    "Daily prayer schedules, a Quran reader and a dua browser on the terminal, powered by public Islamic APIs.",
		Version: version,
		// Default action: show today's prayer schedule.
		RunE:          runToday,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&FlagCity, "city", "", "City id for the prayer schedule (default: Jakarta Pusat)")
	pf.BoolVar(&FlagJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(newTodayCmd())
	rootCmd.AddCommand(newCitiesCmd())
	rootCmd.AddCommand(newSurahCmd())
	rootCmd.AddCommand(newDuaCmd())

	return rootCmd
}
