// Package app wires the configured provider set into the adapter and the
// feature view-models. Shared by the HTTP server and the CLI.
package app

import (
	"github.com/sakinah-app/sakinah/internal/adapter"
	"github.com/sakinah-app/sakinah/internal/config"
	"github.com/sakinah-app/sakinah/internal/provider/alquran"
	"github.com/sakinah-app/sakinah/internal/provider/islamicapi"
	"github.com/sakinah-app/sakinah/internal/provider/myquran"
	"github.com/sakinah-app/sakinah/internal/viewmodel"
)

// App bundles the adapter and the per-feature view-models.
type App struct {
	Adapter *adapter.Adapter
	Prayer  *viewmodel.Prayer
	Quran   *viewmodel.Quran
	Dua     *viewmodel.Dua
}

// BuildAdapter assembles the provider strategy list from configuration.
func BuildAdapter(cfg config.Config) *adapter.Adapter {
	primary := myquran.NewClient(cfg.MyQuranBaseURL)
	opts := []adapter.Option{
		adapter.WithPrayerProvider(primary),
		adapter.WithQuranProvider(primary),
		adapter.WithDuaProvider(primary),
	}

	if cfg.EnrichmentEnabled() {
		enrichment := alquran.NewClient(cfg.AlQuranBaseURL)
		if cfg.QuranEdition != "" {
			enrichment.Edition = cfg.QuranEdition
		}
		opts = append(opts, adapter.WithQuranEnrichment(enrichment))
	}
	if cfg.LegacyDuaEnabled() {
		opts = append(opts, adapter.WithLegacyDuaProvider(islamicapi.NewClient(cfg.IslamicAPIBaseURL)))
	}
	return adapter.New(opts...)
}

// New builds the full application graph.
func New(cfg config.Config) *App {
	a := BuildAdapter(cfg)
	return &App{
		Adapter: a,
		Prayer:  viewmodel.NewPrayer(a),
		Quran:   viewmodel.NewQuran(a),
		Dua:     viewmodel.NewDua(a),
	}
}
