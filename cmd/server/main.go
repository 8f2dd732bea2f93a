package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/sakinah-app/sakinah/internal/app"
	"github.com/sakinah-app/sakinah/internal/config"
)

func main() {
	cfg := config.Load()
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	application := app.New(cfg)

	// Warm the view-models in the background; the server starts serving
	// while the first fetches are in flight.
	ctx := context.Background()
	go application.Prayer.Init(ctx)
	go application.Quran.Init(ctx)
	go application.Dua.Init(ctx)

	r := gin.Default()
	RegisterRoutes(r, application)

	log.Info().Str("address", cfg.ServerAddress).Msg("listening")
	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
