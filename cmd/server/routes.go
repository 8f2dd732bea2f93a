package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sakinah-app/sakinah/internal/app"
	"github.com/sakinah-app/sakinah/internal/http/api"
	duaapi "github.com/sakinah-app/sakinah/internal/http/api/dua/endpoints"
	prayerapi "github.com/sakinah-app/sakinah/internal/http/api/prayer/endpoints"
	quranapi "github.com/sakinah-app/sakinah/internal/http/api/quran/endpoints"
)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(r *gin.Engine, application *app.App) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
	},
		prayerapi.PrayerModule(application.Adapter, application.Prayer),
		quranapi.QuranModule(application.Adapter, application.Quran),
		duaapi.DuaModule(application.Adapter, application.Dua),
	)
}
