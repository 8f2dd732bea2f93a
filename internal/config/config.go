package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds environment-based settings. Empty provider URLs select the
// public deployments; an optional provider is disabled with the value "off".
type Config struct {
	Environment       string
	ServerAddress     string
	MyQuranBaseURL    string
	AlQuranBaseURL    string
	IslamicAPIBaseURL string
	QuranEdition      string
}

// Load reads configuration from a .env file (if present) and the process
// environment.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Info().Msg("loaded settings from .env")
	}

	cfg := Config{
		Environment:       os.Getenv("APP_ENV"),
		ServerAddress:     os.Getenv("SERVER_ADDRESS"),
		MyQuranBaseURL:    os.Getenv("MYQURAN_BASE_URL"),
		AlQuranBaseURL:    os.Getenv("ALQURAN_BASE_URL"),
		IslamicAPIBaseURL: os.Getenv("ISLAMICAPI_BASE_URL"),
		QuranEdition:      os.Getenv("QURAN_EDITION"),
	}
	if cfg.ServerAddress == "" {
		cfg.ServerAddress = ":8080"
	}
	return cfg
}

// EnrichmentEnabled reports whether the secondary Quran provider should be
// wired at all.
func (c Config) EnrichmentEnabled() bool { return c.AlQuranBaseURL != "off" }

// LegacyDuaEnabled reports whether the legacy dua provider should be wired.
func (c Config) LegacyDuaEnabled() bool { return c.IslamicAPIBaseURL != "off" }
