// Package config loads build configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Defaults for everything but the sheet id, which has no sensible default.
const (
	defaultVenuesGID  = "0"
	defaultShowsGID   = "1804616748"
	defaultCacheFile  = "bandcamp-cache.json"
	defaultOutputFile = "shows.json"
)

// Config holds everything the build needs to locate its inputs and outputs.
// Values come from TCSHOWS_* environment variables (a .env file is honored);
// CLI flags override them.
type Config struct {
	SheetID    string `validate:"required"`
	VenuesGID  string `validate:"required"`
	ShowsGID   string `validate:"required"`
	CacheFile  string `validate:"required"`
	OutputFile string `validate:"required"`
}

// FromEnv builds a Config from the environment, applying defaults.
func FromEnv() Config {
	return Config{
		SheetID:    os.Getenv("TCSHOWS_SHEET_ID"),
		VenuesGID:  envOr("TCSHOWS_VENUES_GID", defaultVenuesGID),
		ShowsGID:   envOr("TCSHOWS_SHOWS_GID", defaultShowsGID),
		CacheFile:  envOr("TCSHOWS_CACHE_FILE", defaultCacheFile),
		OutputFile: envOr("TCSHOWS_OUTPUT_FILE", defaultOutputFile),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Validate checks that required values are present after flags and env have
// been merged.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration (is TCSHOWS_SHEET_ID set?): %w", err)
	}
	return nil
}
