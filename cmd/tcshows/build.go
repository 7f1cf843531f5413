package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/s0rta/tcshows/internal/aggregate"
	"github.com/s0rta/tcshows/internal/cache"
	"github.com/s0rta/tcshows/internal/config"
	"github.com/s0rta/tcshows/internal/enrich"
	"github.com/s0rta/tcshows/internal/fetch"
	"github.com/s0rta/tcshows/internal/sheets"
	"github.com/s0rta/tcshows/schemas"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the show listing document",
	Long:  "Fetches the venues and shows sheets, enriches shows with Bandcamp metadata (cache-first), validates the result against the schema, and writes the output document.",
	RunE:  runBuild,
}

var (
	buildSheetID    string
	buildOutputFile string
	buildCacheFile  string
	buildSkipEnrich bool
)

func init() {
	buildCmd.Flags().StringVar(&buildSheetID, "sheet-id", "", "Google Sheet id (overrides TCSHOWS_SHEET_ID)")
	buildCmd.Flags().StringVarP(&buildOutputFile, "output", "o", "", "Output file path (overrides TCSHOWS_OUTPUT_FILE)")
	buildCmd.Flags().StringVar(&buildCacheFile, "cache", "", "Media cache file path (overrides TCSHOWS_CACHE_FILE)")
	buildCmd.Flags().BoolVar(&buildSkipEnrich, "skip-enrich", false, "Skip Bandcamp enrichment; no media pages are fetched and the cache is untouched")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if buildSheetID != "" {
		cfg.SheetID = buildSheetID
	}
	if buildOutputFile != "" {
		cfg.OutputFile = buildOutputFile
	}
	if buildCacheFile != "" {
		cfg.CacheFile = buildCacheFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logrus.StandardLogger()
	runLog := log.WithField("run_id", uuid.NewString())
	ctx := cmd.Context()

	// Either sheet failing to fetch or parse aborts the whole build.
	client := sheets.NewClient()
	venueRows, err := client.FetchRows(ctx, cfg.SheetID, cfg.VenuesGID)
	if err != nil {
		return fmt.Errorf("failed to fetch venues sheet: %w", err)
	}
	showRows, err := client.FetchRows(ctx, cfg.SheetID, cfg.ShowsGID)
	if err != nil {
		return fmt.Errorf("failed to fetch shows sheet: %w", err)
	}

	venues := aggregate.BuildVenues(venueRows)
	runLog.WithField("venues", len(venues)).Info("parsed venues sheet")

	pageCache := cache.Load(cfg.CacheFile)
	var enrichFn aggregate.EnrichFunc
	if !buildSkipEnrich {
		runLog.WithField("entries", pageCache.Len()).Info("loaded media cache")
		pipeline := enrich.New(pageCache, fetch.NewClient(nil), log)
		enrichFn = pipeline.EnrichMedia
	}

	shows := aggregate.BuildShows(ctx, showRows, venues, enrichFn)
	runLog.WithFields(logrus.Fields{
		"shows":   len(shows),
		"dropped": len(showRows) - 1 - len(shows),
	}).Info("parsed shows sheet")

	doc := aggregate.BuildDocument(venues, shows, time.Now())
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := schemas.ValidateDocument(string(data)); err != nil {
		return fmt.Errorf("built document failed schema validation: %w", err)
	}

	if err := os.WriteFile(cfg.OutputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", cfg.OutputFile, err)
	}

	if !buildSkipEnrich {
		// A cache write failure only costs refetches next run.
		if err := pageCache.Save(cfg.CacheFile); err != nil {
			log.WithError(err).Warn("could not save media cache")
		}
	}

	runLog.WithField("output", cfg.OutputFile).Info("build complete")
	return nil
}
