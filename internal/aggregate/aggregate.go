// Package aggregate joins sheet rows and media enrichment into the output
// document.
package aggregate

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/s0rta/tcshows/internal/types"
)

// Column order of the shows sheet export. The sheet has no schema; meaning
// is positional.
const (
	showDate = iota
	showVenue
	showTitle
	showTime
	showCost
	showAge
	showLink
	showImage
	showDetails
	showMultiples
	showNotes   // read but not published
	showVenueID // unused, kept for column alignment
	showMedia
)

// Column order of the venues sheet export.
const (
	venueName = iota
	venueAddress
	venueWebsite
	venueNeighborhood
	venueCapacity
)

// col reads a positional field, tolerating short rows.
func col(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// BuildVenues builds the name-keyed venue lookup from parsed sheet rows.
// Row 0 is the header. Rows with a blank name are skipped; a later row with
// a duplicate name silently overwrites the earlier one.
func BuildVenues(rows [][]string) map[string]types.Venue {
	venues := make(map[string]types.Venue)
	for i, row := range rows {
		if i == 0 {
			continue
		}
		name := col(row, venueName)
		if name == "" {
			continue
		}
		venues[name] = types.Venue{
			Name:         name,
			Address:      col(row, venueAddress),
			Website:      col(row, venueWebsite),
			Neighborhood: col(row, venueNeighborhood),
			Capacity:     col(row, venueCapacity),
		}
	}
	return venues
}

// EnrichFunc resolves a show's raw media field into metadata records. A nil
// EnrichFunc skips enrichment entirely.
type EnrichFunc func(ctx context.Context, rawField string) []types.MediaMetadata

// BuildShows converts show rows into Show values. Rows missing a date, venue
// name, or title are dropped whole; there are no partial shows. A venue name
// the lookup does not know becomes a stub venue rather than failing the
// build.
func BuildShows(ctx context.Context, rows [][]string, venues map[string]types.Venue, enrich EnrichFunc) []types.Show {
	var shows []types.Show
	for i, row := range rows {
		if i == 0 {
			continue
		}

		date := col(row, showDate)
		venueName := col(row, showVenue)
		title := col(row, showTitle)
		if date == "" || venueName == "" || title == "" {
			logrus.WithField("row", i).Debug("dropping show row missing date, venue, or title")
			continue
		}

		venue, ok := venues[venueName]
		if !ok {
			logrus.WithField("venue", venueName).Warn("show references unknown venue, using stub")
			venue = types.Venue{Name: venueName}
		}

		show := types.Show{
			Date:      date,
			Venue:     venue,
			Title:     title,
			Time:      col(row, showTime),
			Cost:      col(row, showCost),
			Age:       col(row, showAge),
			LinkURL:   col(row, showLink),
			ImageURL:  col(row, showImage),
			Details:   col(row, showDetails),
			Multiples: col(row, showMultiples),
		}
		if enrich != nil {
			show.Media = enrich(ctx, col(row, showMedia))
		}
		shows = append(shows, show)
	}
	return shows
}

// dateLayout is the calendar date format the shows sheet uses.
const dateLayout = "2006-01-02"

// SortShows orders shows by ascending calendar date. The sort is stable:
// same-day shows keep their sheet order. Dates that fail to parse sort
// before everything else, also in sheet order.
func SortShows(shows []types.Show) {
	when := make([]time.Time, len(shows))
	for i, show := range shows {
		t, err := time.Parse(dateLayout, show.Date)
		if err != nil {
			t = time.Time{}
		}
		when[i] = t
	}
	indices := make([]int, len(shows))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return when[indices[a]].Before(when[indices[b]])
	})

	sorted := make([]types.Show, len(shows))
	for i, idx := range indices {
		sorted[i] = shows[idx]
	}
	copy(shows, sorted)
}

// BuildDocument assembles the final output document, sorting shows in place.
func BuildDocument(venues map[string]types.Venue, shows []types.Show, now time.Time) types.Document {
	if shows == nil {
		shows = []types.Show{} // the document always carries an array
	}
	SortShows(shows)
	return types.Document{
		Venues:      venues,
		Shows:       shows,
		LastUpdated: now.UTC().Format(time.RFC3339),
	}
}
