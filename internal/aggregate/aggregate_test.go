package aggregate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0rta/tcshows/internal/types"
)

var venueHeader = []string{"name", "address", "website", "neighborhood", "capacity"}
var showHeader = []string{"date", "venue", "title", "time", "cost", "age", "link", "image", "details", "multiples", "notes", "venue id", "media"}

func TestBuildVenues(t *testing.T) {
	rows := [][]string{
		venueHeader,
		{"First Ave", "701 1st Ave N", "https://first-avenue.com", "Downtown", "1550"},
		{"", "no name, skipped"},
		{"331 Club", "331 13th Ave NE", "", "Northeast"},
	}
	venues := BuildVenues(rows)
	require.Len(t, venues, 2)
	assert.Equal(t, "Downtown", venues["First Ave"].Neighborhood)
	// Short rows read as empty fields.
	assert.Equal(t, "", venues["331 Club"].Capacity)
}

func TestBuildVenues_LaterDuplicateWins(t *testing.T) {
	rows := [][]string{
		venueHeader,
		{"First Ave", "old address"},
		{"First Ave", "new address"},
	}
	venues := BuildVenues(rows)
	require.Len(t, venues, 1)
	assert.Equal(t, "new address", venues["First Ave"].Address)
}

func TestBuildShows_DropsRowsMissingRequiredFields(t *testing.T) {
	rows := [][]string{
		showHeader,
		{"2025-10-01", "First Ave", ""}, // no title
		{"2025-10-02", "First Ave", "Kept Show"},
		{"", "First Ave", "No Date"},
		{"2025-10-03", "", "No Venue"},
	}
	shows := BuildShows(context.Background(), rows, map[string]types.Venue{}, nil)
	require.Len(t, shows, 1)
	assert.Equal(t, "Kept Show", shows[0].Title)
}

func TestBuildShows_StubVenueOnMiss(t *testing.T) {
	venues := map[string]types.Venue{
		"First Ave": {Name: "First Ave", Address: "701 1st Ave N"},
	}
	rows := [][]string{
		showHeader,
		{"2025-10-01", "First Ave", "Matched"},
		{"2025-10-02", "Somebody's Basement", "Unmatched"},
	}
	shows := BuildShows(context.Background(), rows, venues, nil)
	require.Len(t, shows, 2)
	assert.Equal(t, "701 1st Ave N", shows[0].Venue.Address)
	assert.Equal(t, types.Venue{Name: "Somebody's Basement"}, shows[1].Venue)
}

func TestBuildShows_OptionalFieldsDefaultEmpty(t *testing.T) {
	rows := [][]string{
		showHeader,
		{"2025-10-01", "First Ave", "Sparse Row"},
	}
	shows := BuildShows(context.Background(), rows, map[string]types.Venue{}, nil)
	require.Len(t, shows, 1)
	assert.Equal(t, "", shows[0].Time)
	assert.Equal(t, "", shows[0].Cost)
	assert.Nil(t, shows[0].Media)
}

func TestBuildShows_EnrichReceivesMediaColumn(t *testing.T) {
	var gotField string
	enrich := func(_ context.Context, rawField string) []types.MediaMetadata {
		gotField = rawField
		return []types.MediaMetadata{{Artist: "The Band"}}
	}
	rows := [][]string{
		showHeader,
		{"2025-10-01", "First Ave", "Show", "8pm", "$10", "21+", "", "", "", "", "", "", "https://band.bandcamp.com"},
	}
	shows := BuildShows(context.Background(), rows, map[string]types.Venue{}, enrich)
	require.Len(t, shows, 1)
	assert.Equal(t, "https://band.bandcamp.com", gotField)
	require.Len(t, shows[0].Media, 1)
	assert.Equal(t, "The Band", shows[0].Media[0].Artist)
}

func TestSortShows_StableAscendingByDate(t *testing.T) {
	shows := []types.Show{
		{Date: "2025-11-01", Title: "first entered"},
		{Date: "2025-10-15", Title: "earliest"},
		{Date: "2025-11-01", Title: "second entered"},
	}
	SortShows(shows)
	require.Len(t, shows, 3)
	assert.Equal(t, "earliest", shows[0].Title)
	assert.Equal(t, "first entered", shows[1].Title)
	assert.Equal(t, "second entered", shows[2].Title)
}

func TestSortShows_UnparsableDatesSortFirstInInputOrder(t *testing.T) {
	shows := []types.Show{
		{Date: "2025-10-15", Title: "parsed"},
		{Date: "TBD", Title: "tbd one"},
		{Date: "soon", Title: "tbd two"},
	}
	SortShows(shows)
	assert.Equal(t, "tbd one", shows[0].Title)
	assert.Equal(t, "tbd two", shows[1].Title)
	assert.Equal(t, "parsed", shows[2].Title)
}

func TestBuildDocument(t *testing.T) {
	venues := map[string]types.Venue{"First Ave": {Name: "First Ave"}}
	shows := []types.Show{
		{Date: "2025-11-01", Title: "later"},
		{Date: "2025-10-15", Title: "sooner"},
	}
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	doc := BuildDocument(venues, shows, now)
	assert.Equal(t, "2026-08-26T12:00:00Z", doc.LastUpdated)
	require.Len(t, doc.Shows, 2)
	assert.Equal(t, "sooner", doc.Shows[0].Title)
	assert.Equal(t, venues, doc.Venues)
}
