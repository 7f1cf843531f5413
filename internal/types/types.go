// Package types defines the document types shared across the build pipeline.
package types

// Venue is one row of the venues sheet. The output document keys venues by
// name, so name is the only field guaranteed to be non-empty.
type Venue struct {
	Name         string `json:"name"`
	Address      string `json:"address,omitempty"`
	Website      string `json:"website,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	Capacity     string `json:"capacity,omitempty"`
}

// MediaMetadata holds the enrichment extracted from one Bandcamp page.
// Extraction is best-effort: any field may be empty when the page lacked the
// corresponding pattern, and a fully empty record is still a valid record.
type MediaMetadata struct {
	EmbedMarkup  string   `json:"embedMarkup,omitempty"`
	ReleaseTitle string   `json:"releaseTitle,omitempty"`
	Artist       string   `json:"artist,omitempty"`
	ThumbnailURL string   `json:"thumbnailUrl,omitempty"`
	Genres       []string `json:"genres,omitempty"`
	Location     string   `json:"location,omitempty"`
}

// Show is one calendar entry. Date, Venue.Name, and Title are always
// non-empty; rows that cannot satisfy that are dropped before a Show is
// built. The remaining text fields default to "" rather than null. When a
// show references a venue the venues sheet does not know, Venue is a stub
// carrying only the name.
type Show struct {
	Date      string          `json:"date"`
	Venue     Venue           `json:"venue"`
	Title     string          `json:"title"`
	Time      string          `json:"time"`
	Cost      string          `json:"cost"`
	Age       string          `json:"age"`
	LinkURL   string          `json:"linkUrl"`
	ImageURL  string          `json:"imageUrl"`
	Details   string          `json:"details"`
	Multiples string          `json:"multiples"`
	Media     []MediaMetadata `json:"media,omitempty"`
}

// Document is the build output consumed by the site front end. It is
// regenerated wholesale on every run.
type Document struct {
	Venues      map[string]Venue `json:"venues"`
	Shows       []Show           `json:"shows"`
	LastUpdated string           `json:"lastUpdated"`
}
