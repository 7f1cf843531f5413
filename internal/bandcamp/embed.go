// Package bandcamp extracts release metadata from Bandcamp page markup.
//
// Every extractor is a pure function over one page's raw HTML. Bandcamp's
// markup drifts over time, so each pattern lives in its own function and
// tolerates absence: a page without the pattern yields a zero value, never
// an error.
package bandcamp

import (
	"fmt"
	"regexp"
)

// EmbedKind distinguishes album and track embedded players.
type EmbedKind string

const (
	KindAlbum EmbedKind = "album"
	KindTrack EmbedKind = "track"
)

// EmbedID is the numeric release identifier Bandcamp's embedded player uses.
type EmbedID struct {
	Kind EmbedKind
	ID   string
}

// Bandcamp repeats the player URL in the page head (og:video and friends),
// which carries the release id as album=N or track=N.
var (
	albumIDPattern = regexp.MustCompile(`album=(\d+)`)
	trackIDPattern = regexp.MustCompile(`track=(\d+)`)
)

// ExtractEmbedID finds the release id in a page. Album ids win over track
// ids when a page carries both, since album pages also list their tracks.
func ExtractEmbedID(htmlContent string) (EmbedID, bool) {
	if m := albumIDPattern.FindStringSubmatch(htmlContent); m != nil {
		return EmbedID{Kind: KindAlbum, ID: m[1]}, true
	}
	if m := trackIDPattern.FindStringSubmatch(htmlContent); m != nil {
		return EmbedID{Kind: KindTrack, ID: m[1]}, true
	}
	return EmbedID{}, false
}

const embedPlayerBase = "https://bandcamp.com/EmbeddedPlayer"

// Markup renders the inline player iframe for the release. The parameter
// order is fixed so the same id always produces identical markup; the cache
// and its tests rely on that.
func (e EmbedID) Markup() string {
	src := fmt.Sprintf("%s/%s=%s/size=large/bgcol=333333/linkcol=0f91ff/transparent=true/",
		embedPlayerBase, e.Kind, e.ID)
	return fmt.Sprintf(`<iframe style="border: 0; width: 100%%; height: 120px;" src="%s" seamless></iframe>`, src)
}
