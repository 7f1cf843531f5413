// Package enrich resolves a show's media references into embeddable
// metadata, consulting the page cache before touching the network.
package enrich

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/s0rta/tcshows/internal/bandcamp"
	"github.com/s0rta/tcshows/internal/cache"
	"github.com/s0rta/tcshows/internal/fetch"
	"github.com/s0rta/tcshows/internal/types"
)

// Fetcher retrieves one page. Satisfied by *fetch.Client; tests substitute
// counting fakes.
type Fetcher interface {
	Page(ctx context.Context, url string) (*fetch.Result, error)
}

// Pipeline turns raw media references into metadata records. Fetches run
// strictly one at a time; the cache is the only shared state and serial
// control flow orders every access to it.
type Pipeline struct {
	cache   *cache.Cache
	fetcher Fetcher
	log     *logrus.Logger
}

// New builds a pipeline around an injected cache and fetcher.
func New(c *cache.Cache, f Fetcher, log *logrus.Logger) *Pipeline {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pipeline{cache: c, fetcher: f, log: log}
}

// SplitMediaField splits a sheet cell that may hold several URLs separated
// by commas or newlines. Blank entries are dropped; order is preserved.
func SplitMediaField(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	var urls []string
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			urls = append(urls, part)
		}
	}
	return urls
}

// EnrichMedia produces one metadata record per recognized URL in the field,
// preserving input order. A URL that fails to fetch is logged and omitted;
// it never aborts its siblings or the build, and it is not cached, so the
// next build tries it again.
func (p *Pipeline) EnrichMedia(ctx context.Context, rawField string) []types.MediaMetadata {
	var records []types.MediaMetadata
	for _, mediaURL := range SplitMediaField(rawField) {
		if !bandcamp.IsMediaURL(mediaURL) {
			continue
		}

		if meta, ok := p.cache.Get(mediaURL); ok {
			records = append(records, meta)
			continue
		}

		meta, err := p.resolve(ctx, mediaURL)
		if err != nil {
			p.log.WithError(err).WithField("url", mediaURL).Warn("media enrichment failed")
			continue
		}

		// Keyed by the requested URL, not the resolved release page, so the
		// next build's lookup hits without re-resolving.
		p.cache.Put(mediaURL, meta)
		records = append(records, meta)
	}
	return records
}

// resolve fetches the page behind a media URL and extracts its metadata.
// Artist landing pages are redirected to their latest release first.
func (p *Pipeline) resolve(ctx context.Context, mediaURL string) (types.MediaMetadata, error) {
	result, err := p.fetcher.Page(ctx, mediaURL)
	if err != nil {
		return types.MediaMetadata{}, err
	}
	page := result.HTML

	if bandcamp.IsArtistPage(mediaURL) {
		if latest := bandcamp.LatestReleaseURL(page, mediaURL); latest != "" {
			result, err = p.fetcher.Page(ctx, latest)
			if err != nil {
				return types.MediaMetadata{}, err
			}
			page = result.HTML
		}
	}

	return Extract(page), nil
}

// Extract runs every extractor over a release page. Extraction never fails;
// a page nothing matches on yields an empty record.
func Extract(page string) types.MediaMetadata {
	meta := types.MediaMetadata{
		ReleaseTitle: bandcamp.ExtractTitle(page),
		Artist:       bandcamp.ExtractArtist(page),
		ThumbnailURL: bandcamp.ExtractThumbnail(page),
	}
	if id, ok := bandcamp.ExtractEmbedID(page); ok {
		meta.EmbedMarkup = id.Markup()
	}
	meta.Genres, meta.Location = bandcamp.SplitTags(bandcamp.ExtractTags(page))
	return meta
}
