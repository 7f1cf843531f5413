package bandcamp

import (
	"net/url"
	"strings"
)

// mediaHost is the only host the pipeline knows how to extract from.
const mediaHost = "bandcamp.com"

// IsMediaURL reports whether raw is a URL on the supported media host.
// Anything else in a show's media field is ignored.
func IsMediaURL(raw string) bool {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Host == "" {
		return false
	}
	host := strings.ToLower(parsed.Host)
	return host == mediaHost || strings.HasSuffix(host, "."+mediaHost)
}

// IsArtistPage reports whether the URL is an artist landing page rather than
// a specific album or track page.
func IsArtistPage(raw string) bool {
	return !strings.Contains(raw, "/album/") && !strings.Contains(raw, "/track/")
}
