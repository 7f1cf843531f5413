package bandcamp

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LatestReleaseURL finds the newest release linked from an artist landing
// page. Bandcamp lists releases newest-first, so the first album link wins,
// then the first track link. Relative hrefs resolve against the artist URL's
// origin. Returns "" when the page links no releases at all, in which case
// the caller extracts from the artist page as-is.
func LatestReleaseURL(htmlContent, artistURL string) string {
	doc := parse(htmlContent)

	href := firstHref(doc, `a[href*="/album/"]`)
	if href == "" {
		href = firstHref(doc, `a[href*="/track/"]`)
	}
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}

	origin := originOf(artistURL)
	if origin == "" {
		return ""
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return origin + href
}

func firstHref(doc *goquery.Document, selector string) string {
	href, _ := doc.Find(selector).First().Attr("href")
	return strings.TrimSpace(href)
}

// originOf reduces a URL to scheme://host, dropping any path and the
// trailing slash with it.
func originOf(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
