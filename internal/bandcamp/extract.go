package bandcamp

import (
	"encoding/json"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MaxGenres caps how many of the merged tags are treated as genres.
const MaxGenres = 4

// parse wraps goquery document construction. Unparseable markup degrades to
// an empty document so every extractor falls through to its zero value.
func parse(htmlContent string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		doc, _ = goquery.NewDocumentFromReader(strings.NewReader(""))
	}
	return doc
}

// ExtractTags merges the three places Bandcamp puts tags, in priority order:
// the tag block under the release details, the keywords of the ld+json
// metadata blob, and any remaining tag-styled anchors. Duplicates are
// removed by exact text, keeping first-seen order.
func ExtractTags(htmlContent string) []string {
	doc := parse(htmlContent)

	seen := make(map[string]bool)
	var tags []string
	add := func(tag string) {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	doc.Find(".tralbum-tags a").Each(func(_ int, sel *goquery.Selection) {
		add(sel.Text())
	})
	for _, kw := range ldJSONKeywords(doc) {
		add(kw)
	}
	doc.Find("a.tag").Each(func(_ int, sel *goquery.Selection) {
		add(sel.Text())
	})

	return tags
}

// ldRelease is the slice of the ld+json blob we care about. Keywords show up
// both as a comma-separated string and as an array, depending on page age.
type ldRelease struct {
	Keywords any `json:"keywords"`
}

func ldJSONKeywords(doc *goquery.Document) []string {
	var keywords []string
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		raw := html.UnescapeString(sel.Text())
		var rel ldRelease
		if err := json.Unmarshal([]byte(raw), &rel); err != nil {
			return
		}
		switch kw := rel.Keywords.(type) {
		case string:
			for _, part := range strings.Split(kw, ",") {
				keywords = append(keywords, strings.TrimSpace(part))
			}
		case []any:
			for _, v := range kw {
				if s, ok := v.(string); ok {
					keywords = append(keywords, s)
				}
			}
		}
	})
	return keywords
}

// SplitTags splits a merged tag list into genres and a location. Bandcamp
// puts the artist's location last in the tag block; everything before it is
// genre text, capped at MaxGenres.
func SplitTags(tags []string) (genres []string, location string) {
	if len(tags) == 0 {
		return nil, ""
	}
	location = tags[len(tags)-1]
	genres = tags[:len(tags)-1]
	if len(genres) > MaxGenres {
		genres = genres[:MaxGenres]
	}
	if len(genres) == 0 {
		genres = nil
	}
	return genres, location
}

// ExtractArtist pulls the artist name. The byline under the release title is
// authoritative; og:site_name is the fallback since artist subdomains set it
// to the artist name.
func ExtractArtist(htmlContent string) string {
	doc := parse(htmlContent)
	if name := strings.TrimSpace(doc.Find("#name-section h3 span a").First().Text()); name != "" {
		return name
	}
	if content, ok := doc.Find(`meta[property="og:site_name"]`).Attr("content"); ok {
		return strings.TrimSpace(content)
	}
	return ""
}

// ExtractThumbnail pulls the release artwork URL from the og:image meta tag.
func ExtractThumbnail(htmlContent string) string {
	doc := parse(htmlContent)
	if content, ok := doc.Find(`meta[property="og:image"]`).Attr("content"); ok {
		return strings.TrimSpace(content)
	}
	return ""
}

// ExtractTitle pulls the release title, preferring the title element on the
// page over the og:title meta tag.
func ExtractTitle(htmlContent string) string {
	doc := parse(htmlContent)
	if title := strings.TrimSpace(doc.Find(".trackTitle").First().Text()); title != "" {
		return title
	}
	if content, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		return strings.TrimSpace(content)
	}
	return ""
}
