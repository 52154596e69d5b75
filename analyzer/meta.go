package analyzer

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractTitle picks the first non-empty of <title>, og:title, first <h1>.
// A page that defeats all three gets the literal "Unknown Title".
func extractTitle(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	if og, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		if og = strings.TrimSpace(og); og != "" {
			return og
		}
	}
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	return "Unknown Title"
}

// extractDescription picks the first non-empty of the description meta,
// og:description, twitter:description, first <p>; else empty.
func extractDescription(doc *goquery.Document) string {
	for _, selector := range []string{
		`meta[name="description"]`,
		`meta[property="og:description"]`,
		`meta[name="twitter:description"]`,
	} {
		if content, ok := doc.Find(selector).First().Attr("content"); ok {
			if content = strings.TrimSpace(content); content != "" {
				return content
			}
		}
	}
	if p := strings.TrimSpace(doc.Find("p").First().Text()); p != "" {
		return p
	}
	return ""
}

// extractMetaMaps flattens every <meta> carrying a name or property attribute
// and non-empty content into metaTags, with twitter:* names additionally
// copied to the Twitter card map and og:* properties to the Open Graph map.
// A tag with both name and property is recorded under both keys.
func extractMetaMaps(doc *goquery.Document) (meta, og, twitter map[string]string) {
	meta = map[string]string{}
	og = map[string]string{}
	twitter = map[string]string{}

	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		content, _ := s.Attr("content")
		if content == "" {
			return
		}
		if name, ok := s.Attr("name"); ok && name != "" {
			meta[name] = content
			if strings.HasPrefix(name, "twitter:") {
				twitter[name] = content
			}
		}
		if prop, ok := s.Attr("property"); ok && prop != "" {
			meta[prop] = content
			if strings.HasPrefix(prop, "og:") {
				og[prop] = content
			}
		}
	})
	return meta, og, twitter
}

// extractJSONLD parses every <script type="application/ld+json"> body.
// Blocks that fail to parse are skipped silently; a page with one broken
// block still contributes its valid ones.
func extractJSONLD(doc *goquery.Document) []any {
	data := []any{}
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var parsed any
		if err := json.Unmarshal([]byte(s.Text()), &parsed); err != nil {
			return
		}
		data = append(data, parsed)
	})
	return data
}

// extractFavicon resolves the first icon link against the page URL.
func extractFavicon(doc *goquery.Document, base *url.URL) string {
	for _, s := range faviconSelectors {
		href, ok := doc.FindMatcher(s).First().Attr("href")
		if !ok || href == "" {
			continue
		}
		if abs, ok := resolveURL(base, href); ok {
			return abs
		}
	}
	return ""
}
