package analyzer

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/indiegrowth/scout/models"
)

// resolveURL resolves ref against base into an absolute URL. The false
// return means the ref is structurally unusable and its element must be
// dropped from the collection rather than stored malformed.
func resolveURL(base *url.URL, ref string) (string, bool) {
	if base == nil {
		return "", false
	}
	resolved, err := base.Parse(strings.TrimSpace(ref))
	if err != nil {
		return "", false
	}
	return resolved.String(), true
}

// extractImages collects every <img> whose src is not a data URI and does
// not contain "placeholder". Sources are resolved against the page URL;
// an image whose src fails resolution is dropped on its own, the rest of
// the collection is unaffected. The cap is applied at assembly so the first
// entries in document order survive.
func extractImages(doc *goquery.Document, base *url.URL) []models.ImageAsset {
	var out []models.ImageAsset
	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		src, ok := s.Attr("src")
		if !ok || src == "" {
			return
		}
		if strings.HasPrefix(src, "data:") || strings.Contains(src, "placeholder") {
			return
		}
		abs, ok := resolveURL(base, src)
		if !ok {
			return
		}

		img := models.ImageAsset{Src: abs}
		if alt, ok := s.Attr("alt"); ok {
			img.Alt = strings.TrimSpace(alt)
		}
		if w, ok := s.Attr("width"); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(w)); err == nil {
				img.Width = n
			}
		}
		if h, ok := s.Attr("height"); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(h)); err == nil {
				img.Height = n
			}
		}
		out = append(out, img)
	})
	return out
}

// extractVideos collects <video><source> elements plus YouTube/Vimeo
// iframes.
func extractVideos(doc *goquery.Document, base *url.URL) []string {
	var out []string
	doc.Find("video source[src]").Each(func(_ int, s *goquery.Selection) {
		if src, ok := s.Attr("src"); ok && src != "" {
			if abs, ok := resolveURL(base, src); ok {
				out = append(out, abs)
			}
		}
	})
	doc.Find("iframe[src]").Each(func(_ int, s *goquery.Selection) {
		src, ok := s.Attr("src")
		if !ok || src == "" {
			return
		}
		if !strings.Contains(src, "youtube") && !strings.Contains(src, "vimeo") {
			return
		}
		if abs, ok := resolveURL(base, src); ok {
			out = append(out, abs)
		}
	})
	return out
}

// extractDocuments collects anchors whose href ends in .pdf, .doc or .docx.
func extractDocuments(doc *goquery.Document, base *url.URL) []string {
	var out []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return
		}
		lower := strings.ToLower(href)
		if !strings.HasSuffix(lower, ".pdf") &&
			!strings.HasSuffix(lower, ".doc") &&
			!strings.HasSuffix(lower, ".docx") {
			return
		}
		if abs, ok := resolveURL(base, href); ok {
			out = append(out, abs)
		}
	})
	return out
}

// extractLogo walks the logo selector priority list and takes the first
// selector with any match. If that match's src fails resolution the result
// is empty; there is no fall-through to lower-priority selectors (see the
// note on logoSelectors in tables.go).
func extractLogo(doc *goquery.Document, base *url.URL) string {
	for _, s := range logoSelectors {
		match := doc.FindMatcher(s).First()
		if match.Length() == 0 {
			continue
		}
		src, ok := match.Attr("src")
		if !ok || src == "" {
			return ""
		}
		if abs, ok := resolveURL(base, src); ok {
			return abs
		}
		return ""
	}
	return ""
}
