package analyzer

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractHeadings collects h1–h6 text longer than 2 characters, in document
// order.
func extractHeadings(doc *goquery.Document) []string {
	var out []string
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); len(text) > 2 {
			out = append(out, text)
		}
	})
	return out
}

// extractParagraphs collects <p> text longer than 20 characters.
func extractParagraphs(doc *goquery.Document) []string {
	var out []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); len(text) > 20 {
			out = append(out, text)
		}
	})
	return out
}

// extractLists collects <li> text between 5 and 300 characters inclusive.
func extractLists(doc *goquery.Document) []string {
	var out []string
	doc.Find("li").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if len(text) >= 5 && len(text) <= 300 {
			out = append(out, text)
		}
	})
	return out
}

// extractNavigation collects anchor text inside nav/.nav/.menu/header
// elements, 1–50 characters.
func extractNavigation(doc *goquery.Document) []string {
	return anchorTexts(doc.FindMatcher(navigationSelector))
}

// extractFooterLinks collects anchor text inside <footer>, 1–50 characters.
func extractFooterLinks(doc *goquery.Document) []string {
	return anchorTexts(doc.FindMatcher(footerSelector))
}

func anchorTexts(scope *goquery.Selection) []string {
	var out []string
	scope.Find("a").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if len(text) >= 1 && len(text) <= 50 {
			out = append(out, text)
		}
	})
	return out
}

// extractPageLinks resolves every anchor against the page URL and splits the
// absolute results into same-host (internal) and other-host (external)
// groups. Non-http(s) schemes (mailto:, javascript:, tel:) are skipped.
func extractPageLinks(doc *goquery.Document, base *url.URL) (internal, external []string) {
	if base == nil {
		return nil, nil
	}
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return
		}
		resolved, err := base.Parse(href)
		if err != nil {
			return
		}
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return
		}
		if strings.EqualFold(resolved.Host, base.Host) {
			internal = append(internal, resolved.String())
		} else {
			external = append(external, resolved.String())
		}
	})
	return internal, external
}
