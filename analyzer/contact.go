package analyzer

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/indiegrowth/scout/models"
)

// extractSocialLinks scans every anchor for a known social-platform domain.
// The first domain in the table that the href contains decides the platform,
// so an x.com link never double-counts as something else.
func extractSocialLinks(doc *goquery.Document) []models.SocialLink {
	var out []models.SocialLink
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return
		}
		lower := strings.ToLower(href)
		for _, dp := range socialPlatforms {
			if strings.Contains(lower, dp.domain) {
				out = append(out, models.SocialLink{Platform: dp.platform, URL: href})
				return
			}
		}
	})
	return out
}

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// extractEmails scans the body text for email-shaped tokens.
func extractEmails(bodyText string) []string {
	return emailRe.FindAllString(bodyText, -1)
}

// extractPhones scans the body text for loosely North-American-formatted
// phone numbers.
func extractPhones(bodyText string) []string {
	var out []string
	for _, m := range phoneRe.FindAllString(bodyText, -1) {
		out = append(out, strings.TrimSpace(m))
	}
	return out
}
