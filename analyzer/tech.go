package analyzer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// scanFingerprints runs a fingerprint table against the lower-cased raw HTML
// and returns the canonical names whose tokens appear anywhere in it. The
// probe is a plain substring test over markup, scripts and prose alike;
// false positives ("react" inside "interactive") are part of the contract.
func scanFingerprints(lowerHTML string, table []fingerprint) []string {
	var out []string
	for _, fp := range table {
		for _, token := range fp.tokens {
			if strings.Contains(lowerHTML, token) {
				out = append(out, fp.name)
				break
			}
		}
	}
	return out
}

// isMobileOptimized reports whether the page declares a viewport meta tag.
func isMobileOptimized(doc *goquery.Document) bool {
	return doc.Find(`meta[name="viewport"]`).Length() > 0
}
