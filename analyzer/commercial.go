package analyzer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractFeatures scans the feature selector table and routes each matched
// list item (10–200 characters) into the features or benefits bucket
// according to the selector that matched it.
func extractFeatures(doc *goquery.Document) (features, benefits []string) {
	for _, fs := range featureSelectors {
		doc.FindMatcher(fs.sel).Each(func(_ int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if len(text) < 10 || len(text) > 200 {
				return
			}
			if fs.bucket == "benefits" {
				benefits = append(benefits, text)
			} else {
				features = append(features, text)
			}
		})
	}
	return features, benefits
}

// extractTestimonials collects testimonial/review/quote element text between
// 20 and 500 characters.
func extractTestimonials(doc *goquery.Document) []string {
	var out []string
	for _, s := range testimonialSelectors {
		doc.FindMatcher(s).Each(func(_ int, el *goquery.Selection) {
			text := strings.TrimSpace(el.Text())
			if len(text) >= 20 && len(text) <= 500 {
				out = append(out, text)
			}
		})
	}
	return out
}

// extractPricing collects price-named element text. A snippet qualifies only
// if it carries a currency symbol, a currency code, or any digit.
func extractPricing(doc *goquery.Document) []string {
	var out []string
	for _, s := range pricingSelectors {
		doc.FindMatcher(s).Each(func(_ int, el *goquery.Selection) {
			text := strings.TrimSpace(el.Text())
			if text == "" || len(text) > 200 {
				return
			}
			if looksLikePrice(text) {
				out = append(out, text)
			}
		})
	}
	return out
}

func looksLikePrice(text string) bool {
	if strings.ContainsAny(text, "$€£₹") {
		return true
	}
	for _, code := range []string{"USD", "EUR", "GBP"} {
		if strings.Contains(text, code) {
			return true
		}
	}
	return strings.ContainsAny(text, "0123456789")
}

// extractCategories collects category-named anchor text, 2–50 characters.
func extractCategories(doc *goquery.Document) []string {
	var out []string
	doc.FindMatcher(categorySelector).Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if len(text) >= 2 && len(text) <= 50 {
			out = append(out, text)
		}
	})
	return out
}

// extractShipping returns the text of the first shipping-named element, or
// empty when the page has none.
func extractShipping(doc *goquery.Document) string {
	text := strings.TrimSpace(doc.FindMatcher(shippingSelector).First().Text())
	return truncateRunes(text, maxShippingChars)
}
