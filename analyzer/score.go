package analyzer

import (
	"math"

	"github.com/PuerkitoBio/goquery"

	"github.com/indiegrowth/scout/models"
)

// computeSEOScore applies an additive point budget over the page's SEO
// signals. The budget sums to exactly 100; the clamp guards the rounding in
// the alt-coverage term.
func computeSEOScore(doc *goquery.Document, d *models.ScrapedDocument) int {
	score := 0

	// Title: the 10–60 character band scores full points; any non-empty
	// title still gets partial credit. Mutually exclusive.
	titleLen := len(d.Title)
	switch {
	case titleLen >= 10 && titleLen <= 60:
		score += 20
	case titleLen > 0:
		score += 10
	}

	descLen := len(d.Description)
	switch {
	case descLen >= 50 && descLen <= 160:
		score += 20
	case descLen > 0:
		score += 10
	}

	// Exactly one <h1> is the SEO ideal; several is better than none.
	h1Count := doc.Find("h1").Length()
	switch {
	case h1Count == 1:
		score += 10
	case h1Count > 1:
		score += 5
	}

	if len(d.Headings) > 3 {
		score += 5
	}

	// Image alt coverage, proportional out of 15.
	if total := len(d.Images); total > 0 {
		withAlt := 0
		for _, img := range d.Images {
			if img.Alt != "" {
				withAlt++
			}
		}
		score += int(math.Round(15 * float64(withAlt) / float64(total)))
	}

	if _, ok := d.MetaTags["robots"]; ok {
		score += 5
	}
	if _, ok := d.MetaTags["viewport"]; ok {
		score += 5
	}
	if _, ok := d.OpenGraphData["og:title"]; ok {
		score += 5
	}
	if _, ok := d.OpenGraphData["og:description"]; ok {
		score += 5
	}
	if doc.Find(`link[rel="canonical"]`).Length() > 0 {
		score += 5
	}
	if _, ok := d.MetaTags["author"]; ok {
		score += 3
	}
	if doc.Find(`script[type="application/ld+json"]`).Length() > 0 {
		score += 2
	}

	if score > 100 {
		score = 100
	}
	return score
}

// computeCompleteness starts at 0.5 and adds 0.1 for each expected signal
// that was found, clamped to 1.0.
func computeCompleteness(d *models.ScrapedDocument) float64 {
	completeness := 0.5

	if len(d.Title) > 10 {
		completeness += 0.1
	}
	if len(d.Description) > 50 {
		completeness += 0.1
	}
	if len(d.Images) > 0 {
		completeness += 0.1
	}
	if len(d.SocialLinks) > 0 {
		completeness += 0.1
	}
	if len(d.ContactInfo.Emails) > 0 {
		completeness += 0.1
	}
	if len(d.Features) > 0 {
		completeness += 0.1
	}

	return math.Min(1.0, completeness)
}

// computeQuality blends completeness with a weighted slice of the SEO score.
func computeQuality(completeness float64, seoScore int) float64 {
	return math.Min(1.0, completeness+float64(seoScore)/100*0.3)
}
