// Package analyzer turns raw HTML into a ScrapedDocument through a sequence
// of independent heuristic extraction passes over one parsed document.
//
// Every extractor runs isolated: a panic inside one heuristic leaves its
// fields at their defaults and never aborts sibling extractors. Extractor
// failures must not propagate past the pass that raised them.
package analyzer

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pemistahl/lingua-go"

	"github.com/indiegrowth/scout/models"
)

// FetchMeta carries fetch-stage measurements into the assembled document.
type FetchMeta struct {
	ScrapeTimeMs   int64
	ResponseTimeMs int64
	PageSizeBytes  int
}

// Analyzer runs the extraction passes. It is immutable after construction
// and safe for concurrent use; every Analyze call parses its own document,
// so concurrent scrapes share no parser state.
type Analyzer struct {
	langDetector lingua.LanguageDetector
}

// New builds an Analyzer. The language detector is constructed once here
// (its model load is expensive) and is itself stateless and concurrency-safe.
func New() *Analyzer {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English, lingua.Spanish, lingua.French, lingua.German,
			lingua.Portuguese, lingua.Italian, lingua.Dutch, lingua.Russian,
			lingua.Japanese, lingua.Chinese,
		).
		Build()
	return &Analyzer{langDetector: detector}
}

// Analyze extracts a ScrapedDocument from rawHTML. pageURL must be the final
// fetched URL (post-redirect); relative asset URLs resolve against it.
//
// Analyze never fails: the worst case for garbage input is a document full
// of empty collections and default values.
func (a *Analyzer) Analyze(rawHTML, pageURL string, meta FetchMeta) *models.ScrapedDocument {
	d := emptyDocument(pageURL, meta)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		// html.Parse is tolerant of malformed markup; this only happens on
		// reader-level failures. Fingerprinting still works off the raw
		// string, everything else stays at defaults.
		slog.Warn("html parse failed, degrading to fingerprint-only analysis", "url", pageURL, "error", err)
		doc = nil
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}
	if base != nil {
		d.HTTPSEnabled = base.Scheme == "https"
	}

	lowerHTML := strings.ToLower(rawHTML)
	var bodyText string
	isolate("bodyText", func() { bodyText = visibleText(rawHTML) })

	// Fingerprints need only the raw HTML.
	isolate("technologies", func() { d.Technologies = scanFingerprints(lowerHTML, technologyFingerprints) })
	isolate("payments", func() { d.PaymentMethods = scanFingerprints(lowerHTML, paymentFingerprints) })
	isolate("analytics", func() { d.AnalyticsTools = scanFingerprints(lowerHTML, analyticsFingerprints) })
	isolate("pixels", func() { d.TrackingPixels = scanFingerprints(lowerHTML, pixelFingerprints) })

	// Text analysis needs only the body text.
	isolate("wordCount", func() {
		d.WordCount = wordCount(bodyText)
		d.ReadingTime = readingTime(d.WordCount)
	})
	isolate("keywords", func() { d.Keywords = extractKeywords(bodyText, maxKeywords) })
	isolate("sentiment", func() { d.Sentiment = analyzeSentiment(bodyText) })
	isolate("content", func() { d.Content = truncateRunes(bodyText, maxContentChars) })
	isolate("emails", func() { d.ContactInfo.Emails = extractEmails(bodyText) })
	isolate("phones", func() { d.ContactInfo.Phones = extractPhones(bodyText) })

	if doc != nil {
		isolate("title", func() { d.Title = extractTitle(doc) })
		isolate("description", func() { d.Description = extractDescription(doc) })
		isolate("metaMaps", func() {
			d.MetaTags, d.OpenGraphData, d.TwitterCardData = extractMetaMaps(doc)
		})
		isolate("jsonld", func() { d.JSONLDData = extractJSONLD(doc) })
		isolate("headings", func() { d.Headings = extractHeadings(doc) })
		isolate("paragraphs", func() { d.Paragraphs = extractParagraphs(doc) })
		isolate("lists", func() { d.Lists = extractLists(doc) })
		isolate("features", func() { d.Features, d.Benefits = extractFeatures(doc) })
		isolate("testimonials", func() { d.Testimonials = extractTestimonials(doc) })
		isolate("pricing", func() { d.Pricing = extractPricing(doc) })
		isolate("images", func() { d.Images = extractImages(doc, base) })
		isolate("videos", func() { d.Videos = extractVideos(doc, base) })
		isolate("documents", func() { d.Documents = extractDocuments(doc, base) })
		isolate("logo", func() { d.LogoURL = extractLogo(doc, base) })
		isolate("favicon", func() { d.Favicon = extractFavicon(doc, base) })
		isolate("social", func() { d.SocialLinks = extractSocialLinks(doc) })
		isolate("navigation", func() { d.NavigationMenu = extractNavigation(doc) })
		isolate("footerLinks", func() { d.FooterLinks = extractFooterLinks(doc) })
		isolate("pageLinks", func() { d.InternalLinks, d.ExternalLinks = extractPageLinks(doc, base) })
		isolate("categories", func() { d.Categories = extractCategories(doc) })
		isolate("shipping", func() { d.ShippingInfo = extractShipping(doc) })
		isolate("mobile", func() { d.MobileOptimized = isMobileOptimized(doc) })
		isolate("language", func() { d.LanguageDetected = detectLanguage(a.langDetector, doc, bodyText) })

		lowerTextAndTitle := strings.ToLower(bodyText + " " + d.Title)
		isolate("businessModel", func() { d.BusinessModel = classifyBusinessModel(lowerTextAndTitle) })
		isolate("industry", func() { d.IndustryCategory = classifyIndustry(lowerTextAndTitle) })
		isolate("companyInfo", func() {
			d.CompanyInfo = extractCompanyInfo(doc, rawHTML, pageURL, d.Title, d.Description)
		})
	}

	assemble(d)

	if doc != nil {
		isolate("seoScore", func() { d.SEOScore = computeSEOScore(doc, d) })
	}
	d.Completeness = computeCompleteness(d)
	d.ScrapeQuality = computeQuality(d.Completeness, d.SEOScore)

	return d
}

// isolate runs one extractor and converts a panic into that extractor's
// default output instead of aborting the pipeline.
func isolate(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("extractor recovered, keeping defaults", "extractor", name, "panic", r)
		}
	}()
	fn()
}

// emptyDocument is the fully-populated default every scrape starts from:
// collections are empty (not nil) so the serialized form is stable.
func emptyDocument(pageURL string, meta FetchMeta) *models.ScrapedDocument {
	return &models.ScrapedDocument{
		Title:           "Unknown Title",
		URL:             pageURL,
		MetaTags:        map[string]string{},
		OpenGraphData:   map[string]string{},
		TwitterCardData: map[string]string{},
		JSONLDData:      []any{},
		Headings:        []string{},
		Paragraphs:      []string{},
		Lists:           []string{},
		Features:        []string{},
		Benefits:        []string{},
		Pricing:         []string{},
		Testimonials:    []string{},
		Images:          []models.ImageAsset{},
		Videos:          []string{},
		Documents:       []string{},
		SocialLinks:     []models.SocialLink{},
		ContactInfo: models.ContactInfo{
			Emails:    []string{},
			Phones:    []string{},
			Addresses: []string{},
		},
		Technologies: []string{},
		PerformanceMetrics: models.PerformanceMetrics{
			ScrapeTimeMs:   meta.ScrapeTimeMs,
			ResponseTimeMs: meta.ResponseTimeMs,
			PageSizeBytes:  meta.PageSizeBytes,
		},
		LanguageDetected: "en",
		Keywords:         []string{},
		Sentiment:        "neutral",
		NavigationMenu:   []string{},
		FooterLinks:      []string{},
		InternalLinks:    []string{},
		ExternalLinks:    []string{},
		Products:         []string{},
		Categories:       []string{},
		PaymentMethods:   []string{},
		AnalyticsTools:   []string{},
		TrackingPixels:   []string{},
	}
}

// assemble applies the dedupe-then-cap law to every collection, in document
// order (first occurrence wins).
func assemble(d *models.ScrapedDocument) {
	d.Headings = dedupeCap(d.Headings, maxHeadings)
	d.Paragraphs = dedupeCap(d.Paragraphs, maxParagraphs)
	d.Lists = dedupeCap(d.Lists, maxLists)
	d.Features = dedupeCap(d.Features, maxFeatures)
	d.Benefits = dedupeCap(d.Benefits, maxBenefits)
	d.Pricing = dedupeCap(d.Pricing, maxPricing)
	d.Testimonials = dedupeCap(d.Testimonials, maxTestimonials)
	d.Videos = dedupeCap(d.Videos, maxVideos)
	d.Documents = dedupeCap(d.Documents, maxDocuments)
	d.ContactInfo.Emails = dedupeCap(d.ContactInfo.Emails, maxEmails)
	d.ContactInfo.Phones = dedupeCap(d.ContactInfo.Phones, maxPhones)
	d.NavigationMenu = dedupeCap(d.NavigationMenu, maxNavLinks)
	d.FooterLinks = dedupeCap(d.FooterLinks, maxFooterLinks)
	d.InternalLinks = dedupeCap(d.InternalLinks, maxPageLinks)
	d.ExternalLinks = dedupeCap(d.ExternalLinks, maxPageLinks)
	d.Categories = dedupeCap(d.Categories, maxCategories)
	d.Technologies = dedupeCap(d.Technologies, len(technologyFingerprints))
	d.PaymentMethods = dedupeCap(d.PaymentMethods, len(paymentFingerprints))

	// Images are capped only, not deduplicated: the first entries in
	// document order survive.
	if len(d.Images) > maxImages {
		d.Images = d.Images[:maxImages]
	}

	// Social links deduplicate by the full (platform, url) pair.
	seen := make(map[models.SocialLink]struct{}, len(d.SocialLinks))
	links := make([]models.SocialLink, 0, len(d.SocialLinks))
	for _, l := range d.SocialLinks {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		links = append(links, l)
		if len(links) == maxSocialLinks {
			break
		}
	}
	d.SocialLinks = links
}

// dedupeCap removes duplicates keeping first occurrence, then truncates to n.
func dedupeCap(items []string, n int) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
		if len(out) == n {
			break
		}
	}
	return out
}

// truncateRunes cuts text to at most n characters with no word-boundary
// adjustment.
func truncateRunes(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
