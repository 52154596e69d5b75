package analyzer

import (
	nurl "net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"

	"github.com/indiegrowth/scout/models"
)

// classify runs an ordered rule chain against the haystack; the first rule
// with any matching token wins. Empty string means no rule matched.
func classify(rules []classifierRule, haystack string) string {
	for _, rule := range rules {
		for _, token := range rule.tokens {
			if strings.Contains(haystack, token) {
				return rule.label
			}
		}
	}
	return ""
}

// classifyBusinessModel and classifyIndustry test the lower-cased body text
// plus title.
func classifyBusinessModel(lowerTextAndTitle string) string {
	return classify(businessModelRules, lowerTextAndTitle)
}

func classifyIndustry(lowerTextAndTitle string) string {
	return classify(industryRules, lowerTextAndTitle)
}

// languageSampleChars bounds how much body text the language detector sees.
const languageSampleChars = 1000

// detectLanguage prefers the page's own <html lang> declaration; when that
// is absent, lingua classifies a sample of the body text. Pages with too
// little text to classify default to "en".
func detectLanguage(detector lingua.LanguageDetector, doc *goquery.Document, bodyText string) string {
	if lang, ok := doc.Find("html").Attr("lang"); ok {
		if lang = strings.ToLower(strings.TrimSpace(lang)); lang != "" {
			// "en-US" → "en"
			if i := strings.IndexAny(lang, "-_"); i > 0 {
				lang = lang[:i]
			}
			return lang
		}
	}

	sample := truncateRunes(bodyText, languageSampleChars)
	if detector != nil && strings.TrimSpace(sample) != "" {
		if language, ok := detector.DetectLanguageOf(sample); ok {
			return strings.ToLower(language.IsoCode639_1().String())
		}
	}
	return "en"
}

// extractCompanyInfo builds a best-effort company identity. og:site_name and
// the description meta win; readability's SiteName/Excerpt fill the gaps on
// pages without Open Graph markup; the page title is the last resort for the
// name.
func extractCompanyInfo(doc *goquery.Document, rawHTML, pageURL, title, description string) models.CompanyInfo {
	info := models.CompanyInfo{}

	if name, ok := doc.Find(`meta[property="og:site_name"]`).First().Attr("content"); ok {
		info.Name = strings.TrimSpace(name)
	}
	info.Description = description

	if info.Name == "" || info.Description == "" {
		if parsed, err := nurl.Parse(pageURL); err == nil {
			if article, err := readability.FromReader(strings.NewReader(rawHTML), parsed); err == nil {
				if info.Name == "" {
					info.Name = strings.TrimSpace(article.SiteName)
				}
				if info.Description == "" {
					info.Description = strings.TrimSpace(article.Excerpt)
				}
			}
		}
	}

	if info.Name == "" && title != "Unknown Title" {
		info.Name = title
	}
	return info
}
