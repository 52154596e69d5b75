package analyzer

import (
	"strings"
	"testing"
)

func TestClassifyBusinessModel(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"subscription", "billed monthly with no contract", "subscription"},
		{"freemium", "start your free trial today", "freemium"},
		{"marketplace", "we take a small commission per sale", "marketplace"},
		{"advertising", "sponsored placements available", "advertising"},
		{"one-time", "a single one-time payment", "one-time-purchase"},
		{"enterprise", "contact us for custom pricing", "enterprise"},
		{"unmatched", "hello world", ""},
		// Ordered first-match: subscription tokens outrank freemium ones.
		{"order", "free trial billed monthly", "subscription"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyBusinessModel(tt.text); got != tt.want {
				t.Errorf("classifyBusinessModel(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyIndustry(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"saas", "the saas platform for widget teams", "SaaS"},
		{"ecommerce", "your favourite online store", "E-commerce"},
		{"finance", "modern banking for startups", "Finance"},
		{"ai", "machine learning for everyone", "AI/ML"},
		{"unmatched", "hello world", ""},
		// Ordered first-match: SaaS tokens outrank AI/ML ones.
		{"order", "saas with machine learning inside", "SaaS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyIndustry(tt.text); got != tt.want {
				t.Errorf("classifyIndustry(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectLanguage_LangAttribute(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"plain", `<html lang="fr"><body></body></html>`, "fr"},
		{"region stripped", `<html lang="en-US"><body></body></html>`, "en"},
		{"uppercased", `<html lang="DE"><body></body></html>`, "de"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Detector nil: the lang attribute path must not need it.
			if got := detectLanguage(nil, parse(t, tt.html), ""); got != tt.want {
				t.Errorf("detectLanguage = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectLanguage_DefaultsToEnglish(t *testing.T) {
	if got := detectLanguage(nil, parse(t, `<html><body></body></html>`), ""); got != "en" {
		t.Errorf("detectLanguage = %q, want en fallback", got)
	}
}

func TestDetectLanguage_MultibyteSample(t *testing.T) {
	// Body text longer than the detector sample, built from multi-byte
	// characters so a byte-based cut would land mid-rune.
	body := strings.Repeat("Découvrez nos fonctionnalités préférées pour les équipes françaises. ", 30)

	a := New()
	got := detectLanguage(a.langDetector, parse(t, `<html><body></body></html>`), body)

	if got != "fr" {
		t.Errorf("detectLanguage = %q, want fr", got)
	}
}

func TestExtractCompanyInfo(t *testing.T) {
	html := `<html><head>
	<meta property="og:site_name" content="Acme Inc">
	<meta name="description" content="Widgets for teams.">
	</head><body></body></html>`

	info := extractCompanyInfo(parse(t, html), html, "https://acme.io/", "Acme", "Widgets for teams.")

	if info.Name != "Acme Inc" {
		t.Errorf("company name = %q, want og:site_name value", info.Name)
	}
	if info.Description != "Widgets for teams." {
		t.Errorf("company description = %q", info.Description)
	}
}

func TestExtractCompanyInfo_TitleFallback(t *testing.T) {
	html := `<html><body></body></html>`
	info := extractCompanyInfo(parse(t, html), html, "https://acme.io/", "Acme", "")

	if info.Name != "Acme" {
		t.Errorf("company name = %q, want title fallback", info.Name)
	}
}

func TestExtractCompanyInfo_UnknownTitleNotUsed(t *testing.T) {
	html := `<html><body></body></html>`
	info := extractCompanyInfo(parse(t, html), html, "https://acme.io/", "Unknown Title", "")

	if info.Name == "Unknown Title" {
		t.Errorf("company name must not inherit the Unknown Title placeholder")
	}
}
