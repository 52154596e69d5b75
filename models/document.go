package models

// ScrapedDocument is the structured result of one scrape invocation.
// It is assembled once by the analyzer and never mutated afterwards; callers
// treat it as an opaque, serializable value.
type ScrapedDocument struct {
	// Identity
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`

	// Meta
	MetaTags        map[string]string `json:"metaTags"`
	OpenGraphData   map[string]string `json:"openGraphData"`
	TwitterCardData map[string]string `json:"twitterCardData"`

	// Structured data
	JSONLDData []any `json:"jsonLdData"`

	// Content structure
	Headings   []string `json:"headings"`
	Paragraphs []string `json:"paragraphs"`
	Lists      []string `json:"lists"`

	// Commercial signals
	Features     []string `json:"features"`
	Benefits     []string `json:"benefits"`
	Pricing      []string `json:"pricing"`
	Testimonials []string `json:"testimonials"`

	// Media
	Images    []ImageAsset `json:"images"`
	Videos    []string     `json:"videos"`
	Documents []string     `json:"documents"`
	LogoURL   string       `json:"logoUrl,omitempty"`
	Favicon   string       `json:"favicon,omitempty"`

	// Contact / social
	SocialLinks []SocialLink `json:"socialLinks"`
	ContactInfo ContactInfo  `json:"contactInfo"`

	// Technical
	Technologies       []string           `json:"technologies"`
	PerformanceMetrics PerformanceMetrics `json:"performanceMetrics"`
	SEOScore           int                `json:"seoScore"`
	MobileOptimized    bool               `json:"mobileOptimized"`
	HTTPSEnabled       bool               `json:"httpsEnabled"`

	// Content analysis
	WordCount        int      `json:"wordCount"`
	ReadingTime      int      `json:"readingTime"`
	LanguageDetected string   `json:"languageDetected"`
	Keywords         []string `json:"keywords"`
	Sentiment        string   `json:"sentiment"`

	// Business
	CompanyInfo      CompanyInfo `json:"companyInfo"`
	BusinessModel    string      `json:"businessModel,omitempty"`
	IndustryCategory string      `json:"industryCategory,omitempty"`

	// Navigation
	NavigationMenu []string `json:"navigationMenu"`
	FooterLinks    []string `json:"footerLinks"`
	InternalLinks  []string `json:"internalLinks"`
	ExternalLinks  []string `json:"externalLinks"`

	// E-commerce. Products has no extraction heuristic yet and is always
	// empty.
	Products       []string `json:"products"`
	Categories     []string `json:"categories"`
	PaymentMethods []string `json:"paymentMethods"`
	ShippingInfo   string   `json:"shippingInfo,omitempty"`

	// Analytics
	AnalyticsTools []string `json:"analyticsTools"`
	TrackingPixels []string `json:"trackingPixels"`

	// Quality
	ScrapeQuality float64 `json:"scrapeQuality"`
	Completeness  float64 `json:"completeness"`
}

// ImageAsset is an <img> found on the page with its src resolved to an
// absolute URL.
type ImageAsset struct {
	Src    string `json:"src"`
	Alt    string `json:"alt,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// SocialLink pairs a recognised social platform with the matched anchor URL.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// ContactInfo groups contact signals found in the page body.
// Addresses is reserved; no address heuristic is implemented yet, so it is
// always empty.
type ContactInfo struct {
	Emails    []string `json:"emails"`
	Phones    []string `json:"phones"`
	Addresses []string `json:"addresses"`
}

// CompanyInfo is a best-effort identity of the company behind the page.
type CompanyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PerformanceMetrics carries timing and size measurements from the fetch stage.
type PerformanceMetrics struct {
	// ScrapeTimeMs is the elapsed wall-clock time of the fetch, from just
	// before the request to after the body was read.
	ScrapeTimeMs int64 `json:"scrapeTime"`

	// ResponseTimeMs is the time until response headers were received.
	ResponseTimeMs int64 `json:"responseTime,omitempty"`

	// PageSizeBytes is the byte length of the raw response body.
	PageSizeBytes int `json:"pageSize,omitempty"`
}
