package analyzer

import "github.com/andybalholm/cascadia"

// The heuristic knowledge of the analyzer lives in the ordered tables below
// rather than in branching code, so first-match-wins semantics stay visible
// and each rule is testable on its own.

// Collection caps applied at assembly time.
const (
	maxHeadings     = 30
	maxParagraphs   = 20
	maxLists        = 50
	maxFeatures     = 20
	maxBenefits     = 15
	maxTestimonials = 10
	maxPricing      = 10
	maxImages       = 20
	maxVideos       = 10
	maxDocuments    = 10
	maxSocialLinks  = 15
	maxEmails       = 5
	maxPhones       = 5
	maxNavLinks     = 20
	maxFooterLinks  = 20
	maxPageLinks    = 50
	maxCategories   = 10
	maxKeywords     = 20
	maxContentChars = 10000

	maxShippingChars = 200
)

// sel compiles a CSS selector at init time; the tables below are the only
// place selectors are written, so a typo fails fast on startup.
func sel(s string) cascadia.Selector {
	return cascadia.MustCompile(s)
}

// bucketSelector routes matched list items into a named output bucket.
type bucketSelector struct {
	sel    cascadia.Selector
	bucket string
}

// featureSelectors feed the features/benefits extractor. Items matched by a
// benefit- or advantage-named selector land in benefits, everything else in
// features.
var featureSelectors = []bucketSelector{
	{sel(".features li"), "features"},
	{sel(".feature-list li"), "features"},
	{sel(`[class*="feature"] li`), "features"},
	{sel(".benefits li"), "benefits"},
	{sel(".advantages li"), "benefits"},
	{sel(".capabilities li"), "features"},
}

var testimonialSelectors = []cascadia.Selector{
	sel(".testimonial"),
	sel(".review"),
	sel(".quote"),
	sel(".customer-quote"),
	sel(`[class*="testimonial"]`),
	sel(`[class*="review"]`),
}

var pricingSelectors = []cascadia.Selector{
	sel(".price"),
	sel(".pricing"),
	sel(".cost"),
	sel(".plan"),
	sel(".tier"),
	sel(`[class*="price"]`),
	sel(`[class*="pricing"]`),
	sel(`[class*="plan"]`),
	sel(`[class*="tier"]`),
}

// logoSelectors are tried in priority order. The first selector with any
// match wins outright: if that match's src fails URL resolution the logo
// stays empty instead of falling through to the next selector. That
// short-circuit looks like a latent defect but is kept for output
// compatibility; see DESIGN.md.
var logoSelectors = []cascadia.Selector{
	sel(".logo img"),
	sel("#logo img"),
	sel(`[class*="logo"] img`),
	sel(`img[alt*="logo"]`),
	sel(`img[class*="logo"]`),
}

var faviconSelectors = []cascadia.Selector{
	sel(`link[rel="icon"]`),
	sel(`link[rel="shortcut icon"]`),
}

var navigationSelector = sel("nav, .nav, .menu, header")
var footerSelector = sel("footer")

var categorySelector = sel(`.category, .categories a, [class*="category"] a`)
var shippingSelector = sel(`[class*="shipping"]`)

// domainPlatform maps a URL substring to a social platform name. First
// matching domain wins per anchor.
type domainPlatform struct {
	domain   string
	platform string
}

var socialPlatforms = []domainPlatform{
	{"twitter.com", "Twitter"},
	{"x.com", "Twitter"},
	{"facebook.com", "Facebook"},
	{"linkedin.com", "LinkedIn"},
	{"instagram.com", "Instagram"},
	{"youtube.com", "YouTube"},
	{"github.com", "GitHub"},
	{"discord.com", "Discord"},
	{"tiktok.com", "TikTok"},
	{"pinterest.com", "Pinterest"},
}

// fingerprint is a raw-HTML substring probe. Matching is not tag-aware:
// "react" inside prose counts. Downstream consumers depend on the existing
// (imprecise) behavior. See DESIGN.md.
type fingerprint struct {
	tokens []string
	name   string
}

var technologyFingerprints = []fingerprint{
	{[]string{"react"}, "React"},
	{[]string{"vue"}, "Vue.js"},
	{[]string{"angular"}, "Angular"},
	{[]string{"next"}, "Next.js"},
	{[]string{"gatsby"}, "Gatsby"},
	{[]string{"wordpress"}, "WordPress"},
	{[]string{"shopify"}, "Shopify"},
	{[]string{"stripe"}, "Stripe"},
	{[]string{"paypal"}, "PayPal"},
}

var paymentFingerprints = []fingerprint{
	{[]string{"visa"}, "Visa"},
	{[]string{"mastercard"}, "Mastercard"},
	{[]string{"paypal"}, "PayPal"},
	{[]string{"stripe"}, "Stripe"},
	{[]string{"apple pay"}, "Apple Pay"},
	{[]string{"google pay"}, "Google Pay"},
}

var analyticsFingerprints = []fingerprint{
	{[]string{"google-analytics", "gtag"}, "Google Analytics"},
	{[]string{"mixpanel"}, "Mixpanel"},
	{[]string{"amplitude"}, "Amplitude"},
	{[]string{"hotjar"}, "Hotjar"},
	{[]string{"intercom"}, "Intercom"},
}

var pixelFingerprints = []fingerprint{
	{[]string{"fbq(", "facebook.com/tr"}, "Facebook Pixel"},
	{[]string{"googletagmanager"}, "Google Tag Manager"},
	{[]string{"snap.licdn.com"}, "LinkedIn Insight"},
	{[]string{"static.ads-twitter.com", "twq("}, "Twitter Pixel"},
}

// classifierRule tests ordered token lists against lower-cased page text;
// the first rule with any matching token returns its label.
type classifierRule struct {
	tokens []string
	label  string
}

var businessModelRules = []classifierRule{
	{[]string{"subscription", "monthly", "annually"}, "subscription"},
	{[]string{"freemium", "free trial"}, "freemium"},
	{[]string{"marketplace", "commission"}, "marketplace"},
	{[]string{"advertising", "sponsored"}, "advertising"},
	{[]string{"one-time", "purchase"}, "one-time-purchase"},
	{[]string{"enterprise", "custom pricing"}, "enterprise"},
}

var industryRules = []classifierRule{
	{[]string{"saas", "software as a service", "cloud platform"}, "SaaS"},
	{[]string{"e-commerce", "ecommerce", "online store", "shop now"}, "E-commerce"},
	{[]string{"fintech", "banking", "investment", "finance"}, "Finance"},
	{[]string{"healthcare", "medical", "clinic", "wellness"}, "Healthcare"},
	{[]string{"education", "course", "curriculum", "training"}, "Education"},
	{[]string{"marketing", "campaign", "branding"}, "Marketing"},
	{[]string{"productivity", "workflow", "task management"}, "Productivity"},
	{[]string{"design", "creative", "portfolio"}, "Design"},
	{[]string{"developer", "api documentation", "sdk", "open source"}, "Developer Tools"},
	{[]string{"social network", "community", "social media"}, "Social"},
	{[]string{"gaming", "esports", "game"}, "Gaming"},
	{[]string{"artificial intelligence", "machine learning", "ai-powered", "deep learning"}, "AI/ML"},
}

// stopWords are dropped during keyword extraction.
var stopWords = map[string]struct{}{
	"this": {}, "that": {}, "with": {}, "have": {}, "will": {},
	"your": {}, "from": {}, "they": {}, "know": {}, "want": {},
	"been": {}, "good": {}, "much": {}, "some": {}, "time": {},
	"very": {}, "when": {}, "come": {}, "here": {}, "just": {},
	"like": {}, "long": {}, "make": {}, "many": {}, "over": {},
	"such": {}, "take": {}, "than": {}, "them": {}, "well": {},
	"were": {},
}

// Sentiment lexicons. Counting is substring-based over the lower-cased body
// text, so "lovely" counts toward "love".
var positiveWords = []string{
	"great", "excellent", "amazing", "awesome", "fantastic",
	"wonderful", "best", "love", "perfect", "innovative",
	"powerful", "easy", "simple", "trusted", "reliable",
}

var negativeWords = []string{
	"bad", "poor", "terrible", "awful", "worst",
	"hate", "difficult", "problem", "broken", "slow",
	"expensive", "complicated", "frustrating", "annoying",
}
