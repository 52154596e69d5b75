package analyzer

import (
	"bytes"
	"math"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// visibleText extracts the visible text of the page, stripping all tags and
// the content of <head>, <title>, <script>, <style> and <noscript>. It
// tokenizes rather than building a tree, so partial markup still yields
// text; in
// particular a fragment with no <body> tag is treated as body content, the
// same way tree-building parsers synthesize the missing element.
func visibleText(rawHTML string) string {
	tokenizer := html.NewTokenizer(bytes.NewReader([]byte(rawHTML)))
	var buf strings.Builder
	inHead := false
	skipDepth := 0

	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			return strings.TrimSpace(buf.String())
		case html.StartTagToken:
			tn, _ := tokenizer.TagName()
			switch tag := string(tn); tag {
			case "head":
				inHead = true
			case "body":
				// A <body> tag always ends the head, closed or not.
				inHead = false
			case "title", "script", "style", "noscript":
				skipDepth++
			}
		case html.EndTagToken:
			tn, _ := tokenizer.TagName()
			switch tag := string(tn); tag {
			case "head":
				inHead = false
			case "title", "script", "style", "noscript":
				if skipDepth > 0 {
					skipDepth--
				}
			}
		case html.TextToken:
			if !inHead && skipDepth == 0 {
				text := strings.TrimSpace(string(tokenizer.Text()))
				if text != "" {
					buf.WriteString(text)
					buf.WriteByte(' ')
				}
			}
		}
	}
}

// wordCount is the whitespace-split token count of the body text.
func wordCount(text string) int {
	return len(strings.Fields(text))
}

// readingTime estimates minutes to read at 200 words per minute.
func readingTime(words int) int {
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / 200.0))
}

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// extractKeywords returns the top-N tokens of the lower-cased text by
// descending frequency. Tokens are 4–14 characters after punctuation
// stripping; stop words are dropped. Ties keep first-encountered order
// (sort.SliceStable over a first-occurrence-ordered slice), so the result is
// deterministic for a fixed input.
func extractKeywords(text string, n int) []string {
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(text), "")

	counts := make(map[string]int)
	var order []string
	for _, tok := range strings.Fields(cleaned) {
		if len(tok) < 4 || len(tok) > 14 {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > n {
		order = order[:n]
	}
	if order == nil {
		order = []string{}
	}
	return order
}

// analyzeSentiment tallies positive and negative lexicon hits as substring
// counts over the lower-cased text and returns "positive", "negative" or
// "neutral".
func analyzeSentiment(text string) string {
	lower := strings.ToLower(text)

	var pos, neg int
	for _, w := range positiveWords {
		pos += strings.Count(lower, w)
	}
	for _, w := range negativeWords {
		neg += strings.Count(lower, w)
	}

	switch {
	case pos > neg:
		return "positive"
	case neg > pos:
		return "negative"
	default:
		return "neutral"
	}
}
