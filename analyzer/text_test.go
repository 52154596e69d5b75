package analyzer

import (
	"strings"
	"testing"
)

func TestVisibleText_SkipsScriptAndStyle(t *testing.T) {
	html := `<html><head><title>ignored</title></head><body>
	<script>var hidden = "secret";</script>
	<style>.x { color: red }</style>
	<p>visible words</p>
	</body></html>`

	got := visibleText(html)

	if !strings.Contains(got, "visible words") {
		t.Errorf("visible text missing body content: %q", got)
	}
	if strings.Contains(got, "secret") || strings.Contains(got, "color") {
		t.Errorf("script/style text leaked into body text: %q", got)
	}
	if strings.Contains(got, "ignored") {
		t.Errorf("head content leaked into body text: %q", got)
	}
}

func TestVisibleText_MalformedMarkup(t *testing.T) {
	// Unclosed tags must not panic or lose the text.
	got := visibleText(`<body><div><p>still here`)
	if !strings.Contains(got, "still here") {
		t.Errorf("malformed markup lost text: %q", got)
	}
}

func TestVisibleText_NoBodyTag(t *testing.T) {
	// Fragments without <html>/<head>/<body> are body content; tree-building
	// parsers synthesize the body, so the tokenizer path must match.
	got := visibleText(`<p>fragment text</p><div>more text</div>`)
	if !strings.Contains(got, "fragment text") || !strings.Contains(got, "more text") {
		t.Errorf("body-less fragment lost text: %q", got)
	}
}

func TestVisibleText_TitleOutsideHead(t *testing.T) {
	got := visibleText(`<title>Page Name</title><p>real content</p>`)
	if strings.Contains(got, "Page Name") {
		t.Errorf("title text leaked into body text: %q", got)
	}
	if !strings.Contains(got, "real content") {
		t.Errorf("body text missing: %q", got)
	}
}

func TestWordCountAndReadingTime(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantWords   int
		wantMinutes int
	}{
		{"empty", "", 0, 0},
		{"three words", "one two three", 3, 1},
		{"exactly 200", strings.Repeat("word ", 200), 200, 1},
		{"just over 200", strings.Repeat("word ", 201), 201, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := wordCount(tt.text)
			if words != tt.wantWords {
				t.Errorf("wordCount = %d, want %d", words, tt.wantWords)
			}
			if got := readingTime(words); got != tt.wantMinutes {
				t.Errorf("readingTime = %d, want %d", got, tt.wantMinutes)
			}
		})
	}
}

func TestExtractKeywords(t *testing.T) {
	text := "widgets widgets widgets gadgets gadgets tool this this this this"
	got := extractKeywords(text, 20)

	// "this" is a stop word; "tool" is exactly 4 chars and allowed.
	if len(got) != 3 {
		t.Fatalf("keywords = %v, want 3", got)
	}
	if got[0] != "widgets" || got[1] != "gadgets" {
		t.Errorf("keywords not frequency-ordered: %v", got)
	}
}

func TestExtractKeywords_LengthWindow(t *testing.T) {
	text := "abc abcd supercalifragilistic reasonable"
	got := extractKeywords(text, 20)

	for _, kw := range got {
		if len(kw) < 4 || len(kw) > 14 {
			t.Errorf("keyword %q outside the 4-14 length window", kw)
		}
	}
	if len(got) != 2 {
		t.Errorf("keywords = %v, want [abcd reasonable]", got)
	}
}

func TestExtractKeywords_StripsPunctuation(t *testing.T) {
	got := extractKeywords("widgets, widgets! widgets?", 20)
	if len(got) != 1 || got[0] != "widgets" {
		t.Errorf("keywords = %v, want [widgets]", got)
	}
}

func TestExtractKeywords_DeterministicTieBreak(t *testing.T) {
	text := "alpha bravo alpha bravo charlie delta"
	first := extractKeywords(text, 20)
	for i := 0; i < 10; i++ {
		if got := strings.Join(extractKeywords(text, 20), ","); got != strings.Join(first, ",") {
			t.Fatalf("tie-break not deterministic: %v vs %v", got, first)
		}
	}
	// charlie and delta tie at 1; first-encountered order wins.
	if first[2] != "charlie" || first[3] != "delta" {
		t.Errorf("tie order = %v, want first-encountered", first)
	}
}

func TestAnalyzeSentiment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"positive", "I love this product, it's amazing and the best!", "positive"},
		{"negative", "terrible product, awful support, worst purchase", "negative"},
		{"neutral empty", "", "neutral"},
		{"neutral balanced", "great but terrible", "neutral"},
		{"substring hits count", "lovely and loveable", "positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := analyzeSentiment(tt.text); got != tt.want {
				t.Errorf("sentiment(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
