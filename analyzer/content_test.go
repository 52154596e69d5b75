package analyzer

import (
	"net/url"
	"testing"
)

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return u
}

func TestExtractHeadings_LengthFloor(t *testing.T) {
	html := `<h1>OK</h1><h2>Yes</h2><h3>Long enough heading</h3>`
	got := extractHeadings(parse(t, html))

	// "OK" is 2 chars, below the >2 floor.
	if len(got) != 2 {
		t.Fatalf("headings = %v, want 2 entries", got)
	}
	if got[0] != "Yes" {
		t.Errorf("first heading = %q, want Yes", got[0])
	}
}

func TestExtractParagraphs_LengthFloor(t *testing.T) {
	html := `<p>short</p><p>This paragraph easily clears the floor.</p>`
	got := extractParagraphs(parse(t, html))

	if len(got) != 1 {
		t.Fatalf("paragraphs = %v, want 1 entry", got)
	}
}

func TestExtractLists_Boundaries(t *testing.T) {
	// 4-char item excluded, 5-char item included (inclusive floor).
	html := `<ul><li>abcd</li><li>abcde</li></ul>`
	got := extractLists(parse(t, html))

	if len(got) != 1 {
		t.Fatalf("lists = %v, want exactly the 5-char item", got)
	}
	if got[0] != "abcde" {
		t.Errorf("list item = %q, want abcde", got[0])
	}
}

func TestExtractNavigation(t *testing.T) {
	html := `<nav><a href="/">Home</a><a href="/pricing">Pricing</a></nav>
	<header><a href="/about">About</a></header>
	<div><a href="/not-nav">Elsewhere</a></div>`
	got := extractNavigation(parse(t, html))

	if len(got) != 3 {
		t.Fatalf("navigation = %v, want 3 entries", got)
	}
}

func TestExtractFooterLinks(t *testing.T) {
	html := `<footer><a href="/privacy">Privacy</a><a href="/terms">Terms</a></footer>`
	got := extractFooterLinks(parse(t, html))

	if len(got) != 2 {
		t.Fatalf("footer links = %v, want 2 entries", got)
	}
}

func TestExtractPageLinks(t *testing.T) {
	base := mustParseURL(t, "https://acme.io/")
	html := `<a href="/pricing">Pricing</a>
	<a href="https://acme.io/about">About</a>
	<a href="https://other.example/doc">Other</a>
	<a href="mailto:hi@acme.io">Mail</a>
	<a href="javascript:void(0)">JS</a>`

	internal, external := extractPageLinks(parse(t, html), base)

	if len(internal) != 2 {
		t.Errorf("internal = %v, want 2", internal)
	}
	if len(external) != 1 {
		t.Errorf("external = %v, want 1", external)
	}
	if len(internal) > 0 && internal[0] != "https://acme.io/pricing" {
		t.Errorf("relative link resolved to %q", internal[0])
	}
}
