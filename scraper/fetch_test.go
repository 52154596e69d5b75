package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/indiegrowth/scout/config"
	"github.com/indiegrowth/scout/models"
)

func testFetchConfig() config.FetchConfig {
	return config.FetchConfig{
		Timeout:      5 * time.Second,
		MaxRedirects: 5,
		MaxBodyBytes: 10 * 1024 * 1024,
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare host", "example.com", "https://example.com"},
		{"https untouched", "https://example.com", "https://example.com"},
		{"http untouched", "http://example.com", "http://example.com"},
		{"path kept", "example.com/pricing", "https://example.com/pricing"},
		{"whitespace trimmed", "  example.com  ", "https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeURL(tt.in); got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Both spellings of the target must normalize to the same fetch target.
func TestNormalizeURL_Idempotent(t *testing.T) {
	if NormalizeURL("example.com") != NormalizeURL("https://example.com") {
		t.Error("bare host and https URL normalize to different targets")
	}
}

func TestFetch_Success(t *testing.T) {
	const page = "<html><head><title>ok</title></head><body>hello</body></html>"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != chromeUA {
			t.Errorf("User-Agent = %q, want browser UA", ua)
		}
		w.Write([]byte(page))
	}))
	defer srv.Close()

	f := newFetcher(testFetchConfig())
	res, err := f.fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if res.HTML != page {
		t.Errorf("HTML = %q", res.HTML)
	}
	if res.PageSize != len(page) {
		t.Errorf("PageSize = %d, want %d", res.PageSize, len(page))
	}
	if res.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d", res.StatusCode)
	}
	if res.FetchMs < 0 || res.ResponseMs < 0 {
		t.Errorf("negative timings: %+v", res)
	}
}

func TestFetch_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := newFetcher(testFetchConfig())
	_, err := f.fetch(context.Background(), srv.URL)

	var scrapeErr *models.ScrapeError
	if !errors.As(err, &scrapeErr) {
		t.Fatalf("expected *models.ScrapeError, got %v", err)
	}
	if scrapeErr.Code != models.ErrCodeFetch {
		t.Errorf("code = %q, want %q", scrapeErr.Code, models.ErrCodeFetch)
	}
}

func TestFetch_TimeoutIsTypedAndTerminal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte("late"))
	}))
	defer srv.Close()

	cfg := testFetchConfig()
	cfg.Timeout = 50 * time.Millisecond

	f := newFetcher(cfg)
	res, err := f.fetch(context.Background(), srv.URL)

	if res != nil {
		t.Error("timed-out fetch must not return a partial result")
	}
	var scrapeErr *models.ScrapeError
	if !errors.As(err, &scrapeErr) {
		t.Fatalf("expected *models.ScrapeError, got %v", err)
	}
	if scrapeErr.Code != models.ErrCodeTimeout {
		t.Errorf("code = %q, want %q", scrapeErr.Code, models.ErrCodeTimeout)
	}
}

func TestFetch_RedirectLimit(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, srv.URL+r.URL.Path+"x", http.StatusFound)
	}))
	defer srv.Close()

	f := newFetcher(testFetchConfig())
	_, err := f.fetch(context.Background(), srv.URL)

	var scrapeErr *models.ScrapeError
	if !errors.As(err, &scrapeErr) {
		t.Fatalf("expected *models.ScrapeError, got %v", err)
	}
	if scrapeErr.Code != models.ErrCodeFetch {
		t.Errorf("code = %q, want %q", scrapeErr.Code, models.ErrCodeFetch)
	}
}

func TestFetch_FollowsRedirectsUnderLimit(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/final" {
			w.Write([]byte("arrived"))
			return
		}
		http.Redirect(w, r, srv.URL+"/final", http.StatusFound)
	}))
	defer srv.Close()

	f := newFetcher(testFetchConfig())
	res, err := f.fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if res.HTML != "arrived" {
		t.Errorf("HTML = %q", res.HTML)
	}
	if res.FinalURL != srv.URL+"/final" {
		t.Errorf("FinalURL = %q, want the post-redirect URL", res.FinalURL)
	}
}

func TestService_ScrapeEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>Acme</title>
		<meta name="description" content="We build widgets for teams."></head>
		<body><h1>Acme</h1><img src="/logo.png" alt="logo"></body></html>`))
	}))
	defer srv.Close()

	svc := NewService(testFetchConfig())
	doc, err := svc.Scrape(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Scrape: %v", err)
	}

	if doc.Title != "Acme" {
		t.Errorf("title = %q", doc.Title)
	}
	if len(doc.Images) != 1 || doc.Images[0].Src != srv.URL+"/logo.png" {
		t.Errorf("images = %v, want src resolved against the page URL", doc.Images)
	}
	if doc.PerformanceMetrics.PageSizeBytes == 0 {
		t.Error("pageSize not recorded")
	}
	if svc.Scrapes() != 1 {
		t.Errorf("scrape counter = %d, want 1", svc.Scrapes())
	}
}

func TestService_ScrapeWithTimeoutClampedToMaxTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte("late"))
	}))
	defer srv.Close()

	cfg := testFetchConfig()
	cfg.MaxTimeout = 50 * time.Millisecond

	// The requested timeout exceeds the ceiling; the ceiling must win.
	svc := NewService(cfg)
	start := time.Now()
	_, err := svc.ScrapeWithTimeout(context.Background(), srv.URL, 10*time.Second)
	elapsed := time.Since(start)

	var scrapeErr *models.ScrapeError
	if !errors.As(err, &scrapeErr) {
		t.Fatalf("expected *models.ScrapeError, got %v", err)
	}
	if scrapeErr.Code != models.ErrCodeTimeout {
		t.Errorf("code = %q, want %q", scrapeErr.Code, models.ErrCodeTimeout)
	}
	if elapsed > 400*time.Millisecond {
		t.Errorf("fetch ran %v, want it cut off near the 50ms ceiling", elapsed)
	}
}

func TestService_ScrapeFetchFailure(t *testing.T) {
	svc := NewService(testFetchConfig())

	// Port 0 is never listening.
	_, err := svc.Scrape(context.Background(), "http://127.0.0.1:0/")
	if err == nil {
		t.Fatal("expected an error for an unreachable host")
	}
	var scrapeErr *models.ScrapeError
	if !errors.As(err, &scrapeErr) {
		t.Fatalf("expected *models.ScrapeError, got %v", err)
	}
}
