package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	tls2 "github.com/refraction-networking/utls"

	"github.com/indiegrowth/scout/config"
	"github.com/indiegrowth/scout/models"
)

const chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

// FetchResult is the raw outcome of one page fetch.
type FetchResult struct {
	// HTML is the raw response body.
	HTML string

	// FinalURL is the URL after following redirects.
	FinalURL string

	// StatusCode is the final HTTP status code.
	StatusCode int

	// PageSize is the byte length of the response body.
	PageSize int

	// FetchMs is the wall-clock time from just before the request to after
	// the body was fully read.
	FetchMs int64

	// ResponseMs is the time until response headers arrived.
	ResponseMs int64
}

// fetcher performs a single HTTP GET with browser-like headers and a Chrome
// TLS fingerprint (utls). It holds no mutable state and is safe for
// concurrent use.
type fetcher struct {
	cfg config.FetchConfig
}

func newFetcher(cfg config.FetchConfig) *fetcher {
	return &fetcher{cfg: cfg}
}

// NormalizeURL prefixes "https://" when the input has no scheme, so that
// "example.com" and "https://example.com" address the same fetch target.
func NormalizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		return "https://" + trimmed
	}
	return trimmed
}

// fetch retrieves the normalized target URL. All failure modes (DNS, TLS,
// timeout, non-2xx status, redirect limit) surface as a *models.ScrapeError;
// no retries are attempted here.
func (f *fetcher) fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	targetURL := NormalizeURL(rawURL)
	if _, err := url.ParseRequestURI(targetURL); err != nil {
		return nil, models.NewScrapeError(models.ErrCodeInvalidInput, "invalid URL", err)
	}

	transport := &http.Transport{
		DialTLSContext: dialTLSChrome,
	}
	if f.cfg.Proxy != "" {
		proxyURL, err := url.Parse(f.cfg.Proxy)
		if err == nil && (proxyURL.Scheme == "http" || proxyURL.Scheme == "https") {
			transport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	maxRedirects := f.cfg.MaxRedirects
	client := &http.Client{
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}
	defer client.CloseIdleConnections()

	// The configured timeout applies unless the caller already set a
	// tighter deadline on the context.
	if _, ok := ctx.Deadline(); !ok && f.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.cfg.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, models.NewScrapeError(models.ErrCodeInvalidInput, "build request", err)
	}
	req.Header.Set("User-Agent", chromeUA)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, models.NewScrapeError(models.ErrCodeTimeout,
				"fetch timed out", err)
		}
		return nil, models.NewScrapeError(models.ErrCodeFetch, "request failed", err)
	}
	defer resp.Body.Close()
	responseMs := time.Since(start).Milliseconds()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, models.NewScrapeError(models.ErrCodeFetch,
			fmt.Sprintf("HTTP %d for %s", resp.StatusCode, targetURL), nil)
	}

	maxBody := f.cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 10 * 1024 * 1024
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, models.NewScrapeError(models.ErrCodeTimeout,
				"fetch timed out", err)
		}
		return nil, models.NewScrapeError(models.ErrCodeFetch, "read body", err)
	}
	fetchMs := time.Since(start).Milliseconds()

	finalURL := targetURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &FetchResult{
		HTML:       string(body),
		FinalURL:   finalURL,
		StatusCode: resp.StatusCode,
		PageSize:   len(body),
		FetchMs:    fetchMs,
		ResponseMs: responseMs,
	}, nil
}

// dialTLSChrome establishes a TLS connection using a Chrome fingerprint via
// utls, which avoids the trivial TLS-level bot rejection some hosts apply to
// Go's default client hello.
func dialTLSChrome(ctx context.Context, network, addr string) (net.Conn, error) {
	dialer := &net.Dialer{}
	rawConn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	host, _, _ := net.SplitHostPort(addr)
	tlsConn := tls2.UClient(rawConn, &tls2.Config{
		ServerName: host,
	}, tls2.HelloChrome_Auto)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		rawConn.Close()
		return nil, err
	}
	return tlsConn, nil
}
