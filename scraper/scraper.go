package scraper

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/indiegrowth/scout/analyzer"
	"github.com/indiegrowth/scout/config"
	"github.com/indiegrowth/scout/models"
)

// Service runs the scrape pipeline: fetch → parse → extract → score.
// It holds no per-request state and is safe for concurrent use; concurrent
// invocations are fully independent.
type Service struct {
	fetcher  *fetcher
	analyzer *analyzer.Analyzer
	scrapes  atomic.Int64
}

// NewService creates the pipeline service.
func NewService(cfg config.FetchConfig) *Service {
	return &Service{
		fetcher:  newFetcher(cfg),
		analyzer: analyzer.New(),
	}
}

// Scrape fetches urlOrHost (scheme optional) and extracts a ScrapedDocument.
//
// The fetch is the single fallible, cancellable step: any network failure,
// timeout, non-2xx status or redirect overrun returns a *models.ScrapeError
// and no document. Once the HTML is in hand, extraction always succeeds;
// individual heuristics degrade to empty defaults on malformed markup.
func (s *Service) Scrape(ctx context.Context, urlOrHost string) (*models.ScrapedDocument, error) {
	res, err := s.fetcher.fetch(ctx, urlOrHost)
	if err != nil {
		slog.Warn("fetch failed", "url", urlOrHost, "error", err)
		return nil, err
	}
	s.scrapes.Add(1)

	start := time.Now()
	doc := s.analyzer.Analyze(res.HTML, res.FinalURL, analyzer.FetchMeta{
		ScrapeTimeMs:   res.FetchMs,
		ResponseTimeMs: res.ResponseMs,
		PageSizeBytes:  res.PageSize,
	})
	slog.Debug("page analyzed",
		"url", res.FinalURL,
		"analysis_ms", time.Since(start).Milliseconds(),
		"seo_score", doc.SEOScore,
		"quality", doc.ScrapeQuality,
	)
	return doc, nil
}

// ScrapeWithTimeout runs Scrape with a per-call fetch timeout override.
// The override is clamped to the configured MaxTimeout ceiling.
func (s *Service) ScrapeWithTimeout(ctx context.Context, urlOrHost string, timeout time.Duration) (*models.ScrapedDocument, error) {
	if ceiling := s.fetcher.cfg.MaxTimeout; ceiling > 0 && timeout > ceiling {
		timeout = ceiling
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return s.Scrape(ctx, urlOrHost)
}

// Scrapes reports the number of successful fetches since startup.
func (s *Service) Scrapes() int64 {
	return s.scrapes.Load()
}
