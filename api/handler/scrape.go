package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/indiegrowth/scout/cache"
	"github.com/indiegrowth/scout/models"
	"github.com/indiegrowth/scout/scraper"
)

// Scrape returns a handler for POST /api/v1/scrape.
//
// Orchestration flow:
//  1. Parse & validate request, apply defaults.
//  2. Cache lookup (when max_age > 0).
//  3. Service.Scrape → fetch + extract   (records fetch/analysis split)
//  4. Fill Timing, cache store, return 200.
func Scrape(svc *scraper.Service, cc *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		totalStart := time.Now()

		var req models.ScrapeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ScrapeResponse{
				Success: false,
				Error: &models.ErrorDetail{
					Code:    models.ErrCodeInvalidInput,
					Message: err.Error(),
				},
			})
			return
		}
		req.Defaults()

		cacheKey := cache.Key(scraper.NormalizeURL(req.URL))
		if cc != nil && req.MaxAge > 0 {
			if cached, hit := cc.Get(cacheKey, req.MaxAge); hit {
				c.JSON(http.StatusOK, models.ScrapeResponse{
					Success:     true,
					Document:    cached,
					CacheStatus: "hit",
					Timing: models.TimingInfo{
						TotalMs: time.Since(totalStart).Milliseconds(),
					},
				})
				return
			}
		}

		doc, err := svc.ScrapeWithTimeout(c.Request.Context(), req.URL, time.Duration(req.Timeout)*time.Second)
		if err != nil {
			respondError(c, err, models.TimingInfo{
				TotalMs: time.Since(totalStart).Milliseconds(),
			})
			return
		}

		resp := models.ScrapeResponse{
			Success:  true,
			Document: doc,
			Timing: models.TimingInfo{
				TotalMs:    time.Since(totalStart).Milliseconds(),
				FetchMs:    doc.PerformanceMetrics.ScrapeTimeMs,
				AnalysisMs: time.Since(totalStart).Milliseconds() - doc.PerformanceMetrics.ScrapeTimeMs,
			},
		}

		if cc != nil && req.MaxAge > 0 {
			cc.Set(cacheKey, doc)
			resp.CacheStatus = "miss"
		}

		c.JSON(http.StatusOK, resp)
	}
}

// respondError maps a ScrapeError to the correct HTTP status code and writes
// a structured JSON error response.
func respondError(c *gin.Context, err error, timing models.TimingInfo) {
	scrapeErr, ok := err.(*models.ScrapeError)
	if !ok {
		scrapeErr = models.NewScrapeError(models.ErrCodeInternal, err.Error(), err)
	}

	c.JSON(mapErrorToStatus(scrapeErr), models.ScrapeResponse{
		Success: false,
		Error:   scrapeErr.ToDetail(),
		Timing:  timing,
	})
}

// mapErrorToStatus translates error codes to HTTP status codes.
func mapErrorToStatus(e *models.ScrapeError) int {
	switch e.Code {
	case models.ErrCodeTimeout:
		return http.StatusGatewayTimeout // 504
	case models.ErrCodeFetch:
		return http.StatusBadGateway // 502
	case models.ErrCodeInvalidInput:
		return http.StatusBadRequest // 400
	case models.ErrCodeRateLimited:
		return http.StatusTooManyRequests // 429
	case models.ErrCodeUnauthorized:
		return http.StatusUnauthorized // 401
	default:
		return http.StatusInternalServerError // 500
	}
}
