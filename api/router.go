package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/indiegrowth/scout/api/handler"
	"github.com/indiegrowth/scout/api/middleware"
	"github.com/indiegrowth/scout/cache"
	"github.com/indiegrowth/scout/config"
	"github.com/indiegrowth/scout/scraper"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → Logger
//	API:     Auth (if enabled) → RateLimit
//
// Health endpoint is intentionally outside auth so monitoring probes always work.
func NewRouter(svc *scraper.Service, cfg *config.Config, cc *cache.Cache, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	v1 := r.Group("/api/v1")

	// Health endpoint stays open.
	v1.GET("/health", handler.Health(svc, startTime))

	// Protected group: auth then rate limit.
	protected := v1.Group("")
	if cfg.Auth.Enabled {
		protected.Use(middleware.Auth(cfg.Auth.APIKeys))
	}
	protected.Use(middleware.RateLimit(cfg.RateLimit))

	protected.POST("/scrape", handler.Scrape(svc, cc))

	return r
}
