package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/indiegrowth/scout/models"
	"github.com/indiegrowth/scout/scraper"
)

// Health returns a handler for GET /api/v1/health.
func Health(svc *scraper.Service, startTime time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:  "healthy",
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Scrapes: svc.Scrapes(),
			Version: "0.1.0",
		})
	}
}
