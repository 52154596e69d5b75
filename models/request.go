package models

// ScrapeRequest is the payload for POST /api/v1/scrape.
type ScrapeRequest struct {
	// URL is the target page. A bare host is accepted; "https://" is assumed
	// when the scheme is missing. Required.
	URL string `json:"url" binding:"required"`

	// Timeout is the maximum duration in seconds for the fetch.
	// Default: 15. Max: 60.
	Timeout int `json:"timeout,omitempty" binding:"omitempty,min=1,max=60"`

	// MaxAge enables cache lookup: a cached document younger than MaxAge
	// milliseconds is returned instead of re-fetching. 0 disables caching.
	MaxAge int `json:"max_age,omitempty" binding:"omitempty,min=0"`
}

// Defaults applies default values to unset fields.
func (r *ScrapeRequest) Defaults() {
	if r.Timeout == 0 {
		r.Timeout = 15
	}
}
