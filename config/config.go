package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Fetch     FetchConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
	Log       LogConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8080
	Mode string // "debug", "release", "test"; default: "release"
}

// FetchConfig controls the outbound page fetch.
type FetchConfig struct {
	// Timeout is the hard deadline for the whole fetch (dial, TLS,
	// response, body read).
	Timeout time.Duration // default: 15s

	// MaxTimeout is the maximum timeout a client may request.
	MaxTimeout time.Duration // default: 60s

	// MaxRedirects bounds the redirect chain.
	MaxRedirects int // default: 5

	// MaxBodyBytes caps how much of the response body is read.
	MaxBodyBytes int64 // default: 10 MiB

	// Proxy is an optional proxy URL applied to all requests.
	Proxy string
}

// AuthConfig controls API key authentication.
type AuthConfig struct {
	// Enabled toggles API key authentication.
	Enabled bool // default: true

	// APIKeys is the list of valid API keys.
	APIKeys []string
}

// RateLimitConfig controls per-key rate limiting.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate per API key.
	RequestsPerSecond float64 // default: 5

	// Burst is the maximum burst size per API key.
	Burst int // default: 10
}

// CacheConfig controls the scraped-document cache.
type CacheConfig struct {
	// MaxEntries is the maximum number of cached documents.
	MaxEntries int // default: 1000
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: envOr("SCOUT_HOST", "0.0.0.0"),
			Port: envIntOr("SCOUT_PORT", 8080),
			Mode: envOr("SCOUT_MODE", "release"),
		},
		Fetch: FetchConfig{
			Timeout:      envDurationOr("SCOUT_FETCH_TIMEOUT", 15*time.Second),
			MaxTimeout:   envDurationOr("SCOUT_MAX_TIMEOUT", 60*time.Second),
			MaxRedirects: envIntOr("SCOUT_MAX_REDIRECTS", 5),
			MaxBodyBytes: int64(envIntOr("SCOUT_MAX_BODY_BYTES", 10*1024*1024)),
			Proxy:        os.Getenv("SCOUT_PROXY"),
		},
		Auth: AuthConfig{
			Enabled: envBoolOr("SCOUT_AUTH_ENABLED", true),
			APIKeys: envSliceOr("SCOUT_API_KEYS", nil),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: envFloatOr("SCOUT_RATE_RPS", 5.0),
			Burst:             envIntOr("SCOUT_RATE_BURST", 10),
		},
		Cache: CacheConfig{
			MaxEntries: envIntOr("SCOUT_CACHE_MAX_ENTRIES", 1000),
		},
		Log: LogConfig{
			Level:  envOr("SCOUT_LOG_LEVEL", "info"),
			Format: envOr("SCOUT_LOG_FORMAT", "json"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}
