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
	Browser   BrowserConfig
	Scraper   ScraperConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8000
	Mode string // "debug", "release", "test"; default: "release"
}

// BrowserConfig controls the Rod browser instance and the per-request
// browsing contexts it hands out.
type BrowserConfig struct {
	// Headless controls whether the browser runs headless.
	Headless bool // default: true

	// NoSandbox disables Chrome's sandbox (needed in Docker).
	NoSandbox bool // default: true

	// MaxPages is the page pool capacity (max concurrent tabs).
	MaxPages int // default: 10

	// BrowserBin overrides the Chromium binary path.
	BrowserBin string

	// Proxy is an optional proxy URL for all requests.
	Proxy string

	// Stealth enables anti-bot-detection JS injection on new pages.
	Stealth bool // default: false

	// UserAgent is the fixed desktop user agent presented to the site.
	UserAgent string

	// ViewportWidth/ViewportHeight fix the page viewport.
	ViewportWidth  int // default: 1280
	ViewportHeight int // default: 720

	// Locale is the browser locale and Accept-Language value.
	Locale string // default: "de-DE"

	// DefaultTimeout is the page-wide default for all Rod operations.
	DefaultTimeout time.Duration // default: 60s

	// BlockedResourceTypes lists resource types never fetched by pages.
	// Attribute reads (src, srcset) do not need the bytes behind them.
	// default: ["Image", "Font", "Media"]
	BlockedResourceTypes []string
}

// ScraperConfig controls extraction and crawl behavior.
type ScraperConfig struct {
	// NavigationTimeout bounds a single page.Navigate.
	NavigationTimeout time.Duration // default: 45s

	// ReadyTimeout bounds the post-navigation DOM readiness wait.
	ReadyTimeout time.Duration // default: 30s

	// TitleWaitTimeout bounds the best-effort wait for the title element.
	TitleWaitTimeout time.Duration // default: 5s

	// HydrationPause is the fixed recovery pause applied when the title
	// element does not appear in time (sites with delayed hydration).
	HydrationPause time.Duration // default: 2s

	// CardAttachTimeout bounds the wait for the result-list container.
	CardAttachTimeout time.Duration // default: 5s

	// PageSettleDelay is the pause after navigating to the next result page.
	PageSettleDelay time.Duration // default: 1s

	// MaxPageCount caps how many result pages one request may crawl.
	MaxPageCount int // default: 5

	// MaxCardsPerPage caps how many cards are parsed per result page.
	MaxCardsPerPage int // default: 25
}

// AuthConfig controls API key authentication.
type AuthConfig struct {
	// Enabled toggles API key authentication.
	Enabled bool // default: false

	// APIKeys is the list of valid API keys.
	APIKeys []string
}

// RateLimitConfig controls per-key rate limiting.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate per API key or client IP.
	RequestsPerSecond float64 // default: 2

	// Burst is the maximum burst size per identity.
	Burst int // default: 5
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
			Host: envOr("KLAZ_HOST", "0.0.0.0"),
			Port: envIntOr("PORT", 8000),
			Mode: envOr("KLAZ_MODE", "release"),
		},
		Browser: BrowserConfig{
			Headless:   envBoolOr("KLAZ_HEADLESS", true),
			NoSandbox:  envBoolOr("KLAZ_NO_SANDBOX", true),
			MaxPages:   envIntOr("KLAZ_MAX_PAGES", 10),
			BrowserBin: os.Getenv("KLAZ_BROWSER_BIN"),
			Proxy:      os.Getenv("KLAZ_PROXY"),
			Stealth:    envBoolOr("KLAZ_STEALTH", false),
			UserAgent: envOr("KLAZ_USER_AGENT",
				"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 "+
					"(KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"),
			ViewportWidth:  envIntOr("KLAZ_VIEWPORT_WIDTH", 1280),
			ViewportHeight: envIntOr("KLAZ_VIEWPORT_HEIGHT", 720),
			Locale:         envOr("KLAZ_LOCALE", "de-DE"),
			DefaultTimeout: envDurationOr("KLAZ_DEFAULT_TIMEOUT", 60*time.Second),
			BlockedResourceTypes: envSliceOr("KLAZ_BLOCKED_RESOURCES", []string{
				"Image", "Font", "Media",
			}),
		},
		Scraper: ScraperConfig{
			NavigationTimeout: envDurationOr("KLAZ_NAV_TIMEOUT", 45*time.Second),
			ReadyTimeout:      envDurationOr("KLAZ_READY_TIMEOUT", 30*time.Second),
			TitleWaitTimeout:  envDurationOr("KLAZ_TITLE_WAIT_TIMEOUT", 5*time.Second),
			HydrationPause:    envDurationOr("KLAZ_HYDRATION_PAUSE", 2*time.Second),
			CardAttachTimeout: envDurationOr("KLAZ_CARD_ATTACH_TIMEOUT", 5*time.Second),
			PageSettleDelay:   envDurationOr("KLAZ_PAGE_SETTLE_DELAY", time.Second),
			MaxPageCount:      envIntOr("KLAZ_MAX_PAGE_COUNT", 5),
			MaxCardsPerPage:   envIntOr("KLAZ_MAX_CARDS_PER_PAGE", 25),
		},
		Auth: AuthConfig{
			Enabled: envBoolOr("KLAZ_AUTH_ENABLED", false),
			APIKeys: envSliceOr("KLAZ_API_KEYS", nil),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: envFloatOr("KLAZ_RATE_RPS", 2.0),
			Burst:             envIntOr("KLAZ_RATE_BURST", 5),
		},
		Log: LogConfig{
			Level:  envOr("KLAZ_LOG_LEVEL", "info"),
			Format: envOr("KLAZ_LOG_FORMAT", "json"),
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
