package pikalba

import (
	"strings"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/eringen/pikalba/backend"
	"github.com/eringen/pikalba/storefront"
)

// Config holds all configuration for a storefront server.
type Config struct {
	Addr       string // Listen address (default ":3000")
	BackendURL string // Storefront API root (default "http://localhost:8000")
	StaticDir  string // Static assets served under /public (default "public")
	LogLevel   string // debug, info, warn, error or off (default "info")

	SessionSecret string // Required: session cookie secret
	CookieSecure  bool   // Set true for HTTPS

	RequestTimeout  time.Duration // Per-request API timeout (default 10s)
	ContentCacheTTL time.Duration // Blog/events cache TTL (default 1m, negative disables)
	ViewIdleTTL     time.Duration // Idle time before a session's view is dropped (default 30m)

	NewsletterRateLimit  int           // Signups per IP per window (default 5)
	NewsletterRateWindow time.Duration // Rate limit window (default 1m)
	StrictNewsletter     bool          // Count error statuses from the API as failed signups
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.BackendURL == "" {
		c.BackendURL = backend.DefaultBaseURL
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 10 * time.Second
	}
	if c.ContentCacheTTL == 0 {
		c.ContentCacheTTL = time.Minute
	}
	if c.ViewIdleTTL == 0 {
		c.ViewIdleTTL = 30 * time.Minute
	}
	if c.NewsletterRateLimit == 0 {
		c.NewsletterRateLimit = 5
	}
	if c.NewsletterRateWindow == 0 {
		c.NewsletterRateWindow = time.Minute
	}
}

func (c Config) logLevel() log.Lvl {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithSource replaces the API client views read from.
func WithSource(src storefront.Source) Option {
	return func(a *App) {
		a.source = src
	}
}
