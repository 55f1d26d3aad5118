package main

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/eringen/pikalba"
	"github.com/eringen/pikalba/backend"
)

const envPrefix = "PIKALBA"

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// Unprefixed names used by existing deployments.
	_ = v.BindEnv("backend-url", envPrefix+"_BACKEND_URL", "BACKEND_URL")
	_ = v.BindEnv("session-secret", envPrefix+"_SESSION_SECRET", "SESSION_SECRET")
	return v
}

func bindFlags(fs *pflag.FlagSet, v *viper.Viper) {
	fs.String("config", "", "config file (yaml, toml or json)")
	fs.String("addr", ":3000", "listen address")
	fs.String("backend-url", backend.DefaultBaseURL, "storefront API root")
	fs.String("static-dir", "public", "directory served under /public")
	fs.String("log-level", "info", "debug, info, warn, error or off")
	fs.String("session-secret", "", "session cookie secret")
	fs.Bool("cookie-secure", false, "mark cookies Secure (HTTPS only)")
	fs.Duration("request-timeout", 0, "API request timeout (default 10s)")
	fs.Duration("content-cache-ttl", 0, "blog and events cache TTL, negative disables (default 1m)")
	fs.Duration("view-idle-ttl", 0, "drop a session's page state after this long idle (default 30m)")
	fs.Int("newsletter-rate-limit", 0, "signups per IP per window (default 5)")
	fs.Duration("newsletter-rate-window", 0, "signup rate limit window (default 1m)")
	fs.Bool("strict-newsletter", false, "treat error statuses from the API as failed signups")
	_ = v.BindPFlags(fs)
}

// loadConfig resolves settings from flags, then PIKALBA_* variables, then the
// optional config file. Zero durations and limits fall back to the server's
// defaults.
func loadConfig(v *viper.Viper) (pikalba.Config, error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return pikalba.Config{}, errors.Wrap(err, "read config")
		}
	}

	cfg := pikalba.Config{
		Addr:                 v.GetString("addr"),
		BackendURL:           v.GetString("backend-url"),
		StaticDir:            v.GetString("static-dir"),
		LogLevel:             v.GetString("log-level"),
		SessionSecret:        v.GetString("session-secret"),
		CookieSecure:         v.GetBool("cookie-secure"),
		RequestTimeout:       v.GetDuration("request-timeout"),
		ContentCacheTTL:      v.GetDuration("content-cache-ttl"),
		ViewIdleTTL:          v.GetDuration("view-idle-ttl"),
		NewsletterRateLimit:  v.GetInt("newsletter-rate-limit"),
		NewsletterRateWindow: v.GetDuration("newsletter-rate-window"),
		StrictNewsletter:     v.GetBool("strict-newsletter"),
	}
	if cfg.SessionSecret == "" {
		return cfg, errors.New("session secret is required (--session-secret or SESSION_SECRET)")
	}
	return cfg, nil
}
