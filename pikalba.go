// Package pikalba serves the Pikalba storefront: a single page listing the
// product catalog, blog teasers, upcoming events and a newsletter signup,
// all read from a remote storefront API.
//
// Each browser session gets its own storefront.View holding locale, category,
// search term and loaded data. Handlers mutate the view and render it with
// the views package, either as a full page or as an htmx partial.
package pikalba

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/pikalba/backend"
	"github.com/eringen/pikalba/i18n"
	"github.com/eringen/pikalba/storefront"
)

// App is the storefront server. It wires together the API client, the
// per-session views, handlers and middleware.
type App struct {
	Config  Config
	Echo    *echo.Echo
	Backend *backend.Client

	source       storefront.Source
	views        *viewRegistry
	limiter      *SubmitLimiter
	customRoutes []func(*App)
	initialized  bool
}

// New creates a new App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init builds the API client, view registry, middleware and routes.
// Start calls it; tests call it directly and serve a.Echo themselves.
func (a *App) Init() error {
	if a.initialized {
		return nil
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("pikalba: SessionSecret is required")
	}

	a.Echo.Logger.SetLevel(a.Config.logLevel())

	// The base URL is resolved here, once, and shared by every view.
	a.Backend = backend.NewClient(a.Config.BackendURL, a.Config.RequestTimeout)
	if a.source == nil {
		a.source = a.Backend
	}
	if a.Config.ContentCacheTTL > 0 {
		a.source = NewContentCache(a.source, a.Config.ContentCacheTTL)
	}

	a.views = newViewRegistry(a.Config.ViewIdleTTL, a.newView)
	a.limiter = NewSubmitLimiter(a.Config.NewsletterRateLimit, a.Config.NewsletterRateWindow)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}

	a.initialized = true
	return nil
}

// Start initializes the app and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	a.Echo.Logger.Infof("pikalba: listening on %s, api %s", a.Config.Addr, a.Backend.BaseURL())
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully and releases all views.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	a.Close()
	return err
}

// Close tears down every view and stops background sweepers.
func (a *App) Close() error {
	if a.views != nil {
		a.views.Close()
	}
	if a.limiter != nil {
		a.limiter.Stop()
	}
	return nil
}

func (a *App) newView(l i18n.Locale) *storefront.View {
	return storefront.NewView(a.source,
		storefront.WithLocale(l),
		storefront.WithLogger(a.Echo.Logger),
		storefront.WithStrictNewsletter(a.Config.StrictNewsletter),
	)
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.Config.StaticDir)
	e.GET("/healthz", handleHealth)

	e.GET("/", a.handleHome)
	e.POST("/locale", a.handleLocale)
	e.POST("/category", a.handleCategory)
	e.POST("/search", a.handleSearch)
	e.POST("/newsletter", a.handleNewsletter)
}
