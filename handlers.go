package pikalba

import (
	"context"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/eringen/pikalba/i18n"
	"github.com/eringen/pikalba/storefront"
	"github.com/eringen/pikalba/views"
)

// view returns the session's storefront view, creating and mounting one on
// first visit or after the previous one was dropped.
func (a *App) view(c echo.Context) (*storefront.View, error) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		// Undecodable cookie: gorilla still hands back a fresh session.
		c.Logger().Debugf("session: %v", err)
		if sess == nil {
			return nil, err
		}
	}
	id, _ := sess.Values[viewKey].(string)
	if v, ok := a.views.Get(id); ok {
		v.Mount()
		return v, nil
	}

	id, v := a.views.Create(i18n.Negotiate(c.Request().Header.Get("Accept-Language")))
	sess.Values[viewKey] = id
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return nil, err
	}
	v.Mount()
	return v, nil
}

// settle waits for the view's in-flight loads, at most RequestTimeout.
// Whatever state is present afterwards gets rendered.
func (a *App) settle(c echo.Context, v *storefront.View) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), a.Config.RequestTimeout)
	defer cancel()
	if err := v.Wait(ctx); err != nil {
		c.Logger().Debugf("render before loads settled: %v", err)
	}
}

func (a *App) handleHome(c echo.Context) error {
	v, err := a.view(c)
	if err != nil {
		return err
	}
	a.settle(c, v)
	s := v.Snapshot()
	if isHTMX(c) {
		return Render(c, views.Storefront(s, CsrfToken(c)))
	}
	return Render(c, views.Page(s, CsrfToken(c), time.Now().Year()))
}

func (a *App) handleLocale(c echo.Context) error {
	l, ok := i18n.ParseLocale(c.FormValue("locale"))
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown locale")
	}
	v, err := a.view(c)
	if err != nil {
		return err
	}
	v.SetLocale(l)
	return renderPartial(c, func() templ.Component {
		a.settle(c, v)
		return views.Storefront(v.Snapshot(), CsrfToken(c))
	})
}

func (a *App) handleCategory(c echo.Context) error {
	cat, ok := storefront.ParseCategory(c.FormValue("category"))
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown category")
	}
	v, err := a.view(c)
	if err != nil {
		return err
	}
	v.SelectCategory(cat)
	return renderPartial(c, func() templ.Component {
		a.settle(c, v)
		return views.Storefront(v.Snapshot(), CsrfToken(c))
	})
}

func (a *App) handleSearch(c echo.Context) error {
	v, err := a.view(c)
	if err != nil {
		return err
	}
	v.SetSearch(c.FormValue("q"))
	return renderPartial(c, func() templ.Component {
		return views.ProductGrid(v.Snapshot())
	})
}

func (a *App) handleNewsletter(c echo.Context) error {
	if !a.limiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many signup attempts. Try again later.")
	}
	v, err := a.view(c)
	if err != nil {
		return err
	}
	form := v.Newsletter()
	form.SetEmail(c.FormValue("email"))
	status := form.Submit(c.Request().Context())
	c.Logger().Debugf("newsletter: status %s", status)
	return renderPartial(c, func() templ.Component {
		return views.NewsletterForm(v.Snapshot(), CsrfToken(c))
	})
}

func handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
