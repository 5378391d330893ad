package handlers

import (
	"bpp_web/config"
	"bpp_web/middleware"
	"bpp_web/models"
	"bpp_web/services/i18n"
	"bpp_web/services/shell"
	"bpp_web/templates/pages"
	"log"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

var (
	// Views tracks the live page views; set at startup
	Views *shell.Registry
	// Site is the content rendered on the landing page; set at startup
	Site *models.Site
	// Now is the clock behind the top bar date and copyright year
	Now = time.Now
)

// LandingHandler opens a new page view and renders the full page for it
func LandingHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	ctx := c.Request().Context()
	lang := middleware.GetLocale(c)

	view := Views.Open(lang)

	vm := &pages.LandingViewModel{
		ViewID:        view.ID,
		State:         view.Shell.State(),
		Overflow:      view.Document.Overflow(),
		Site:          Site,
		Today:         Now().In(cfg.Location()),
		CSRFToken:     middleware.GetCSRFToken(c),
		HTMXScriptURL: cfg.HTMXScriptURL,
		SEO:           LandingSEO(ctx, cfg.AppURL, lang),
	}

	return renderHTML(c, pages.Landing(vm))
}

// renderHTML serves a component as an uncached HTML response
func renderHTML(c echo.Context, component templ.Component) error {
	c.Response().Header().Set("Cache-Control", "no-store")
	templ.Handler(component, templ.WithErrorHandler(renderError)).ServeHTTP(c.Response(), c.Request())
	return nil
}

// renderView renders an interaction fragment in the locale its page view was
// opened with, whatever the language cookie says now
func renderView(c echo.Context, view *shell.View, component templ.Component) error {
	ctx := i18n.WithLocale(c.Request().Context(), view.Locale)
	c.SetRequest(c.Request().WithContext(ctx))
	return renderHTML(c, component)
}

func renderError(r *http.Request, err error) http.Handler {
	log.Printf("[ERROR] Failed to render %s: %v", r.URL.Path, err)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	})
}
