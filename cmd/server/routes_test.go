package main

import (
	"bpp_web/config"
	"bpp_web/handlers"
	"bpp_web/middleware"
	"bpp_web/services/content"
	"bpp_web/services/i18n"
	"bpp_web/services/shell"
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := i18n.Load(); err != nil {
		panic(err)
	}
	site, err := content.Load()
	if err != nil {
		panic(err)
	}
	handlers.Site = site
	os.Exit(m.Run())
}

func testServer(t *testing.T, opts ...func(*config.Config)) (*echo.Echo, *shell.Registry) {
	t.Helper()
	cfg := &config.Config{
		Environment:     "test",
		AppURL:          "http://localhost:8080",
		AllowedOrigins:  []string{"*"},
		StaticDir:       t.TempDir(),
		HTMXScriptURL:   "https://unpkg.com/htmx.org@2.0.4",
		SiteTimezone:    "UTC",
		DefaultLocale:   "en",
		ViewTTL:         time.Hour,
		ScrollRateLimit: 1000,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	views := shell.NewRegistry(shell.RegistryConfig{TTL: cfg.ViewTTL, MaxViews: 100})
	handlers.Views = views
	t.Cleanup(views.Shutdown)

	e := newServer(cfg, views)
	t.Cleanup(func() {
		assert.NoError(t, e.Shutdown(context.Background()))
	})
	return e, views
}

var (
	viewIDPattern = regexp.MustCompile(`data-view-id="([^"]+)"`)
	csrfPattern   = regexp.MustCompile(`data-csrf="([^"]+)"`)
)

// pageSession is one browser tab: its view, CSRF token and cookie
type pageSession struct {
	viewID string
	token  string
	cookie *http.Cookie
}

func loadPage(t *testing.T, e *echo.Echo) (pageSession, *httptest.ResponseRecorder) {
	t.Helper()
	return loadPageAt(t, e, "/")
}

func loadPageAt(t *testing.T, e *echo.Echo, target string) (pageSession, *httptest.ResponseRecorder) {
	t.Helper()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	viewMatch := viewIDPattern.FindStringSubmatch(body)
	csrfMatch := csrfPattern.FindStringSubmatch(body)
	require.Len(t, viewMatch, 2)
	require.Len(t, csrfMatch, 2)

	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "_csrf" {
			cookie = ck
		}
	}
	require.NotNil(t, cookie)

	return pageSession{viewID: viewMatch[1], token: csrfMatch[1], cookie: cookie}, rec
}

func (p pageSession) post(e *echo.Echo, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.Header.Set(middleware.HTMXRequestHeader, "true")
	req.Header.Set(middleware.CSRFHeader, p.token)
	req.AddCookie(p.cookie)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// beacon posts the way navigator.sendBeacon does on pagehide: a multipart
// FormData body with the token field and no htmx headers
func (p pageSession) beacon(t *testing.T, e *echo.Echo) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField(middleware.CSRFFormField, p.token))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/views/"+p.viewID+"/teardown", &body)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	req.AddCookie(p.cookie)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPageLoad(t *testing.T) {
	e, views := testServer(t)
	page, rec := loadPage(t, e)

	assert.Equal(t, 1, views.Len())
	_, err := views.Get(page.viewID)
	assert.NoError(t, err)
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "script-src 'self' 'nonce-")
	assert.Contains(t, rec.Body.String(), `nonce="`)
}

func TestScrollAndMenuRoundTrip(t *testing.T) {
	e, views := testServer(t)
	page, _ := loadPage(t, e)
	scroll := "/views/" + page.viewID + "/scroll"
	menu := "/views/" + page.viewID + "/menu"

	rec := page.post(e, scroll, url.Values{"offset": {"0"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "site-header--spacious")

	rec = page.post(e, scroll, url.Values{"offset": {"120"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "site-header--compact")

	rec = page.post(e, menu, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `class="mobile-menu"`)
	assert.Contains(t, rec.Body.String(), "body{overflow:hidden}")

	rec = page.post(e, menu, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `class="mobile-menu"`)
	assert.Contains(t, rec.Body.String(), "body{overflow:unset}")

	view, err := views.Get(page.viewID)
	require.NoError(t, err)
	assert.Equal(t, shell.State{Scrolled: true}, view.Shell.State())
}

func TestInvalidOffset(t *testing.T) {
	e, _ := testServer(t)
	page, _ := loadPage(t, e)

	rec := page.post(e, "/views/"+page.viewID+"/scroll", url.Values{"offset": {"down"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownViewRefreshes(t *testing.T) {
	e, _ := testServer(t)
	page, _ := loadPage(t, e)

	rec := page.post(e, "/views/does-not-exist/menu", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("HX-Refresh"))
}

func TestInteractionRequiresCSRF(t *testing.T) {
	e, views := testServer(t)
	page, _ := loadPage(t, e)

	req := httptest.NewRequest(http.MethodPost, "/views/"+page.viewID+"/menu", nil)
	req.AddCookie(page.cookie)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.NotEqual(t, http.StatusOK, rec.Code)

	view, err := views.Get(page.viewID)
	require.NoError(t, err)
	assert.False(t, view.Shell.State().MenuOpen)
}

func TestTeardownBeacon(t *testing.T) {
	openMenu := func(t *testing.T, e *echo.Echo, views *shell.Registry) (pageSession, *shell.View) {
		page, _ := loadPage(t, e)
		rec := page.post(e, "/views/"+page.viewID+"/menu", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		view, err := views.Get(page.viewID)
		require.NoError(t, err)
		require.True(t, view.Document.ScrollSuspended())
		return page, view
	}

	t.Run("Multipart", func(t *testing.T) {
		e, views := testServer(t)
		page, view := openMenu(t, e, views)

		rec := page.beacon(t, e)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, 0, views.Len())
		assert.False(t, view.Document.ScrollSuspended())

		// Later interactions find no view
		rec = page.post(e, "/views/"+page.viewID+"/scroll", url.Values{"offset": {"10"}})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("URLEncoded", func(t *testing.T) {
		e, views := testServer(t)
		page, view := openMenu(t, e, views)

		form := url.Values{middleware.CSRFFormField: {page.token}}
		req := httptest.NewRequest(http.MethodPost, "/views/"+page.viewID+"/teardown", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		req.AddCookie(page.cookie)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, 0, views.Len())
		assert.False(t, view.Document.ScrollSuspended())
	})

	t.Run("MissingToken", func(t *testing.T) {
		e, views := testServer(t)
		page, view := openMenu(t, e, views)

		req := httptest.NewRequest(http.MethodPost, "/views/"+page.viewID+"/teardown", nil)
		req.AddCookie(page.cookie)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.NotEqual(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, 1, views.Len())
		assert.True(t, view.Document.ScrollSuspended())
	})
}

func TestMenuAndTeardownIgnoreScrollBudget(t *testing.T) {
	e, views := testServer(t, func(cfg *config.Config) { cfg.ScrollRateLimit = 5 })
	page, _ := loadPage(t, e)
	base := "/views/" + page.viewID
	view, err := views.Get(page.viewID)
	require.NoError(t, err)

	rec := page.post(e, base+"/menu", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, view.Document.ScrollSuspended())

	throttled := 0
	for i := 0; i < 10; i++ {
		rec = page.post(e, base+"/scroll", url.Values{"offset": {"120"}})
		if rec.Code == http.StatusTooManyRequests {
			throttled++
		}
	}
	require.Equal(t, 5, throttled)

	// Closing still works once scroll reports are being turned away
	rec = page.post(e, base+"/menu", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "body{overflow:unset}")
	assert.False(t, view.Document.ScrollSuspended())

	rec = page.post(e, base+"/menu", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = page.post(e, base+"/menu/close", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, view.Shell.State().MenuOpen)

	rec = page.post(e, base+"/menu", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, view.Document.ScrollSuspended())

	rec = page.beacon(t, e)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, view.Document.ScrollSuspended())
	assert.Equal(t, 0, views.Len())
}

func TestFragmentsKeepPageLocale(t *testing.T) {
	e, views := testServer(t)
	page, rec := loadPageAt(t, e, "/?lang=bn")
	require.Contains(t, rec.Body.String(), `lang="bn"`)

	view, err := views.Get(page.viewID)
	require.NoError(t, err)
	require.Equal(t, "bn", view.Locale)

	// The cookie now says English, as if another tab switched language
	form := url.Values{"offset": {"120"}}
	req := httptest.NewRequest(http.MethodPost, "/views/"+page.viewID+"/scroll", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.Header.Set(middleware.HTMXRequestHeader, "true")
	req.Header.Set(middleware.CSRFHeader, page.token)
	req.AddCookie(page.cookie)
	req.AddCookie(&http.Cookie{Name: "lang", Value: "en"})
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "দান করুন")
	assert.NotContains(t, rec.Body.String(), ">Donate<")
}

func TestPublicRoutes(t *testing.T) {
	e, _ := testServer(t)

	for _, path := range []string{"/healthz", "/sitemap.xml", "/robots.txt"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
