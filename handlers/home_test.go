package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLandingHandler(t *testing.T) {
	views := setupViews(t)
	_, c, rec := setupEcho(http.MethodGet, "/", nil)

	require.NoError(t, LandingHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, views.Len())
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	body := rec.Body.String()
	assert.Contains(t, body, "<!doctype html>")
	assert.Contains(t, body, "BENGAL PEOPLES POWER")
	assert.Contains(t, body, "Sunday, 18 October 2026")
	assert.Contains(t, body, "© 2026 BENGAL PEOPLES POWER. All Rights Reserved.")
	assert.Contains(t, body, "site-header--spacious")
	assert.Contains(t, body, `<style id="scroll-lock">body{overflow:unset}</style>`)
	assert.Contains(t, body, `<link rel="canonical" href="https://bpp.example.org/">`)
	assert.Contains(t, body, `hreflang="bn"`)
	assert.NotContains(t, body, `class="mobile-menu"`)
}

func TestLandingHandlerOpensDistinctViews(t *testing.T) {
	views := setupViews(t)

	for i := 0; i < 3; i++ {
		_, c, _ := setupEcho(http.MethodGet, "/", nil)
		require.NoError(t, LandingHandler(c))
	}
	assert.Equal(t, 3, views.Len())
}

func TestLandingSEO(t *testing.T) {
	_, c, _ := setupEcho(http.MethodGet, "/", nil)
	seo := LandingSEO(c.Request().Context(), "https://bpp.example.org", "bn")

	assert.Equal(t, "https://bpp.example.org/", seo.Canonical)
	assert.Equal(t, "bn", seo.Locale)
	assert.Equal(t, []string{"en"}, seo.AltLocales)
	assert.Equal(t, Site.Hero.ImageURL, seo.OGImage)
}
