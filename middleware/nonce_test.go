package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGenerateNonce(t *testing.T) {
	nonce1, err := GenerateNonce()
	assert.NoError(t, err)
	assert.NotEmpty(t, nonce1)

	nonce2, err := GenerateNonce()
	assert.NoError(t, err)
	assert.NotEqual(t, nonce1, nonce2)
}

func TestCSPNonce(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := CSPNonce("https://unpkg.com/htmx.org@2.0.4")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, handler(c))

	nonce := c.Get(string(NonceKey)).(string)
	assert.NotEmpty(t, nonce)
	assert.Equal(t, nonce, GetNonce(c.Request().Context()))

	csp := rec.Header().Get("Content-Security-Policy")
	directives := []string{
		"default-src 'self'",
		"script-src 'self' 'nonce-" + nonce + "' 'unsafe-eval' https://unpkg.com",
		"img-src 'self' data: https://picsum.photos https://fastly.picsum.photos",
		"connect-src 'self'",
		"frame-ancestors 'none'",
	}
	for _, d := range directives {
		assert.Contains(t, csp, d)
	}

	t.Run("SameOriginScript", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		handler := CSPNonce("/static/js/htmx.min.js")(func(c echo.Context) error { return nil })
		assert.NoError(t, handler(c))
		assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "'unsafe-eval'; style-src")
	})
}

func TestGetNonce(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), NonceKey, "test-nonce")
		assert.Equal(t, "test-nonce", GetNonce(ctx))
	})

	t.Run("NotExists", func(t *testing.T) {
		assert.Equal(t, "", GetNonce(context.Background()))
	})
}

func TestOriginOf(t *testing.T) {
	assert.Equal(t, "https://unpkg.com", originOf("https://unpkg.com/htmx.org@2.0.4"))
	assert.Equal(t, "", originOf("/static/js/htmx.min.js"))
}
