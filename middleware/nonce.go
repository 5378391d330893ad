package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"bpp_web/models"

	"github.com/labstack/echo/v4"
)

type contextKey string

const NonceKey contextKey = "csp_nonce"

// GenerateNonce creates a random nonce string
func GenerateNonce() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// CSPNonce middleware generates a nonce for each request and adds it to the context.
// scriptURL is the htmx bundle; its origin is allowed as a script source.
func CSPNonce(scriptURL string) echo.MiddlewareFunc {
	imageSources := strings.Join(models.ImageOrigins, " ")
	scriptSources := "'unsafe-eval'"
	if origin := originOf(scriptURL); origin != "" {
		scriptSources += " " + origin
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			nonce, err := GenerateNonce()
			if err != nil {
				c.Logger().Errorf("Failed to generate nonce: %v", err)
				nonce = "fallback-nonce-value"
			}

			c.Set(string(NonceKey), nonce)

			ctx := context.WithValue(c.Request().Context(), NonceKey, nonce)
			c.SetRequest(c.Request().WithContext(ctx))

			// 'unsafe-eval' stays for htmx "js:" value expressions (scroll offset).
			csp := fmt.Sprintf("default-src 'self'; script-src 'self' 'nonce-%s' %s; style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; img-src 'self' data: %s; font-src 'self' https://fonts.gstatic.com; connect-src 'self'; frame-ancestors 'none'", nonce, scriptSources, imageSources)

			c.Response().Header().Set("Content-Security-Policy", csp)

			return next(c)
		}
	}
}

// GetNonce retrieves the nonce from the context
func GetNonce(ctx context.Context) string {
	if val, ok := ctx.Value(NonceKey).(string); ok {
		return val
	}
	return ""
}

func originOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
