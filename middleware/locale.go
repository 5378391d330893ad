package middleware

import (
	"bpp_web/config"
	"bpp_web/services/i18n"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
)

const langCookieName = "lang"

// supportedTags mirrors i18n.Supported; the first entry is the fallback
var (
	supportedTags = []language.Tag{language.English, language.Bengali}
	langMatcher   = language.NewMatcher(supportedTags)
)

// Locale middleware handles language detection and persistence.
// Priority:
// 1. Query param "lang" (sets cookie)
// 2. Cookie "lang"
// 3. Accept-Language header
// 4. Configured default
func Locale(cfg *config.Config) echo.MiddlewareFunc {
	fallback := cfg.DefaultLocale
	if !i18n.IsSupported(fallback) {
		fallback = i18n.Supported[0]
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang := c.QueryParam("lang")
			if lang != "" {
				if !i18n.IsSupported(lang) {
					lang = fallback
				}
				setLanguageCookie(c, cfg, lang)
			} else if cookie, err := c.Cookie(langCookieName); err == nil && i18n.IsSupported(cookie.Value) {
				lang = cookie.Value
			}

			if lang == "" {
				lang = matchAcceptLanguage(c.Request().Header.Get("Accept-Language"), fallback)
			}

			c.Set("locale", lang)

			// Request context carries it to the renderers
			ctx := i18n.WithLocale(c.Request().Context(), lang)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// matchAcceptLanguage picks the best supported locale for an Accept-Language header
func matchAcceptLanguage(header, fallback string) string {
	if header == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, index, confidence := langMatcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	base, _ := supportedTags[index].Base()
	return base.String()
}

func setLanguageCookie(c echo.Context, cfg *config.Config, lang string) {
	cookie := new(http.Cookie)
	cookie.Name = langCookieName
	cookie.Value = lang
	cookie.Expires = time.Now().Add(24 * 365 * time.Hour) // 1 year
	cookie.Path = "/"
	cookie.HttpOnly = true
	cookie.SameSite = http.SameSiteLaxMode
	if cfg.IsProduction() {
		cookie.Secure = true
	}
	c.SetCookie(cookie)
}

// GetLocale returns the current locale from context
func GetLocale(c echo.Context) string {
	if lang, ok := c.Get("locale").(string); ok {
		return lang
	}
	return i18n.Supported[0]
}
