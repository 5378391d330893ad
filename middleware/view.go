package middleware

import (
	"bpp_web/services/shell"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ContextKeyView is the context key for the resolved page view
const ContextKeyView = "view"

// RequireView resolves the :id route parameter to a live page view.
// Unknown or torn-down views ask htmx to reload the page into a fresh view.
func RequireView(views *shell.Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			view, err := views.Get(c.Param("id"))
			if err != nil {
				if errors.Is(err, shell.ErrViewNotFound) && IsHTMX(c) {
					c.Response().Header().Set("HX-Refresh", "true")
				}
				return echo.NewHTTPError(http.StatusNotFound, "page view not found")
			}

			c.Set(ContextKeyView, view)
			return next(c)
		}
	}
}

// GetView returns the page view resolved by RequireView
func GetView(c echo.Context) *shell.View {
	view, _ := c.Get(ContextKeyView).(*shell.View)
	return view
}
