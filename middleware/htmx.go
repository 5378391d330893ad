package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// HTMXRequestHeader is sent by htmx on every request it issues
const HTMXRequestHeader = "HX-Request"

// IsHTMX reports whether the request was initiated by htmx
func IsHTMX(c echo.Context) bool {
	return strings.EqualFold(c.Request().Header.Get(HTMXRequestHeader), "true")
}
