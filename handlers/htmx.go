package handlers

import (
	"bpp_web/middleware"
	"bpp_web/services"
	"bpp_web/services/shell"
	"bpp_web/templates/partials"
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// ScrollHandler records the latest scroll offset of a page view and returns
// the header in its resulting variant
func ScrollHandler(c echo.Context) error {
	view := middleware.GetView(c)

	offset, err := strconv.ParseFloat(strings.TrimSpace(c.FormValue("offset")), 64)
	if err != nil || math.IsNaN(offset) || math.IsInf(offset, 0) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid scroll offset")
	}

	state := view.Shell.ObserveScroll(offset)
	return renderView(c, view, partials.ScrollUpdate(Site, view.ID, state))
}

// MenuToggleHandler flips the mobile menu of a page view
func MenuToggleHandler(c echo.Context) error {
	view := middleware.GetView(c)
	state := view.Shell.ToggleMenu()
	return renderView(c, view, partials.MenuUpdate(Site, view.ID, state, view.Document.Overflow()))
}

// MenuCloseHandler closes the mobile menu after a destination was chosen
func MenuCloseHandler(c echo.Context) error {
	view := middleware.GetView(c)
	state := view.Shell.CloseMenu()
	return renderView(c, view, partials.MenuUpdate(Site, view.ID, state, view.Document.Overflow()))
}

// TeardownHandler ends a page view when the browser leaves the page.
// Repeated or unknown teardowns succeed so beacons can be retried freely.
func TeardownHandler(c echo.Context) error {
	if err := Views.Close(c.Param("id")); err != nil && !errors.Is(err, shell.ErrViewNotFound) {
		log.Printf("[ERROR] Failed to tear down page view %s: %v", c.Param("id"), err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to close page view")
	}
	return c.NoContent(http.StatusNoContent)
}

// HealthHandler reports liveness, the number of open page views and recent abuse alerts
func HealthHandler(c echo.Context) error {
	alerts := 0
	if services.Monitor != nil {
		alerts = len(services.Monitor.GetRecentAlerts())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "ok",
		"views":  Views.Len(),
		"alerts": alerts,
	})
}
