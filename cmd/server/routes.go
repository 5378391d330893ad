package main

import (
	"bpp_web/config"
	"bpp_web/handlers"
	"bpp_web/middleware"
	"bpp_web/services/shell"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// newServer wires the middleware stack and routes around a view registry
func newServer(cfg *config.Config, views *shell.Registry) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	e.Use(middleware.CSPNonce(cfg.HTMXScriptURL))
	e.Use(middleware.Locale(cfg))
	e.Use(middleware.CSRF(cfg))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files
	e.Static("/static", cfg.StaticDir)

	// Public routes
	e.GET("/", handlers.LandingHandler)
	e.GET("/healthz", handlers.HealthHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)
	e.GET("/robots.txt", handlers.GetRobotsHandler)

	// Page view interaction routes (htmx). Only scroll reports are rate
	// limited: menu taps and teardown beacons always reach their view.
	scrollLimiter := middleware.NewScrollRateLimiter(cfg.ScrollRateLimit)
	e.Server.RegisterOnShutdown(scrollLimiter.Stop)

	interactions := e.Group("/views/:id")
	{
		interactions.POST("/teardown", handlers.TeardownHandler)

		live := interactions.Group("")
		live.Use(middleware.RequireView(views))
		{
			live.POST("/scroll", handlers.ScrollHandler, scrollLimiter.Middleware())
			live.POST("/menu", handlers.MenuToggleHandler)
			live.POST("/menu/close", handlers.MenuCloseHandler)
		}
	}

	return e
}
