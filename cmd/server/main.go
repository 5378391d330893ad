package main

import (
	"bpp_web/config"
	"bpp_web/handlers"
	"bpp_web/middleware"
	"bpp_web/services"
	"bpp_web/services/content"
	"bpp_web/services/i18n"
	"bpp_web/services/jobs"
	"bpp_web/services/shell"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize i18n
	if err := i18n.Load(); err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	// Load site content
	site, err := content.Load()
	if err != nil {
		log.Fatalf("Failed to load site content: %v", err)
	}
	handlers.Site = site

	// Initialize security monitor
	services.InitSecurityMonitor()

	// Compute asset versions for cache busting
	middleware.InitAssetVersions(cfg.StaticDir)

	// Page views live in memory for the lifetime of the process
	views := shell.NewRegistry(shell.RegistryConfig{
		TTL:      cfg.ViewTTL,
		MaxViews: cfg.MaxViews,
	})
	handlers.Views = views

	e := newServer(cfg, views)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start background jobs (idle page view reaping)
	scheduler, err := jobs.StartScheduler(views, services.Monitor, cfg.ViewReapInterval, cfg.Location())
	if err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	// Start server
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] Server shutdown failed: %v", err)
	}
	<-scheduler.Stop().Done()
	views.Shutdown()
	log.Println("Server stopped")
}
