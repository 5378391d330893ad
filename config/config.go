package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultViewTTL is how long a page view may stay silent before it is torn down
	DefaultViewTTL = 30 * time.Minute
	// DefaultMaxViews bounds the number of live page views held in memory
	DefaultMaxViews = 10000
	// DefaultScrollRateLimit leaves headroom above one tab scrolling at 60 Hz
	DefaultScrollRateLimit = 6000
)

type Config struct {
	ServerPort     string
	Environment    string
	AppURL         string
	AllowedOrigins []string
	StaticDir      string
	HTMXScriptURL  string
	// Display
	SiteTimezone  string
	DefaultLocale string
	// Page views
	ViewTTL          time.Duration
	ViewReapInterval time.Duration
	MaxViews         int
	ScrollRateLimit  int // scroll reports per minute per IP
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		AppURL:           strings.TrimRight(getEnv("APP_URL", "http://localhost:8080"), "/"),
		AllowedOrigins:   strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		StaticDir:        getEnv("STATIC_DIR", "static"),
		HTMXScriptURL:    getEnv("HTMX_SCRIPT_URL", "https://unpkg.com/htmx.org@2.0.4"),
		SiteTimezone:     getEnv("SITE_TIMEZONE", "Asia/Kolkata"),
		DefaultLocale:    getEnv("DEFAULT_LOCALE", "en"),
		ViewTTL:          getEnvDuration("VIEW_TTL", DefaultViewTTL),
		ViewReapInterval: getEnvDuration("VIEW_REAP_INTERVAL", time.Minute),
		MaxViews:         getEnvInt("MAX_VIEWS", DefaultMaxViews),
		ScrollRateLimit:  getEnvInt("SCROLL_RATE_LIMIT", DefaultScrollRateLimit),
	}

	if cfg.ViewReapInterval > cfg.ViewTTL {
		log.Printf("[WARNING] VIEW_REAP_INTERVAL (%s) exceeds VIEW_TTL (%s); idle views will outlive their TTL", cfg.ViewReapInterval, cfg.ViewTTL)
	}

	return cfg
}

// Location returns the configured site timezone, falling back to UTC
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.SiteTimezone)
	if err != nil {
		log.Printf("[WARNING] Unknown SITE_TIMEZONE %q, using UTC: %v", c.SiteTimezone, err)
		return time.UTC
	}
	return loc
}

// IsProduction reports whether the app runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("[WARNING] Invalid value for %s: %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("[WARNING] Invalid duration for %s: %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
