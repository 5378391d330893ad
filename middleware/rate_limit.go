package middleware

import (
	"bpp_web/services"
	"html"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimitConfig defines the configuration for rate limiting
type RateLimitConfig struct {
	// Requests is the maximum number of requests allowed within the window
	Requests int
	// Window is the time window for rate limiting
	Window time.Duration
	// KeyFunc is a function that returns a unique key for rate limiting (defaults to IP)
	KeyFunc func(c echo.Context) string
	// Message is the error message returned when rate limit is exceeded
	Message string
	// OnLimit is called with the key of every rejected request
	OnLimit func(key string)
}

// rateLimitEntry tracks request count and window expiration
type rateLimitEntry struct {
	count     int
	expiresAt time.Time
}

// RateLimiter is a per-endpoint rate limiter
type RateLimiter struct {
	config RateLimitConfig
	store  map[string]*rateLimitEntry
	mu     sync.RWMutex

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a new rate limiter with the given configuration
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c echo.Context) string {
			return c.RealIP()
		}
	}
	if config.Message == "" {
		config.Message = "Too many requests. Please try again later."
	}

	rl := &RateLimiter{
		config: config,
		store:  make(map[string]*rateLimitEntry),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	// Start cleanup goroutine
	go rl.cleanup()

	return rl
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := rl.config.KeyFunc(c)

			rl.mu.Lock()
			entry, exists := rl.store[key]
			now := time.Now()

			if !exists || now.After(entry.expiresAt) {
				// Create new entry or reset expired entry
				rl.store[key] = &rateLimitEntry{
					count:     1,
					expiresAt: now.Add(rl.config.Window),
				}
				rl.mu.Unlock()
				return next(c)
			}

			if entry.count >= rl.config.Requests {
				rl.mu.Unlock()
				if rl.config.OnLimit != nil {
					rl.config.OnLimit(key)
				}
				// Return rate limit exceeded error
				if IsHTMX(c) {
					// app.js lets 429 responses through to the toast region
					c.Response().Header().Set("HX-Retarget", "#toasts")
					c.Response().Header().Set("HX-Reswap", "beforeend")
					return c.HTML(http.StatusTooManyRequests, `<div class="toast toast--error" role="alert">`+html.EscapeString(rl.config.Message)+`</div>`)
				}
				return echo.NewHTTPError(http.StatusTooManyRequests, rl.config.Message)
			}

			entry.count++
			rl.mu.Unlock()
			return next(c)
		}
	}
}

// cleanup removes expired entries every minute until Stop is called
func (rl *RateLimiter) cleanup() {
	defer close(rl.done)
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mu.Lock()
			now := time.Now()
			for key, entry := range rl.store {
				if now.After(entry.expiresAt) {
					delete(rl.store, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Stop ends the cleanup goroutine. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
	<-rl.done
}

// NewScrollRateLimiter limits scroll reports per IP. Scroll events are not
// debounced (about 3600 a minute at 60 Hz), so the budget sits well above that.
// Menu and teardown requests must never pass through it: a rejected close
// would leave the page scroll-locked.
func NewScrollRateLimiter(requestsPerMinute int) *RateLimiter {
	return NewRateLimiter(RateLimitConfig{
		Requests: requestsPerMinute,
		Window:   1 * time.Minute,
		Message:  "Too many scroll updates. Please slow down.",
		OnLimit: func(ip string) {
			if services.Monitor != nil {
				services.Monitor.TrackThrottled(ip)
			}
		},
	})
}
