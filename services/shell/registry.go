package shell

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrViewNotFound is returned for view IDs that were never opened or were torn down
var ErrViewNotFound = errors.New("page view not found")

// View is one loaded copy of the landing page
type View struct {
	ID        string
	Locale    string
	Shell     *Shell
	Document  *PageDocument
	CreatedAt time.Time

	lastSeen time.Time
}

// RegistryConfig defines how page views are retained
type RegistryConfig struct {
	// TTL is how long a view may stay silent before it is torn down
	TTL time.Duration
	// MaxViews bounds the number of live views; the least recently seen is evicted
	MaxViews int
	// Now overrides the clock (tests)
	Now func() time.Time
}

// Registry holds the live page views of this process
type Registry struct {
	config RegistryConfig
	views  map[string]*View
	mu     sync.Mutex
}

// NewRegistry creates an empty registry
func NewRegistry(config RegistryConfig) *Registry {
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Registry{
		config: config,
		views:  make(map[string]*View),
	}
}

// Open creates a fresh view for a page load. Both flags start false.
func (r *Registry) Open(locale string) *View {
	doc := NewPageDocument()
	now := r.config.Now()
	view := &View{
		ID:        uuid.New().String(),
		Locale:    locale,
		Shell:     New(doc),
		Document:  doc,
		CreatedAt: now,
		lastSeen:  now,
	}

	r.mu.Lock()
	if r.config.MaxViews > 0 && len(r.views) >= r.config.MaxViews {
		r.evictOldestLocked()
	}
	r.views[view.ID] = view
	r.mu.Unlock()

	return view
}

// Get returns a live view and marks it as seen
func (r *Registry) Get(id string) (*View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	view, ok := r.views[id]
	if !ok {
		return nil, ErrViewNotFound
	}
	view.lastSeen = r.config.Now()
	return view, nil
}

// Close tears down a view and forgets it
func (r *Registry) Close(id string) error {
	r.mu.Lock()
	view, ok := r.views[id]
	delete(r.views, id)
	r.mu.Unlock()

	if !ok {
		return ErrViewNotFound
	}
	view.Shell.Teardown()
	return nil
}

// Reap tears down every view idle for longer than the TTL and returns how many
func (r *Registry) Reap() int {
	if r.config.TTL <= 0 {
		return 0
	}

	cutoff := r.config.Now().Add(-r.config.TTL)
	var expired []*View

	r.mu.Lock()
	for id, view := range r.views {
		if view.lastSeen.Before(cutoff) {
			expired = append(expired, view)
			delete(r.views, id)
		}
	}
	r.mu.Unlock()

	for _, view := range expired {
		view.Shell.Teardown()
	}
	return len(expired)
}

// Shutdown tears down every live view
func (r *Registry) Shutdown() {
	r.mu.Lock()
	views := r.views
	r.views = make(map[string]*View)
	r.mu.Unlock()

	for _, view := range views {
		view.Shell.Teardown()
	}
	log.Printf("[INFO] Tore down %d page views on shutdown", len(views))
}

// Len returns the number of live views
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

func (r *Registry) evictOldestLocked() {
	var oldest *View
	for _, view := range r.views {
		if oldest == nil || view.lastSeen.Before(oldest.lastSeen) {
			oldest = view
		}
	}
	if oldest == nil {
		return
	}
	delete(r.views, oldest.ID)
	oldest.Shell.Teardown()
	log.Printf("[WARNING] View capacity reached, evicted page view %s", oldest.ID)
}
