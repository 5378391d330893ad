// Package shell holds the interaction state of a rendered landing page: whether
// the viewport has scrolled past the header threshold and whether the mobile
// menu overlay is open. A Shell is the single owner of both flags and of the
// document scroll lock tied to the menu.
package shell

import "sync"

// ScrollThreshold is the vertical offset, in CSS pixels, past which the header
// switches to its compact variant. An offset equal to the threshold does not count.
const ScrollThreshold = 50.0

// HeaderVariant is the presentation of the site header
type HeaderVariant string

const (
	HeaderSpacious HeaderVariant = "spacious"
	HeaderCompact  HeaderVariant = "compact"
)

// State is a point-in-time snapshot of a Shell
type State struct {
	MenuOpen     bool
	Scrolled     bool
	ScrollLocked bool
}

// Header returns the header variant selected by the scroll flag
func (s State) Header() HeaderVariant {
	if s.Scrolled {
		return HeaderCompact
	}
	return HeaderSpacious
}

// Shell tracks the two independent flags of a page view. Both start false.
type Shell struct {
	mu       sync.Mutex
	doc      Document
	menuOpen bool
	scrolled bool
	lock     *ScrollLock
	closed   bool
}

// New creates a shell bound to the document whose scrolling it controls
func New(doc Document) *Shell {
	return &Shell{doc: doc}
}

// ObserveScroll records the latest vertical offset of the viewport. Every call
// recomputes the flag; there is no debouncing.
func (s *Shell) ObserveScroll(offset float64) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.scrolled = offset > ScrollThreshold
	}
	return s.stateLocked()
}

// ToggleMenu flips the menu flag. Opening acquires the scroll lock and closing
// releases it.
func (s *Shell) ToggleMenu() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.stateLocked()
	}
	s.setMenuLocked(!s.menuOpen)
	return s.stateLocked()
}

// CloseMenu closes the menu if it is open
func (s *Shell) CloseMenu() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.setMenuLocked(false)
	}
	return s.stateLocked()
}

// Teardown destroys the view. The scroll lock is always released, even if the
// menu is open at the time; later input is ignored.
func (s *Shell) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	defer s.releaseLocked()
	s.menuOpen = false
}

// State returns the current snapshot
func (s *Shell) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// Closed reports whether Teardown has run
func (s *Shell) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Shell) setMenuLocked(open bool) {
	if open == s.menuOpen {
		return
	}
	s.menuOpen = open
	if open {
		s.lock = AcquireScrollLock(s.doc)
		return
	}
	s.releaseLocked()
}

func (s *Shell) releaseLocked() {
	s.lock.Release()
	s.lock = nil
}

func (s *Shell) stateLocked() State {
	return State{
		MenuOpen:     s.menuOpen,
		Scrolled:     s.scrolled,
		ScrollLocked: s.lock != nil,
	}
}
