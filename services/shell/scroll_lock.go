package shell

import "sync"

const (
	overflowHidden = "hidden"
	overflowUnset  = "unset"
)

// Document is the host document whose scrolling the shell suspends while the
// mobile menu covers the page.
type Document interface {
	SuspendScroll()
	RestoreScroll()
}

// PageDocument models the document root of one page view. Its overflow value is
// projected into the rendered page as the scroll-lock style rule.
type PageDocument struct {
	mu       sync.RWMutex
	overflow string
}

// NewPageDocument returns a document that scrolls normally
func NewPageDocument() *PageDocument {
	return &PageDocument{overflow: overflowUnset}
}

func (d *PageDocument) SuspendScroll() {
	d.mu.Lock()
	d.overflow = overflowHidden
	d.mu.Unlock()
}

func (d *PageDocument) RestoreScroll() {
	d.mu.Lock()
	d.overflow = overflowUnset
	d.mu.Unlock()
}

// Overflow returns the current CSS overflow value of the document body
func (d *PageDocument) Overflow() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.overflow
}

// ScrollSuspended reports whether page scrolling is currently disabled
func (d *PageDocument) ScrollSuspended() bool {
	return d.Overflow() == overflowHidden
}

// ScrollLock is a held suspension of document scrolling. Release restores
// scrolling exactly once, no matter how many paths call it.
type ScrollLock struct {
	doc  Document
	once sync.Once
}

// AcquireScrollLock suspends scrolling on doc until the returned lock is released
func AcquireScrollLock(doc Document) *ScrollLock {
	doc.SuspendScroll()
	return &ScrollLock{doc: doc}
}

// Release restores scrolling. Safe to call on a nil lock and more than once.
func (l *ScrollLock) Release() {
	if l == nil {
		return
	}
	l.once.Do(l.doc.RestoreScroll)
}
