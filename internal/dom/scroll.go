package dom

import (
	"time"

	"golang.org/x/net/html"
)

const (
	// ThrottleInterval is the minimum gap between active-section updates.
	ThrottleInterval = 100 * time.Millisecond
	// SettleInterval is the quiet period after the last scroll before the
	// active link is updated.
	SettleInterval = 200 * time.Millisecond
)

// Layout reports rendered geometry. Offsets are relative to the viewport.
type Layout interface {
	DocumentHeight() float64
	SectionTop(section *html.Node) float64
	HeaderHeight(section *html.Node) float64
}

// ScrollTracker keeps the active section and link in step with the scroll
// position. Feed it scroll events with Scroll and let time advance with
// Tick; nothing happens between calls.
type ScrollTracker struct {
	page   *Page
	layout Layout
	active string

	throttleAt time.Time
	settleAt   time.Time
}

// NewScrollTracker returns a tracker whose selection starts at the first
// populated section.
func NewScrollTracker(p *Page, l Layout) *ScrollTracker {
	t := &ScrollTracker{page: p, layout: l}
	if first := FirstElementChild(p.Content); first != nil {
		t.active, _ = Attr(first, "data-type")
	}
	return t
}

// Active returns the identifier of the currently selected section.
func (t *ScrollTracker) Active() string { return t.active }

// Pending reports whether a recompute or link commit is scheduled.
func (t *ScrollTracker) Pending() bool {
	return !t.throttleAt.IsZero() || !t.settleAt.IsZero()
}

// Scroll records a scroll event at now. The settle deadline is pushed back
// on every event; the throttle deadline is only set when none is pending.
func (t *ScrollTracker) Scroll(now time.Time) {
	t.settleAt = now.Add(SettleInterval)
	if t.throttleAt.IsZero() {
		t.throttleAt = now.Add(ThrottleInterval)
	}
}

// Tick fires every deadline that is due at now, earliest first.
func (t *ScrollTracker) Tick(now time.Time) {
	for {
		throttleDue := !t.throttleAt.IsZero() && !now.Before(t.throttleAt)
		settleDue := !t.settleAt.IsZero() && !now.Before(t.settleAt)

		switch {
		case throttleDue && (!settleDue || !t.settleAt.Before(t.throttleAt)):
			t.throttleAt = time.Time{}
			t.active = t.highlightSection(t.active)
		case settleDue:
			t.settleAt = time.Time{}
			t.commitLink()
		default:
			return
		}
	}
}

// highlightSection marks the first section whose top lies within the upper
// half of the document, less its header height, and returns its identifier.
// With no such section prev is returned and nothing changes.
func (t *ScrollTracker) highlightSection(prev string) string {
	upper := t.layout.DocumentHeight() * 0.5
	sections := t.page.Sections()
	for _, s := range sections {
		top := t.layout.SectionTop(s)
		if top < 0 || top > upper-t.layout.HeaderHeight(s) {
			continue
		}
		for _, other := range sections {
			RemoveClass(other, ClassActiveSection)
		}
		AddClass(s, ClassActiveSection)
		id, _ := Attr(s, "data-type")
		return id
	}
	return prev
}

func (t *ScrollTracker) commitLink() {
	t.page.resetLinks()
	if link := t.page.Link(t.active); link != nil {
		AddClass(link, ClassActiveLink)
	}
}
