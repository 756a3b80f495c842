package dom

import "golang.org/x/net/html"

// Scroller brings a node into view.
type Scroller interface {
	ScrollIntoView(n *html.Node, smooth bool)
}

// Navigator handles clicks inside the navigation list.
type Navigator struct {
	page     *Page
	scroller Scroller
	schedule func(func())
}

// NewNavigator returns a Navigator. schedule defers the scroll until after
// the click has been handled; nil runs it immediately.
func NewNavigator(p *Page, s Scroller, schedule func(func())) *Navigator {
	if schedule == nil {
		schedule = func(fn func()) { fn() }
	}
	return &Navigator{page: p, scroller: s, schedule: schedule}
}

// Click marks target as the active link and schedules a smooth scroll to
// its section. It returns false, doing nothing, when target is not a
// navigation link.
func (n *Navigator) Click(target *html.Node) bool {
	if target == nil || target.Type != html.ElementNode || !HasClass(target, ClassNavigationLink) {
		return false
	}

	n.page.resetLinks()
	AddClass(target, ClassActiveLink)

	id, _ := Attr(target, "data-type")
	section := n.page.Section(id)
	if section == nil {
		return true
	}
	n.schedule(func() {
		n.scroller.ScrollIntoView(section, true)
	})
	return true
}
