package dom

import "golang.org/x/net/html"

// Verdict is a filter's decision about one element.
type Verdict int

const (
	// Skip passes over the element but still walks its children.
	Skip Verdict = iota
	// Accept visits the element, then walks its children.
	Accept
	// Reject passes over the element and its whole subtree.
	Reject
)

// Filter classifies elements during Walk.
type Filter interface {
	Classify(n *html.Node) Verdict
}

// FilterFunc adapts a function to Filter.
type FilterFunc func(n *html.Node) Verdict

// Classify calls f(n).
func (f FilterFunc) Classify(n *html.Node) Verdict { return f(n) }

// Walk visits the element descendants of root in document order. Children
// are read after visit returns, so visit may replace them.
func Walk(root *html.Node, f Filter, visit func(*html.Node)) {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch f.Classify(c) {
		case Reject:
			continue
		case Accept:
			visit(c)
		}
		Walk(c, f, visit)
	}
}
