package dom

import (
	"regexp"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// MarkTag wraps highlighted fragments.
const MarkTag = "mark"

var (
	highlightExclude   = cascadia.MustCompile("script, #" + IDSearchArea + ", #" + IDSeparator + ", " + MarkTag)
	unhighlightExclude = cascadia.MustCompile("script, #" + IDSearchArea + ", #" + IDSeparator)
	markSelector       = cascadia.MustCompile(MarkTag)
)

// Highlight wraps every case-insensitive occurrence of query in the text of
// root's descendants with a mark element and reports whether anything
// matched. Only elements whose sole child is a text node are searched.
// Existing marks are left alone, so call Unhighlight before searching for a
// different query. Invalid UTF-8 in query matches U+FFFD.
func Highlight(root *html.Node, query string) bool {
	if query == "" {
		return false
	}
	query = strings.ToValidUTF8(query, "\uFFFD")
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))

	matched := false
	Walk(root, FilterFunc(func(n *html.Node) Verdict {
		switch {
		case highlightExclude.Match(n):
			return Reject
		case n.FirstChild != nil && n.FirstChild == n.LastChild && n.FirstChild.Type == html.TextNode:
			return Accept
		default:
			return Skip
		}
	}), func(n *html.Node) {
		if highlightText(n, re) {
			matched = true
		}
	})
	return matched
}

// highlightText splits the single text child of n around matches of re.
// Empty fragments are dropped.
func highlightText(n *html.Node, re *regexp.Regexp) bool {
	text := n.FirstChild.Data
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return false
	}

	var nodes []*html.Node
	last := 0
	for _, loc := range locs {
		if loc[0] > last {
			nodes = append(nodes, NewText(text[last:loc[0]]))
		}
		if loc[1] > loc[0] {
			mark := NewElement(MarkTag)
			Append(mark, NewText(text[loc[0]:loc[1]]))
			nodes = append(nodes, mark)
		}
		last = loc[1]
	}
	if last < len(text) {
		nodes = append(nodes, NewText(text[last:]))
	}
	ReplaceChildren(n, nodes...)
	return true
}

// Unhighlight collapses every element with a mark child back into a single
// text node holding its full text.
func Unhighlight(root *html.Node) {
	Walk(root, FilterFunc(func(n *html.Node) Verdict {
		switch {
		case unhighlightExclude.Match(n):
			return Reject
		case hasMarkChild(n):
			return Accept
		default:
			return Skip
		}
	}), func(n *html.Node) {
		SetTextContent(n, TextContent(n))
	})
}

func hasMarkChild(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && markSelector.Match(c) {
			return true
		}
	}
	return false
}
