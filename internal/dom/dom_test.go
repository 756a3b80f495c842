package dom_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/macarona-salsa/wawa-news/internal/articles"
	"github.com/macarona-salsa/wawa-news/internal/dom"
	"github.com/macarona-salsa/wawa-news/internal/web"
)

// newPage parses the embedded site shell.
func newPage(t *testing.T) *dom.Page {
	t.Helper()
	p, err := dom.LoadPage(web.Embedded())
	require.NoError(t, err)
	return p
}

// sampleSet has three sections with mixed-case names.
func sampleSet() *articles.Set {
	set := articles.NewSet()
	set.Set("Local", []articles.Article{
		{Title: "Bridge Reopens", Content: "The old bridge reopened on Monday after repairs."},
		{Title: "Market Day", Content: "Farmers sold apples, pears and more apples."},
	})
	set.Set("Sports", []articles.Article{
		{Title: "Cup Final", Content: "The home side won the cup."},
	})
	set.Set("World", []articles.Article{
		{Title: "Summit", Content: "Leaders met to discuss apples and trade."},
	})
	return set
}

func populatedPage(t *testing.T) *dom.Page {
	t.Helper()
	p := newPage(t)
	dom.Populate(p, sampleSet())
	return p
}

func render(t *testing.T, p *dom.Page) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, p.Render(&buf))
	return buf.String()
}

func parsePage(t *testing.T, doc string) *dom.Page {
	t.Helper()
	p, err := dom.ParsePage(strings.NewReader(doc))
	require.NoError(t, err)
	return p
}

func countTag(root *html.Node, tag string) int {
	n := 0
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == tag {
				n++
			}
			visit(c)
		}
	}
	visit(root)
	return n
}
