package dom_test

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/macarona-salsa/wawa-news/internal/dom"
)

func TestHighlight(t *testing.T) {
	t.Parallel()

	t.Run("wraps case-insensitive matches and keeps original case", func(t *testing.T) {
		t.Parallel()

		p := populatedPage(t)
		require.True(t, dom.Highlight(p.Body, "APPLES"))

		content := dom.Children(dom.Children(p.Section("local"))[2])[1]
		var parts []string
		var marked []string
		for c := content.FirstChild; c != nil; c = c.NextSibling {
			parts = append(parts, dom.TextContent(c))
			if c.Type == html.ElementNode {
				assert.Equal(t, dom.MarkTag, c.Data)
				marked = append(marked, dom.TextContent(c))
			}
		}
		assert.Equal(t, []string{"Farmers sold ", "apples", ", pears and more ", "apples", "."}, parts)
		assert.Equal(t, []string{"apples", "apples"}, marked)
		assert.Equal(t, 3, countTag(p.Body, dom.MarkTag))
	})

	t.Run("drops empty fragments", func(t *testing.T) {
		t.Parallel()

		p := parsePage(t, shell(`<p id="t">abab</p>`))
		require.True(t, dom.Highlight(p.Body, "ab"))

		target := p.Doc.Find("#t").Get(0)
		var kinds []string
		for c := target.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				kinds = append(kinds, c.Data)
			} else {
				kinds = append(kinds, "#text")
			}
		}
		assert.Equal(t, []string{"mark", "mark"}, kinds)
	})

	t.Run("empty query changes nothing", func(t *testing.T) {
		t.Parallel()

		p := populatedPage(t)
		before := render(t, p)

		assert.False(t, dom.Highlight(p.Body, ""))
		assert.Equal(t, before, render(t, p))
	})

	t.Run("query without matches changes nothing", func(t *testing.T) {
		t.Parallel()

		p := populatedPage(t)
		before := render(t, p)

		assert.False(t, dom.Highlight(p.Body, "zeppelin"))
		assert.Equal(t, before, render(t, p))
	})

	t.Run("query is matched literally", func(t *testing.T) {
		t.Parallel()

		p := parsePage(t, shell(`<p>a.c abc</p><p>f(x) fx</p>`))
		require.True(t, dom.Highlight(p.Body, "a.c"))
		assert.Equal(t, 1, countTag(p.Body, dom.MarkTag))

		require.True(t, dom.Highlight(p.Body, "(x)"))
		assert.Equal(t, 2, countTag(p.Body, dom.MarkTag))
	})

	t.Run("elements with mixed children are skipped", func(t *testing.T) {
		t.Parallel()

		p := parsePage(t, shell(`<p>apples <b>pears</b></p>`))
		assert.False(t, dom.Highlight(p.Body, "apples"))
		assert.True(t, dom.Highlight(p.Body, "pears"))
	})

	t.Run("excluded regions are never searched", func(t *testing.T) {
		t.Parallel()

		p := parsePage(t, shell(`<script>var apples = 1;</script><p>nothing</p>`))
		assert.False(t, dom.Highlight(p.Body, "apples"))
		assert.False(t, dom.Highlight(p.Body, "search"), "placeholder text lives in attributes only")
		assert.False(t, dom.Highlight(p.Body, dom.SearchLabel))
	})

	t.Run("repeating a query does not nest marks", func(t *testing.T) {
		t.Parallel()

		p := populatedPage(t)
		require.True(t, dom.Highlight(p.Body, "the"))
		first := render(t, p)
		n := countTag(p.Body, dom.MarkTag)

		dom.Highlight(p.Body, "the")
		assert.Equal(t, n, countTag(p.Body, dom.MarkTag))
		assert.Equal(t, first, render(t, p))
	})

	t.Run("a new query keeps stale marks", func(t *testing.T) {
		t.Parallel()

		p := populatedPage(t)
		require.True(t, dom.Highlight(p.Body, "bridge"))
		require.True(t, dom.Highlight(p.Body, "cup"))

		var marked []string
		p.Doc.Find(dom.MarkTag).Each(func(_ int, s *goquery.Selection) {
			marked = append(marked, s.Text())
		})
		assert.Contains(t, marked, "Bridge")
		assert.Contains(t, marked, "cup")
	})

	t.Run("invalid UTF-8 query does not panic", func(t *testing.T) {
		t.Parallel()

		p := populatedPage(t)
		before := render(t, p)

		assert.NotPanics(t, func() {
			assert.False(t, dom.Highlight(p.Body, "bar\xe9"))
		})
		assert.NotPanics(t, func() {
			toggle := dom.NewSearchToggle(p)
			toggle.Press("\xff")
			assert.False(t, toggle.Searched())
		})
		assert.Equal(t, before, render(t, p))
	})
}

func TestUnhighlight(t *testing.T) {
	t.Parallel()

	t.Run("restores the document for any query", func(t *testing.T) {
		t.Parallel()

		queries := []string{"apples", "E", "the ", "Monday after repairs.", "Local", "x", ".", " "}
		for _, q := range queries {
			p := populatedPage(t)
			before := render(t, p)
			text := dom.TextContent(p.Body)

			dom.Highlight(p.Body, q)
			dom.Unhighlight(p.Body)

			assert.Equal(t, text, dom.TextContent(p.Body), q)
			assert.Equal(t, before, render(t, p), q)
			assert.Zero(t, countTag(p.Body, dom.MarkTag), q)
		}
	})

	t.Run("collapses nested markup under a marked element", func(t *testing.T) {
		t.Parallel()

		p := parsePage(t, shell(`<p id="t">one <mark>two</mark> <em>three</em></p>`))
		dom.Unhighlight(p.Body)

		target := p.Doc.Find("#t").Get(0)
		require.NotNil(t, target.FirstChild)
		assert.Same(t, target.FirstChild, target.LastChild)
		assert.Equal(t, html.TextNode, target.FirstChild.Type)
		assert.Equal(t, "one two three", target.FirstChild.Data)
	})

	t.Run("leaves excluded regions alone", func(t *testing.T) {
		t.Parallel()

		p := parsePage(t, shell(`<p>plain</p>`))
		area := p.Doc.Find("#" + dom.IDSearchArea).Get(0)
		mark := dom.NewElement(dom.MarkTag)
		dom.Append(mark, dom.NewText("kept"))
		dom.Append(area, mark)

		dom.Unhighlight(p.Body)
		assert.Equal(t, 1, countTag(area, dom.MarkTag))
	})

	t.Run("no marks is a no-op", func(t *testing.T) {
		t.Parallel()

		p := populatedPage(t)
		before := render(t, p)
		dom.Unhighlight(p.Body)
		assert.Equal(t, before, render(t, p))
	})
}

func TestSearchToggle(t *testing.T) {
	t.Parallel()

	t.Run("blank query is ignored", func(t *testing.T) {
		t.Parallel()

		p := populatedPage(t)
		toggle := dom.NewSearchToggle(p)

		toggle.Press("")
		toggle.Press("   ")
		assert.False(t, toggle.Searched())
		assert.Equal(t, dom.SearchLabel, dom.TextContent(p.SearchButton))
	})

	t.Run("match switches to clear and back", func(t *testing.T) {
		t.Parallel()

		p := populatedPage(t)
		before := render(t, p)
		toggle := dom.NewSearchToggle(p)

		toggle.Press("apples")
		assert.True(t, toggle.Searched())
		assert.Equal(t, dom.ClearLabel, dom.TextContent(p.SearchButton))
		assert.Positive(t, countTag(p.Body, dom.MarkTag))

		toggle.Press("ignored while searched")
		assert.False(t, toggle.Searched())
		assert.Equal(t, dom.SearchLabel, dom.TextContent(p.SearchButton))
		assert.Equal(t, before, render(t, p))
	})

	t.Run("no match stays unsearched", func(t *testing.T) {
		t.Parallel()

		p := populatedPage(t)
		toggle := dom.NewSearchToggle(p)

		toggle.Press("zeppelin")
		assert.False(t, toggle.Searched())
		assert.Equal(t, dom.SearchLabel, dom.TextContent(p.SearchButton))
	})
}

func TestWalk(t *testing.T) {
	t.Parallel()

	p := parsePage(t, shell(`<div id="a"><p id="b">x</p><div id="c"><p id="d">y</p></div></div><section id="e"><p id="f">z</p></section>`))

	var visited []string
	dom.Walk(p.Body, dom.FilterFunc(func(n *html.Node) dom.Verdict {
		id, _ := dom.Attr(n, "id")
		switch id {
		case "b", "d", "f":
			return dom.Accept
		case "c":
			return dom.Reject
		default:
			return dom.Skip
		}
	}), func(n *html.Node) {
		id, _ := dom.Attr(n, "id")
		visited = append(visited, id)
	})

	assert.Equal(t, []string{"b", "f"}, visited)
}

func TestWalk_VisitMayReplaceChildren(t *testing.T) {
	t.Parallel()

	p := parsePage(t, shell(`<div id="a"><p id="old">x</p></div>`))

	var visited []string
	dom.Walk(p.Body, dom.FilterFunc(func(n *html.Node) dom.Verdict {
		return dom.Accept
	}), func(n *html.Node) {
		id, _ := dom.Attr(n, "id")
		visited = append(visited, id)
		if id == "a" {
			dom.ReplaceChildren(n, dom.NewElement("p", "id", "new"))
		}
	})

	assert.Contains(t, visited, "new")
	assert.NotContains(t, visited, "old")
}

// shell wraps body markup in a minimal page with the required containers.
func shell(body string) string {
	return `<!DOCTYPE html><html><head><title>t</title></head><body>` +
		`<div id="search-area"><input id="search-field" placeholder="search"><button id="search-button">` + dom.SearchLabel + `</button></div>` +
		`<ul id="navigation-list"></ul><hr id="navigator-seperator"><div id="content"></div>` +
		body + `</body></html>`
}
