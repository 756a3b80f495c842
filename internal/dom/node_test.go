package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/macarona-salsa/wawa-news/internal/dom"
)

func TestClasses(t *testing.T) {
	t.Parallel()

	n := dom.NewElement("a", "class", "navigation-link")
	dom.AddClass(n, dom.ClassActiveLink)
	dom.AddClass(n, dom.ClassActiveLink)
	v, _ := dom.Attr(n, "class")
	assert.Equal(t, "navigation-link active-link", v)
	assert.True(t, dom.HasClass(n, dom.ClassActiveLink))

	dom.RemoveClass(n, dom.ClassActiveLink)
	v, _ = dom.Attr(n, "class")
	assert.Equal(t, "navigation-link", v)
	assert.False(t, dom.HasClass(n, dom.ClassActiveLink))

	bare := dom.NewElement("section")
	dom.RemoveClass(bare, "x")
	_, ok := dom.Attr(bare, "class")
	assert.False(t, ok)
}

func TestTextContent(t *testing.T) {
	t.Parallel()

	p := dom.NewElement("p")
	b := dom.NewElement("b")
	dom.Append(b, dom.NewText("bold"))
	dom.Append(p, dom.NewText("a "), b, dom.NewText(" z"))
	assert.Equal(t, "a bold z", dom.TextContent(p))

	dom.SetTextContent(p, "flat")
	assert.Same(t, p.FirstChild, p.LastChild)
	assert.Equal(t, "flat", dom.TextContent(p))
	assert.Nil(t, b.Parent)

	dom.SetTextContent(p, "")
	assert.Nil(t, p.FirstChild)
}
