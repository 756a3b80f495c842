// Package dom renders the article site on golang.org/x/net/html trees: it
// populates the navigation and content areas, tracks the active section
// while scrolling, handles navigation clicks and highlights search matches.
//
// Everything here runs on a single goroutine. Time is supplied by the
// caller so behaviour is deterministic under test.
package dom

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/macarona-salsa/wawa-news/internal/web"
)

// Class names and element IDs the page shell and populator agree on.
const (
	ClassNavigationItem = "navigation-item"
	ClassNavigationLink = "navigation-link"
	ClassActiveLink     = "active-link"
	ClassActiveSection  = "active-section"
	ClassSectionHeader  = "section-header"
	ClassArticleTitle   = "article-title"
	ClassArticleContent = "article-content"

	IDNavigationList = "navigation-list"
	IDContent        = "content"
	IDSearchArea     = "search-area"
	IDSearchField    = "search-field"
	IDSearchButton   = "search-button"
	IDSeparator      = "navigator-seperator"
)

// ErrMissingElement is returned when the shell lacks a required container.
var ErrMissingElement = errors.New("page shell is missing a required element")

// Page is a parsed site shell with handles on the nodes the engine mutates.
type Page struct {
	Doc            *goquery.Document
	Body           *html.Node
	NavigationList *html.Node
	Content        *html.Node
	SearchButton   *html.Node
}

// ParsePage parses a shell document.
func ParsePage(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	p := &Page{Doc: doc}
	lookups := []struct {
		selector string
		dst      **html.Node
	}{
		{"body", &p.Body},
		{"#" + IDNavigationList, &p.NavigationList},
		{"#" + IDContent, &p.Content},
		{"#" + IDSearchButton, &p.SearchButton},
	}
	for _, l := range lookups {
		sel := doc.Find(l.selector)
		if sel.Length() == 0 {
			if l.dst == &p.SearchButton {
				continue
			}
			return nil, fmt.Errorf("%w: %s", ErrMissingElement, l.selector)
		}
		*l.dst = sel.Get(0)
	}
	return p, nil
}

// LoadPage parses the shell stored as index.html in fsys.
func LoadPage(fsys fs.FS) (*Page, error) {
	f, err := fsys.Open(web.IndexFile)
	if err != nil {
		return nil, fmt.Errorf("opening page shell: %w", err)
	}
	defer f.Close()
	return ParsePage(f)
}

// Render writes the current document as HTML.
func (p *Page) Render(w io.Writer) error {
	return html.Render(w, p.Doc.Get(0))
}

// Links returns every navigation link in document order.
func (p *Page) Links() []*html.Node {
	return goquery.NewDocumentFromNode(p.NavigationList).Find("." + ClassNavigationLink).Nodes
}

// Sections returns the content sections in document order.
func (p *Page) Sections() []*html.Node {
	return Children(p.Content)
}

// Link returns the navigation link for a section identifier, or nil.
func (p *Page) Link(id string) *html.Node {
	for _, l := range p.Links() {
		if v, _ := Attr(l, "data-type"); v == id {
			return l
		}
	}
	return nil
}

// Section returns the content section for an identifier, or nil.
func (p *Page) Section(id string) *html.Node {
	for _, s := range p.Sections() {
		if v, _ := Attr(s, "data-type"); v == id {
			return s
		}
	}
	return nil
}

// ActiveLinks returns the links currently carrying the active class.
func (p *Page) ActiveLinks() []*html.Node {
	var out []*html.Node
	for _, l := range p.Links() {
		if HasClass(l, ClassActiveLink) {
			out = append(out, l)
		}
	}
	return out
}

// ActiveSections returns the sections currently carrying the active class.
func (p *Page) ActiveSections() []*html.Node {
	var out []*html.Node
	for _, s := range p.Sections() {
		if HasClass(s, ClassActiveSection) {
			out = append(out, s)
		}
	}
	return out
}

func (p *Page) resetLinks() {
	for _, l := range p.Links() {
		RemoveClass(l, ClassActiveLink)
	}
}
