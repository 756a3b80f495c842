package dom

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/macarona-salsa/wawa-news/internal/articles"
)

// SectionID normalizes a section name into the identifier used for its
// element IDs and data-type attributes.
func SectionID(name string) string {
	return strings.ToLower(name)
}

// Populate appends one navigation link and one content section per entry
// of set, then marks the first of each active. An empty set adds nothing.
func Populate(p *Page, set *articles.Set) {
	for pair := set.Oldest(); pair != nil; pair = pair.Next() {
		name := pair.Key
		id := SectionID(name)

		link := NewElement("a",
			"class", ClassNavigationLink,
			"id", id+"-link",
			"href", "#",
			"data-type", id,
		)
		Append(link, NewText(name))
		item := NewElement("li", "class", ClassNavigationItem)
		Append(item, link)
		Append(p.NavigationList, item)

		section := NewElement("section",
			"id", id+"-section",
			"data-type", id,
		)
		header := NewElement("h2", "class", ClassSectionHeader)
		Append(header, NewText(name))
		Append(section, header)

		for _, a := range pair.Value {
			title := NewElement("h3", "class", ClassArticleTitle)
			Append(title, textOrNothing(a.Title)...)
			content := NewElement("p", "class", ClassArticleContent)
			Append(content, textOrNothing(a.Content)...)

			article := NewElement("article")
			Append(article, title, content)
			Append(section, article)
		}
		Append(p.Content, section)
	}

	if first := FirstElementChild(p.Content); first != nil {
		AddClass(first, ClassActiveSection)
	}
	if links := p.Links(); len(links) > 0 {
		AddClass(links[0], ClassActiveLink)
	}
}

func textOrNothing(s string) []*html.Node {
	if s == "" {
		return nil
	}
	return []*html.Node{NewText(s)}
}
