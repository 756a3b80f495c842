package dom

import "strings"

// Labels shown on the search button.
const (
	SearchLabel = "\U0001F50D"
	ClearLabel  = "❌"
)

// SearchToggle drives the search button: the first press highlights the
// query, the next one clears the highlights.
type SearchToggle struct {
	page     *Page
	searched bool
}

// NewSearchToggle returns a toggle in the unsearched state.
func NewSearchToggle(p *Page) *SearchToggle {
	return &SearchToggle{page: p}
}

// Searched reports whether highlights are currently shown.
func (s *SearchToggle) Searched() bool { return s.searched }

// Press handles one click. A blank query is ignored, and a query without
// matches leaves the toggle unsearched.
func (s *SearchToggle) Press(query string) {
	if s.searched {
		Unhighlight(s.page.Body)
		s.setLabel(SearchLabel)
		s.searched = false
		return
	}
	if strings.TrimSpace(query) == "" {
		return
	}
	if Highlight(s.page.Body, query) {
		s.setLabel(ClearLabel)
		s.searched = true
	}
}

func (s *SearchToggle) setLabel(label string) {
	if s.page.SearchButton != nil {
		SetTextContent(s.page.SearchButton, label)
	}
}
