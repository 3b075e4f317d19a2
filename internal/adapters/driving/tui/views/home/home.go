// Package home provides the front page view for the TUI.
package home

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/newsroom/internal/core/domain"
	"github.com/custodia-labs/newsroom/internal/richtext"
)

// EmptyMessage is shown when the collection has no articles.
const EmptyMessage = "No articles yet"

type section struct {
	name string
	list *list.ArticleList
}

// View is the front page: a lead story followed by one section per category.
type View struct {
	styles   *styles.Styles
	lead     *domain.Article
	sections []section

	// cursor indexes the lead (0) and then every section item in order.
	cursor       int
	selectedLine int
	width        int
	height       int
}

// NewView creates a new home view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		width:  80,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetArticles lays out the collection. The first article leads; the rest are
// grouped under categories in the given order.
func (v *View) SetArticles(articles []domain.Article, categories []string) {
	v.lead = nil
	v.sections = nil
	v.cursor = 0
	v.selectedLine = 0

	if len(articles) == 0 {
		return
	}
	lead := articles[0]
	v.lead = &lead

	rest := articles[1:]
	for _, name := range categories {
		in := domain.FilterByCategory(rest, name)
		if len(in) == 0 {
			continue
		}
		l := list.NewArticleList(v.styles)
		l.SetWidth(v.width)
		l.SetArticles(in)
		v.sections = append(v.sections, section{name: name, list: l})
	}
	v.focus()
}

// Reset moves the cursor back to the lead article.
func (v *View) Reset() {
	v.cursor = 0
	v.selectedLine = 0
	v.focus()
}

// Update handles messages for the home view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
			v.focus()
		}
	case "down", "j":
		if v.cursor < v.count()-1 {
			v.cursor++
			v.focus()
		}
	case "enter":
		if a := v.SelectedArticle(); a != nil {
			return v, messages.NavigateTo(domain.ArticleView{ID: a.ID})
		}
	}
	return v, nil
}

// View renders the front page.
func (v *View) View() string {
	if v.lead == nil {
		v.selectedLine = 0
		return v.styles.Muted.Render(EmptyMessage)
	}

	var b strings.Builder
	b.WriteString(v.styles.Section.Render("TOP STORY"))
	b.WriteString("\n")

	marker, titleStyle := "  ", v.styles.Lead
	if v.cursor == 0 {
		marker, titleStyle = "> ", v.styles.Selected
		v.selectedLine = lineCount(b.String())
	}
	b.WriteString(indent(richtext.Paragraph(v.lead.Title, v.width-2, titleStyle), marker))
	if meta := leadMeta(v.lead); meta != "" {
		b.WriteString("\n  ")
		b.WriteString(v.styles.Muted.Render(meta))
	}
	if v.lead.Summary != "" {
		b.WriteString("\n")
		b.WriteString(indent(richtext.Paragraph(v.lead.Summary, v.width-2, v.styles.Normal), "  "))
	}

	selected, _ := v.locate()
	for i, sec := range v.sections {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Section.Render(strings.ToUpper(sec.name)))
		b.WriteString("\n")
		if i == selected {
			v.selectedLine = lineCount(b.String()) + sec.list.SelectedLine()
		}
		b.WriteString(sec.list.View())
	}
	return b.String()
}

// SelectedArticle returns the article under the cursor, or nil.
func (v *View) SelectedArticle() *domain.Article {
	if v.lead == nil {
		return nil
	}
	idx, _ := v.locate()
	if idx < 0 {
		return v.lead
	}
	return v.sections[idx].list.SelectedArticle()
}

// SelectedLine returns the line of the selection in the last View output.
func (v *View) SelectedLine() int {
	return v.selectedLine
}

// Lead returns the lead article, or nil when there are none.
func (v *View) Lead() *domain.Article {
	return v.lead
}

// Sections returns the rendered category names in order.
func (v *View) Sections() []string {
	names := make([]string, 0, len(v.sections))
	for _, s := range v.sections {
		names = append(names, s.name)
	}
	return names
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	for _, s := range v.sections {
		s.list.SetWidth(width)
	}
}

func (v *View) count() int {
	if v.lead == nil {
		return 0
	}
	n := 1
	for _, s := range v.sections {
		n += s.list.Count()
	}
	return n
}

// locate maps the cursor to a section index and an item index within it.
// The lead is section -1.
func (v *View) locate() (int, int) {
	pos := v.cursor - 1
	if pos < 0 {
		return -1, 0
	}
	for i, s := range v.sections {
		if pos < s.list.Count() {
			return i, pos
		}
		pos -= s.list.Count()
	}
	return -1, 0
}

func (v *View) focus() {
	idx, local := v.locate()
	for i, s := range v.sections {
		s.list.SetFocused(i == idx)
		if i == idx {
			s.list.SetSelected(local)
		}
	}
}

func leadMeta(a *domain.Article) string {
	if by := a.Byline(); by != "" {
		return a.Category + " · " + by
	}
	return a.Category
}

func indent(s, first string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if i == 0 {
			lines[i] = first + l
			continue
		}
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

func lineCount(s string) int {
	return strings.Count(s, "\n")
}
