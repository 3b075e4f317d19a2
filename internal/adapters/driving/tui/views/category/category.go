// Package category provides the category listing view for the TUI.
package category

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/newsroom/internal/core/domain"
)

// headerLines is the number of lines above the list.
const headerLines = 3

// View lists the articles of one category.
type View struct {
	styles   *styles.Styles
	list     *list.ArticleList
	articles []domain.Article
	name     string
	width    int
	height   int
}

// NewView creates a new category view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		list:   list.NewArticleList(s),
		width:  80,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetArticles sets the full collection the view filters from.
func (v *View) SetArticles(articles []domain.Article) {
	v.articles = articles
	v.refresh()
}

// SetCategory selects the category to show. Matching is exact.
func (v *View) SetCategory(name string) {
	v.name = name
	v.refresh()
}

// Category returns the category being shown.
func (v *View) Category() string {
	return v.name
}

func (v *View) refresh() {
	v.list.SetArticles(domain.FilterByCategory(v.articles, v.name))
}

// Update handles messages for the category view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "enter":
		if a := v.list.SelectedArticle(); a != nil {
			return v, messages.NavigateTo(domain.ArticleView{ID: a.ID})
		}
		return v, nil
	default:
		v.list, _ = v.list.Update(msg)
	}
	return v, nil
}

// View renders the category page.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Section.Render(strings.ToUpper(v.name)))
	b.WriteString("\n")

	if v.list.IsEmpty() {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(EmptyMessage(v.name)))
		return b.String()
	}

	b.WriteString(v.styles.Muted.Render(countLabel(v.list.Count())))
	b.WriteString("\n\n")
	b.WriteString(v.list.View())
	return b.String()
}

// EmptyMessage is the text shown when a category has no articles.
func EmptyMessage(name string) string {
	if name == "" {
		return "No articles found"
	}
	return "No articles found in " + name
}

func countLabel(n int) string {
	if n == 1 {
		return "1 article"
	}
	return fmt.Sprintf("%d articles", n)
}

// Articles returns the articles matching the category.
func (v *View) Articles() []domain.Article {
	return v.list.Articles()
}

// SelectedArticle returns the selected article, or nil.
func (v *View) SelectedArticle() *domain.Article {
	return v.list.SelectedArticle()
}

// SelectedLine returns the line of the selection within View.
func (v *View) SelectedLine() int {
	if v.list.IsEmpty() {
		return 0
	}
	return headerLines + v.list.SelectedLine()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.list.SetWidth(width)
}
