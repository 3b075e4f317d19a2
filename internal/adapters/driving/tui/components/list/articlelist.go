// Package list provides list display components for the TUI.
package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/newsroom/internal/core/domain"
)

// LinesPerItem is the number of lines one article occupies, separator included.
const LinesPerItem = 4

// ArticleList displays articles as a navigable list of teasers.
type ArticleList struct {
	articles     []domain.Article
	selected     int
	styles       *styles.Styles
	width        int
	showCategory bool
	focused      bool
}

// NewArticleList creates a new article list component.
func NewArticleList(s *styles.Styles) *ArticleList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ArticleList{
		styles:  s,
		width:   80,
		focused: true,
	}
}

// Init initialises the article list.
func (l *ArticleList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation keys.
func (l *ArticleList) Update(msg tea.Msg) (*ArticleList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the list.
func (l *ArticleList) View() string {
	if len(l.articles) == 0 {
		return ""
	}

	items := make([]string, 0, len(l.articles))
	for i := range l.articles {
		items = append(items, l.renderItem(i, &l.articles[i]))
	}
	return strings.Join(items, "\n\n")
}

// renderItem formats one teaser as three lines: headline, meta, summary.
func (l *ArticleList) renderItem(index int, a *domain.Article) string {
	indicator := "  "
	if l.focused && index == l.selected {
		indicator = "> "
	}

	textWidth := l.width - 4
	if textWidth < 10 {
		textWidth = 10
	}

	title := a.Title
	if title == "" {
		title = "(Untitled)"
	}
	title = ansi.Truncate(title, textWidth, "…")

	var titleLine string
	if l.focused && index == l.selected {
		titleLine = indicator + l.styles.Selected.Render(title)
	} else {
		titleLine = indicator + l.styles.Headline.Render(title)
	}

	meta := a.Byline()
	if l.showCategory && a.Category != "" {
		if meta != "" {
			meta = a.Category + " · " + meta
		} else {
			meta = a.Category
		}
	}
	metaLine := "    " + l.styles.Muted.Render(ansi.Truncate(meta, textWidth, "…"))

	summaryLine := "    " + l.styles.Normal.Render(ansi.Truncate(a.Summary, textWidth, "…"))

	return titleLine + "\n" + metaLine + "\n" + summaryLine
}

// SetArticles replaces the list contents and resets the selection.
func (l *ArticleList) SetArticles(articles []domain.Article) {
	l.articles = articles
	l.selected = 0
}

// Articles returns the listed articles.
func (l *ArticleList) Articles() []domain.Article {
	return l.articles
}

// ShowCategory toggles the category label in the meta line.
func (l *ArticleList) ShowCategory(show bool) {
	l.showCategory = show
}

// SetFocused toggles the selection marker.
func (l *ArticleList) SetFocused(focused bool) {
	l.focused = focused
}

// Focused returns whether the selection marker is shown.
func (l *ArticleList) Focused() bool {
	return l.focused
}

// Selected returns the index of the selected article.
func (l *ArticleList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *ArticleList) SetSelected(index int) {
	if index >= 0 && index < len(l.articles) {
		l.selected = index
	}
}

// SelectedArticle returns the currently selected article, or nil if none.
func (l *ArticleList) SelectedArticle() *domain.Article {
	if len(l.articles) == 0 || l.selected < 0 || l.selected >= len(l.articles) {
		return nil
	}
	return &l.articles[l.selected]
}

// SelectedLine returns the line offset of the selected item within View.
func (l *ArticleList) SelectedLine() int {
	return l.selected * LinesPerItem
}

// MoveUp moves selection up. It returns false at the top.
func (l *ArticleList) MoveUp() bool {
	if l.selected > 0 {
		l.selected--
		return true
	}
	return false
}

// MoveDown moves selection down. It returns false at the bottom.
func (l *ArticleList) MoveDown() bool {
	if l.selected < len(l.articles)-1 {
		l.selected++
		return true
	}
	return false
}

// SetWidth sets the component width.
func (l *ArticleList) SetWidth(width int) {
	l.width = width
}

// Width returns the current width.
func (l *ArticleList) Width() int {
	return l.width
}

// Count returns the number of articles.
func (l *ArticleList) Count() int {
	return len(l.articles)
}

// IsEmpty returns whether the list is empty.
func (l *ArticleList) IsEmpty() bool {
	return len(l.articles) == 0
}
