// Package article provides the single article view for the TUI.
package article

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/newsroom/internal/core/domain"
	"github.com/custodia-labs/newsroom/internal/richtext"
)

// RelatedLimit is the most related articles listed under a story.
const RelatedLimit = 3

// NotFoundMessage is the heading shown for an unknown article ID.
const NotFoundMessage = "Article not found"

// View shows one article with its related stories.
type View struct {
	styles   *styles.Styles
	memo     *richtext.Memo
	articles []domain.Article
	id       string
	article  *domain.Article
	related  *list.ArticleList

	selectedLine int
	width        int
	height       int
}

// NewView creates a new article view. memo may be nil, in which case bodies
// are laid out on every render.
func NewView(s *styles.Styles, memo *richtext.Memo) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	related := list.NewArticleList(s)
	related.SetFocused(false)

	return &View{
		styles:  s,
		memo:    memo,
		related: related,
		width:   80,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetArticles sets the full collection the view looks the article up in.
func (v *View) SetArticles(articles []domain.Article) {
	v.articles = articles
	v.refresh()
}

// SetArticleID selects the article to show.
func (v *View) SetArticleID(id string) {
	v.id = id
	v.refresh()
}

func (v *View) refresh() {
	v.article = nil
	v.related.SetFocused(false)
	v.related.SetArticles(nil)

	a, err := domain.FindArticle(v.articles, v.id)
	if err != nil {
		return
	}
	v.article = a
	v.related.SetArticles(domain.RelatedArticles(v.articles, *a, RelatedLimit))
}

// Article returns the article being shown, or nil when the ID is unknown.
func (v *View) Article() *domain.Article {
	return v.article
}

// Related returns the related articles listed under the story.
func (v *View) Related() []domain.Article {
	return v.related.Articles()
}

// Update handles messages for the article view. Tab walks the related list.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || v.related.IsEmpty() {
		return v, nil
	}

	switch keyMsg.String() {
	case "tab":
		if !v.related.Focused() {
			v.related.SetFocused(true)
			v.related.SetSelected(0)
		} else {
			v.related.MoveDown()
		}
	case "shift+tab":
		if v.related.Focused() && !v.related.MoveUp() {
			v.related.SetFocused(false)
		}
	case "enter":
		if !v.related.Focused() {
			return v, nil
		}
		if a := v.related.SelectedArticle(); a != nil {
			return v, messages.NavigateTo(domain.ArticleView{ID: a.ID})
		}
	}
	return v, nil
}

// View renders the article page.
func (v *View) View() string {
	v.selectedLine = -1
	if v.article == nil {
		return v.viewNotFound()
	}

	a := v.article
	var b strings.Builder

	b.WriteString(v.styles.Category.Render(strings.ToUpper(a.Category)))
	b.WriteString("\n")
	b.WriteString(richtext.Paragraph(a.Title, v.width, v.styles.Lead))
	if by := a.Byline(); by != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(by))
	}
	if a.ImageURL != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("Image: " + a.ImageURL))
	}
	if a.Summary != "" {
		b.WriteString("\n\n")
		b.WriteString(richtext.Paragraph(a.Summary, v.width, v.styles.Normal.Italic(true)))
	}
	if body := v.body(); body != "" {
		b.WriteString("\n\n")
		b.WriteString(body)
	}

	if !v.related.IsEmpty() {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Rule.Render(strings.Repeat("─", max(v.width, 1))))
		b.WriteString("\n")
		b.WriteString(v.styles.Section.Render("RELATED IN " + strings.ToUpper(a.Category)))
		b.WriteString("\n")
		b.WriteString(v.styles.Help.Render("tab to select · enter to read"))
		b.WriteString("\n\n")
		if v.related.Focused() {
			v.selectedLine = strings.Count(b.String(), "\n") + v.related.SelectedLine()
		}
		b.WriteString(v.related.View())
	}
	return b.String()
}

func (v *View) body() string {
	if v.memo != nil {
		return v.memo.Body(*v.article, v.width)
	}
	return richtext.RenderContent(v.article.Content, v.width, v.styles.RichText())
}

func (v *View) viewNotFound() string {
	var b strings.Builder
	b.WriteString(v.styles.Error.Render(NotFoundMessage))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("The article you are looking for does not exist or has been removed."))
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("Press h to return to the front page."))
	return b.String()
}

// SelectedLine returns the line of the focused related article in the last
// View output, or -1 while the reader is in the story itself.
func (v *View) SelectedLine() int {
	return v.selectedLine
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.related.SetWidth(width)
}
