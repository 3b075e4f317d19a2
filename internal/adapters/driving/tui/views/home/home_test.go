package home

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/newsroom/internal/core/domain"
)

func testArticles() []domain.Article {
	return []domain.Article{
		{ID: "a1", Category: "World", Title: "Harbour accord signed", Author: "M. Osei", Summary: "Ports agree."},
		{ID: "a2", Category: "Sports", Title: "Cup final tonight", Summary: "Kick-off at eight."},
		{ID: "a3", Category: "World", Title: "Elections called", Summary: "Polls open in May."},
		{ID: "a4", Category: "Sports", Title: "Record broken", Summary: "A new best."},
	}
}

func newLoadedView() *View {
	v := NewView(styles.DefaultStyles())
	v.SetDimensions(80, 40)
	v.SetArticles(testArticles(), []string{"World", "Sports"})
	return v
}

func keyDown() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyDown} }

func TestNewView(t *testing.T) {
	v := NewView(nil)

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.Nil(t, v.Init())
	assert.Nil(t, v.Lead())
}

func TestView_Empty(t *testing.T) {
	v := NewView(nil)
	v.SetArticles(nil, nil)

	assert.Contains(t, v.View(), EmptyMessage)
	assert.Nil(t, v.SelectedArticle())
}

func TestView_SetArticles_Layout(t *testing.T) {
	v := newLoadedView()

	require.NotNil(t, v.Lead())
	assert.Equal(t, "a1", v.Lead().ID)
	assert.Equal(t, []string{"World", "Sports"}, v.Sections())

	out := v.View()
	assert.Contains(t, out, "TOP STORY")
	assert.Contains(t, out, "Harbour accord signed")
	assert.Contains(t, out, "World · By M. Osei")
	assert.Contains(t, out, "WORLD")
	assert.Contains(t, out, "SPORTS")
	assert.Less(t, strings.Index(out, "WORLD"), strings.Index(out, "SPORTS"))
}

func TestView_SetArticles_SkipsEmptyCategories(t *testing.T) {
	v := NewView(nil)
	v.SetArticles(testArticles(), []string{"Culture", "World", "Sports"})

	assert.Equal(t, []string{"World", "Sports"}, v.Sections())
}

func TestView_CursorWalksLeadThenSections(t *testing.T) {
	v := newLoadedView()

	var got []string
	for i := 0; i < 6; i++ {
		got = append(got, v.SelectedArticle().ID)
		v.Update(keyDown())
	}

	assert.Equal(t, []string{"a1", "a3", "a2", "a4", "a4", "a4"}, got)

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, "a2", v.SelectedArticle().ID)
}

func TestView_Update_EnterOpensArticle(t *testing.T) {
	v := newLoadedView()
	v.Update(keyDown())

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg := cmd()
	nav, ok := msg.(messages.Navigate)
	require.True(t, ok)
	assert.Equal(t, domain.ArticleView{ID: "a3"}, nav.View)
}

func TestView_Update_IgnoresOtherMessages(t *testing.T) {
	v := newLoadedView()

	updated, cmd := v.Update(tea.WindowSizeMsg{Width: 10, Height: 10})

	assert.Equal(t, v, updated)
	assert.Nil(t, cmd)
}

func TestView_SelectedLine(t *testing.T) {
	v := newLoadedView()

	lines := strings.Split(v.View(), "\n")
	assert.Contains(t, lines[v.SelectedLine()], "Harbour accord signed")

	v.Update(keyDown())
	v.Update(keyDown())
	lines = strings.Split(v.View(), "\n")
	assert.Contains(t, lines[v.SelectedLine()], "Cup final tonight")
}

func TestView_Reset(t *testing.T) {
	v := newLoadedView()
	v.Update(keyDown())
	v.Update(keyDown())

	v.Reset()

	assert.Equal(t, "a1", v.SelectedArticle().ID)
}
