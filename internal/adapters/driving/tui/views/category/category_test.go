package category

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/newsroom/internal/core/domain"
)

func testArticles() []domain.Article {
	return []domain.Article{
		{ID: "1", Category: "Sports", Title: "Cup final tonight"},
		{ID: "2", Category: "World", Title: "Harbour accord signed"},
		{ID: "3", Category: "sports", Title: "Lowercase sports"},
		{ID: "4", Category: "Sports", Title: "Record broken"},
	}
}

func TestNewView(t *testing.T) {
	v := NewView(nil)

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.Nil(t, v.Init())
}

func TestView_FiltersExactCategory(t *testing.T) {
	v := NewView(nil)
	v.SetArticles(testArticles())
	v.SetCategory("Sports")

	got := v.Articles()

	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "4", got[1].ID)

	out := v.View()
	assert.Contains(t, out, "SPORTS")
	assert.Contains(t, out, "2 articles")
	assert.NotContains(t, out, "Lowercase sports")
}

func TestView_SetCategoryBeforeArticles(t *testing.T) {
	v := NewView(nil)
	v.SetCategory("World")
	v.SetArticles(testArticles())

	require.Len(t, v.Articles(), 1)
	assert.Contains(t, v.View(), "1 article")
}

func TestView_EmptyCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		expected string
	}{
		{"unknown", "Weather", "No articles found in Weather"},
		{"empty payload", "", "No articles found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView(nil)
			v.SetArticles(testArticles())
			v.SetCategory(tt.category)

			assert.Contains(t, v.View(), tt.expected)
			assert.Nil(t, v.SelectedArticle())
			assert.Zero(t, v.SelectedLine())
		})
	}
}

func TestView_Update_Navigation(t *testing.T) {
	v := NewView(nil)
	v.SetArticles(testArticles())
	v.SetCategory("Sports")

	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "4", v.SelectedArticle().ID)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	nav, ok := msg.(messages.Navigate)
	require.True(t, ok)
	assert.Equal(t, domain.ArticleView{ID: "4"}, nav.View)
}

func TestView_Update_EnterOnEmpty(t *testing.T) {
	v := NewView(nil)
	v.SetCategory("Weather")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestView_SelectedLine(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(80, 24)
	v.SetArticles(testArticles())
	v.SetCategory("Sports")
	v.Update(tea.KeyMsg{Type: tea.KeyDown})

	lines := strings.Split(v.View(), "\n")

	assert.Contains(t, lines[v.SelectedLine()], "Record broken")
}
