package list

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/newsroom/internal/core/domain"
)

func sampleArticles() []domain.Article {
	return []domain.Article{
		{ID: "1", Category: "World", Title: "Harbour accord signed", Author: "M. Osei", Date: "2024-05-14", Summary: "Eleven states agree."},
		{ID: "2", Category: "Sports", Title: "Late winner", Summary: "Stoppage-time header."},
		{ID: "3", Category: "Sports", Title: "Marathon record", Summary: "Cool conditions."},
	}
}

func TestNewArticleList(t *testing.T) {
	l := NewArticleList(styles.DefaultStyles())

	require.NotNil(t, l)
	assert.Equal(t, 0, l.Selected())
	assert.True(t, l.IsEmpty())
	assert.True(t, l.Focused())
	assert.Nil(t, l.SelectedArticle())
}

func TestNewArticleList_NilStyles(t *testing.T) {
	l := NewArticleList(nil)

	require.NotNil(t, l)
	assert.NotNil(t, l.styles)
	assert.Nil(t, l.Init())
}

func TestArticleList_SetArticlesResetsSelection(t *testing.T) {
	l := NewArticleList(nil)
	l.SetArticles(sampleArticles())
	l.MoveDown()

	l.SetArticles(sampleArticles()[:2])

	assert.Equal(t, 2, l.Count())
	assert.Equal(t, 0, l.Selected())
}

func TestArticleList_Navigation(t *testing.T) {
	l := NewArticleList(nil)
	l.SetArticles(sampleArticles())

	assert.False(t, l.MoveUp())
	assert.True(t, l.MoveDown())
	assert.True(t, l.MoveDown())
	assert.False(t, l.MoveDown())
	assert.Equal(t, 2, l.Selected())
	assert.Equal(t, "3", l.SelectedArticle().ID)
	assert.Equal(t, 2*LinesPerItem, l.SelectedLine())
}

func TestArticleList_Update_Keys(t *testing.T) {
	tests := []struct {
		name     string
		msgs     []tea.KeyMsg
		expected int
	}{
		{"down arrow", []tea.KeyMsg{{Type: tea.KeyDown}}, 1},
		{"j", []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune{'j'}}}, 1},
		{"down then k", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyRunes, Runes: []rune{'k'}}}, 0},
		{"up at top", []tea.KeyMsg{{Type: tea.KeyUp}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewArticleList(nil)
			l.SetArticles(sampleArticles())

			for _, msg := range tt.msgs {
				var cmd tea.Cmd
				l, cmd = l.Update(msg)
				assert.Nil(t, cmd)
			}

			assert.Equal(t, tt.expected, l.Selected())
		})
	}
}

func TestArticleList_SetSelected_OutOfRange(t *testing.T) {
	l := NewArticleList(nil)
	l.SetArticles(sampleArticles())

	l.SetSelected(10)
	assert.Equal(t, 0, l.Selected())

	l.SetSelected(1)
	assert.Equal(t, 1, l.Selected())
}

func TestArticleList_View(t *testing.T) {
	l := NewArticleList(nil)
	l.SetArticles(sampleArticles())
	l.ShowCategory(true)

	out := l.View()

	assert.Contains(t, out, "> ")
	assert.Contains(t, out, "Harbour accord signed")
	assert.Contains(t, out, "World · By M. Osei · 2024-05-14")
	assert.Contains(t, out, "Stoppage-time header.")
	assert.Equal(t, 3*LinesPerItem-1, strings.Count(out, "\n")+1)
}

func TestArticleList_View_Unfocused(t *testing.T) {
	l := NewArticleList(nil)
	l.SetArticles(sampleArticles())
	l.SetFocused(false)

	assert.NotContains(t, l.View(), "> ")
}

func TestArticleList_View_Empty(t *testing.T) {
	assert.Empty(t, NewArticleList(nil).View())
}

func TestArticleList_View_TruncatesToWidth(t *testing.T) {
	l := NewArticleList(nil)
	l.SetWidth(20)
	l.SetArticles([]domain.Article{{ID: "x", Title: strings.Repeat("long ", 20)}})

	assert.Contains(t, l.View(), "…")
	assert.Equal(t, 20, l.Width())
}
