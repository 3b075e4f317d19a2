package header

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/newsroom/internal/core/domain"
)

func TestNew(t *testing.T) {
	h := New(nil, "The Daily Newsroom")

	require.NotNil(t, h)
	assert.NotNil(t, h.styles)
	assert.Empty(t, h.Categories())
}

func TestHeader_View(t *testing.T) {
	h := New(styles.DefaultStyles(), "The Daily Newsroom")
	h.SetCategories([]string{"World", "Sports"})
	h.SetWidth(60)

	out := h.View()

	assert.Contains(t, out, "THE DAILY NEWSROOM")
	assert.Contains(t, out, "[h] Home")
	assert.Contains(t, out, "[1] World")
	assert.Contains(t, out, "[2] Sports")
	assert.Len(t, strings.Split(out, "\n"), Height)
}

func TestHeader_View_LimitsShortcuts(t *testing.T) {
	h := New(nil, "News")
	h.SetWidth(400)
	cats := make([]string, 12)
	for i := range cats {
		cats[i] = fmt.Sprintf("C%d", i)
	}
	h.SetCategories(cats)

	out := h.View()

	assert.Contains(t, out, "[9] C8")
	assert.NotContains(t, out, "C9")
}

func TestHeader_CategoryAt(t *testing.T) {
	h := New(nil, "News")
	h.SetCategories([]string{"World", "Sports"})

	tests := []struct {
		index int
		want  string
		ok    bool
	}{
		{0, "World", true},
		{1, "Sports", true},
		{2, "", false},
		{-1, "", false},
	}

	for _, tt := range tests {
		got, ok := h.CategoryAt(tt.index)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.ok, ok)
	}
}

func TestHeader_isActiveCategory(t *testing.T) {
	h := New(nil, "News")

	h.SetActive(domain.CategoryView{Name: "Sports"})
	assert.True(t, h.isActiveCategory("Sports"))
	assert.False(t, h.isActiveCategory("World"))

	h.SetActive(domain.ArticleView{ID: "1"})
	assert.False(t, h.isActiveCategory("Sports"))
}
