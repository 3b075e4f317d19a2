package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleArticles() []Article {
	return []Article{
		{ID: "1", Category: "World", Title: "Summit"},
		{ID: "2", Category: "Sports", Title: "Final"},
		{ID: "3", Category: "sports", Title: "Lowercase"},
		{ID: "4", Category: "Sports", Title: "Transfer"},
		{ID: "5", Category: "Tech", Title: "Chips"},
		{ID: "6", Category: "", Title: "Uncategorised"},
	}
}

func TestFilterByCategory_CaseSensitive(t *testing.T) {
	got := FilterByCategory(sampleArticles(), "Sports")

	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "4", got[1].ID)
}

func TestFilterByCategory_NoMatch(t *testing.T) {
	got := FilterByCategory(sampleArticles(), "Weather")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFindArticle(t *testing.T) {
	a, err := FindArticle(sampleArticles(), "5")
	require.NoError(t, err)
	assert.Equal(t, "Chips", a.Title)

	a, err = FindArticle(sampleArticles(), "abc123")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, a)
}

func TestCategories(t *testing.T) {
	tests := []struct {
		name     string
		pinned   []string
		expected []string
	}{
		{name: "appearance order", pinned: nil, expected: []string{"World", "Sports", "sports", "Tech"}},
		{name: "pinned first", pinned: []string{"Tech", "World"}, expected: []string{"Tech", "World", "Sports", "sports"}},
		{name: "absent pinned skipped", pinned: []string{"Weather", "Sports"}, expected: []string{"Sports", "World", "sports", "Tech"}},
		{name: "duplicate pinned once", pinned: []string{"Tech", "Tech"}, expected: []string{"Tech", "World", "Sports", "sports"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Categories(sampleArticles(), tt.pinned))
		})
	}
}

func TestRelatedArticles(t *testing.T) {
	all := sampleArticles()

	related := RelatedArticles(all, all[1], 3)
	require.Len(t, related, 1)
	assert.Equal(t, "4", related[0].ID)

	assert.Nil(t, RelatedArticles(all, all[1], 0))
	assert.Empty(t, RelatedArticles(all, all[4], 3))
}
