package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/newsroom/internal/core/domain"
)

func TestNewArticleStore(t *testing.T) {
	store := NewArticleStore()

	require.NotNil(t, store)
	list, err := store.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestArticleStore_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	store := NewArticleStore()

	err := store.ReplaceAll(ctx, []domain.Article{
		{ID: "a", Title: "First"},
		{ID: "b", Title: "Second"},
	})
	require.NoError(t, err)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "b", list[1].ID)

	err = store.ReplaceAll(ctx, []domain.Article{{ID: "c", Title: "Third"}})
	require.NoError(t, err)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestArticleStore_ReplaceAll_DuplicateKeepsPrevious(t *testing.T) {
	ctx := context.Background()
	store := NewArticleStore()
	require.NoError(t, store.ReplaceAll(ctx, []domain.Article{{ID: "keep"}}))

	err := store.ReplaceAll(ctx, []domain.Article{{ID: "x"}, {ID: "x"}})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	a, err := store.Get(ctx, "keep")
	require.NoError(t, err)
	assert.Equal(t, "keep", a.ID)
}

func TestArticleStore_ReplaceAll_CopiesInput(t *testing.T) {
	ctx := context.Background()
	store := NewArticleStore()
	input := []domain.Article{{ID: "a", Title: "Original"}}
	require.NoError(t, store.ReplaceAll(ctx, input))

	input[0].Title = "Mutated"

	a, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Original", a.Title)
}

func TestArticleStore_List_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewArticleStore()
	require.NoError(t, store.ReplaceAll(ctx, []domain.Article{{ID: "a", Title: "Original"}}))

	list, _ := store.List(ctx)
	list[0].Title = "Mutated"

	again, _ := store.List(ctx)
	assert.Equal(t, "Original", again[0].Title)
}

func TestArticleStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := NewArticleStore()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.ReplaceAll(ctx, []domain.Article{{ID: "a"}, {ID: "b"}})
		}()
		go func() {
			defer wg.Done()
			list, _ := store.List(ctx)
			// Readers see either the empty or the full collection, never a partial one.
			assert.Contains(t, []int{0, 2}, len(list))
		}()
	}
	wg.Wait()
}
