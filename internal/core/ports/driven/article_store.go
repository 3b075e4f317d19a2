package driven

import (
	"context"

	"github.com/custodia-labs/newsroom/internal/core/domain"
)

// ArticleStore holds the loaded article collection in memory.
// The collection is only ever replaced as a whole.
type ArticleStore interface {
	// ReplaceAll swaps in a new collection atomically.
	ReplaceAll(ctx context.Context, articles []domain.Article) error

	// List returns the complete collection in source order.
	List(ctx context.Context) ([]domain.Article, error)

	// Get retrieves an article by ID.
	// Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.Article, error)

	// Count returns the number of articles held.
	Count(ctx context.Context) (int, error)
}
