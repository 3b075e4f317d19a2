package driving

import (
	"context"

	"github.com/custodia-labs/newsroom/internal/core/domain"
)

// ArticleService exposes the loaded article collection.
type ArticleService interface {
	// Load triggers the one-shot fetch if it has not happened yet and
	// blocks until the collection has settled.
	Load(ctx context.Context) (domain.LoadState, error)

	// State returns the current load state without blocking.
	State() domain.LoadState

	// List returns the complete collection.
	List(ctx context.Context) ([]domain.Article, error)

	// Get returns a single article by ID.
	Get(ctx context.Context, id string) (*domain.Article, error)

	// ByCategory returns the articles whose category matches name exactly.
	ByCategory(ctx context.Context, name string) ([]domain.Article, error)

	// Categories returns the category names, pinned ones first.
	Categories(ctx context.Context) ([]string, error)
}
