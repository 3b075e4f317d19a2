package driven

import (
	"context"

	"github.com/custodia-labs/newsroom/internal/core/domain"
)

// ArticleSource supplies the complete article collection.
// It takes no parameters: no filtering, sorting or paging is requested.
type ArticleSource interface {
	// Name identifies the source in logs (e.g. "static", "contentful").
	Name() string

	// Synchronous reports whether FetchArticles completes without I/O latency.
	// Synchronous sources are loaded before the first render.
	Synchronous() bool

	// FetchArticles returns every article the source holds.
	FetchArticles(ctx context.Context) ([]domain.Article, error)
}
