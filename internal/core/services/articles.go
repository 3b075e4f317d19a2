package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/newsroom/internal/core/domain"
	"github.com/custodia-labs/newsroom/internal/core/ports/driven"
	"github.com/custodia-labs/newsroom/internal/core/ports/driving"
)

// Ensure ArticleService implements the interface.
var _ driving.ArticleService = (*ArticleService)(nil)

// ArticleService answers queries over the loaded collection.
// Filtering happens here, downstream of the loader; the store always
// holds the complete set.
type ArticleService struct {
	loader *Loader
	store  driven.ArticleStore
	pinned []string
}

// NewArticleService creates an article service.
// pinned sets the leading order of Categories.
func NewArticleService(loader *Loader, store driven.ArticleStore, pinned []string) *ArticleService {
	return &ArticleService{
		loader: loader,
		store:  store,
		pinned: pinned,
	}
}

// Load fetches the collection if needed and blocks until it settles.
func (s *ArticleService) Load(ctx context.Context) (domain.LoadState, error) {
	return s.loader.Fetch(ctx)
}

// State returns the current load state.
func (s *ArticleService) State() domain.LoadState {
	return s.loader.State()
}

// List returns the complete collection.
func (s *ArticleService) List(ctx context.Context) ([]domain.Article, error) {
	articles, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Get returns a single article by ID.
func (s *ArticleService) Get(ctx context.Context, id string) (*domain.Article, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: article id is required", domain.ErrInvalidInput)
	}
	return s.store.Get(ctx, id)
}

// ByCategory returns the articles whose category equals name exactly.
func (s *ArticleService) ByCategory(ctx context.Context, name string) ([]domain.Article, error) {
	articles, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterByCategory(articles, name), nil
}

// Categories returns the category names, pinned ones first.
func (s *ArticleService) Categories(ctx context.Context) ([]string, error) {
	articles, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Categories(articles, s.pinned), nil
}
