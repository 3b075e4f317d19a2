// Package memory provides in-memory implementations of driven storage ports.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/newsroom/internal/core/domain"
	"github.com/custodia-labs/newsroom/internal/core/ports/driven"
)

// Ensure ArticleStore implements the interface.
var _ driven.ArticleStore = (*ArticleStore)(nil)

// ArticleStore is an in-memory implementation of driven.ArticleStore.
// The collection and its index are swapped together under one lock.
type ArticleStore struct {
	mu       sync.RWMutex
	articles []domain.Article
	byID     map[string]int
}

// NewArticleStore creates a new, empty in-memory article store.
func NewArticleStore() *ArticleStore {
	return &ArticleStore{
		articles: []domain.Article{},
		byID:     make(map[string]int),
	}
}

// ReplaceAll swaps in a new collection.
// Duplicate IDs are rejected and leave the previous collection in place.
func (s *ArticleStore) ReplaceAll(_ context.Context, articles []domain.Article) error {
	next := make([]domain.Article, len(articles))
	copy(next, articles)

	index := make(map[string]int, len(next))
	for i := range next {
		if _, dup := index[next[i].ID]; dup {
			return fmt.Errorf("%w: duplicate article id %q", domain.ErrInvalidInput, next[i].ID)
		}
		index[next[i].ID] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles = next
	s.byID = index
	return nil
}

// List returns a copy of the collection in source order.
func (s *ArticleStore) List(_ context.Context) ([]domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Article, len(s.articles))
	copy(result, s.articles)
	return result, nil
}

// Get retrieves an article by ID.
func (s *ArticleStore) Get(_ context.Context, id string) (*domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	a := s.articles[i]
	return &a, nil
}

// Count returns the number of articles held.
func (s *ArticleStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.articles), nil
}
