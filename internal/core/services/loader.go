package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/newsroom/internal/core/domain"
	"github.com/custodia-labs/newsroom/internal/core/ports/driven"
	"github.com/custodia-labs/newsroom/internal/logger"
)

// Loader fetches the article collection exactly once per session and
// mirrors the outcome as a LoadState.
//
// The state starts as loading and settles once to ready or error.
// A failed fetch is never retried.
type Loader struct {
	source driven.ArticleSource
	store  driven.ArticleStore

	once sync.Once
	mu   sync.RWMutex
	st   domain.LoadState
}

// NewLoader creates a loader for the given source, writing into store.
func NewLoader(source driven.ArticleSource, store driven.ArticleStore) *Loader {
	return &Loader{
		source: source,
		store:  store,
		st:     domain.Loading(),
	}
}

// Start prepares the loader before the first render.
// Synchronous sources are fetched immediately so the first render is
// already ready; remote sources stay loading until Fetch is called.
func (l *Loader) Start(ctx context.Context) domain.LoadState {
	if l.source != nil && l.source.Synchronous() {
		st, _ := l.Fetch(ctx)
		return st
	}
	return l.State()
}

// Fetch performs the single fetch if it has not run yet and returns the
// settled state. Later calls return the same state without fetching.
// The returned error wraps domain.ErrFetchFailed when the state is error.
func (l *Loader) Fetch(ctx context.Context) (domain.LoadState, error) {
	l.once.Do(func() {
		l.settle(l.fetch(ctx))
	})

	st := l.State()
	if st.Status == domain.LoadError {
		return st, domain.ErrFetchFailed
	}
	return st, nil
}

func (l *Loader) fetch(ctx context.Context) error {
	if l.source == nil {
		return fmt.Errorf("no article source configured")
	}

	logger.Debug("fetching articles from %s", l.source.Name())
	articles, err := l.source.FetchArticles(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", l.source.Name(), err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", l.source.Name(), err)
	}
	if err := l.store.ReplaceAll(ctx, articles); err != nil {
		return fmt.Errorf("store articles: %w", err)
	}

	logger.Info("loaded %d articles from %s", len(articles), l.source.Name())
	return nil
}

func (l *Loader) settle(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		// The cause is logged only; readers see the fixed message.
		logger.Warn("article fetch failed: %v", err)
		l.st = domain.Failed()
		return
	}
	l.st = domain.Ready()
}

// State returns the current load state.
func (l *Loader) State() domain.LoadState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.st
}

// SourceName returns the name of the underlying source.
func (l *Loader) SourceName() string {
	if l.source == nil {
		return ""
	}
	return l.source.Name()
}
