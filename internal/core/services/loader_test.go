package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/newsroom/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/newsroom/internal/core/domain"
)

func TestNewLoader_StartsLoading(t *testing.T) {
	loader := NewLoader(&MockArticleSource{}, memory.NewArticleStore())

	assert.Equal(t, domain.LoadLoading, loader.State().Status)
	assert.Empty(t, loader.State().Message)
}

func TestLoader_Start_SynchronousSourceIsReadyImmediately(t *testing.T) {
	source := &MockArticleSource{Sync: true, Articles: sampleArticles()}
	store := memory.NewArticleStore()
	loader := NewLoader(source, store)

	st := loader.Start(context.Background())

	assert.Equal(t, domain.LoadReady, st.Status)
	assert.Equal(t, 1, source.Calls())
	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestLoader_Start_RemoteSourceStaysLoading(t *testing.T) {
	source := &MockArticleSource{Articles: sampleArticles()}
	loader := NewLoader(source, memory.NewArticleStore())

	st := loader.Start(context.Background())

	assert.Equal(t, domain.LoadLoading, st.Status)
	assert.Zero(t, source.Calls())
}

func TestLoader_Fetch_Success(t *testing.T) {
	source := &MockArticleSource{Articles: sampleArticles()}
	loader := NewLoader(source, memory.NewArticleStore())

	st, err := loader.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.LoadReady, st.Status)
	assert.Equal(t, domain.Ready(), loader.State())
}

func TestLoader_Fetch_EmptyCollectionIsReady(t *testing.T) {
	loader := NewLoader(&MockArticleSource{Articles: []domain.Article{}}, memory.NewArticleStore())

	st, err := loader.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.LoadReady, st.Status)
}

func TestLoader_Fetch_FailureSetsFixedMessage(t *testing.T) {
	source := &MockArticleSource{Err: errors.New("503 service unavailable")}
	loader := NewLoader(source, memory.NewArticleStore())

	st, err := loader.Fetch(context.Background())

	require.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Equal(t, domain.LoadError, st.Status)
	assert.Equal(t, domain.FetchFailedMessage, st.Message)
	assert.NotContains(t, st.Message, "503")
}

func TestLoader_Fetch_StoreRejectionIsFailure(t *testing.T) {
	dup := []domain.Article{{ID: "1", Title: "a"}, {ID: "1", Title: "b"}}
	loader := NewLoader(&MockArticleSource{Articles: dup}, memory.NewArticleStore())

	st, err := loader.Fetch(context.Background())

	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Equal(t, domain.LoadError, st.Status)
}

func TestLoader_Fetch_NilSource(t *testing.T) {
	loader := NewLoader(nil, memory.NewArticleStore())

	st, err := loader.Fetch(context.Background())

	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Equal(t, domain.LoadError, st.Status)
	assert.Empty(t, loader.SourceName())
}

func TestLoader_Fetch_OnlyOnce(t *testing.T) {
	tests := []struct {
		name   string
		source *MockArticleSource
		status domain.LoadStatus
	}{
		{name: "after success", source: &MockArticleSource{Articles: sampleArticles()}, status: domain.LoadReady},
		{name: "after failure", source: &MockArticleSource{Err: errors.New("boom")}, status: domain.LoadError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewLoader(tt.source, memory.NewArticleStore())

			for i := 0; i < 3; i++ {
				st, _ := loader.Fetch(context.Background())
				assert.Equal(t, tt.status, st.Status)
			}

			assert.Equal(t, 1, tt.source.Calls())
		})
	}
}

func TestLoader_Fetch_ConcurrentCallersShareOneFetch(t *testing.T) {
	release := make(chan struct{})
	source := &MockArticleSource{
		FetchFunc: func(ctx context.Context) ([]domain.Article, error) {
			<-release
			return sampleArticles(), nil
		},
	}
	loader := NewLoader(source, memory.NewArticleStore())

	var wg sync.WaitGroup
	results := make([]domain.LoadState, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = loader.Fetch(context.Background())
		}(i)
	}
	close(release)
	wg.Wait()

	assert.Equal(t, 1, source.Calls())
	for _, st := range results {
		assert.Equal(t, domain.LoadReady, st.Status)
	}
}

func TestLoader_Fetch_CancelledContextSettlesAsError(t *testing.T) {
	source := &MockArticleSource{
		FetchFunc: func(ctx context.Context) ([]domain.Article, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	loader := NewLoader(source, memory.NewArticleStore())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st, err := loader.Fetch(ctx)

	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Equal(t, domain.LoadError, st.Status)
}

func TestLoader_Fetch_ResultAfterCancelIsDiscarded(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	source := &MockArticleSource{
		FetchFunc: func(context.Context) ([]domain.Article, error) {
			cancel()
			return sampleArticles(), nil
		},
	}
	store := memory.NewArticleStore()
	loader := NewLoader(source, store)

	st, _ := loader.Fetch(ctx)

	assert.Equal(t, domain.LoadError, st.Status)
	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLoader_SourceName(t *testing.T) {
	loader := NewLoader(&MockArticleSource{NameValue: "contentful"}, memory.NewArticleStore())

	assert.Equal(t, "contentful", loader.SourceName())
}
