package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/newsroom/internal/core/domain"
	"github.com/custodia-labs/newsroom/internal/core/ports/driving"
	"github.com/custodia-labs/newsroom/internal/core/services"
)

// MockArticleService implements driving.ArticleService for testing.
type MockArticleService struct {
	LoadFunc      func(ctx context.Context) (domain.LoadState, error)
	StateValue    domain.LoadState
	ArticleList   []domain.Article
	CategoryNames []string
	ListErr       error
}

func (m *MockArticleService) Load(ctx context.Context) (domain.LoadState, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return m.StateValue, nil
}

func (m *MockArticleService) State() domain.LoadState {
	return m.StateValue
}

func (m *MockArticleService) List(_ context.Context) ([]domain.Article, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ArticleList, nil
}

func (m *MockArticleService) Get(_ context.Context, id string) (*domain.Article, error) {
	return domain.FindArticle(m.ArticleList, id)
}

func (m *MockArticleService) ByCategory(_ context.Context, name string) ([]domain.Article, error) {
	return domain.FilterByCategory(m.ArticleList, name), nil
}

func (m *MockArticleService) Categories(_ context.Context) ([]string, error) {
	return m.CategoryNames, nil
}

// MockSettingsService implements driving.SettingsService for testing.
type MockSettingsService struct {
	Settings *domain.AppSettings
	Err      error
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	return m.Settings, m.Err
}

func (m *MockSettingsService) Set(_, _ string) error { return nil }

func (m *MockSettingsService) Keys() []string { return nil }

func (m *MockSettingsService) Path() string { return "" }

var (
	_ driving.ArticleService  = (*MockArticleService)(nil)
	_ driving.SettingsService = (*MockSettingsService)(nil)
)

func TestNewPorts(t *testing.T) {
	articles := &MockArticleService{}
	nav := services.NewNavigator(domain.HomeView{})

	ports := NewPorts(articles, nav)

	require.NotNil(t, ports)
	assert.Equal(t, articles, ports.Articles)
	assert.Equal(t, nav, ports.Navigator)
	assert.Nil(t, ports.Settings)
	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name     string
		ports    *Ports
		expected error
	}{
		{
			name:     "missing articles",
			ports:    &Ports{Navigator: services.NewNavigator(nil)},
			expected: ErrMissingArticleService,
		},
		{
			name:     "missing navigator",
			ports:    &Ports{Articles: &MockArticleService{}},
			expected: ErrMissingNavigator,
		},
		{
			name:     "settings are optional",
			ports:    &Ports{Articles: &MockArticleService{}, Navigator: services.NewNavigator(nil)},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
