package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/custodia-labs/newsroom/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/newsroom/internal/core/domain"
	"github.com/custodia-labs/newsroom/internal/core/services"
)

// MockArticleService implements driving.ArticleService over a fixed slice.
type MockArticleService struct {
	StateValue domain.LoadState
	LoadErr    error
	Items      []domain.Article
	Names      []string
	Loads      int
}

func (m *MockArticleService) Load(_ context.Context) (domain.LoadState, error) {
	m.Loads++
	return m.StateValue, m.LoadErr
}

func (m *MockArticleService) State() domain.LoadState {
	return m.StateValue
}

func (m *MockArticleService) List(_ context.Context) ([]domain.Article, error) {
	return m.Items, nil
}

func (m *MockArticleService) Get(_ context.Context, id string) (*domain.Article, error) {
	return domain.FindArticle(m.Items, id)
}

func (m *MockArticleService) ByCategory(_ context.Context, name string) ([]domain.Article, error) {
	return domain.FilterByCategory(m.Items, name), nil
}

func (m *MockArticleService) Categories(_ context.Context) ([]string, error) {
	return m.Names, nil
}

func newMockArticles() *MockArticleService {
	return &MockArticleService{
		StateValue: domain.Ready(),
		Items: []domain.Article{
			{ID: "w1", Category: "World", Title: "Harbour accord signed", Author: "M. Osei", Date: "2024-05-02",
				Summary: "Ports agree on shared rules.", Content: domain.TextContent("Delegates met for three days.")},
			{ID: "s1", Category: "Sports", Title: "Cup final tonight", Summary: "Kick-off at eight."},
		},
		Names: []string{"World", "Sports"},
	}
}

// newTestSettings returns a settings service over an in-memory store with no environment.
func newTestSettings() *services.SettingsService {
	noEnv := func(string) (string, bool) { return "", false }
	return services.NewSettingsService(memory.NewConfigStore()).WithEnv(noEnv)
}

// resetCLI restores package state and flag values after a test.
func resetCLI(t *testing.T) {
	t.Helper()

	savedBootstrap := bootstrap
	savedSettings := settingsService
	savedArticles := articleFactory
	savedNavigator := navigatorFactory
	savedTerminal := isTerminal

	t.Cleanup(func() {
		bootstrap = savedBootstrap
		settingsService = savedSettings
		articleFactory = savedArticles
		navigatorFactory = savedNavigator
		isTerminal = savedTerminal

		opts = Options{}
		articlesCategory = ""
		articlesJSON = false
		categoriesJSON = false
		versionShort = false
		tuiPage = ""
		tuiPayload = ""

		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}
