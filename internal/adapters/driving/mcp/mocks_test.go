package mcp

import (
	"context"

	"github.com/custodia-labs/newsroom/internal/core/domain"
	"github.com/custodia-labs/newsroom/internal/core/ports/driving"
)

// mockArticleService is a mock implementation of driving.ArticleService.
type mockArticleService struct {
	state      domain.LoadState
	loadErr    error
	articles   []domain.Article
	categories []string
	err        error
}

var _ driving.ArticleService = (*mockArticleService)(nil)

func (m *mockArticleService) Load(_ context.Context) (domain.LoadState, error) {
	return m.state, m.loadErr
}

func (m *mockArticleService) State() domain.LoadState {
	return m.state
}

func (m *mockArticleService) List(_ context.Context) ([]domain.Article, error) {
	return m.articles, m.err
}

func (m *mockArticleService) Get(_ context.Context, id string) (*domain.Article, error) {
	if m.err != nil {
		return nil, m.err
	}
	return domain.FindArticle(m.articles, id)
}

func (m *mockArticleService) ByCategory(_ context.Context, name string) ([]domain.Article, error) {
	if m.err != nil {
		return nil, m.err
	}
	return domain.FilterByCategory(m.articles, name), nil
}

func (m *mockArticleService) Categories(_ context.Context) ([]string, error) {
	return m.categories, m.err
}

func readyArticles() *mockArticleService {
	return &mockArticleService{
		state: domain.Ready(),
		articles: []domain.Article{
			{
				ID: "w1", Category: "World", Title: "Harbour accord signed", Author: "M. Osei",
				Summary: "Ports agree.", Content: domain.TextContent("Full story."),
				ImageURL: "https://images.example.com/harbour.jpg",
			},
			{ID: "s1", Category: "Sports", Title: "Cup final tonight", Summary: "Kick-off at eight."},
			{ID: "s2", Category: "Sports", Title: "Record broken", Summary: "A new best."},
		},
		categories: []string{"World", "Sports"},
	}
}
