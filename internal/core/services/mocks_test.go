package services

import (
	"context"
	"sync/atomic"

	"github.com/custodia-labs/newsroom/internal/core/domain"
)

// MockArticleSource is a scripted article source that counts fetches.
type MockArticleSource struct {
	NameValue   string
	Sync        bool
	Articles    []domain.Article
	Err         error
	FetchFunc   func(ctx context.Context) ([]domain.Article, error)
	fetchCalled atomic.Int32
}

func (m *MockArticleSource) Name() string {
	if m.NameValue == "" {
		return "mock"
	}
	return m.NameValue
}

func (m *MockArticleSource) Synchronous() bool {
	return m.Sync
}

func (m *MockArticleSource) FetchArticles(ctx context.Context) ([]domain.Article, error) {
	m.fetchCalled.Add(1)
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return m.Articles, m.Err
}

func (m *MockArticleSource) Calls() int {
	return int(m.fetchCalled.Load())
}

func sampleArticles() []domain.Article {
	return []domain.Article{
		{ID: "1", Category: "Politics", Title: "Budget vote delayed", Author: "A. Reyes", Date: "2024-03-01",
			Summary: "Lawmakers postpone.", Content: domain.TextContent("The vote moves to next week.")},
		{ID: "2", Category: "Sport", Title: "Late winner", Author: "J. Kim", Date: "2024-03-02",
			Summary: "A stoppage-time goal.", Content: domain.TextContent("It ended 2-1.")},
		{ID: "3", Category: "Politics", Title: "Mayor resigns", Author: "A. Reyes", Date: "2024-03-03",
			Summary: "Unexpected exit.", Content: domain.TextContent("Effective immediately.")},
	}
}
