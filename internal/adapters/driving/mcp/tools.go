package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/newsroom/internal/core/domain"
)

// ListArticlesInput is the input schema for the list_articles tool.
type ListArticlesInput struct {
	Category string `json:"category,omitempty" jsonschema:"only list articles in this category (exact match)"`
}

// ListArticlesOutput is the output schema for the list_articles tool.
type ListArticlesOutput struct {
	Articles []ArticleSummary `json:"articles"`
	Count    int              `json:"count"`
}

// ArticleSummary is the listing form of an article.
type ArticleSummary struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Author   string `json:"author,omitempty"`
	Date     string `json:"date,omitempty"`
	Summary  string `json:"summary"`
}

// GetArticleInput is the input schema for the get_article tool.
type GetArticleInput struct {
	ID string `json:"id" jsonschema:"the article id"`
}

// ArticleOutput is the output schema for the get_article tool.
type ArticleOutput struct {
	ArticleSummary
	ImageURL    string `json:"image_url,omitempty"`
	ContentKind string `json:"content_kind"`
	Content     string `json:"content"`
}

// ListCategoriesInput is the input schema for the list_categories tool.
type ListCategoriesInput struct{}

// ListCategoriesOutput is the output schema for the list_categories tool.
type ListCategoriesOutput struct {
	Categories []string `json:"categories"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_articles",
		Description: "List news articles, optionally limited to one category",
	}, s.handleListArticles)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_article",
		Description: "Get the full text of a news article by id",
	}, s.handleGetArticle)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_categories",
		Description: "List the news categories",
	}, s.handleListCategories)
}

// ensureLoaded waits for the collection and fails if it could not be fetched.
func (s *Server) ensureLoaded(ctx context.Context) error {
	state, err := s.ports.Articles.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading articles: %w", err)
	}
	if state.Status != domain.LoadReady {
		return domain.ErrFetchFailed
	}
	return nil
}

// handleListArticles handles the list_articles tool invocation.
func (s *Server) handleListArticles(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListArticlesInput,
) (*mcp.CallToolResult, ListArticlesOutput, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, ListArticlesOutput{}, err
	}

	var (
		articles []domain.Article
		err      error
	)
	if input.Category != "" {
		articles, err = s.ports.Articles.ByCategory(ctx, input.Category)
	} else {
		articles, err = s.ports.Articles.List(ctx)
	}
	if err != nil {
		return nil, ListArticlesOutput{}, err
	}

	output := ListArticlesOutput{
		Articles: make([]ArticleSummary, len(articles)),
		Count:    len(articles),
	}
	for i := range articles {
		output.Articles[i] = summarise(&articles[i])
	}

	return nil, output, nil
}

// handleGetArticle handles the get_article tool invocation.
func (s *Server) handleGetArticle(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetArticleInput,
) (*mcp.CallToolResult, ArticleOutput, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, ArticleOutput{}, err
	}

	a, err := s.ports.Articles.Get(ctx, input.ID)
	if err != nil {
		return nil, ArticleOutput{}, err
	}

	return nil, ArticleOutput{
		ArticleSummary: summarise(a),
		ImageURL:       a.ImageURL,
		ContentKind:    a.Content.Kind().String(),
		Content:        a.Content.PlainText(),
	}, nil
}

// handleListCategories handles the list_categories tool invocation.
func (s *Server) handleListCategories(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListCategoriesInput,
) (*mcp.CallToolResult, ListCategoriesOutput, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, ListCategoriesOutput{}, err
	}

	categories, err := s.ports.Articles.Categories(ctx)
	if err != nil {
		return nil, ListCategoriesOutput{}, err
	}
	if categories == nil {
		categories = []string{}
	}
	return nil, ListCategoriesOutput{Categories: categories}, nil
}

func summarise(a *domain.Article) ArticleSummary {
	return ArticleSummary{
		ID:       a.ID,
		Category: a.Category,
		Title:    a.Title,
		Author:   a.Author,
		Date:     a.Date,
		Summary:  a.Summary,
	}
}
