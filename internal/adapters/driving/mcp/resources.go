package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/newsroom/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for newsroom resources.
	uriScheme = "newsroom://"

	mimeJSON = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "articles",
		Name:        "articles",
		Description: "Summaries of every loaded article",
		MIMEType:    mimeJSON,
	}, s.handleArticlesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "categories",
		Name:        "categories",
		Description: "News categories in display order",
		MIMEType:    mimeJSON,
	}, s.handleCategoriesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "articles/{articleId}",
		Name:        "article",
		Description: "A single article including its body",
		MIMEType:    mimeJSON,
	}, s.handleArticleResource)
}

// handleArticlesResource returns summaries of all articles.
func (s *Server) handleArticlesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	articles, err := s.ports.Articles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing articles: %w", err)
	}

	infos := make([]ArticleSummary, len(articles))
	for i := range articles {
		infos[i] = summarise(&articles[i])
	}
	return jsonResult(req.Params.URI, infos)
}

// handleCategoriesResource returns the category names.
func (s *Server) handleCategoriesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	categories, err := s.ports.Articles.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	if categories == nil {
		categories = []string{}
	}
	return jsonResult(req.Params.URI, categories)
}

// handleArticleResource returns one article with its body in source form.
func (s *Server) handleArticleResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractArticleID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	a, err := s.ports.Articles.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting article: %w", err)
	}
	return jsonResult(req.Params.URI, a)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(data),
		}},
	}, nil
}

// extractArticleID extracts the article ID from a URI like newsroom://articles/{articleId}.
func extractArticleID(uri string) string {
	const prefix = uriScheme + "articles/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
