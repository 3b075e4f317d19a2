package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractArticleID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid article URI",
			uri:      "newsroom://articles/w1",
			expected: "w1",
		},
		{
			name:     "invalid prefix",
			uri:      "file://articles/w1",
			expected: "",
		},
		{
			name:     "nested path",
			uri:      "newsroom://articles/w1/extra",
			expected: "",
		},
		{
			name:     "collection URI",
			uri:      "newsroom://articles",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractArticleID(tt.uri))
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleArticlesResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns summaries", func(t *testing.T) {
		server := newTestServer(t, readyArticles())

		result, err := server.handleArticlesResource(ctx, makeReadResourceRequest("newsroom://articles"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, `"id": "w1"`)
		assert.Contains(t, result.Contents[0].Text, "Cup final tonight")
		assert.NotContains(t, result.Contents[0].Text, "Full story.")
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		svc := readyArticles()
		svc.err = errors.New("store closed")
		server := newTestServer(t, svc)

		_, err := server.handleArticlesResource(ctx, makeReadResourceRequest("newsroom://articles"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing articles")
	})
}

func TestServer_handleCategoriesResource(t *testing.T) {
	server := newTestServer(t, readyArticles())

	result, err := server.handleCategoriesResource(context.Background(),
		makeReadResourceRequest("newsroom://categories"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.JSONEq(t, `["World", "Sports"]`, result.Contents[0].Text)
}

func TestServer_handleArticleResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the article with its body", func(t *testing.T) {
		server := newTestServer(t, readyArticles())

		result, err := server.handleArticleResource(ctx, makeReadResourceRequest("newsroom://articles/w1"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, "Harbour accord signed")
		assert.Contains(t, result.Contents[0].Text, "Full story.")
	})

	t.Run("unknown article is resource not found", func(t *testing.T) {
		server := newTestServer(t, readyArticles())

		_, err := server.handleArticleResource(ctx, makeReadResourceRequest("newsroom://articles/abc123"))

		require.Error(t, err)
	})

	t.Run("malformed URI is resource not found", func(t *testing.T) {
		server := newTestServer(t, readyArticles())

		_, err := server.handleArticleResource(ctx, makeReadResourceRequest("newsroom://articles/"))

		require.Error(t, err)
	})
}
