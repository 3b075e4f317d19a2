// Package mcp provides an MCP (Model Context Protocol) server adapter for the newsroom.
// It lets AI assistants browse the loaded article collection read-only.
package mcp

import "errors"

// ErrMissingArticleService is returned when the article service is not provided.
var ErrMissingArticleService = errors.New("mcp: article service is required")
