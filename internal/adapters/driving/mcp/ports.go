package mcp

import (
	"github.com/custodia-labs/newsroom/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Articles provides the article collection.
	Articles driving.ArticleService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Articles == nil {
		return ErrMissingArticleService
	}
	return nil
}
