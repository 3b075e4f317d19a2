// Package tui provides an interactive terminal news reader.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/newsroom/internal/core/ports/driving"
)

// Ports aggregates the driving ports the TUI needs.
type Ports struct {
	// Articles provides the loaded article collection.
	Articles driving.ArticleService

	// Navigator holds the current view.
	Navigator driving.Navigator

	// Settings supplies the site name and pinned categories. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(articles driving.ArticleService, navigator driving.Navigator) *Ports {
	return &Ports{
		Articles:  articles,
		Navigator: navigator,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Articles == nil {
		return ErrMissingArticleService
	}
	if p.Navigator == nil {
		return ErrMissingNavigator
	}
	return nil
}
