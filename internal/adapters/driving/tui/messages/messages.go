// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/newsroom/internal/core/domain"
)

// Navigate asks the app to replace the current view.
type Navigate struct {
	View domain.ViewState
}

// NavigateTo returns a command that emits Navigate.
func NavigateTo(v domain.ViewState) tea.Cmd {
	return func() tea.Msg {
		return Navigate{View: v}
	}
}

// ArticlesLoaded carries the settled collection fetch.
// Articles is empty unless State is ready.
type ArticlesLoaded struct {
	State      domain.LoadState
	Articles   []domain.Article
	Categories []string
	Err        error
}

// ContactSubmitted is sent when the contact form passes validation.
type ContactSubmitted struct {
	Name    string
	Email   string
	Message string
}

// Quit signals the application should exit.
type Quit struct{}
