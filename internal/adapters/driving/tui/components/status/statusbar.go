// Package status provides the footer bar for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/newsroom/internal/core/domain"
)

// Height is the number of lines the bar occupies.
const Height = 1

// Mode selects which page hints are shown.
type Mode string

const (
	ModeList    Mode = "list"
	ModeReading Mode = "reading"
	ModeForm    Mode = "form"
)

// Bar displays the load state, an optional message and key hints.
type Bar struct {
	styles       *styles.Styles
	keymap       *keymap.KeyMap
	load         domain.LoadState
	mode         Mode
	message      string
	articleCount int
	width        int
}

// NewBar creates a new footer bar.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		load:   domain.Loading(),
		mode:   ModeList,
		width:  80,
	}
}

// Init initialises the bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}

	return s.styles.Bar.Width(s.width).MaxHeight(Height).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	if s.message != "" {
		return s.styles.Normal.Render(s.message)
	}
	switch s.load.Status {
	case domain.LoadLoading:
		return s.styles.Muted.Render("Loading news...")
	case domain.LoadError:
		return s.styles.Error.Render("Offline")
	case domain.LoadReady:
		return s.styles.Muted.Render(fmt.Sprintf("%d articles", s.articleCount))
	}
	return ""
}

// renderRight renders the key hints for the current mode.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	switch s.mode {
	case ModeForm:
		bindings = s.keymap.FormHelp()
	case ModeReading:
		bindings = []key.Binding{s.keymap.Back, s.keymap.Contact, s.keymap.Privacy, s.keymap.Quit}
	default:
		bindings = s.keymap.NavHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return s.styles.Help.Render(strings.Join(hints, " · "))
}

// SetLoadState sets the collection load state.
func (s *Bar) SetLoadState(st domain.LoadState) {
	s.load = st
}

// LoadState returns the collection load state.
func (s *Bar) LoadState() domain.LoadState {
	return s.load
}

// SetMode sets which hints are shown.
func (s *Bar) SetMode(m Mode) {
	s.mode = m
}

// Mode returns the current mode.
func (s *Bar) Mode() Mode {
	return s.mode
}

// SetMessage sets a transient message replacing the load summary.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetArticleCount sets the number of loaded articles.
func (s *Bar) SetArticleCount(count int) {
	s.articleCount = count
}

// ArticleCount returns the number of loaded articles.
func (s *Bar) ArticleCount() int {
	return s.articleCount
}

// SetWidth sets the bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear removes the message.
func (s *Bar) Clear() {
	s.message = ""
}
