// Package header provides the masthead and section navigation for the TUI.
package header

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/newsroom/internal/core/domain"
)

// Height is the number of lines the header occupies.
const Height = 3

// Header shows the site name and the category shortcuts.
type Header struct {
	styles     *styles.Styles
	siteName   string
	categories []string
	active     domain.ViewState
	width      int
}

// New creates a header.
func New(s *styles.Styles, siteName string) *Header {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Header{
		styles:   s,
		siteName: siteName,
		active:   domain.HomeView{},
		width:    80,
	}
}

// SetCategories sets the categories offered as shortcuts. Only the first
// keymap.MaxCategoryShortcuts get a digit.
func (h *Header) SetCategories(categories []string) {
	h.categories = categories
}

// Categories returns the categories in shortcut order.
func (h *Header) Categories() []string {
	return h.categories
}

// CategoryAt returns the category for a zero-based shortcut index.
func (h *Header) CategoryAt(i int) (string, bool) {
	if i < 0 || i >= len(h.categories) || i >= keymap.MaxCategoryShortcuts {
		return "", false
	}
	return h.categories[i], true
}

// SetActive marks the view being shown.
func (h *Header) SetActive(v domain.ViewState) {
	h.active = v
}

// SetWidth sets the header width.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	masthead := h.styles.Masthead.Render(strings.ToUpper(h.siteName))

	items := []string{h.navItem("h", "Home", domain.PageOf(h.active) == domain.PageHome)}
	for i, name := range h.categories {
		if i >= keymap.MaxCategoryShortcuts {
			break
		}
		items = append(items, h.navItem(fmt.Sprint(i+1), name, h.isActiveCategory(name)))
	}
	nav := lipgloss.NewStyle().MaxWidth(h.width).Render(strings.Join(items, "  "))

	width := h.width
	if width < 1 {
		width = 1
	}
	rule := h.styles.Rule.Render(strings.Repeat("═", width))

	return masthead + "\n" + nav + "\n" + rule
}

func (h *Header) navItem(key, label string, active bool) string {
	if active {
		return h.styles.NavActive.Render("[" + key + "] " + label)
	}
	return h.styles.Nav.Render("[" + key + "] " + label)
}

func (h *Header) isActiveCategory(name string) bool {
	cv, ok := h.active.(domain.CategoryView)
	return ok && cv.Name == name
}
