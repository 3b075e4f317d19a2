// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/newsroom/internal/richtext"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	// Primary is the masthead and headline colour.
	Primary lipgloss.Color

	// Accent marks categories and links.
	Accent lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for bylines, dates and hints.
	Muted lipgloss.Color

	// Success confirms an action.
	Success lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the rule and border colour.
	Border lipgloss.Color

	// Bar is the header and footer background.
	Bar lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#F5E0DC"), // Newsprint
		Accent:     lipgloss.Color("#FAB387"), // Amber
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
		Bar:        lipgloss.Color("#181825"), // Near black
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Masthead renders the site name.
	Masthead lipgloss.Style

	// Nav renders header shortcuts.
	Nav lipgloss.Style

	// NavActive renders the shortcut of the page being shown.
	NavActive lipgloss.Style

	// Headline renders article titles.
	Headline lipgloss.Style

	// Lead renders the featured headline on the home page.
	Lead lipgloss.Style

	// Section renders category section titles.
	Section lipgloss.Style

	// Category renders the small category label above a headline.
	Category lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for bylines, dates and hints.
	Muted lipgloss.Style

	// Selected style for the highlighted list item.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for confirmations.
	Success lipgloss.Style

	// InputField style for form inputs.
	InputField lipgloss.Style

	// InputFocused style for the focused form input.
	InputFocused lipgloss.Style

	// Bar style for the header and footer.
	Bar lipgloss.Style

	// Help style for key hints.
	Help lipgloss.Style

	// Rule style for separators.
	Rule lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Masthead: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Nav: lipgloss.NewStyle().
			Foreground(theme.Muted),

		NavActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		Headline: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Lead: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(theme.Primary),

		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		Category: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Bar).
			Background(theme.Accent),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1),

		Bar: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.Bar).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Rule: lipgloss.NewStyle().
			Foreground(theme.Border),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// RichText returns the styles used to lay out article bodies.
func (s *Styles) RichText() richtext.Styles {
	return richtext.Styles{
		Heading:   lipgloss.NewStyle().Bold(true).Underline(true).Foreground(s.theme.Primary),
		Bold:      lipgloss.NewStyle().Bold(true),
		Italic:    lipgloss.NewStyle().Italic(true),
		Underline: lipgloss.NewStyle().Underline(true),
		Code:      lipgloss.NewStyle().Foreground(s.theme.Accent),
		Link:      lipgloss.NewStyle().Underline(true).Foreground(s.theme.Accent),
		Quote:     lipgloss.NewStyle().Foreground(s.theme.Muted),
		Rule:      s.Rule,
	}
}
