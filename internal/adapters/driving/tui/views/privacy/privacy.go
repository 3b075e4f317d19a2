// Package privacy provides the privacy policy view for the TUI.
package privacy

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/newsroom/internal/core/domain"
	"github.com/custodia-labs/newsroom/internal/richtext"
)

// Title is the page heading.
const Title = "Privacy Policy"

// View shows the static privacy policy.
type View struct {
	styles *styles.Styles
	policy *domain.RichText
	width  int
	height int
}

// NewView creates a new privacy view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		policy: Policy(),
		width:  80,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the privacy view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	return v, nil
}

// View renders the policy.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Section.Render(strings.ToUpper(Title)))
	b.WriteString("\n\n")
	b.WriteString(richtext.Render(v.policy, v.width, v.styles.RichText()))
	return b.String()
}

// SelectedLine returns -1; the page has nothing to select.
func (v *View) SelectedLine() int {
	return -1
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Policy returns the policy document.
func Policy() *domain.RichText {
	return doc(
		heading("What we collect"),
		para(text("This reader does not create accounts and does not track what you read. "+
			"Articles are fetched once when the app starts and are kept in memory only.")),
		heading("Contact messages"),
		para(text("Messages sent through the contact page are acknowledged on screen and then discarded. "+
			"They are not stored or transmitted.")),
		heading("Content providers"),
		para(text("When the newsroom is configured to read from a content API, requests to that service "+
			"carry the access token from your configuration. See the provider's own policy for how "+
			"those requests are handled.")),
		list(
			text("No cookies or local storage"),
			text("No analytics or third-party trackers"),
			text("No advertising identifiers"),
		),
		heading("Questions"),
		para(text("Reach the newsroom at "), link("privacy@newsroom.example", "mailto:privacy@newsroom.example"),
			text(".")),
	)
}

func doc(children ...*domain.RichText) *domain.RichText {
	return &domain.RichText{Type: domain.NodeDocument, Content: children}
}

func heading(s string) *domain.RichText {
	return &domain.RichText{Type: domain.NodeHeading2, Content: []*domain.RichText{text(s)}}
}

func para(children ...*domain.RichText) *domain.RichText {
	return &domain.RichText{Type: domain.NodeParagraph, Content: children}
}

func text(s string) *domain.RichText {
	return &domain.RichText{Type: domain.NodeText, Value: s}
}

func link(label, uri string) *domain.RichText {
	return &domain.RichText{Type: domain.NodeHyperlink, URI: uri, Content: []*domain.RichText{text(label)}}
}

func list(items ...*domain.RichText) *domain.RichText {
	out := &domain.RichText{Type: domain.NodeUnorderedList}
	for _, it := range items {
		out.Content = append(out.Content, &domain.RichText{
			Type:    domain.NodeListItem,
			Content: []*domain.RichText{para(it)},
		})
	}
	return out
}
