// Package richtext lays out article bodies for the terminal.
package richtext

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/custodia-labs/newsroom/internal/core/domain"
)

// MinWidth is the narrowest layout produced.
const MinWidth = 20

// Styles decorates rendered nodes.
type Styles struct {
	Heading   lipgloss.Style
	Bold      lipgloss.Style
	Italic    lipgloss.Style
	Underline lipgloss.Style
	Code      lipgloss.Style
	Link      lipgloss.Style
	Quote     lipgloss.Style
	Rule      lipgloss.Style
}

// PlainStyles returns styles that add no decoration.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Heading:   plain,
		Bold:      plain,
		Italic:    plain,
		Underline: plain,
		Code:      plain,
		Link:      plain,
		Quote:     plain,
		Rule:      plain,
	}
}

// RenderContent lays out either form of article body.
func RenderContent(c domain.Content, width int, st Styles) string {
	if c.Kind() == domain.ContentRichText {
		return Render(c.Document(), width, st)
	}
	return renderText(c.Text(), clampWidth(width))
}

// Render lays out a rich-text document at the given width.
func Render(doc *domain.RichText, width int, st Styles) string {
	if doc == nil {
		return ""
	}
	r := renderer{styles: st}
	return strings.Join(r.blocks(doc.Content, clampWidth(width)), "\n\n")
}

// Paragraph wraps plain text to width and styles every line.
func Paragraph(s string, width int, st lipgloss.Style) string {
	return styleLines(st, renderText(s, clampWidth(width)))
}

func clampWidth(width int) int {
	if width < MinWidth {
		return MinWidth
	}
	return width
}

// renderText wraps plain text, keeping blank-line paragraph breaks.
func renderText(s string, width int) string {
	paras := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n\n")
	out := make([]string, 0, len(paras))
	for _, p := range paras {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, ansi.Wrap(p, width, ""))
		}
	}
	return strings.Join(out, "\n\n")
}

type renderer struct {
	styles Styles
}

func (r renderer) blocks(nodes []*domain.RichText, width int) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if s := r.block(n, width); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (r renderer) block(n *domain.RichText, width int) string {
	switch {
	case n.Type == domain.NodeParagraph:
		return ansi.Wrap(r.inline(n.Content), width, "")
	case n.Type.IsHeading():
		text := ansi.Wrap(n.InlineText(), width, "")
		if domain.HeadingLevel(n.Type) == 1 {
			text = strings.ToUpper(text)
		}
		return styleLines(r.styles.Heading, text)
	case n.Type == domain.NodeUnorderedList:
		return r.list(n, width, false)
	case n.Type == domain.NodeOrderedList:
		return r.list(n, width, true)
	case n.Type == domain.NodeQuote:
		return r.quote(n, width)
	case n.Type == domain.NodeRule:
		return r.styles.Rule.Render(strings.Repeat("─", width))
	case n.Type == domain.NodeText || n.Type == domain.NodeHyperlink:
		return ansi.Wrap(r.inline([]*domain.RichText{n}), width, "")
	default:
		// Unknown containers still show their text.
		return strings.Join(r.blocks(n.Content, width), "\n\n")
	}
}

func (r renderer) list(n *domain.RichText, width int, ordered bool) string {
	items := make([]string, 0, len(n.Content))
	num := 0
	for _, item := range n.Content {
		if item == nil || item.Type != domain.NodeListItem {
			continue
		}
		num++
		marker := "• "
		if ordered {
			marker = strconv.Itoa(num) + ". "
		}
		indent := ansi.StringWidth(marker)
		body := strings.Join(r.blocks(item.Content, width-indent), "\n")
		items = append(items, prefixLines(body, marker, strings.Repeat(" ", indent)))
	}
	return strings.Join(items, "\n")
}

func (r renderer) quote(n *domain.RichText, width int) string {
	bar := r.styles.Quote.Render("│ ")
	body := strings.Join(r.blocks(n.Content, width-2), "\n\n")
	return prefixLines(body, bar, bar)
}

// styleLines styles each line on its own so lipgloss does not pad them
// to a common width.
func styleLines(st lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = st.Render(l)
	}
	return strings.Join(lines, "\n")
}

// prefixLines prefixes the first line with first and the rest with rest.
func prefixLines(s, first, rest string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if i == 0 {
			lines[i] = first + l
			continue
		}
		lines[i] = rest + l
	}
	return strings.Join(lines, "\n")
}

func (r renderer) inline(nodes []*domain.RichText) string {
	var b strings.Builder
	for _, n := range nodes {
		if n == nil {
			continue
		}
		switch n.Type {
		case domain.NodeText:
			b.WriteString(r.marked(n))
		case domain.NodeHyperlink:
			b.WriteString(r.styles.Link.Render(r.inline(n.Content)))
			if n.URI != "" {
				b.WriteString(" (" + n.URI + ")")
			}
		default:
			b.WriteString(r.inline(n.Content))
		}
	}
	return b.String()
}

func (r renderer) marked(n *domain.RichText) string {
	s := n.Value
	if s == "" {
		return ""
	}
	if n.HasMark(domain.MarkCode) {
		s = r.styles.Code.Render(s)
	}
	if n.HasMark(domain.MarkBold) {
		s = r.styles.Bold.Render(s)
	}
	if n.HasMark(domain.MarkItalic) {
		s = r.styles.Italic.Render(s)
	}
	if n.HasMark(domain.MarkUnderline) {
		s = r.styles.Underline.Render(s)
	}
	return s
}
