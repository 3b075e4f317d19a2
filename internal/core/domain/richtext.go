package domain

import "strings"

// NodeType is the type of a rich-text node.
// Values follow the Contentful rich-text schema.
type NodeType string

// Block, inline and text node types.
const (
	NodeDocument      NodeType = "document"
	NodeParagraph     NodeType = "paragraph"
	NodeHeading1      NodeType = "heading-1"
	NodeHeading2      NodeType = "heading-2"
	NodeHeading3      NodeType = "heading-3"
	NodeHeading4      NodeType = "heading-4"
	NodeHeading5      NodeType = "heading-5"
	NodeHeading6      NodeType = "heading-6"
	NodeUnorderedList NodeType = "unordered-list"
	NodeOrderedList   NodeType = "ordered-list"
	NodeListItem      NodeType = "list-item"
	NodeQuote         NodeType = "blockquote"
	NodeRule          NodeType = "hr"
	NodeHyperlink     NodeType = "hyperlink"
	NodeText          NodeType = "text"
)

// IsHeading returns true for heading-1 through heading-6.
func (t NodeType) IsHeading() bool {
	return HeadingLevel(t) > 0
}

// HeadingLevel returns 1-6 for heading nodes and 0 otherwise.
func HeadingLevel(t NodeType) int {
	if !strings.HasPrefix(string(t), "heading-") || len(t) != len("heading-1") {
		return 0
	}
	level := int(t[len(t)-1] - '0')
	if level < 1 || level > 6 {
		return 0
	}
	return level
}

// Mark is a text decoration.
type Mark string

// Supported marks.
const (
	MarkBold      Mark = "bold"
	MarkItalic    Mark = "italic"
	MarkUnderline Mark = "underline"
	MarkCode      Mark = "code"
)

// RichText is a node in a structured rich-text document.
// The root node has type NodeDocument.
type RichText struct {
	// Type is the node type.
	Type NodeType `json:"nodeType"`

	// Value holds the text of a NodeText node.
	Value string `json:"value,omitempty"`

	// Marks decorate a NodeText node.
	Marks []Mark `json:"marks,omitempty"`

	// URI is the target of a NodeHyperlink node.
	URI string `json:"uri,omitempty"`

	// Content holds child nodes.
	Content []*RichText `json:"content,omitempty"`
}

// HasMark reports whether the node carries the given mark.
func (n *RichText) HasMark(m Mark) bool {
	if n == nil {
		return false
	}
	for _, mark := range n.Marks {
		if mark == m {
			return true
		}
	}
	return false
}

// InlineText concatenates the text of all descendant text nodes.
func (n *RichText) InlineText() string {
	if n == nil {
		return ""
	}
	if n.Type == NodeText {
		return n.Value
	}
	var b strings.Builder
	for _, child := range n.Content {
		b.WriteString(child.InlineText())
	}
	return b.String()
}

// PlainText flattens the document, separating blocks with blank lines.
func (n *RichText) PlainText() string {
	if n == nil {
		return ""
	}
	blocks := make([]string, 0, len(n.Content))
	for _, child := range n.Content {
		if child == nil {
			continue
		}
		switch child.Type {
		case NodeUnorderedList, NodeOrderedList:
			for _, item := range child.Content {
				if item == nil {
					continue
				}
				blocks = append(blocks, "- "+strings.TrimSpace(item.InlineText()))
			}
		case NodeRule:
			continue
		default:
			if text := strings.TrimSpace(child.InlineText()); text != "" {
				blocks = append(blocks, text)
			}
		}
	}
	return strings.Join(blocks, "\n\n")
}
