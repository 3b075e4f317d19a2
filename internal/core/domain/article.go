package domain

import "strings"

// Article represents a single news item.
// Articles are immutable once loaded; the collection is replaced as a whole.
type Article struct {
	// ID is the unique identifier for the article.
	ID string `json:"id"`

	// Category is the section the article belongs to (e.g. "Sports").
	Category string `json:"category"`

	// Title is the headline.
	Title string `json:"title"`

	// Author is the byline. Optional.
	Author string `json:"author,omitempty"`

	// Date is the publication date as supplied by the source. Optional.
	Date string `json:"date,omitempty"`

	// Summary is the short standfirst shown in listings.
	Summary string `json:"summary"`

	// Content is the article body.
	Content Content `json:"content"`

	// ImageURL references the lead image. Optional.
	ImageURL string `json:"imageUrl,omitempty"`
}

// Byline returns the author and date joined for display.
func (a Article) Byline() string {
	parts := make([]string, 0, 2)
	if a.Author != "" {
		parts = append(parts, "By "+a.Author)
	}
	if a.Date != "" {
		parts = append(parts, a.Date)
	}
	return strings.Join(parts, " · ")
}

// ContentKind identifies which form an article body takes.
type ContentKind int

const (
	// ContentText is a plain string body.
	ContentText ContentKind = iota
	// ContentRichText is a structured rich-text document.
	ContentRichText
)

// String returns the string representation of the content kind.
func (k ContentKind) String() string {
	switch k {
	case ContentText:
		return "text"
	case ContentRichText:
		return "rich_text"
	default:
		return "unknown"
	}
}

// Content is an article body: either plain text or a rich-text document.
// The zero value is empty plain text.
type Content struct {
	kind ContentKind
	text string
	doc  *RichText
}

// TextContent wraps a plain string body.
func TextContent(s string) Content {
	return Content{kind: ContentText, text: s}
}

// RichTextContent wraps a rich-text document body.
// A nil document yields empty plain text.
func RichTextContent(doc *RichText) Content {
	if doc == nil {
		return Content{kind: ContentText}
	}
	return Content{kind: ContentRichText, doc: doc}
}

// Kind returns which form the body takes.
func (c Content) Kind() ContentKind {
	return c.kind
}

// Text returns the plain body. Empty for rich-text content.
func (c Content) Text() string {
	return c.text
}

// Document returns the rich-text body, or nil for plain content.
func (c Content) Document() *RichText {
	return c.doc
}

// IsEmpty reports whether the body carries no text at all.
func (c Content) IsEmpty() bool {
	return strings.TrimSpace(c.PlainText()) == ""
}

// PlainText flattens the body to text, one block per paragraph.
func (c Content) PlainText() string {
	if c.kind == ContentRichText {
		return c.doc.PlainText()
	}
	return c.text
}
