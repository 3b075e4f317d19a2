package contentful

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/newsroom/internal/core/domain"
)

// assetIndex maps asset IDs to absolute file URLs.
type assetIndex map[string]string

func indexAssets(assets []asset) assetIndex {
	idx := make(assetIndex, len(assets))
	for _, a := range assets {
		if a.Fields.File.URL == "" {
			continue
		}
		idx[a.Sys.ID] = absoluteURL(a.Fields.File.URL)
	}
	return idx
}

// absoluteURL fixes the protocol-relative URLs the API returns for files.
func absoluteURL(u string) string {
	if strings.HasPrefix(u, "//") {
		return "https:" + u
	}
	return u
}

// toArticle maps an entry onto a domain article.
func toArticle(e entry, assets assetIndex) (domain.Article, error) {
	content, err := decodeContent(e.Fields.Content)
	if err != nil {
		return domain.Article{}, fmt.Errorf("entry %s: %w", e.Sys.ID, err)
	}

	a := domain.Article{
		ID:       e.Sys.ID,
		Category: e.Fields.Category,
		Title:    e.Fields.Title,
		Author:   e.Fields.Author,
		Date:     formatDate(e.Fields.Date),
		Summary:  e.Fields.Summary,
		Content:  content,
	}
	if e.Fields.Image != nil {
		a.ImageURL = assets[e.Fields.Image.Sys.ID]
	}
	return a, nil
}

// formatDate shortens ISO timestamps to a calendar date.
// Values that do not parse are passed through.
func formatDate(s string) string {
	if s == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

func decodeContent(raw json.RawMessage) (domain.Content, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return domain.TextContent(""), nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return domain.Content{}, err
		}
		return domain.TextContent(s), nil
	}

	var root richNode
	if err := json.Unmarshal(trimmed, &root); err != nil {
		return domain.Content{}, fmt.Errorf("%w: content field: %v", domain.ErrInvalidInput, err)
	}
	if root.NodeType != string(domain.NodeDocument) {
		return domain.Content{}, fmt.Errorf("%w: content root is %q", domain.ErrInvalidInput, root.NodeType)
	}
	return domain.RichTextContent(toRichText(root)), nil
}

// toRichText converts an API node tree. Node types the terminal cannot
// show (embedded entries and assets, tables) are dropped.
func toRichText(n richNode) *domain.RichText {
	t := domain.NodeType(n.NodeType)
	if !supportedNode(t) {
		return nil
	}

	out := &domain.RichText{
		Type:  t,
		Value: n.Value,
		URI:   n.Data.URI,
	}
	for _, m := range n.Marks {
		out.Marks = append(out.Marks, domain.Mark(m.Type))
	}
	for _, child := range n.Content {
		if c := toRichText(child); c != nil {
			out.Content = append(out.Content, c)
		}
	}
	return out
}

func supportedNode(t domain.NodeType) bool {
	switch t {
	case domain.NodeDocument, domain.NodeParagraph,
		domain.NodeUnorderedList, domain.NodeOrderedList, domain.NodeListItem,
		domain.NodeQuote, domain.NodeRule, domain.NodeHyperlink, domain.NodeText:
		return true
	default:
		return t.IsHeading()
	}
}
