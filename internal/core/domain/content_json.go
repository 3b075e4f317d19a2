package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes plain content as a JSON string and rich text as a document object.
func (c Content) MarshalJSON() ([]byte, error) {
	if c.kind == ContentRichText {
		return json.Marshal(c.doc)
	}
	return json.Marshal(c.text)
}

// UnmarshalJSON accepts either a JSON string or a rich-text document object.
func (c *Content) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*c = TextContent("")
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*c = TextContent(s)
		return nil
	case '{':
		var doc RichText
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return err
		}
		if doc.Type != NodeDocument {
			return fmt.Errorf("%w: rich text root is %q, want %q", ErrInvalidInput, doc.Type, NodeDocument)
		}
		if err := checkNodes(&doc); err != nil {
			return err
		}
		*c = RichTextContent(&doc)
		return nil
	default:
		return fmt.Errorf("%w: content must be a string or a document", ErrInvalidInput)
	}
}

// checkNodes rejects null entries anywhere in a node tree.
func checkNodes(n *RichText) error {
	for i, child := range n.Content {
		if child == nil {
			return fmt.Errorf("%w: rich text %q has a null node at index %d", ErrInvalidInput, n.Type, i)
		}
		if err := checkNodes(child); err != nil {
			return err
		}
	}
	return nil
}
