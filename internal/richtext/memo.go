package richtext

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/custodia-labs/newsroom/internal/core/domain"
)

// DefaultMemoSize bounds the number of laid-out bodies kept.
const DefaultMemoSize = 64

type memoKey struct {
	id    string
	width int
}

// Memo caches laid-out article bodies by article ID and width.
// Articles do not change within a session, so entries never go stale.
type Memo struct {
	cache  *lru.Cache[memoKey, string]
	styles Styles
}

// NewMemo creates a memo holding up to size layouts.
func NewMemo(size int, st Styles) (*Memo, error) {
	if size <= 0 {
		size = DefaultMemoSize
	}
	cache, err := lru.New[memoKey, string](size)
	if err != nil {
		return nil, err
	}
	return &Memo{cache: cache, styles: st}, nil
}

// Body returns the article body laid out at width.
func (m *Memo) Body(a domain.Article, width int) string {
	key := memoKey{id: a.ID, width: clampWidth(width)}
	if s, ok := m.cache.Get(key); ok {
		return s
	}
	s := RenderContent(a.Content, key.width, m.styles)
	m.cache.Add(key, s)
	return s
}

// Len returns the number of cached layouts.
func (m *Memo) Len() int {
	return m.cache.Len()
}
