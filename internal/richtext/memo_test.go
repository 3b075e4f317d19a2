package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/newsroom/internal/core/domain"
)

func TestMemo_Body(t *testing.T) {
	memo, err := NewMemo(4, PlainStyles())
	require.NoError(t, err)

	a := domain.Article{ID: "a1", Content: domain.TextContent("Hello.")}

	assert.Equal(t, "Hello.", memo.Body(a, 80))
	assert.Equal(t, "Hello.", memo.Body(a, 80))
	assert.Equal(t, 1, memo.Len())

	memo.Body(a, 40)
	assert.Equal(t, 2, memo.Len())
}

func TestMemo_WidthsBelowMinimumShareEntry(t *testing.T) {
	memo, err := NewMemo(4, PlainStyles())
	require.NoError(t, err)
	a := domain.Article{ID: "a1", Content: domain.TextContent("x")}

	memo.Body(a, 5)
	memo.Body(a, 10)

	assert.Equal(t, 1, memo.Len())
}

func TestMemo_Evicts(t *testing.T) {
	memo, err := NewMemo(2, PlainStyles())
	require.NoError(t, err)

	for _, id := range []string{"a", "b", "c"} {
		memo.Body(domain.Article{ID: id, Content: domain.TextContent(id)}, 80)
	}

	assert.Equal(t, 2, memo.Len())
}

func TestNewMemo_DefaultSize(t *testing.T) {
	memo, err := NewMemo(0, PlainStyles())

	require.NoError(t, err)
	assert.NotNil(t, memo)
}
