package contentful

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/newsroom/internal/core/domain"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "2024-05-14", want: "2024-05-14"},
		{in: "2024-05-14T09:30", want: "2024-05-14"},
		{in: "2024-05-14T09:30:00+02:00", want: "2024-05-14"},
		{in: "last Tuesday", want: "last Tuesday"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDate(tt.in))
		})
	}
}

func TestAbsoluteURL(t *testing.T) {
	assert.Equal(t, "https://images.ctfassets.net/a.jpg", absoluteURL("//images.ctfassets.net/a.jpg"))
	assert.Equal(t, "http://x/a.jpg", absoluteURL("http://x/a.jpg"))
}

func TestDecodeContent(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		kind    domain.ContentKind
		wantErr bool
	}{
		{name: "missing", raw: "", kind: domain.ContentText},
		{name: "null", raw: "null", kind: domain.ContentText},
		{name: "string", raw: `"plain body"`, kind: domain.ContentText},
		{name: "document", raw: `{"nodeType":"document","content":[]}`, kind: domain.ContentRichText},
		{name: "non-document root", raw: `{"nodeType":"paragraph"}`, wantErr: true},
		{name: "number", raw: `12`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := decodeContent(json.RawMessage(tt.raw))

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, c.Kind())
		})
	}
}

func TestToArticle_MissingAsset(t *testing.T) {
	e := entry{Sys: sys{ID: "e1"}}
	e.Fields.Title = "Title"
	e.Fields.Image = &link{Sys: sys{ID: "gone"}}

	a, err := toArticle(e, indexAssets(nil))

	require.NoError(t, err)
	assert.Empty(t, a.ImageURL)
	assert.Equal(t, "e1", a.ID)
}
