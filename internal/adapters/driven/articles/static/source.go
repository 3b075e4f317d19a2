package static

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/custodia-labs/newsroom/internal/core/domain"
	"github.com/custodia-labs/newsroom/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.ArticleSource = (*Source)(nil)

//go:embed data/articles.json
var embeddedDataset []byte

// idNamespace seeds the name-based IDs given to rows without an id.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("newsroom:articles"))

// Source serves a fixed article collection.
type Source struct {
	path string
}

// New returns a source for the dataset at path.
// An empty path selects the bundled dataset.
func New(path string) *Source {
	return &Source{path: path}
}

// Name returns "static".
func (s *Source) Name() string {
	return "static"
}

// Synchronous returns true; the dataset is local.
func (s *Source) Synchronous() bool {
	return true
}

// FetchArticles decodes and returns the dataset.
func (s *Source) FetchArticles(ctx context.Context) ([]domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := embeddedDataset
	if s.path != "" {
		raw, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("read dataset: %w", err)
		}
		data = raw
	}

	return Decode(data)
}

// Decode parses a JSON dataset. Rows without an id get a stable ID derived
// from the title. Duplicate ids and rows with neither id nor title are
// rejected with domain.ErrInvalidInput.
func Decode(data []byte) ([]domain.Article, error) {
	var articles []domain.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("%w: decode dataset: %v", domain.ErrInvalidInput, err)
	}
	if articles == nil {
		articles = []domain.Article{}
	}

	seen := make(map[string]int, len(articles))
	for i := range articles {
		a := &articles[i]
		if a.ID == "" {
			if a.Title == "" {
				return nil, fmt.Errorf("%w: row %d has neither id nor title", domain.ErrInvalidInput, i)
			}
			a.ID = DeriveID(a.Title)
		}
		if prev, dup := seen[a.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q at rows %d and %d", domain.ErrInvalidInput, a.ID, prev, i)
		}
		seen[a.ID] = i
	}

	return articles, nil
}

// DeriveID returns the UUIDv5 used for a row that has no id.
func DeriveID(title string) string {
	return uuid.NewSHA1(idNamespace, []byte(title)).String()
}
