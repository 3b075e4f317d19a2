package contentful

import (
	"context"
	"fmt"

	"github.com/custodia-labs/newsroom/internal/core/domain"
	"github.com/custodia-labs/newsroom/internal/core/ports/driven"
	"github.com/custodia-labs/newsroom/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.ArticleSource = (*Source)(nil)

// Source is a driven.ArticleSource backed by a Contentful space.
type Source struct {
	client *Client
}

// NewSource creates a source from a client config.
func NewSource(ctx context.Context, cfg Config) (*Source, error) {
	client, err := NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Source{client: client}, nil
}

// Name returns "contentful".
func (s *Source) Name() string {
	return "contentful"
}

// Synchronous returns false; the collection is fetched over the network.
func (s *Source) Synchronous() bool {
	return false
}

// FetchArticles pages through every entry of the configured content type.
func (s *Source) FetchArticles(ctx context.Context) ([]domain.Article, error) {
	articles := []domain.Article{}
	skip := 0

	for {
		page, err := s.client.Entries(ctx, skip)
		if err != nil {
			return nil, err
		}

		assets := indexAssets(page.Includes.Asset)
		for _, e := range page.Items {
			a, err := toArticle(e, assets)
			if err != nil {
				return nil, err
			}
			articles = append(articles, a)
		}

		skip += len(page.Items)
		logger.Debug("contentful: fetched %d of %d entries", skip, page.Total)

		if len(page.Items) == 0 || skip >= page.Total {
			break
		}
	}

	if len(articles) == 0 {
		logger.Info("contentful: no entries of type %q", s.client.cfg.ContentType)
	}
	if err := checkIDs(articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func checkIDs(articles []domain.Article) error {
	seen := make(map[string]struct{}, len(articles))
	for _, a := range articles {
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("%w: duplicate entry id %q", domain.ErrInvalidInput, a.ID)
		}
		seen[a.ID] = struct{}{}
	}
	return nil
}
