// Command newsroom is a terminal news reader.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/newsroom/internal/adapters/driven/articles/contentful"
	"github.com/custodia-labs/newsroom/internal/adapters/driven/articles/static"
	"github.com/custodia-labs/newsroom/internal/adapters/driven/config/file"
	"github.com/custodia-labs/newsroom/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/newsroom/internal/adapters/driving/cli"
	"github.com/custodia-labs/newsroom/internal/core/domain"
	"github.com/custodia-labs/newsroom/internal/core/ports/driven"
	"github.com/custodia-labs/newsroom/internal/core/ports/driving"
	"github.com/custodia-labs/newsroom/internal/core/services"
	"github.com/custodia-labs/newsroom/internal/logger"
)

func main() {
	// A missing .env is normal.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("reading .env: %v", err)
	}

	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap wires the driven adapters into the core services.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	return &cli.Services{
		Settings: settingsService,
		Articles: func(ctx context.Context) (driving.ArticleService, error) {
			settings, err := settingsService.Get()
			if err != nil {
				return nil, fmt.Errorf("loading settings: %w", err)
			}
			applyOverrides(settings, opts)
			return newArticleService(ctx, settings)
		},
		NewNavigator: func(initial domain.ViewState) driving.Navigator {
			return services.NewNavigator(initial)
		},
	}, nil
}

// applyOverrides gives command line flags precedence over file and environment.
func applyOverrides(s *domain.AppSettings, opts cli.Options) {
	if opts.Source != "" {
		s.Source.Strategy = domain.SourceStrategy(opts.Source)
	}
	if opts.Dataset != "" {
		s.Source.DatasetPath = opts.Dataset
	}
}

// newArticleService builds the source for the configured strategy and
// starts the loader. Synchronous sources are ready when this returns.
func newArticleService(ctx context.Context, s *domain.AppSettings) (*services.ArticleService, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	source, err := newSource(ctx, s)
	if err != nil {
		return nil, err
	}

	logger.Section("Articles")
	logger.Debug("source: %s (%s)", s.Source.Strategy, s.Source.Strategy.Description())

	store := memory.NewArticleStore()
	loader := services.NewLoader(source, store)
	loader.Start(ctx)

	return services.NewArticleService(loader, store, s.UI.Categories), nil
}

func newSource(ctx context.Context, s *domain.AppSettings) (driven.ArticleSource, error) {
	switch s.Source.Strategy {
	case domain.SourceStatic:
		return static.New(s.Source.DatasetPath), nil
	case domain.SourceContentful:
		return contentful.NewSource(ctx, contentful.ConfigFromSettings(s.Contentful))
	default:
		return nil, fmt.Errorf("%w: source strategy %q", domain.ErrUnsupportedType, s.Source.Strategy)
	}
}
