// Package cli provides the newsroom command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/newsroom/internal/core/domain"
	"github.com/custodia-labs/newsroom/internal/core/ports/driving"
	"github.com/custodia-labs/newsroom/internal/logger"
)

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

// Options holds the global flag values.
type Options struct {
	// ConfigDir overrides the configuration directory (default ~/.newsroom).
	ConfigDir string

	// Verbose enables debug logging.
	Verbose bool

	// Source overrides the configured source strategy.
	Source string

	// Dataset overrides the static dataset path.
	Dataset string
}

// ArticleFactory builds the article service on first use.
// Commands that never read articles do not need source credentials.
type ArticleFactory func(ctx context.Context) (driving.ArticleService, error)

// NavigatorFactory builds a navigator starting on the given view.
type NavigatorFactory func(initial domain.ViewState) driving.Navigator

// Services are the core services the commands drive.
type Services struct {
	Settings     driving.SettingsService
	Articles     ArticleFactory
	NewNavigator NavigatorFactory
}

// Bootstrap builds the services from the global options.
type Bootstrap func(opts Options) (*Services, error)

var (
	opts Options

	bootstrap        Bootstrap
	settingsService  driving.SettingsService
	articleFactory   ArticleFactory
	navigatorFactory NavigatorFactory
)

var errArticlesNotConfigured = errors.New("article service not configured")

var rootCmd = &cobra.Command{
	Use:   "newsroom",
	Short: "Read the news from your terminal",
	Long: `Newsroom is a terminal news reader.

Articles come either from a bundled dataset or from a Contentful space.
Run "newsroom tui" for the interactive reader, or use the articles and
categories commands to script against the same collection.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.ConfigDir, "config", "", "configuration directory (default ~/.newsroom)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&opts.Source, "source", "", "article source: static or contentful")
	flags.StringVar(&opts.Dataset, "dataset", "", "JSON dataset for the static source")
}

// SetBootstrap sets the hook that builds services before any command runs.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetSettingsService sets the settings service.
func SetSettingsService(svc driving.SettingsService) {
	settingsService = svc
}

// SetArticleService sets an already built article service.
func SetArticleService(svc driving.ArticleService) {
	if svc == nil {
		articleFactory = nil
		return
	}
	articleFactory = func(context.Context) (driving.ArticleService, error) {
		return svc, nil
	}
}

// SetArticleFactory sets the lazy article service constructor.
func SetArticleFactory(f ArticleFactory) {
	articleFactory = f
}

// SetNavigatorFactory sets the navigator constructor used by the TUI.
func SetNavigatorFactory(f NavigatorFactory) {
	navigatorFactory = f
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(opts.Verbose)

	if opts.Source != "" && !domain.SourceStrategy(opts.Source).IsValid() {
		return fmt.Errorf("%w: source %q (want static or contentful)", domain.ErrUnsupportedType, opts.Source)
	}

	if bootstrap == nil {
		return nil
	}

	svcs, err := bootstrap(opts)
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	if svcs.Settings != nil {
		settingsService = svcs.Settings
	}
	if svcs.Articles != nil {
		articleFactory = svcs.Articles
	}
	if svcs.NewNavigator != nil {
		navigatorFactory = svcs.NewNavigator
	}
	return nil
}

// loadArticles builds the article service and waits for the collection.
func loadArticles(ctx context.Context) (driving.ArticleService, error) {
	if articleFactory == nil {
		return nil, errArticlesNotConfigured
	}

	svc, err := articleFactory(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := svc.Load(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", domain.FetchFailedMessage, err)
	}
	return svc, nil
}
