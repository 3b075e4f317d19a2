package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/newsroom/internal/core/domain"
)

var errSettingsNotConfigured = errors.New("settings service not configured")

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change the newsroom configuration file.

Environment variables (NEWSROOM_SOURCE, CONTENTFUL_SPACE_ID, ...) override
the file, and the --source and --dataset flags override both.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

List values such as ui.categories are given comma-separated:
  newsroom config set ui.categories "World,Politics,Sports"`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	applyFlagOverrides(settings)

	out := cmd.OutOrStdout()
	printSettings(out, settings)

	if err := settings.Validate(); err != nil {
		fmt.Fprintf(out, "\nWarning: %v\n", err)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w\nKnown keys: %s",
			key, err, strings.Join(settingsService.Keys(), ", "))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s updated\n", key)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}
	fmt.Fprintln(cmd.OutOrStdout(), settingsService.Path())
	return nil
}

// applyFlagOverrides applies --source and --dataset on top of file and environment values.
func applyFlagOverrides(s *domain.AppSettings) {
	if opts.Source != "" {
		s.Source.Strategy = domain.SourceStrategy(opts.Source)
	}
	if opts.Dataset != "" {
		s.Source.DatasetPath = opts.Dataset
	}
}

func printSettings(w io.Writer, s *domain.AppSettings) {
	fmt.Fprintln(w, "Source")
	fmt.Fprintf(w, "  Strategy:     %s (%s)\n", s.Source.Strategy, s.Source.Strategy.Description())
	if s.Source.Strategy == domain.SourceStatic {
		dataset := s.Source.DatasetPath
		if dataset == "" {
			dataset = "(bundled)"
		}
		fmt.Fprintf(w, "  Dataset:      %s\n", dataset)
	}

	fmt.Fprintln(w, "\nContentful")
	fmt.Fprintf(w, "  Space:        %s\n", orNotSet(s.Contentful.SpaceID))
	fmt.Fprintf(w, "  Environment:  %s\n", s.Contentful.Environment)
	fmt.Fprintf(w, "  Access token: %s\n", maskToken(s.Contentful.AccessToken))
	fmt.Fprintf(w, "  Content type: %s\n", s.Contentful.ContentType)
	fmt.Fprintf(w, "  Host:         %s\n", s.Contentful.Host)
	if s.Contentful.Locale != "" {
		fmt.Fprintf(w, "  Locale:       %s\n", s.Contentful.Locale)
	}

	fmt.Fprintln(w, "\nDisplay")
	fmt.Fprintf(w, "  Site name:    %s\n", s.UI.SiteName)
	categories := "(order of appearance)"
	if len(s.UI.Categories) > 0 {
		categories = strings.Join(s.UI.Categories, ", ")
	}
	fmt.Fprintf(w, "  Categories:   %s\n", categories)
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

// maskToken shows only the ends of a secret.
func maskToken(token string) string {
	if token == "" {
		return "(not set)"
	}
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
