package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/newsroom/internal/core/domain"
	"github.com/custodia-labs/newsroom/internal/richtext"
)

// defaultWidth is used when stdout is not a terminal.
const defaultWidth = 80

var (
	articlesCategory string
	articlesJSON     bool
)

var articlesCmd = &cobra.Command{
	Use:   "articles",
	Short: "List and read articles",
	Long:  `Commands for listing and reading articles without starting the TUI.`,
}

var articlesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List articles",
	Long: `List every article, or only those in one category.

The category must match exactly, including case.`,
	Args: cobra.NoArgs,
	RunE: runArticlesList,
}

var articlesShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print an article",
	Args:  cobra.ExactArgs(1),
	RunE:  runArticlesShow,
}

func init() {
	articlesListCmd.Flags().StringVarP(&articlesCategory, "category", "c", "", "only list this category")
	articlesListCmd.Flags().BoolVar(&articlesJSON, "json", false, "output as JSON")
	articlesShowCmd.Flags().BoolVar(&articlesJSON, "json", false, "output as JSON")
	articlesCmd.AddCommand(articlesListCmd)
	articlesCmd.AddCommand(articlesShowCmd)
	rootCmd.AddCommand(articlesCmd)
}

func runArticlesList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	svc, err := loadArticles(ctx)
	if err != nil {
		return err
	}

	var articles []domain.Article
	if articlesCategory != "" {
		articles, err = svc.ByCategory(ctx, articlesCategory)
	} else {
		articles, err = svc.List(ctx)
	}
	if err != nil {
		return fmt.Errorf("listing articles: %w", err)
	}

	if articlesJSON {
		return writeJSON(cmd.OutOrStdout(), articles)
	}

	out := cmd.OutOrStdout()
	if len(articles) == 0 {
		if articlesCategory != "" {
			fmt.Fprintf(out, "No articles found in %s.\n", articlesCategory)
		} else {
			fmt.Fprintln(out, "No articles found.")
		}
		return nil
	}

	for i := range articles {
		a := &articles[i]
		fmt.Fprintf(out, "  [%s] %s\n", a.ID, a.Title)
		fmt.Fprintf(out, "      %s", a.Category)
		if byline := a.Byline(); byline != "" {
			fmt.Fprintf(out, " · %s", byline)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "\n%d articles\n", len(articles))
	return nil
}

func runArticlesShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc, err := loadArticles(ctx)
	if err != nil {
		return err
	}

	a, err := svc.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("article %q: %w", args[0], err)
	}

	if articlesJSON {
		return writeJSON(cmd.OutOrStdout(), a)
	}

	width := terminalWidth()
	plain := lipgloss.NewStyle()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, a.Category)
	fmt.Fprintln(out, richtext.Paragraph(a.Title, width, plain))
	if byline := a.Byline(); byline != "" {
		fmt.Fprintln(out, byline)
	}
	fmt.Fprintln(out)
	if a.Summary != "" {
		fmt.Fprintln(out, richtext.Paragraph(a.Summary, width, plain))
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, richtext.RenderContent(a.Content, width, richtext.PlainStyles()))
	return nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// terminalWidth returns the width of stdout, or defaultWidth when it is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
