package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesJSON bool

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the news categories",
	Long: `List the categories in header order.

Categories pinned with "newsroom config set ui.categories" come first,
followed by the rest in order of first appearance.`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func init() {
	categoriesCmd.Flags().BoolVar(&categoriesJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	svc, err := loadArticles(ctx)
	if err != nil {
		return err
	}

	categories, err := svc.Categories(ctx)
	if err != nil {
		return fmt.Errorf("listing categories: %w", err)
	}
	if categoriesJSON {
		if categories == nil {
			categories = []string{}
		}
		return writeJSON(cmd.OutOrStdout(), categories)
	}

	out := cmd.OutOrStdout()
	if len(categories) == 0 {
		fmt.Fprintln(out, "No categories found.")
		return nil
	}
	for i, c := range categories {
		fmt.Fprintf(out, "  [%d] %s\n", i+1, c)
	}
	return nil
}
