package category

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/catalog/adapter/cli"
	"github.com/felixgeelhaar/catalog/internal/catalog/application/queries"
)

var (
	listPage    string
	listPerPage string
	listSort    string
	listSortDir string
	listFilter  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Long: `List categories with optional filtering, sorting and pagination.

The filter matches names containing the text, ignoring case. Sortable
fields are name and created_at; without a sortable field the newest
categories come first. Invalid page values fall back to page 1 with 15
categories per page.

Examples:
  catalog category list
  catalog category list --filter movie
  catalog category list --sort name --sort-dir desc
  catalog category list --page 2 --per-page 5`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListCategoriesHandler == nil {
			return cli.ErrNotInitialized
		}

		query := queries.ListCategoriesQuery{
			Sort:    listSort,
			SortDir: listSortDir,
		}
		if listPage != "" {
			query.Page = listPage
		}
		if listPerPage != "" {
			query.PerPage = listPerPage
		}
		if cmd.Flags().Changed("filter") {
			filter := listFilter
			query.Filter = &filter
		}

		output, err := cli.RunOperation(cmd, "category.list", func(ctx context.Context) (queries.ListCategoriesOutput, error) {
			return app.ListCategoriesHandler.Handle(ctx, query)
		})
		if err != nil {
			return err
		}
		return cli.PrintJSON(cmd, output)
	},
}

func init() {
	listCmd.Flags().StringVar(&listPage, "page", "", "page number (default 1)")
	listCmd.Flags().StringVar(&listPerPage, "per-page", "", "categories per page (default 15)")
	listCmd.Flags().StringVar(&listSort, "sort", "", "sort field (name, created_at)")
	listCmd.Flags().StringVar(&listSortDir, "sort-dir", "", "sort direction (asc, desc)")
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "case-insensitive name filter")
}
