package category

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/catalog/adapter/cli"
	"github.com/felixgeelhaar/catalog/internal/catalog/application/dto"
	"github.com/felixgeelhaar/catalog/internal/catalog/application/queries"
)

var getCmd = &cobra.Command{
	Use:     "get [id]",
	Aliases: []string{"show"},
	Short:   "Show a category",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.GetCategoryHandler == nil {
			return cli.ErrNotInitialized
		}

		output, err := cli.RunOperation(cmd, "category.get", func(ctx context.Context) (dto.CategoryOutput, error) {
			return app.GetCategoryHandler.Handle(ctx, queries.GetCategoryQuery{ID: args[0]})
		})
		if err != nil {
			return err
		}
		return cli.PrintJSON(cmd, output)
	},
}
