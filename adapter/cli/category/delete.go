package category

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/catalog/adapter/cli"
	"github.com/felixgeelhaar/catalog/internal/catalog/application/commands"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [id]",
	Aliases: []string{"rm"},
	Short:   "Delete a category",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.DeleteCategoryHandler == nil {
			return cli.ErrNotInitialized
		}

		_, err := cli.RunOperation(cmd, "category.delete", func(ctx context.Context) (struct{}, error) {
			return app.DeleteCategoryHandler.Handle(ctx, commands.DeleteCategoryCommand{ID: args[0]})
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted category %s\n", args[0])
		return nil
	},
}
