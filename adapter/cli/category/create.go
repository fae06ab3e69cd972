package category

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/catalog/adapter/cli"
	"github.com/felixgeelhaar/catalog/internal/catalog/application/commands"
	"github.com/felixgeelhaar/catalog/internal/catalog/application/dto"
)

var (
	createDescription string
	createInactive    bool
)

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new category",
	Long: `Create a new category. Categories are active unless --inactive is given.

Examples:
  catalog category create "Movie"
  catalog category create "Documentary" --description "Non-fiction films"
  catalog category create "Archive" --inactive`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CreateCategoryHandler == nil {
			return cli.ErrNotInitialized
		}

		createCommand := commands.CreateCategoryCommand{Name: args[0]}
		if cmd.Flags().Changed("description") {
			description := createDescription
			createCommand.Description = &description
		}
		if createInactive {
			active := false
			createCommand.IsActive = &active
		}

		output, err := cli.RunOperation(cmd, "category.create", func(ctx context.Context) (dto.CategoryOutput, error) {
			return app.CreateCategoryHandler.Handle(ctx, createCommand)
		})
		if err != nil {
			return err
		}
		return cli.PrintJSON(cmd, output)
	},
}

func init() {
	createCmd.Flags().StringVarP(&createDescription, "description", "d", "", "category description")
	createCmd.Flags().BoolVar(&createInactive, "inactive", false, "create the category deactivated")
}
