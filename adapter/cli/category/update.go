package category

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/catalog/adapter/cli"
	"github.com/felixgeelhaar/catalog/internal/catalog/application/commands"
	"github.com/felixgeelhaar/catalog/internal/catalog/application/dto"
)

var (
	updateName             string
	updateDescription      string
	updateClearDescription bool
	updateActive           bool
)

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a category",
	Long: `Update the given fields of a category. Fields without a flag keep
their current value.

Examples:
  catalog category update <id> --name "Films"
  catalog category update <id> --description "Feature films"
  catalog category update <id> --clear-description
  catalog category update <id> --active=false`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.UpdateCategoryHandler == nil {
			return cli.ErrNotInitialized
		}

		flags := cmd.Flags()
		if flags.Changed("description") && updateClearDescription {
			return errors.New("--description and --clear-description are mutually exclusive")
		}

		updateCommand := commands.UpdateCategoryCommand{
			ID:               args[0],
			ClearDescription: updateClearDescription,
		}
		if flags.Changed("name") {
			name := updateName
			updateCommand.Name = &name
		}
		if flags.Changed("description") {
			description := updateDescription
			updateCommand.Description = &description
		}
		if flags.Changed("active") {
			active := updateActive
			updateCommand.IsActive = &active
		}

		output, err := cli.RunOperation(cmd, "category.update", func(ctx context.Context) (dto.CategoryOutput, error) {
			return app.UpdateCategoryHandler.Handle(ctx, updateCommand)
		})
		if err != nil {
			return err
		}
		return cli.PrintJSON(cmd, output)
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateName, "name", "n", "", "new category name")
	updateCmd.Flags().StringVarP(&updateDescription, "description", "d", "", "new category description")
	updateCmd.Flags().BoolVar(&updateClearDescription, "clear-description", false, "remove the description")
	updateCmd.Flags().BoolVar(&updateActive, "active", true, "activate or deactivate the category")
}
