package category

import (
	"github.com/spf13/cobra"
)

// Cmd is the category command group
var Cmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"categories"},
	Short:   "Manage categories",
	Long:    `Create, show, update, delete and list catalog categories.`,
}

func init() {
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(getCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(listCmd)
}
