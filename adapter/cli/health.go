package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/catalog/pkg/observability"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check database and event transport health",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.Health == nil {
			return ErrNotInitialized
		}

		health := app.Health.Check(cmd.Context())
		if err := PrintJSON(cmd, health); err != nil {
			return err
		}
		if health.Status == observability.HealthStatusUnhealthy {
			return fmt.Errorf("service is %s", health.Status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
