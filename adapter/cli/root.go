package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	sharedDomain "github.com/felixgeelhaar/catalog/internal/shared/domain"
	"github.com/felixgeelhaar/catalog/pkg/observability"
)

var (
	showMetrics bool
	logger      *slog.Logger
)

type commandContext struct {
	correlationID string
	startedAt     time.Time
}

type commandContextKey struct{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Catalog - category management",
	Long: `Catalog manages product categories stored in SQLite, PostgreSQL
or process memory, with filtered, sorted and paginated listing.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		info := commandContext{
			correlationID: uuid.NewString(),
			startedAt:     time.Now(),
		}
		ctx := observability.WithCorrelationID(cmd.Context(), info.correlationID)
		ctx = context.WithValue(ctx, commandContextKey{}, info)
		cmd.SetContext(ctx)
		getLogger().DebugContext(ctx, "command start", "command", cmd.CommandPath())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		info, ok := ctx.Value(commandContextKey{}).(commandContext)
		if !ok {
			return
		}
		getLogger().DebugContext(ctx, "command end",
			"command", cmd.CommandPath(),
			observability.DurationKey, time.Since(info.startedAt).Milliseconds(),
		)
		if showMetrics {
			printMetrics(cmd)
		}
	},
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&showMetrics, "metrics", false, "print operation metrics after the command")
}

// AddCommand adds a command to the root command.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// SetLogger sets the CLI logger.
func SetLogger(l *slog.Logger) {
	logger = l
}

func getLogger() *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// FormatError renders err for the terminal. Validation failures list every
// message of every invalid field.
func FormatError(err error) string {
	var validationErr *sharedDomain.EntityValidationError
	if !errors.As(err, &validationErr) {
		return "Error: " + err.Error()
	}

	var b strings.Builder
	b.WriteString("Error: " + sharedDomain.ErrEntityValidation.Error())
	for _, field := range validationErr.Report.Fields() {
		for _, message := range validationErr.Report[field] {
			fmt.Fprintf(&b, "\n  %s: %s", field, message)
		}
	}
	return b.String()
}

func printMetrics(cmd *cobra.Command) {
	app := GetApp()
	if app == nil || app.Metrics == nil {
		return
	}
	counters := app.Metrics.Counters()
	keys := make([]string, 0, len(counters))
	for key := range counters {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %d\n", key, counters[key])
	}
}
