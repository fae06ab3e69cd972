package cli

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/catalog/pkg/observability"
)

// ErrNotInitialized is returned when a command runs without a wired App.
var ErrNotInitialized = errors.New("application not initialized - database connection required")

// PrintJSON writes v as indented JSON to the command's output.
func PrintJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// RunOperation runs fn as a timed operation, recording its outcome in the
// app metrics and the CLI log.
func RunOperation[T any](cmd *cobra.Command, operation string, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var metrics observability.Metrics = observability.NoopMetrics{}
	if a := GetApp(); a != nil && a.Metrics != nil {
		metrics = a.Metrics
	}
	return observability.TimeOperationResult(ctx, getLogger(), metrics, operation, fn)
}
