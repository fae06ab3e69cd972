package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/catalog/adapter/cli"
	"github.com/felixgeelhaar/catalog/adapter/cli/category"
	"github.com/felixgeelhaar/catalog/internal/app"
	"github.com/felixgeelhaar/catalog/pkg/config"
	"github.com/felixgeelhaar/catalog/pkg/observability"
)

func main() {
	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{AppEnv: "development", DatabaseDriver: "auto", EventsEnabled: true}
	}

	logConfig := observability.LogConfigFor(cfg.AppEnv, cfg.LogLevel, cfg.LogFormat)
	logConfig.ServiceVersion = cli.Version
	logger := observability.NewLogger(logConfig)
	if err != nil {
		logger.Warn("failed to load config, using development mode", "error", err)
	}
	cli.SetLogger(logger)

	var cliApp *cli.App
	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		if !cfg.IsDevelopment() {
			logger.Error("failed to initialize container", "error", err)
			os.Exit(1)
		}
		// In development the CLI still starts so version and help work.
		logger.Warn("failed to initialize container, running in limited mode", "error", err)
	} else {
		cliApp = cli.NewApp(
			container.CreateCategoryHandler,
			container.UpdateCategoryHandler,
			container.DeleteCategoryHandler,
			container.GetCategoryHandler,
			container.ListCategoriesHandler,
		)
		cliApp.SetMetrics(container.Metrics)
		cliApp.SetHealth(container.Health)
	}

	cli.SetApp(cliApp)
	cli.AddCommand(category.Cmd)
	err = cli.ExecuteContext(ctx)
	if container != nil {
		_ = container.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}
