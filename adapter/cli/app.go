package cli

import (
	"github.com/felixgeelhaar/catalog/internal/catalog/application/commands"
	"github.com/felixgeelhaar/catalog/internal/catalog/application/queries"
	"github.com/felixgeelhaar/catalog/pkg/observability"
)

// App holds the CLI application dependencies.
type App struct {
	// Category Command Handlers
	CreateCategoryHandler *commands.CreateCategoryHandler
	UpdateCategoryHandler *commands.UpdateCategoryHandler
	DeleteCategoryHandler *commands.DeleteCategoryHandler

	// Category Query Handlers
	GetCategoryHandler    *queries.GetCategoryHandler
	ListCategoriesHandler *queries.ListCategoriesHandler

	// Observability
	Metrics *observability.InMemoryMetrics
	Health  *observability.HealthRegistry
}

// NewApp creates a new CLI application with the provided handlers.
func NewApp(
	createCategoryHandler *commands.CreateCategoryHandler,
	updateCategoryHandler *commands.UpdateCategoryHandler,
	deleteCategoryHandler *commands.DeleteCategoryHandler,
	getCategoryHandler *queries.GetCategoryHandler,
	listCategoriesHandler *queries.ListCategoriesHandler,
) *App {
	return &App{
		CreateCategoryHandler: createCategoryHandler,
		UpdateCategoryHandler: updateCategoryHandler,
		DeleteCategoryHandler: deleteCategoryHandler,
		GetCategoryHandler:    getCategoryHandler,
		ListCategoriesHandler: listCategoriesHandler,
	}
}

// SetMetrics updates the metrics sink.
func (a *App) SetMetrics(metrics *observability.InMemoryMetrics) {
	a.Metrics = metrics
}

// SetHealth updates the health registry.
func (a *App) SetHealth(health *observability.HealthRegistry) {
	a.Health = health
}

// app is the global CLI application instance
var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
