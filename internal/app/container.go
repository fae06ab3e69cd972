package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/catalog/internal/catalog/application/commands"
	"github.com/felixgeelhaar/catalog/internal/catalog/application/queries"
	catalogDomain "github.com/felixgeelhaar/catalog/internal/catalog/domain"
	catalogPersistence "github.com/felixgeelhaar/catalog/internal/catalog/infrastructure/persistence"
	sharedApplication "github.com/felixgeelhaar/catalog/internal/shared/application"
	"github.com/felixgeelhaar/catalog/internal/shared/infrastructure/database"
	_ "github.com/felixgeelhaar/catalog/internal/shared/infrastructure/database/postgres" // Register PostgreSQL driver
	_ "github.com/felixgeelhaar/catalog/internal/shared/infrastructure/database/sqlite"   // Register SQLite driver
	"github.com/felixgeelhaar/catalog/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/catalog/internal/shared/infrastructure/inmemory"
	"github.com/felixgeelhaar/catalog/internal/shared/infrastructure/migrations"
	"github.com/felixgeelhaar/catalog/pkg/config"
	"github.com/felixgeelhaar/catalog/pkg/observability"
)

// DriverMemory selects the process-local store instead of a SQL database.
const DriverMemory = "memory"

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Database (nil for the in-memory backend)
	DBConn database.Connection

	// Storage
	CategoryRepo catalogDomain.Repository
	UnitOfWork   sharedApplication.UnitOfWork

	// Publishers
	EventPublisher eventbus.Publisher

	// Observability
	Metrics *observability.InMemoryMetrics
	Health  *observability.HealthRegistry

	// Category Command Handlers
	CreateCategoryHandler *commands.CreateCategoryHandler
	UpdateCategoryHandler *commands.UpdateCategoryHandler
	DeleteCategoryHandler *commands.DeleteCategoryHandler

	// Category Query Handlers
	GetCategoryHandler    *queries.GetCategoryHandler
	ListCategoriesHandler *queries.ListCategoriesHandler
}

// NewContainer creates and wires all application dependencies.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	c := &Container{
		Config:  cfg,
		Logger:  logger,
		Metrics: observability.NewInMemoryMetrics(),
		Health:  observability.NewHealthRegistry(),
	}

	if err := c.initStorage(ctx); err != nil {
		return nil, err
	}

	publisher, err := newPublisher(cfg, logger)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.EventPublisher = publisher
	c.registerHealthChecks()

	c.CreateCategoryHandler = commands.NewCreateCategoryHandler(c.CategoryRepo, c.UnitOfWork, c.EventPublisher, logger)
	c.UpdateCategoryHandler = commands.NewUpdateCategoryHandler(c.CategoryRepo, c.UnitOfWork, c.EventPublisher, logger)
	c.DeleteCategoryHandler = commands.NewDeleteCategoryHandler(c.CategoryRepo, c.UnitOfWork, c.EventPublisher, logger)
	c.GetCategoryHandler = queries.NewGetCategoryHandler(c.CategoryRepo)
	c.ListCategoriesHandler = queries.NewListCategoriesHandler(c.CategoryRepo)

	return c, nil
}

func (c *Container) initStorage(ctx context.Context) error {
	if c.Config.DatabaseDriver == DriverMemory {
		c.CategoryRepo = catalogPersistence.NewInMemoryCategoryRepository()
		c.UnitOfWork = inmemory.NewUnitOfWork()
		c.Logger.Debug("using in-memory category store")
		return nil
	}

	sqlitePath := c.Config.SQLitePath
	if sqlitePath == "" {
		sqlitePath = database.DefaultSQLitePath()
	}

	conn, err := database.NewConnection(ctx, database.Config{
		Driver:     database.Driver(c.Config.DatabaseDriver),
		URL:        c.Config.DatabaseURL,
		SQLitePath: sqlitePath,
		MaxConns:   c.Config.DatabaseMaxConns,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrations.Run(ctx, conn); err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	c.DBConn = conn
	c.CategoryRepo = catalogPersistence.NewSQLCategoryRepository(conn)
	c.UnitOfWork = database.NewUnitOfWork(conn)
	c.Logger.Debug("connected to database", "driver", conn.Driver().String())
	return nil
}

// newPublisher selects the event transport: RabbitMQ behind a circuit
// breaker when a broker is configured, the in-process bus otherwise.
func newPublisher(cfg *config.Config, logger *slog.Logger) (eventbus.Publisher, error) {
	if !cfg.EventsEnabled {
		return eventbus.NewNoopPublisher(logger), nil
	}

	if cfg.UsesBroker() {
		rabbit, err := eventbus.NewRabbitMQPublisher(cfg.RabbitMQURL, logger)
		if err == nil {
			return eventbus.NewBreakerPublisher("rabbitmq", rabbit, eventbus.DefaultBreakerConfig(), logger), nil
		}
		if cfg.IsProduction() {
			return nil, fmt.Errorf("failed to create event publisher: %w", err)
		}
		logger.Warn("RabbitMQ unavailable, publishing events in process", "error", err)
	}

	bus := eventbus.NewInProcessEventBus(logger)
	bus.RegisterConsumer(eventbus.NewLoggingConsumer(logger, catalogDomain.RoutingKeys()...))
	return bus, nil
}

func (c *Container) registerHealthChecks() {
	if c.DBConn != nil {
		c.Health.Register("database", observability.PingChecker("database", observability.HealthStatusUnhealthy, c.DBConn.Ping))
	}
	if breaker, ok := c.EventPublisher.(*eventbus.BreakerPublisher); ok {
		c.Health.Register("events", observability.PingChecker("events", observability.HealthStatusDegraded, func(context.Context) error {
			if state := breaker.State(); state == "open" {
				return fmt.Errorf("circuit breaker %s", state)
			}
			return nil
		}))
	}
}

// Close releases all resources.
func (c *Container) Close() error {
	var errs []error
	if c.EventPublisher != nil {
		if err := c.EventPublisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close event publisher: %w", err))
		}
	}
	if c.DBConn != nil {
		if err := c.DBConn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	return errors.Join(errs...)
}
