// Package container is the composition root: it builds the dependency graph
// from configuration and owns the lifecycle of shared resources.
package container

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpadapter "github.com/clubarena/rosterhub/internal/adapters/http"
	"github.com/clubarena/rosterhub/internal/adapters/http/handlers"
	"github.com/clubarena/rosterhub/internal/application/usecases/category"
	"github.com/clubarena/rosterhub/internal/application/usecases/person"
	"github.com/clubarena/rosterhub/internal/config"
	"github.com/clubarena/rosterhub/internal/infrastructure/persistence/postgres"
	"github.com/clubarena/rosterhub/internal/pkg/logger"
)

// Container holds the wired application.
type Container struct {
	Config *config.Config
	Logger *slog.Logger
	Pool   *pgxpool.Pool
	Server *httpadapter.Server
}

// New builds the full dependency graph.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	pool, err := postgres.NewConnectionPool(ctx, postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Database:        cfg.Database.Name,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		ConnectTimeout:  cfg.Database.ConnectTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	// Repositories and the unit of work share the pool; repositories pick up
	// an open transaction from the context when one is active.
	persons := postgres.NewTemporaryPersonRepository(pool)
	categories := postgres.NewSportsCategoryRepository(pool)
	documentTypes := postgres.NewDocumentTypeRepository(pool)
	uow := postgres.NewUnitOfWork(pool)

	personHandler := handlers.NewPersonHandler(
		person.NewCreatePersonUseCase(persons, documentTypes, uow),
		person.NewUpdatePersonUseCase(persons, documentTypes, uow),
		person.NewGetPersonUseCase(persons),
		person.NewListPersonsUseCase(persons),
		person.NewDeletePersonUseCase(persons, uow),
		person.NewPersonStatsUseCase(persons),
		person.NewCheckIdentificationUseCase(persons),
		person.NewCheckEmailUseCase(persons),
		person.NewListDocumentTypesUseCase(documentTypes),
	)

	categoryHandler := handlers.NewCategoryHandler(
		category.NewCreateCategoryUseCase(categories, uow),
		category.NewUpdateCategoryUseCase(categories, uow),
		category.NewGetCategoryUseCase(categories),
		category.NewListCategoriesUseCase(categories),
		category.NewDeleteCategoryUseCase(categories, uow),
		category.NewCheckNameUseCase(categories),
	)

	healthHandler := handlers.NewHealthHandler(cfg.App.Version, func(ctx context.Context) error {
		return postgres.HealthCheck(ctx, pool)
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	engine := httpadapter.NewRouter(httpadapter.RouterConfig{
		Logger:          log,
		Environment:     cfg.App.Environment,
		JWTSecret:       cfg.Auth.JWTSecret,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		RateLimit:       cfg.Server.RateLimit,
		RateInterval:    cfg.Server.RateInterval,
		MetricsRegistry: registry,
		PersonHandler:   personHandler,
		CategoryHandler: categoryHandler,
		HealthHandler:   healthHandler,
	})

	server := httpadapter.NewServer(httpadapter.ServerConfig{
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		IdleTimeout:     cfg.Server.IdleTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, engine, log)

	return &Container{
		Config: cfg,
		Logger: log,
		Pool:   pool,
		Server: server,
	}, nil
}

// Shutdown drains the server and releases shared resources.
func (c *Container) Shutdown(ctx context.Context) error {
	err := c.Server.Shutdown(ctx)
	c.Pool.Close()
	return err
}
