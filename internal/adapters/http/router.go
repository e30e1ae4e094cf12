// Package http assembles the gin engine: middleware chain, route groups and
// the operational endpoints.
package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/clubarena/rosterhub/internal/adapters/http/handlers"
	"github.com/clubarena/rosterhub/internal/adapters/http/middleware"
)

// RouterConfig carries everything the router needs from the composition
// root.
type RouterConfig struct {
	Logger          *slog.Logger
	Environment     string
	JWTSecret       string
	AllowedOrigins  []string
	RateLimit       int
	RateInterval    time.Duration
	MetricsRegistry *prometheus.Registry

	PersonHandler   *handlers.PersonHandler
	CategoryHandler *handlers.CategoryHandler
	HealthHandler   *handlers.HealthHandler
}

// NewRouter builds the engine. Reads are open; mutating routes require a
// valid bearer token.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Recovery(cfg.Logger),
		middleware.Logging(cfg.Logger),
		middleware.CORS(cfg.AllowedOrigins),
	)

	if cfg.MetricsRegistry != nil {
		metrics := middleware.NewMetrics(cfg.MetricsRegistry)
		engine.Use(metrics.Handler())
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(
			cfg.MetricsRegistry, promhttp.HandlerOpts{},
		)))
	}

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateInterval)
		engine.Use(limiter.Handler())
	}

	engine.GET("/health", cfg.HealthHandler.Health)
	engine.GET("/ready", cfg.HealthHandler.Ready)

	auth := middleware.Auth(cfg.JWTSecret)

	api := engine.Group("/api/v1")
	{
		persons := api.Group("/persons")
		persons.GET("", cfg.PersonHandler.List)
		persons.GET("/stats", cfg.PersonHandler.Stats)
		persons.GET("/check-identification", cfg.PersonHandler.CheckIdentification)
		persons.GET("/check-email", cfg.PersonHandler.CheckEmail)
		persons.GET("/:id", cfg.PersonHandler.Get)
		persons.POST("", auth, cfg.PersonHandler.Create)
		persons.PUT("/:id", auth, cfg.PersonHandler.Update)
		persons.DELETE("/:id", auth, cfg.PersonHandler.Delete)

		categories := api.Group("/categories")
		categories.GET("", cfg.CategoryHandler.List)
		categories.GET("/check-name", cfg.CategoryHandler.CheckName)
		categories.GET("/:id", cfg.CategoryHandler.Get)
		categories.POST("", auth, cfg.CategoryHandler.Create)
		categories.PUT("/:id", auth, cfg.CategoryHandler.Update)
		categories.DELETE("/:id", auth, cfg.CategoryHandler.Delete)

		api.GET("/document-types", cfg.PersonHandler.DocumentTypes)
	}

	return engine
}
