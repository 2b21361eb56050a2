package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	httpapi "github.com/timeledger/project-billing-api/internal/api/http"
	"github.com/timeledger/project-billing-api/internal/api/http/middleware"
	"github.com/timeledger/project-billing-api/internal/observability"
	"github.com/timeledger/project-billing-api/internal/projects/events"
	projecthttp "github.com/timeledger/project-billing-api/internal/projects/http"
	"github.com/timeledger/project-billing-api/internal/projects/repository"
	"github.com/timeledger/project-billing-api/internal/projects/service"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	Logger         *logrus.Logger

	// Store may be nil; data endpoints then answer 500.
	Store     repository.Store
	DB        *sql.DB
	Publisher events.Publisher

	// Registry defaults to a fresh registry when nil.
	Registry *prometheus.Registry
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	registry := dep.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	metrics := observability.NewMetrics(registry)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Logger))
	r.Use(middleware.MetricsMiddleware(metrics))
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	var pinger httpapi.Pinger
	if dep.DB != nil {
		pinger = dep.DB
	}
	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, pinger)
	healthHandler.RegisterRoutes(r)

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	projectService := service.NewProjectService(dep.Store, dep.Publisher, metrics)
	projecthttp.New(projectService).Register(r.Group("/projects"))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "X-Request-Id")
	cfg.ExposeHeaders = []string{"X-Request-Id"}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
