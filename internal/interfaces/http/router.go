// Package http wires the gin engine: middleware stack, API routes, health
// probes, and the metrics scrape endpoint.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/peptilab/peptigraph/internal/config"
	"github.com/peptilab/peptigraph/internal/infrastructure/monitoring/logging"
	"github.com/peptilab/peptigraph/internal/infrastructure/monitoring/prometheus"
	"github.com/peptilab/peptigraph/internal/interfaces/http/handlers"
	"github.com/peptilab/peptigraph/internal/interfaces/http/middleware"
)

// RouterConfig aggregates everything the route tree depends on.
type RouterConfig struct {
	ConvertHandler *handlers.ConvertHandler
	HealthHandler  *handlers.HealthHandler

	Logger  logging.Logger
	Metrics *prometheus.Metrics
	Cfg     *config.Config
}

// NewRouter builds the complete gin engine.
func NewRouter(rc RouterConfig) *gin.Engine {
	switch rc.Cfg.Server.Mode {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	if rc.Logger != nil {
		r.Use(middleware.RequestLogging(rc.Logger, "/healthz", "/readyz", rc.Cfg.Metrics.Path))
	}
	if rc.Metrics != nil {
		r.Use(middleware.Metrics(rc.Metrics))
	}

	if rc.HealthHandler != nil {
		r.GET("/healthz", rc.HealthHandler.Liveness)
		r.GET("/readyz", rc.HealthHandler.Readiness)
	}
	if rc.Metrics != nil && rc.Cfg.Metrics.Enabled {
		r.GET(rc.Cfg.Metrics.Path, gin.WrapH(rc.Metrics.Handler()))
	}

	api := r.Group("/api/v1")
	{
		api.POST("/convert", rc.ConvertHandler.Convert)
		api.GET("/residues", rc.ConvertHandler.Residues)
	}

	return r
}
