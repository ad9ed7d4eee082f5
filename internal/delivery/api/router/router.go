// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"acp/config"
	"acp/internal/delivery/api/router/handler"
	"acp/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ComplianceHandler *handler.ComplianceHandler
	Metrics           *metrics.Metrics `optional:"true"`
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	complianceHandler *handler.ComplianceHandler
	metrics           *metrics.Metrics
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		complianceHandler: params.ComplianceHandler,
		metrics:           params.Metrics,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	complianceGroup := apiV1.Group("/compliance")
	{
		complianceGroup.GET("/rules", r.complianceHandler.ListRules)
		complianceGroup.POST("/reports", r.complianceHandler.GenerateReport)
		complianceGroup.POST("/reports/batch", r.complianceHandler.GenerateBatchReports)
		complianceGroup.POST("/products/analyze", r.complianceHandler.AnalyzeProduct)
	}
}

// RegisterMetricsRoutes exposes the Prometheus scrape endpoint when enabled.
func (r *router) RegisterMetricsRoutes(e *echo.Echo) {
	if r.metrics == nil || r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
}
