package handlers

import (
	"log/slog"
	"net/http"

	"transaction-analyzer/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDeps is everything the control API needs to serve requests
type RouterDeps struct {
	Dashboard   *DashboardHandler
	Actions     *ActionHandler
	Health      *HealthCheckHandler
	RateLimiter *middleware.RateLimiter
	Gatherer    prometheus.Gatherer
	Logger      *slog.Logger
}

// NewRouter builds the control API echo instance with its middleware chain
// and routes.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(deps.Logger))
	e.Use(middleware.SecurityHeaders())

	e.GET("/health", deps.Health.HealthCheck)

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api")
	if deps.RateLimiter != nil {
		api.Use(deps.RateLimiter.Middleware())
	}

	dashboard := api.Group("/dashboard")
	dashboard.GET("", deps.Dashboard.GetDashboard)
	dashboard.PUT("/tab", deps.Dashboard.SwitchTab)
	dashboard.POST("/upload", deps.Dashboard.Upload)
	dashboard.POST("/merchant/analyze", deps.Dashboard.AnalyzeMerchants)
	dashboard.POST("/pattern/detect", deps.Dashboard.DetectPatterns)
	dashboard.DELETE("/transactions/:id", deps.Dashboard.DeleteTransaction)
	dashboard.DELETE("/records", deps.Dashboard.DeleteAll)

	api.GET("/actions", deps.Actions.ListActions)
	api.GET("/actions/trace/:traceId", deps.Actions.GetTrace)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "Resource not found")
	})

	return e
}
