package handlers

import (
	"net/http"
	"time"

	"transaction-analyzer/internal/errors"
	"transaction-analyzer/internal/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db      *gorm.DB
	breaker services.CircuitBreakerInterface
	now     func() time.Time
}

// NewHealthCheckHandler creates a new health check handler. breaker may be nil
// when the circuit breaker is disabled.
func NewHealthCheckHandler(db *gorm.DB, breaker services.CircuitBreakerInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, breaker: breaker, now: time.Now}
}

// HealthCheck reports journal database connectivity and, when enabled, the
// analysis backend circuit state. An open circuit does not make the dashboard
// unhealthy; it only means actions currently fail fast.
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Journal database connection failed"))
	}

	body := map[string]interface{}{
		"status": "healthy",
		"time":   h.now().UTC().Format(time.RFC3339),
	}
	if h.breaker != nil {
		body["backend_circuit"] = h.breaker.State().String()
		body["backend_failures"] = h.breaker.Failures()
	}
	return c.JSON(http.StatusOK, body)
}
