package services

import (
	"context"
	"log/slog"
	"time"

	"transaction-analyzer/internal/models"
)

// ActionLogger writes the structured event log of operator actions and
// backend traffic.
type ActionLogger struct {
	logger *slog.Logger
}

func NewActionLogger(logger *slog.Logger) ActionLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &ActionLogger{
		logger: logger,
	}
}

func (al *ActionLogger) LogActionStarted(ctx context.Context, action, resource, resourceID string) {
	al.logger.InfoContext(ctx, "action started",
		slog.String("event_type", "action_started"),
		slog.String("action", action),
		slog.String("resource", resource),
		slog.String("resource_id", resourceID),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *ActionLogger) LogActionSucceeded(ctx context.Context, action, resource, resourceID string, durationMs int64) {
	al.logger.InfoContext(ctx, "action succeeded",
		slog.String("event_type", "action_succeeded"),
		slog.String("action", action),
		slog.String("resource", resource),
		slog.String("resource_id", resourceID),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *ActionLogger) LogActionFailed(ctx context.Context, action, resource, resourceID, code, errorMsg string, durationMs int64) {
	al.logger.ErrorContext(ctx, "action failed",
		slog.String("event_type", "action_failed"),
		slog.String("action", action),
		slog.String("resource", resource),
		slog.String("resource_id", resourceID),
		slog.String("error_code", code),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *ActionLogger) LogActionRejected(ctx context.Context, action, resource, resourceID, reason string) {
	al.logger.WarnContext(ctx, "action rejected",
		slog.String("event_type", "action_rejected"),
		slog.String("action", action),
		slog.String("resource", resource),
		slog.String("resource_id", resourceID),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *ActionLogger) LogStaleResponseDiscarded(ctx context.Context, tab models.Tab, generation uint64, reason string) {
	al.logger.DebugContext(ctx, "stale response discarded",
		slog.String("event_type", "stale_response_discarded"),
		slog.String("tab", string(tab)),
		slog.Uint64("generation", generation),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *ActionLogger) LogGatewayRequest(ctx context.Context, operation, method, url string, statusCode int, durationMs int64) {
	al.logger.DebugContext(ctx, "backend request",
		slog.String("event_type", "backend_request"),
		slog.String("operation", operation),
		slog.String("method", method),
		slog.String("url", url),
		slog.Int("status_code", statusCode),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *ActionLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	al.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *ActionLogger) LogJournalWriteFailed(ctx context.Context, action, errorMsg string) {
	al.logger.WarnContext(ctx, "action journal write failed",
		slog.String("event_type", "journal_write_failed"),
		slog.String("action", action),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}
