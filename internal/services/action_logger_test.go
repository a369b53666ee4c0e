package services_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"transaction-analyzer/internal/models"
	"transaction-analyzer/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestActionLogger_ActionFailedCarriesCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := services.NewActionLogger(newBufferedLogger(&buf))
	ctx := services.WithCorrelationID(context.Background(), "trace-123")

	logger.LogActionFailed(ctx, models.ActionDeleteTransaction, models.ResourceTransactions, "tx-9", "GATEWAY_002", "status 500", 42)

	entry := decodeLogLine(t, &buf)
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "action_failed", entry["event_type"])
	assert.Equal(t, "delete_transaction", entry["action"])
	assert.Equal(t, "tx-9", entry["resource_id"])
	assert.Equal(t, "GATEWAY_002", entry["error_code"])
	assert.Equal(t, float64(42), entry["duration_ms"])
	assert.Equal(t, "trace-123", entry["correlation_id"])
}

func TestActionLogger_StaleResponse(t *testing.T) {
	var buf bytes.Buffer
	logger := services.NewActionLogger(newBufferedLogger(&buf))

	logger.LogStaleResponseDiscarded(context.Background(), models.TabMerchant, 3, "tab changed")

	entry := decodeLogLine(t, &buf)
	assert.Equal(t, "stale_response_discarded", entry["event_type"])
	assert.Equal(t, "merchant", entry["tab"])
	assert.Equal(t, float64(3), entry["generation"])
	assert.Equal(t, "", entry["correlation_id"])
}

func TestActionLogger_CircuitBreakerStateChange(t *testing.T) {
	var buf bytes.Buffer
	logger := services.NewActionLogger(newBufferedLogger(&buf))

	logger.LogCircuitBreakerStateChange(context.Background(), "analysis_backend", "closed", "open")

	entry := decodeLogLine(t, &buf)
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "open", entry["new_state"])
}

func TestActionLogger_NilLoggerFallsBackToDefault(t *testing.T) {
	logger := services.NewActionLogger(nil)
	assert.NotPanics(t, func() {
		logger.LogActionStarted(context.Background(), models.ActionUpload, models.ResourceUpload, "a.csv")
	})
}
