package services

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics. Unknown names are ignored.
const (
	MetricActionTotal         = "dashboard.action"
	MetricGatewayRequest      = "gateway.request"
	MetricStaleDiscarded      = "loader.stale_discarded"
	MetricJournalWriteFailed  = "journal.write_failed"
	MetricCircuitBreakerState = "circuit_breaker.state"
	MetricPendingDeletes      = "dashboard.pending_deletes"
	MetricRecordCount         = "dashboard.records"
	MetricBusyFlag            = "dashboard.busy_flag"
	ActionDurationPrefix      = "action."
	GatewayDurationPrefix     = "gateway."
)

type PrometheusMetrics struct {
	actionsTotal        *prometheus.CounterVec
	actionDuration      *prometheus.HistogramVec
	gatewayRequests     *prometheus.CounterVec
	gatewayDuration     *prometheus.HistogramVec
	staleDiscards       *prometheus.CounterVec
	journalFailures     prometheus.Counter
	circuitBreakerState *prometheus.GaugeVec
	pendingDeletes      prometheus.Gauge
	recordCount         *prometheus.GaugeVec
	busyFlags           *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the dashboard collectors on reg. A nil reg
// uses the default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		actionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_actions_total",
				Help: "Total number of operator actions by outcome",
			},
			[]string{"action", "outcome", "code"},
		),
		actionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_action_duration_milliseconds",
				Help:    "Operator action duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
			[]string{"action"},
		),
		gatewayRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_requests_total",
				Help: "Total number of backend requests by operation and status",
			},
			[]string{"operation", "status"},
		),
		gatewayDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backend_request_duration_milliseconds",
				Help:    "Backend request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
			[]string{"operation"},
		),
		staleDiscards: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_stale_responses_total",
				Help: "Total number of fetch results discarded as stale",
			},
			[]string{"tab"},
		),
		journalFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "action_journal_write_failures_total",
				Help: "Total number of action journal rows that could not be written",
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		pendingDeletes: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "dashboard_pending_deletes",
				Help: "Current number of single-record deletes in flight",
			},
		),
		recordCount: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dashboard_records",
				Help: "Current number of records held per tab",
			},
			[]string{"tab"},
		),
		busyFlags: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dashboard_busy_flag",
				Help: "Whether a coarse-grained action is in flight (1) or idle (0)",
			},
			[]string{"flag"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricActionTotal:
		m.actionsTotal.WithLabelValues(tags["action"], tags["outcome"], tags["code"]).Inc()
	case MetricGatewayRequest:
		m.gatewayRequests.WithLabelValues(tags["operation"], tags["status"]).Inc()
	case MetricStaleDiscarded:
		m.staleDiscards.WithLabelValues(tags["tab"]).Inc()
	case MetricJournalWriteFailed:
		m.journalFailures.Inc()
	}
}

// RecordProcessingTime expects "action.<name>" or "gateway.<operation>".
func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	ms := float64(duration.Milliseconds())

	if action, ok := strings.CutPrefix(name, ActionDurationPrefix); ok {
		m.actionDuration.WithLabelValues(action).Observe(ms)
		return
	}
	if operation, ok := strings.CutPrefix(name, GatewayDurationPrefix); ok {
		m.gatewayDuration.WithLabelValues(operation).Observe(ms)
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricCircuitBreakerState:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case MetricPendingDeletes:
		m.pendingDeletes.Set(value)
	case MetricRecordCount:
		m.recordCount.WithLabelValues(tags["tab"]).Set(value)
	case MetricBusyFlag:
		m.busyFlags.WithLabelValues(tags["flag"]).Set(value)
	}
}
