package services

import (
	"context"
	"time"

	"transaction-analyzer/internal/dto"
	"transaction-analyzer/internal/models"
	"transaction-analyzer/internal/repositories"
)

// NotificationCenterInterface holds the single transient operator message
type NotificationCenterInterface interface {
	Notify(kind models.NotificationKind, message string)
	Clear()
	Current() *models.Notification
	Close()
}

// PendingSetInterface tracks record ids with an in-flight delete
type PendingSetInterface interface {
	Begin(id models.RecordID)
	TryBegin(id models.RecordID) bool
	End(id models.RecordID)
	IsPending(id models.RecordID) bool
	IDs() []models.RecordID
	Len() int
}

// BusyFlagsInterface tracks the coarse-grained actions in flight
type BusyFlagsInterface interface {
	TryBegin(flag models.BusyFlag) bool
	End(flag models.BusyFlag)
	IsSet(flag models.BusyFlag) bool
	Snapshot() map[models.BusyFlag]bool
}

// ResourceGatewayInterface is the typed client of the analysis backend
type ResourceGatewayInterface interface {
	UploadFile(ctx context.Context, file dto.UploadFile) (*dto.UploadAck, error)
	AnalyzeMerchants(ctx context.Context) (*dto.AnalyzeMerchantsResult, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	DeleteTransaction(ctx context.Context, id models.RecordID) (*dto.Ack, error)
	DeleteAllTransactions(ctx context.Context) (*dto.Ack, error)
	DetectPatterns(ctx context.Context) (*dto.DetectPatternsResult, error)
	ListPatterns(ctx context.Context) ([]models.Pattern, error)
	DeleteAllPatterns(ctx context.Context) (*dto.Ack, error)
}

// DataLoaderInterface owns the two tab-scoped collections
type DataLoaderInterface interface {
	Activate(ctx context.Context, tab models.Tab) error
	Select(tab models.Tab) error
	Load(ctx context.Context, tab models.Tab) error
	Refresh(ctx context.Context, tab models.Tab) error
	ActiveTab() models.Tab
	ReplaceTransactions(items []models.Transaction)
	ReplacePatterns(items []models.Pattern)
	RemoveTransaction(id models.RecordID) bool
	Clear(tab models.Tab)
	Count(tab models.Tab) int
	Loading() bool
	Snapshot() models.LoaderSnapshot
	Close()
}

// DashboardControllerInterface is the operator-facing surface of the dashboard
type DashboardControllerInterface interface {
	Mount(ctx context.Context) error
	SwitchTab(ctx context.Context, tab models.Tab) error
	SelectTab(tab models.Tab) error
	LoadTab(ctx context.Context, tab models.Tab) error
	Upload(ctx context.Context, file dto.UploadFile) error
	AnalyzeMerchants(ctx context.Context) error
	DetectPatterns(ctx context.Context) error
	DeleteTransaction(ctx context.Context, id models.RecordID) error
	DeleteAll(ctx context.Context) error
	State() models.DashboardState
	Close()
}

// ActionJournalInterface records operator actions for later review
type ActionJournalInterface interface {
	Record(ctx context.Context, entry *models.ActionLog) error
	Recent(ctx context.Context, filter repositories.ActionLogFilter) ([]models.ActionLog, int64, error)
	Trace(ctx context.Context, traceID string) ([]models.ActionLog, error)
	Prune(ctx context.Context, retention time.Duration) (int64, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type ActionLoggerInterface interface {
	LogActionStarted(ctx context.Context, action, resource, resourceID string)
	LogActionSucceeded(ctx context.Context, action, resource, resourceID string, durationMs int64)
	LogActionFailed(ctx context.Context, action, resource, resourceID, code, errorMsg string, durationMs int64)
	LogActionRejected(ctx context.Context, action, resource, resourceID, reason string)
	LogStaleResponseDiscarded(ctx context.Context, tab models.Tab, generation uint64, reason string)
	LogGatewayRequest(ctx context.Context, operation, method, url string, statusCode int, durationMs int64)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogJournalWriteFailed(ctx context.Context, action, errorMsg string)
}

type CircuitBreakerInterface interface {
	Allow() (bool, models.CircuitTransition)
	RecordSuccess() models.CircuitTransition
	RecordFailure() models.CircuitTransition
	State() models.CircuitBreakerState
	Failures() int
}
