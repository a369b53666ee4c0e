package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"transaction-analyzer/internal/dto"
	apperrors "transaction-analyzer/internal/errors"
	"transaction-analyzer/internal/models"
	"transaction-analyzer/internal/validation"
)

// Operator-facing notification texts.
const (
	MsgUploadSucceeded       = "File uploaded successfully"
	MsgUploadFailed          = "Failed to upload file"
	MsgAnalyzeSucceeded      = "Merchant analysis completed"
	MsgAnalyzeFailed         = "Failed to analyze merchants"
	MsgDetectSucceeded       = "Pattern detection completed"
	MsgDetectFailed          = "Failed to detect patterns"
	MsgDeleteSucceeded       = "Transaction deleted"
	MsgDeleteFailed          = "Failed to delete transaction"
	MsgDeleteAllTransactions = "All transactions deleted"
	MsgDeleteAllPatterns     = "All patterns deleted"
	MsgDeleteAllTxFailed     = "Failed to delete transactions"
	MsgDeleteAllPatFailed    = "Failed to delete patterns"
	MsgLoadTransactionsFail  = "Failed to load transactions"
	MsgLoadPatternsFail      = "Failed to load patterns"
)

// DashboardController composes the loader, the trackers and the
// notification center behind the operator actions. Actions block until the
// backend answers and may run concurrently; requests already sent are never
// cancelled, their late effects are dropped after Close.
type DashboardController struct {
	gateway       ResourceGatewayInterface
	loader        DataLoaderInterface
	pending       PendingSetInterface
	busy          BusyFlagsInterface
	notifications NotificationCenterInterface
	journal       ActionJournalInterface
	metrics       MetricsRecorderInterface
	logger        ActionLoggerInterface

	mu     sync.RWMutex
	closed bool
}

// NewDashboardController wires the controller. journal may be nil.
func NewDashboardController(
	gateway ResourceGatewayInterface,
	loader DataLoaderInterface,
	pending PendingSetInterface,
	busy BusyFlagsInterface,
	notifications NotificationCenterInterface,
	journal ActionJournalInterface,
	metrics MetricsRecorderInterface,
	logger ActionLoggerInterface,
) DashboardControllerInterface {
	return &DashboardController{
		gateway:       gateway,
		loader:        loader,
		pending:       pending,
		busy:          busy,
		notifications: notifications,
		journal:       journal,
		metrics:       metrics,
		logger:        logger,
	}
}

// actionScope follows one action from start to its final outcome.
type actionScope struct {
	c          *DashboardController
	ctx        context.Context
	action     string
	resource   string
	resourceID string
	traceID    string
	start      time.Time
}

func (c *DashboardController) begin(ctx context.Context, action, resource, resourceID string) *actionScope {
	ctx, traceID := ensureCorrelationID(context.WithoutCancel(ctx))
	s := &actionScope{
		c:          c,
		ctx:        ctx,
		action:     action,
		resource:   resource,
		resourceID: resourceID,
		traceID:    traceID,
		start:      time.Now(),
	}

	c.logger.LogActionStarted(ctx, action, resource, resourceID)
	c.record(ctx, &models.ActionLog{
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Outcome:    models.OutcomeStarted,
		TraceID:    traceID,
	})
	return s
}

// finish logs, measures and journals the outcome and returns err unchanged.
// A stale fetch counts as success: there was nothing left to apply.
func (s *actionScope) finish(err error) error {
	duration := time.Since(s.start)
	c := s.c

	entry := &models.ActionLog{
		Action:     s.action,
		Resource:   s.resource,
		ResourceID: s.resourceID,
		DurationMS: duration.Milliseconds(),
		TraceID:    s.traceID,
	}

	switch {
	case err == nil || errors.Is(err, ErrStaleResponse):
		entry.Outcome = models.OutcomeSucceeded
		if err != nil {
			entry.SetMetadata("stale", true)
		}
		c.logger.LogActionSucceeded(s.ctx, s.action, s.resource, s.resourceID, entry.DurationMS)
	case apperrors.IsRejection(err):
		entry.Outcome = models.OutcomeRejected
		entry.ErrorCode = string(apperrors.CodeFor(err))
		c.logger.LogActionRejected(s.ctx, s.action, s.resource, s.resourceID, err.Error())
	default:
		entry.Outcome = models.OutcomeFailed
		entry.ErrorCode = string(apperrors.CodeFor(err))
		entry.SetMetadata("error", err.Error())
		if gwErr, ok := apperrors.AsGatewayError(err); ok && gwErr.StatusCode != 0 {
			entry.SetMetadata("status_code", gwErr.StatusCode)
		}
		c.logger.LogActionFailed(s.ctx, s.action, s.resource, s.resourceID, entry.ErrorCode, err.Error(), entry.DurationMS)
	}

	c.metrics.IncrementCounter(MetricActionTotal, map[string]string{
		"action":  s.action,
		"outcome": entry.Outcome,
		"code":    entry.ErrorCode,
	})
	c.metrics.RecordProcessingTime(ActionDurationPrefix+s.action, duration)
	c.record(s.ctx, entry)

	if errors.Is(err, ErrStaleResponse) {
		return nil
	}
	return err
}

// record writes a journal row. Journal failures never fail the action.
func (c *DashboardController) record(ctx context.Context, entry *models.ActionLog) {
	if c.journal == nil {
		return
	}
	if err := c.journal.Record(ctx, entry); err != nil {
		c.logger.LogJournalWriteFailed(ctx, entry.Action, err.Error())
		c.metrics.IncrementCounter(MetricJournalWriteFailed, nil)
	}
}

func (c *DashboardController) isClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// withFlag runs fn with flag raised. The caller has already won TryBegin;
// the flag is lowered whatever fn returns.
func (c *DashboardController) withFlag(flag models.BusyFlag, fn func() error) error {
	c.metrics.RecordGauge(MetricBusyFlag, 1, map[string]string{"flag": string(flag)})
	defer func() {
		c.busy.End(flag)
		c.metrics.RecordGauge(MetricBusyFlag, 0, map[string]string{"flag": string(flag)})
	}()
	return fn()
}

func (c *DashboardController) Mount(ctx context.Context) error {
	return c.activate(ctx, models.ActionFetch, models.TabMerchant)
}

// SwitchTab focuses tab and loads it. Focus moves before anything else
// happens, so of two overlapping calls the later one wins.
func (c *DashboardController) SwitchTab(ctx context.Context, tab models.Tab) error {
	if err := c.SelectTab(tab); err != nil {
		return err
	}
	return c.LoadTab(ctx, tab)
}

// SelectTab moves focus to tab without touching the network.
func (c *DashboardController) SelectTab(tab models.Tab) error {
	if c.isClosed() {
		return apperrors.ErrDashboardClosed
	}
	return c.loader.Select(tab)
}

// LoadTab fetches tab if it still has focus and has nothing current to show.
// Loading a tab that has since lost focus does nothing.
func (c *DashboardController) LoadTab(ctx context.Context, tab models.Tab) error {
	if c.isClosed() {
		return apperrors.ErrDashboardClosed
	}

	scope := c.begin(ctx, models.ActionSwitchTab, tab.Resource(), string(tab))
	err := c.loader.Load(scope.ctx, tab)
	c.notifyFetchFailure(tab, err)
	return scope.finish(err)
}

func (c *DashboardController) activate(ctx context.Context, action string, tab models.Tab) error {
	if c.isClosed() {
		return apperrors.ErrDashboardClosed
	}

	scope := c.begin(ctx, action, tab.Resource(), string(tab))
	err := c.loader.Activate(scope.ctx, tab)
	c.notifyFetchFailure(tab, err)
	return scope.finish(err)
}

func (c *DashboardController) notifyFetchFailure(tab models.Tab, err error) {
	if err == nil || errors.Is(err, ErrStaleResponse) || apperrors.IsRejection(err) {
		return
	}
	switch tab {
	case models.TabMerchant:
		c.notifications.Notify(models.NotificationError, MsgLoadTransactionsFail)
	case models.TabPattern:
		c.notifications.Notify(models.NotificationError, MsgLoadPatternsFail)
	}
}

// Upload sends a CSV file to the ingestion endpoint and, once the upload
// flag has dropped, refetches the transaction list.
func (c *DashboardController) Upload(ctx context.Context, file dto.UploadFile) error {
	if c.isClosed() {
		return apperrors.ErrDashboardClosed
	}

	scope := c.begin(ctx, models.ActionUpload, models.ResourceUpload, file.Name)
	if !validation.IsCSVFileName(file.Name) {
		c.notifications.Notify(models.NotificationError, apperrors.GetErrorMessage(apperrors.ValidationInvalidFile))
		return scope.finish(apperrors.ErrInvalidUpload)
	}
	if !c.busy.TryBegin(models.FlagUploading) {
		return scope.finish(apperrors.ErrActionInProgress)
	}

	err := c.withFlag(models.FlagUploading, func() error {
		if _, err := c.gateway.UploadFile(scope.ctx, file); err != nil {
			c.notifications.Notify(models.NotificationError, MsgUploadFailed)
			return err
		}
		c.notifications.Notify(models.NotificationSuccess, MsgUploadSucceeded)
		return nil
	})
	if err != nil {
		return scope.finish(err)
	}

	refreshErr := c.loader.Refresh(scope.ctx, models.TabMerchant)
	c.notifyFetchFailure(models.TabMerchant, refreshErr)
	return scope.finish(nil)
}

func (c *DashboardController) AnalyzeMerchants(ctx context.Context) error {
	if c.isClosed() {
		return apperrors.ErrDashboardClosed
	}

	scope := c.begin(ctx, models.ActionAnalyzeMerchants, models.ResourceTransactions, "")
	if !c.busy.TryBegin(models.FlagAnalyzingMerchant) {
		return scope.finish(apperrors.ErrActionInProgress)
	}

	err := c.withFlag(models.FlagAnalyzingMerchant, func() error {
		result, err := c.gateway.AnalyzeMerchants(scope.ctx)
		if err != nil {
			c.notifications.Notify(models.NotificationError, MsgAnalyzeFailed)
			return err
		}
		c.loader.ReplaceTransactions(result.NormalizedTransactions)
		c.notifications.Notify(models.NotificationSuccess, MsgAnalyzeSucceeded)
		return nil
	})
	return scope.finish(err)
}

func (c *DashboardController) DetectPatterns(ctx context.Context) error {
	if c.isClosed() {
		return apperrors.ErrDashboardClosed
	}

	scope := c.begin(ctx, models.ActionDetectPatterns, models.ResourcePatterns, "")
	if !c.busy.TryBegin(models.FlagDetectingPatterns) {
		return scope.finish(apperrors.ErrActionInProgress)
	}

	err := c.withFlag(models.FlagDetectingPatterns, func() error {
		result, err := c.gateway.DetectPatterns(scope.ctx)
		if err != nil {
			c.notifications.Notify(models.NotificationError, MsgDetectFailed)
			return err
		}
		c.loader.ReplacePatterns(result.Patterns)
		c.notifications.Notify(models.NotificationSuccess, MsgDetectSucceeded)
		return nil
	})
	return scope.finish(err)
}

// DeleteTransaction deletes one row. A second delete of an id that is
// still pending is rejected without reaching the backend.
func (c *DashboardController) DeleteTransaction(ctx context.Context, id models.RecordID) error {
	if c.isClosed() {
		return apperrors.ErrDashboardClosed
	}

	scope := c.begin(ctx, models.ActionDeleteTransaction, models.ResourceTransactions, id.String())
	if id.IsZero() {
		return scope.finish(models.ErrEmptyRecordID)
	}
	if !c.pending.TryBegin(id) {
		return scope.finish(apperrors.ErrActionInProgress)
	}
	c.metrics.RecordGauge(MetricPendingDeletes, float64(c.pending.Len()), nil)
	defer func() {
		c.pending.End(id)
		c.metrics.RecordGauge(MetricPendingDeletes, float64(c.pending.Len()), nil)
	}()

	if _, err := c.gateway.DeleteTransaction(scope.ctx, id); err != nil {
		c.notifications.Notify(models.NotificationError, MsgDeleteFailed)
		return scope.finish(err)
	}

	c.loader.RemoveTransaction(id)
	c.notifications.Notify(models.NotificationSuccess, MsgDeleteSucceeded)
	return scope.finish(nil)
}

// DeleteAll empties the active tab's resource. It is refused while the
// collection is empty or another bulk delete is running.
func (c *DashboardController) DeleteAll(ctx context.Context) error {
	if c.isClosed() {
		return apperrors.ErrDashboardClosed
	}

	tab := c.loader.ActiveTab()
	scope := c.begin(ctx, models.ActionDeleteAll, tab.Resource(), string(tab))
	if !tab.IsValid() || c.loader.Count(tab) == 0 {
		return scope.finish(apperrors.ErrNothingToDelete)
	}
	if !c.busy.TryBegin(models.FlagBulkDeleting) {
		return scope.finish(apperrors.ErrActionInProgress)
	}

	err := c.withFlag(models.FlagBulkDeleting, func() error {
		var err error
		if tab == models.TabPattern {
			_, err = c.gateway.DeleteAllPatterns(scope.ctx)
		} else {
			_, err = c.gateway.DeleteAllTransactions(scope.ctx)
		}

		switch {
		case err != nil && tab == models.TabPattern:
			c.notifications.Notify(models.NotificationError, MsgDeleteAllPatFailed)
		case err != nil:
			c.notifications.Notify(models.NotificationError, MsgDeleteAllTxFailed)
		case tab == models.TabPattern:
			c.loader.Clear(tab)
			c.notifications.Notify(models.NotificationSuccess, MsgDeleteAllPatterns)
		default:
			c.loader.Clear(tab)
			c.notifications.Notify(models.NotificationSuccess, MsgDeleteAllTransactions)
		}
		return err
	})
	return scope.finish(err)
}

// State returns a snapshot of everything a surface renders.
func (c *DashboardController) State() models.DashboardState {
	snap := c.loader.Snapshot()
	busy := c.busy.Snapshot()

	state := models.DashboardState{
		ActiveTab:    snap.ActiveTab,
		Transactions: snap.Transactions,
		Patterns:     snap.Patterns,
		Loading:      snap.Loading,
		Busy:         busy,
		PendingIDs:   c.pending.IDs(),
		Notification: c.notifications.Current(),
	}
	state.CanDeleteAll = state.ActiveTab.IsValid() && state.ActiveCount() > 0 && !busy[models.FlagBulkDeleting]
	return state
}

// Close tears the dashboard down. Later actions fail with ErrDashboardClosed
// and responses still in flight are discarded.
func (c *DashboardController) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	c.loader.Close()
	c.notifications.Close()
}
