package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"transaction-analyzer/internal/models"
	"transaction-analyzer/internal/repositories"
)

var (
	ErrInvalidActionLog = errors.New("invalid action log")
)

// ValidateAction checks that action is one the dashboard can perform
func ValidateAction(action string) error {
	validActions := map[string]bool{
		models.ActionUpload:            true,
		models.ActionAnalyzeMerchants:  true,
		models.ActionDetectPatterns:    true,
		models.ActionDeleteTransaction: true,
		models.ActionDeleteAll:         true,
		models.ActionFetch:             true,
		models.ActionSwitchTab:         true,
	}

	if !validActions[action] {
		return fmt.Errorf("invalid action: %s", action)
	}
	return nil
}

// ValidateOutcome checks that outcome is a journal outcome
func ValidateOutcome(outcome string) error {
	switch outcome {
	case models.OutcomeStarted, models.OutcomeSucceeded, models.OutcomeFailed, models.OutcomeRejected:
		return nil
	}
	return fmt.Errorf("invalid outcome: %s", outcome)
}

// ActionJournal persists operator actions through the action log repository
type ActionJournal struct {
	repo repositories.ActionLogRepositoryInterface
}

func NewActionJournal(repo repositories.ActionLogRepositoryInterface) ActionJournalInterface {
	return &ActionJournal{
		repo: repo,
	}
}

func (j *ActionJournal) Record(ctx context.Context, entry *models.ActionLog) error {
	if entry == nil {
		return ErrInvalidActionLog
	}
	if err := ValidateAction(entry.Action); err != nil {
		return err
	}
	if err := ValidateOutcome(entry.Outcome); err != nil {
		return err
	}
	if entry.TraceID == "" {
		entry.TraceID = getCorrelationID(ctx)
	}

	if err := j.repo.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to record action: %w", err)
	}
	return nil
}

func (j *ActionJournal) Recent(ctx context.Context, filter repositories.ActionLogFilter) ([]models.ActionLog, int64, error) {
	if filter.Action != "" {
		if err := ValidateAction(filter.Action); err != nil {
			return nil, 0, err
		}
	}

	logs, total, err := j.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list actions: %w", err)
	}
	return logs, total, nil
}

func (j *ActionJournal) Trace(ctx context.Context, traceID string) ([]models.ActionLog, error) {
	if traceID == "" {
		return []models.ActionLog{}, nil
	}

	logs, err := j.repo.GetByTraceID(ctx, traceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load trace: %w", err)
	}
	return logs, nil
}

// Prune deletes rows older than retention. A zero retention keeps everything.
func (j *ActionJournal) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, nil
	}

	deleted, err := j.repo.DeleteOlderThan(ctx, retention)
	if err != nil {
		return 0, fmt.Errorf("failed to prune action journal: %w", err)
	}
	return deleted, nil
}
