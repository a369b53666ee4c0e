package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"transaction-analyzer/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultActionLogLimit = 50
	maxActionLogLimit     = 500
)

var ErrActionLogNotFound = errors.New("action log not found")

// ActionLogFilter narrows List. Empty fields match everything.
type ActionLogFilter struct {
	Action  string
	Outcome string
	Since   *time.Time
	Offset  int
	Limit   int
}

// ActionLogRepository handles database operations for the action journal
type ActionLogRepository struct {
	db *gorm.DB
}

func NewActionLogRepository(db *gorm.DB) ActionLogRepositoryInterface {
	return &ActionLogRepository{
		db: db,
	}
}

// Create appends a journal entry
func (r *ActionLogRepository) Create(ctx context.Context, log *models.ActionLog) error {
	if log == nil {
		return errors.New("action log cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return fmt.Errorf("failed to create action log: %w", err)
	}

	return nil
}

func (r *ActionLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ActionLog, error) {
	log := &models.ActionLog{}
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActionLogNotFound
		}
		return nil, fmt.Errorf("failed to get action log by ID: %w", err)
	}

	return log, nil
}

// List returns matching entries newest first together with the total match count
func (r *ActionLogRepository) List(ctx context.Context, filter ActionLogFilter) ([]models.ActionLog, int64, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultActionLogLimit
	}
	if limit > maxActionLogLimit {
		limit = maxActionLogLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := r.db.WithContext(ctx).Model(&models.ActionLog{})
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.Outcome != "" {
		query = query.Where("outcome = ?", filter.Outcome)
	}
	if filter.Since != nil {
		query = query.Where("created_at >= ?", *filter.Since)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count action logs: %w", err)
	}

	logs := []models.ActionLog{}
	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list action logs: %w", err)
	}

	return logs, total, nil
}

// GetByTraceID returns every entry written for one action invocation, oldest first
func (r *ActionLogRepository) GetByTraceID(ctx context.Context, traceID string) ([]models.ActionLog, error) {
	logs := []models.ActionLog{}
	if err := r.db.WithContext(ctx).
		Where("trace_id = ?", traceID).
		Order("created_at ASC").
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to get action logs by trace ID: %w", err)
	}

	return logs, nil
}

// DeleteOlderThan removes entries older than the specified duration
func (r *ActionLogRepository) DeleteOlderThan(ctx context.Context, duration time.Duration) (int64, error) {
	cutoffTime := time.Now().Add(-duration)

	result := r.db.WithContext(ctx).Where("created_at < ?", cutoffTime).Delete(&models.ActionLog{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete old action logs: %w", result.Error)
	}

	return result.RowsAffected, nil
}
