package repositories

import (
	"context"
	"time"

	"transaction-analyzer/internal/models"

	"github.com/google/uuid"
)

// ActionLogRepositoryInterface defines the contract for action journal storage
type ActionLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.ActionLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ActionLog, error)
	List(ctx context.Context, filter ActionLogFilter) ([]models.ActionLog, int64, error)
	GetByTraceID(ctx context.Context, traceID string) ([]models.ActionLog, error)
	DeleteOlderThan(ctx context.Context, duration time.Duration) (int64, error)
}
