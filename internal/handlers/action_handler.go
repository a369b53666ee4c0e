package handlers

import (
	"net/http"

	"transaction-analyzer/internal/dto"
	"transaction-analyzer/internal/errors"
	"transaction-analyzer/internal/repositories"
	"transaction-analyzer/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultActionLimit = 50
	maxActionLimit     = 500
)

// ActionHandler serves the operator action journal
type ActionHandler struct {
	journal services.ActionJournalInterface
}

// NewActionHandler creates a new action journal handler
func NewActionHandler(journal services.ActionJournalInterface) *ActionHandler {
	return &ActionHandler{journal: journal}
}

// ListActions returns the most recent journal rows, newest first
func (h *ActionHandler) ListActions(c echo.Context) error {
	query := dto.ActionLogQuery{
		Action:  c.QueryParam("action"),
		Outcome: c.QueryParam("outcome"),
		Limit:   getIntParam(c, "limit", defaultActionLimit),
	}
	if query.Limit <= 0 || query.Limit > maxActionLimit {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("limit: must be between 1 and 500"))
	}
	if query.Action != "" {
		if err := services.ValidateAction(query.Action); err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
		}
	}
	if query.Outcome != "" {
		if err := services.ValidateOutcome(query.Outcome); err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
		}
	}

	logs, total, err := h.journal.Recent(c.Request().Context(), repositories.ActionLogFilter{
		Action:  query.Action,
		Outcome: query.Outcome,
		Limit:   query.Limit,
	})
	if err != nil {
		return SendDatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ActionLogList{Actions: logs, Count: int(total)})
}

// GetTrace returns every journal row written under one trace ID, oldest first
func (h *ActionHandler) GetTrace(c echo.Context) error {
	traceID := c.Param("traceId")
	logs, err := h.journal.Trace(c.Request().Context(), traceID)
	if err != nil {
		return SendDatabaseError(c, err)
	}
	if len(logs) == 0 {
		return SendError(c, errors.SystemNotFound, errors.WithDetails("no actions recorded for trace "+traceID))
	}
	return c.JSON(http.StatusOK, dto.ActionLogList{Actions: logs, Count: len(logs)})
}
