package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"transaction-analyzer/internal/dto"
	"transaction-analyzer/internal/errors"
	"transaction-analyzer/internal/models"
	"transaction-analyzer/internal/services"
	"transaction-analyzer/internal/validation"

	"github.com/labstack/echo/v4"
)

const (
	actionStatusAccepted = "accepted"
	uploadFormField      = "file"
)

// DashboardHandler exposes the dashboard controller over HTTP. Actions are
// started in the background and answered with 202; clients poll
// GET /api/dashboard to see them settle.
type DashboardHandler struct {
	controller     services.DashboardControllerInterface
	maxUploadBytes int64
	// run starts an action; tests replace it to run synchronously
	run func(func())
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(controller services.DashboardControllerInterface, maxUploadBytes int64) *DashboardHandler {
	return &DashboardHandler{
		controller:     controller,
		maxUploadBytes: maxUploadBytes,
		run:            func(fn func()) { go fn() },
	}
}

// GetDashboard returns the current view-model
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewDashboardResponse(h.controller.State()))
}

// SwitchTab makes the requested tab active and waits for its first load, so
// the response already reflects the new tab.
func (h *DashboardHandler) SwitchTab(c echo.Context) error {
	var req dto.SwitchTabRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationInvalidTab, errors.WithDetails(validation.FieldErrors(err)...))
	}

	if err := h.controller.SwitchTab(c.Request().Context(), models.Tab(req.Tab)); err != nil {
		return SendActionError(c, err)
	}
	return h.GetDashboard(c)
}

// Upload reads a CSV file from the multipart field "file" and uploads it to
// the analysis backend in the background.
func (h *DashboardHandler) Upload(c echo.Context) error {
	header, err := c.FormFile(uploadFormField)
	if err != nil {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("file: is required"))
	}
	if !validation.IsCSVFileName(header.Filename) {
		return SendError(c, errors.ValidationInvalidFile)
	}
	if h.maxUploadBytes > 0 && header.Size > h.maxUploadBytes {
		return SendError(c, errors.ValidationOutOfRange,
			errors.WithDetails(fmt.Sprintf("file: must be at most %d bytes", h.maxUploadBytes)))
	}
	if h.controller.State().IsBusy(models.FlagUploading) {
		return SendError(c, errors.DashboardActionInProgress)
	}

	src, err := header.Open()
	if err != nil {
		return SendSystemError(c, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return SendSystemError(c, err)
	}

	file := dto.UploadFile{Name: header.Filename, Data: data}
	return h.start(c, models.ActionUpload, "", func(ctx context.Context) error {
		return h.controller.Upload(ctx, file)
	})
}

// AnalyzeMerchants starts merchant normalization
func (h *DashboardHandler) AnalyzeMerchants(c echo.Context) error {
	if h.controller.State().IsBusy(models.FlagAnalyzingMerchant) {
		return SendError(c, errors.DashboardActionInProgress)
	}
	return h.start(c, models.ActionAnalyzeMerchants, "", h.controller.AnalyzeMerchants)
}

// DetectPatterns starts pattern detection
func (h *DashboardHandler) DetectPatterns(c echo.Context) error {
	if h.controller.State().IsBusy(models.FlagDetectingPatterns) {
		return SendError(c, errors.DashboardActionInProgress)
	}
	return h.start(c, models.ActionDetectPatterns, "", h.controller.DetectPatterns)
}

// DeleteTransaction deletes one transaction. A second request for an id
// whose delete is still in flight gets 409.
func (h *DashboardHandler) DeleteTransaction(c echo.Context) error {
	raw, err := url.PathUnescape(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("id: must be a valid path segment"))
	}
	id, err := models.ParseRecordID(raw)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("id: must be a non-empty identifier"))
	}
	if h.controller.State().IsPending(id) {
		return SendError(c, errors.DashboardActionInProgress)
	}
	return h.start(c, models.ActionDeleteTransaction, id.String(), func(ctx context.Context) error {
		return h.controller.DeleteTransaction(ctx, id)
	})
}

// DeleteAll empties the active tab's collection. It is refused with 409 while
// the collection is empty or a bulk delete is running.
func (h *DashboardHandler) DeleteAll(c echo.Context) error {
	state := h.controller.State()
	if !state.CanDeleteAll {
		if state.IsBusy(models.FlagBulkDeleting) {
			return SendError(c, errors.DashboardActionInProgress)
		}
		return SendError(c, errors.DashboardNothingToDelete)
	}
	return h.start(c, models.ActionDeleteAll, string(state.ActiveTab), h.controller.DeleteAll)
}

// start runs action detached from the request. The request context still
// carries the trace ID, so the journal rows match the X-Trace-ID header.
func (h *DashboardHandler) start(c echo.Context, action, resourceID string, fn func(context.Context) error) error {
	ctx := context.WithoutCancel(c.Request().Context())
	h.run(func() {
		// The controller logs, journals and notifies every outcome itself.
		_ = fn(ctx)
	})
	return c.JSON(http.StatusAccepted, dto.ActionAccepted{
		Action:     action,
		ResourceID: resourceID,
		Status:     actionStatusAccepted,
	})
}
