package handlers

import (
	"net/http"

	"transaction-analyzer/internal/errors"
	"transaction-analyzer/internal/middleware"

	"github.com/labstack/echo/v4"
)

// Error responses
//
// Handlers answer errors through these helpers so every failure carries the
// standard envelope and the request's trace ID:
//
//   - SendError for a known code (validation, 409 rejections, 404s)
//   - SendActionError for anything the dashboard controller or gateway returned
//   - SendSystemError for unexpected internal failures and SendDatabaseError
//     for journal failures; the cause is never exposed to the client

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	if traceID := middleware.GetTraceID(c); traceID != "" {
		return traceID
	}
	return "unknown"
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendActionError maps a controller or gateway error onto its code. The
// backend's own message, when it sent one, is passed on as a detail.
func SendActionError(c echo.Context, err error) error {
	if gwErr, ok := errors.AsGatewayError(err); ok && gwErr.Message != "" {
		return SendError(c, gwErr.Code(), errors.WithDetails(gwErr.Message))
	}
	code := errors.CodeFor(err)
	if code == errors.SystemInternalError {
		return SendSystemError(c, err)
	}
	return SendError(c, code)
}

// SendSystemError wraps a system error with generic message
func SendSystemError(c echo.Context, err error) error {
	errorResponse, _ := errors.WrapSystemError(err, getTraceID(c))
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendDatabaseError reports a journal storage failure with a generic message
func SendDatabaseError(c echo.Context, err error) error {
	errorResponse, _ := errors.WrapDatabaseError(err, getTraceID(c))
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
