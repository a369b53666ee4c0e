package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"transaction-analyzer/internal/errors"
	"transaction-analyzer/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Control API errors counter metric
	apiErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "control_api_errors_total",
			Help: "Total number of control API errors by code, endpoint, and status",
		},
		[]string{"code", "endpoint", "status"},
	)
)

// CustomHTTPErrorHandler formats every error leaving a handler as a
// standardized error response and logs it.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	errorResponse := buildErrorResponse(err, traceID)
	httpStatus := errorResponse.GetHTTPStatus()
	var echoErr *echo.HTTPError
	if stderrors.As(err, &echoErr) {
		httpStatus = echoErr.Code
	}

	logLevel := slog.LevelWarn
	if httpStatus >= 500 {
		logLevel = slog.LevelError
	}

	slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
		"trace_id", traceID,
		"error_code", errorResponse.Error.Code,
		"status", httpStatus,
		"message", errorResponse.Error.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(
		errorResponse.Error.Code,
		c.Path(),
		fmt.Sprintf("%d", httpStatus),
	).Inc()

	if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
		slog.Error("Failed to send error response",
			"trace_id", traceID,
			"error", sendErr.Error(),
		)
	}
}

func buildErrorResponse(err error, traceID string) *errors.ErrorResponse {
	var echoErr *echo.HTTPError
	if stderrors.As(err, &echoErr) {
		return errors.NewErrorResponse(
			mapHTTPStatusToErrorCode(echoErr.Code),
			traceID,
			errors.WithMessage(fmt.Sprintf("%v", echoErr.Message)),
		)
	}

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		return errors.NewValidationErrorFromList(validation.FieldErrors(validationErrs), traceID)
	}

	if gwErr, ok := errors.AsGatewayError(err); ok {
		var opts []errors.ErrorOption
		if gwErr.Message != "" {
			opts = append(opts, errors.WithDetails(gwErr.Message))
		}
		return errors.NewErrorResponse(gwErr.Code(), traceID, opts...)
	}

	if errors.IsRejection(err) {
		return errors.NewErrorResponse(errors.CodeFor(err), traceID)
	}

	response, _ := errors.WrapSystemError(err, traceID)
	return response
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnprocessableEntity,
		http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
		return errors.ValidationGeneral
	case http.StatusNotFound:
		return errors.SystemNotFound
	case http.StatusConflict:
		return errors.DashboardActionInProgress
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}
