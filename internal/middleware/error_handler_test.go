package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "transaction-analyzer/internal/errors"
	"transaction-analyzer/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// ErrorHandlerTestSuite defines the test suite for error handler middleware
type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

// SetupTest runs before each test
func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

// TestErrorHandlerTestSuite runs the test suite
func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

// TestCustomHTTPErrorHandler_EchoHTTPError tests handling of Echo HTTP errors
func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_EchoHTTPError() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	echoErr := echo.NewHTTPError(http.StatusNotFound, "Resource not found")
	CustomHTTPErrorHandler(echoErr, c)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "test-trace-id")
	s.Contains(rec.Body.String(), "Resource not found")
}

// TestCustomHTTPErrorHandler_GenericError tests handling of generic errors
func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_GenericError() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	err := errors.New("generic error")
	CustomHTTPErrorHandler(err, c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
	s.Contains(rec.Body.String(), "test-trace-id")
}

// TestCustomHTTPErrorHandler_NoTraceID tests error handling without trace ID
func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_NoTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := errors.New("test error")
	CustomHTTPErrorHandler(err, c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "unknown")
}

// TestCustomHTTPErrorHandler_CommittedResponse tests that handler doesn't process committed responses
func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_CommittedResponse() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	// Commit the response by writing to it
	_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})

	// Now try to handle an error - should not overwrite
	err := errors.New("test error")
	CustomHTTPErrorHandler(err, c)

	// Should still have the original 200 response
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
}

// TestMapHTTPStatusToErrorCode_AllStatuses tests error code mapping
func (s *ErrorHandlerTestSuite) TestMapHTTPStatusToErrorCode_AllStatuses() {
	testCases := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, "VALIDATION_001"},
		{http.StatusNotFound, "SYSTEM_007"},
		{http.StatusConflict, "DASHBOARD_001"},
		{http.StatusRequestEntityTooLarge, "VALIDATION_001"},
		{http.StatusUnprocessableEntity, "VALIDATION_001"},
		{http.StatusTooManyRequests, "SYSTEM_006"},
		{http.StatusInternalServerError, "SYSTEM_001"},
		{http.StatusServiceUnavailable, "SYSTEM_003"},
		{999, "SYSTEM_005"}, // Unknown status
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := s.echo.NewContext(req, rec)
			c.Set(TraceIDContextKey, "test-trace-id")

			echoErr := echo.NewHTTPError(tc.status)
			CustomHTTPErrorHandler(echoErr, c)

			s.Equal(tc.status, rec.Code)
			s.Contains(rec.Body.String(), tc.expectedCode)
		})
	}
}

// TestCustomHTTPErrorHandler_JSONFormat tests that response is valid JSON
func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_JSONFormat() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	err := errors.New("test error")
	CustomHTTPErrorHandler(err, c)

	// Check Content-Type
	s.Contains(rec.Header().Get("Content-Type"), "application/json")
}

func (s *ErrorHandlerTestSuite) decode(rec *httptest.ResponseRecorder) apperrors.ErrorResponse {
	var body apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_GatewayStatusError() {
	req := httptest.NewRequest(http.MethodPost, "/api/dashboard/merchant/analyze", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "gw-trace")

	err := fmt.Errorf("analyze: %w", apperrors.NewStatusError("analyze_merchants", 500, "normalizer crashed"))
	CustomHTTPErrorHandler(err, c)

	s.Equal(http.StatusBadGateway, rec.Code)
	body := s.decode(rec)
	s.Equal(string(apperrors.GatewayStatus), body.Error.Code)
	s.Equal([]string{"normalizer crashed"}, body.Error.Details)
	s.Equal("gw-trace", body.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_GatewayTimeout() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	CustomHTTPErrorHandler(apperrors.NewGatewayError(apperrors.KindTimeout, "list_patterns", errors.New("deadline")), c)

	s.Equal(http.StatusGatewayTimeout, rec.Code)
	s.Equal(string(apperrors.GatewayTimeout), s.decode(rec).Error.Code)
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_Rejections() {
	testCases := []struct {
		err    error
		status int
		code   apperrors.ErrorCode
	}{
		{apperrors.ErrActionInProgress, http.StatusConflict, apperrors.DashboardActionInProgress},
		{apperrors.ErrNothingToDelete, http.StatusConflict, apperrors.DashboardNothingToDelete},
		{apperrors.ErrInvalidUpload, http.StatusBadRequest, apperrors.ValidationInvalidFile},
		{fmt.Errorf("%w: %q", apperrors.ErrInvalidTab, "ledger"), http.StatusBadRequest, apperrors.ValidationInvalidTab},
		{apperrors.ErrDashboardClosed, http.StatusServiceUnavailable, apperrors.DashboardClosed},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := s.echo.NewContext(req, rec)

			CustomHTTPErrorHandler(tc.err, c)

			s.Equal(tc.status, rec.Code)
			s.Equal(string(tc.code), s.decode(rec).Error.Code)
		})
	}
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_ValidationErrors() {
	req := httptest.NewRequest(http.MethodPut, "/api/dashboard/tab", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	payload := struct {
		Tab string `json:"tab" validate:"required,tab"`
	}{Tab: "ledger"}
	err := validation.GetValidator().Struct(payload)
	s.Require().Error(err)

	CustomHTTPErrorHandler(err, c)

	s.Equal(http.StatusBadRequest, rec.Code)
	body := s.decode(rec)
	s.Equal(string(apperrors.ValidationGeneral), body.Error.Code)
	s.Require().Len(body.Error.Details, 1)
	s.Contains(body.Error.Details[0], "must be merchant or pattern")
}
