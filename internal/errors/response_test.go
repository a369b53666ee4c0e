package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(DashboardNothingToDelete, s.traceID)

	s.Equal("DASHBOARD_002", response.Error.Code)
	s.Equal("There are no records to delete", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithMultipleOptions() {
	details := []string{"op: list_transactions", "status: 500"}
	response := NewErrorResponse(
		GatewayStatus,
		s.traceID,
		WithMessage("Failed to analyze merchants"),
		WithDetails(details...),
	)

	s.Equal("GATEWAY_002", response.Error.Code)
	s.Equal("Failed to analyze merchants", response.Error.Message)
	s.Equal(details, response.Error.Details)
}

func (s *ResponseTestSuite) TestWithOptions_LastWins() {
	response := NewErrorResponse(
		SystemInternalError,
		s.traceID,
		WithMessage("First message"),
		WithMessage("Second message"),
		WithDetails("detail1", "detail2"),
		WithDetails("detail3"),
	)

	s.Equal("Second message", response.Error.Message)
	s.Equal([]string{"detail3"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_WithFieldErrors() {
	response := NewValidationError(map[string]string{
		"tab":  "must be merchant or pattern",
		"file": "is required",
	}, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal([]string{"file: is required", "tab: must be merchant or pattern"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationErrorFromList_Success() {
	details := []string{"limit: must be at most 500"}
	response := NewValidationErrorFromList(details, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal(details, response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_NoInternalDetailsExposed() {
	internalErr := errors.New("pq: connection refused on 10.0.0.4")

	response, originalErr := WrapSystemError(internalErr, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.Equal(internalErr, originalErr)
	s.NotContains(response.Error.Message, "10.0.0.4")
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapDatabaseError_Success() {
	response, _ := WrapDatabaseError(errors.New("locked"), s.traceID)
	s.Equal("SYSTEM_002", response.Error.Code)
}

func (s *ResponseTestSuite) TestToJSON_EmptyDetailsOmitted() {
	response := &ErrorResponse{Error: ErrorDetail{Code: "SYSTEM_001", Message: "x", TraceID: s.traceID}}

	jsonBytes, err := response.ToJSON()
	s.NoError(err)

	var jsonMap map[string]map[string]interface{}
	s.NoError(json.Unmarshal(jsonBytes, &jsonMap))
	_, hasDetails := jsonMap["error"]["details"]
	s.False(hasDetails, "Empty details should be omitted from JSON")
	s.Equal(s.traceID, jsonMap["error"]["trace_id"])
}

func (s *ResponseTestSuite) TestGetHTTPStatus_AllErrorCodes() {
	testCases := []struct {
		code           ErrorCode
		expectedStatus int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationInvalidFile, http.StatusBadRequest},
		{ValidationInvalidTab, http.StatusBadRequest},
		{DashboardActionInProgress, http.StatusConflict},
		{DashboardNothingToDelete, http.StatusConflict},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemNotFound, http.StatusNotFound},
		{GatewayTransport, http.StatusBadGateway},
		{GatewayStatus, http.StatusBadGateway},
		{GatewayDecode, http.StatusBadGateway},
		{GatewayUnavailable, http.StatusServiceUnavailable},
		{DashboardClosed, http.StatusServiceUnavailable},
		{GatewayTimeout, http.StatusGatewayTimeout},
		{SystemInternalError, http.StatusInternalServerError},
		{SystemDatabaseError, http.StatusInternalServerError},
		{"UNKNOWN_999", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expectedStatus, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestClientAndServerErrors() {
	conflict := NewErrorResponse(DashboardActionInProgress, s.traceID)
	s.True(conflict.IsClientError())
	s.False(conflict.IsServerError())

	gateway := NewErrorResponse(GatewayTransport, s.traceID)
	s.True(gateway.IsServerError())
	s.False(gateway.IsClientError())
}

func (s *ResponseTestSuite) TestString_FormatsCorrectly() {
	str := NewErrorResponse(DashboardNothingToDelete, s.traceID).String()

	s.Contains(str, "DASHBOARD_002")
	s.Contains(str, "There are no records to delete")
	s.Contains(str, s.traceID)
}
