package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func allCodes() []ErrorCode {
	return []ErrorCode{
		ValidationGeneral,
		ValidationRequiredField,
		ValidationInvalidFormat,
		ValidationOutOfRange,
		ValidationInvalidFile,
		ValidationInvalidTab,
		GatewayTransport,
		GatewayStatus,
		GatewayDecode,
		GatewayTimeout,
		GatewayUnavailable,
		DashboardActionInProgress,
		DashboardNothingToDelete,
		DashboardClosed,
		SystemInternalError,
		SystemDatabaseError,
		SystemServiceUnavailable,
		SystemConfigurationError,
		SystemUnexpectedError,
		SystemRateLimitExceeded,
		SystemNotFound,
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{"Validation Invalid File", ValidationInvalidFile, "Only .csv files can be uploaded"},
		{"Gateway Status", GatewayStatus, "Analysis backend rejected the request"},
		{"Gateway Timeout", GatewayTimeout, "Analysis backend did not answer in time"},
		{"Dashboard Action In Progress", DashboardActionInProgress, "This action is already in progress"},
		{"Dashboard Nothing To Delete", DashboardNothingToDelete, "There are no records to delete"},
		{"System Internal Error", SystemInternalError, "An unexpected error occurred. Please contact support with trace ID"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	for _, code := range allCodes() {
		s.Run(string(code), func() {
			s.True(IsValidErrorCode(code), "Expected %s to be valid", code)
		})
	}

	for _, code := range []ErrorCode{"INVALID_001", "", "AUTH_001", "GATEWAY_999"} {
		s.False(IsValidErrorCode(code), "Expected %s to be invalid", code)
	}
}

// TestErrorCodeConstants_Uniqueness ensures all error codes are unique
func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, code := range allCodes() {
		s.False(seen[code], "Duplicate error code found: %s", code)
		seen[code] = true
	}
}

// TestErrorCodeConstants_Format ensures all error codes follow naming convention
func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	prefixes := []string{"VALIDATION_", "GATEWAY_", "DASHBOARD_", "SYSTEM_"}
	for _, code := range allCodes() {
		matched := false
		for _, prefix := range prefixes {
			if strings.HasPrefix(string(code), prefix) {
				matched = true
			}
		}
		s.True(matched, "code %s has no known prefix", code)
	}
}
