package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidFile   ErrorCode = "VALIDATION_005"
	ValidationInvalidTab    ErrorCode = "VALIDATION_006"
)

// Backend gateway error codes (GATEWAY_*)
const (
	GatewayTransport   ErrorCode = "GATEWAY_001"
	GatewayStatus      ErrorCode = "GATEWAY_002"
	GatewayDecode      ErrorCode = "GATEWAY_003"
	GatewayTimeout     ErrorCode = "GATEWAY_004"
	GatewayUnavailable ErrorCode = "GATEWAY_005"
)

// Dashboard action error codes (DASHBOARD_*)
const (
	DashboardActionInProgress ErrorCode = "DASHBOARD_001"
	DashboardNothingToDelete  ErrorCode = "DASHBOARD_002"
	DashboardClosed           ErrorCode = "DASHBOARD_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemNotFound           ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidFile:   "Only .csv files can be uploaded",
	ValidationInvalidTab:    "Unknown dashboard tab",

	// Gateway errors
	GatewayTransport:   "Analysis backend could not be reached",
	GatewayStatus:      "Analysis backend rejected the request",
	GatewayDecode:      "Analysis backend returned a malformed response",
	GatewayTimeout:     "Analysis backend did not answer in time",
	GatewayUnavailable: "Analysis backend is temporarily unavailable",

	// Dashboard errors
	DashboardActionInProgress: "This action is already in progress",
	DashboardNothingToDelete:  "There are no records to delete",
	DashboardClosed:           "Dashboard has been shut down",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotFound:           "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
