package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a failed backend call.
type Kind string

const (
	KindTransport   Kind = "transport"
	KindStatus      Kind = "status"
	KindDecode      Kind = "decode"
	KindTimeout     Kind = "timeout"
	KindUnavailable Kind = "unavailable"
)

// Code returns the error code surfaced for the kind.
func (k Kind) Code() ErrorCode {
	switch k {
	case KindTransport:
		return GatewayTransport
	case KindStatus:
		return GatewayStatus
	case KindDecode:
		return GatewayDecode
	case KindTimeout:
		return GatewayTimeout
	case KindUnavailable:
		return GatewayUnavailable
	default:
		return SystemUnexpectedError
	}
}

// GatewayError is returned by every failed backend call.
type GatewayError struct {
	Kind       Kind
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func NewGatewayError(kind Kind, op string, err error) *GatewayError {
	return &GatewayError{Kind: kind, Op: op, Err: err}
}

// NewStatusError builds a status-kind error for a non-2xx response. message is
// the backend's own explanation when it sent one.
func NewStatusError(op string, statusCode int, message string) *GatewayError {
	return &GatewayError{Kind: KindStatus, Op: op, StatusCode: statusCode, Message: message}
}

func (e *GatewayError) Error() string {
	msg := fmt.Sprintf("backend %s failed (%s)", e.Op, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": status %d", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func (e *GatewayError) Code() ErrorCode {
	return e.Kind.Code()
}

// AsGatewayError unwraps err to a *GatewayError if it carries one.
func AsGatewayError(err error) (*GatewayError, bool) {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr, true
	}
	return nil, false
}

// IsKind reports whether err is a gateway failure of the given kind.
func IsKind(err error, kind Kind) bool {
	gwErr, ok := AsGatewayError(err)
	return ok && gwErr.Kind == kind
}

// Controller rejections. They never reach the network.
var (
	ErrActionInProgress = errors.New("action already in progress")
	ErrNothingToDelete  = errors.New("nothing to delete")
	ErrDashboardClosed  = errors.New("dashboard closed")
	ErrInvalidUpload    = errors.New("upload must be a .csv file")
	ErrInvalidTab       = errors.New("unknown tab")
)

// CodeFor maps any error produced by the dashboard layer to its API code.
func CodeFor(err error) ErrorCode {
	if err == nil {
		return ""
	}
	if gwErr, ok := AsGatewayError(err); ok {
		return gwErr.Code()
	}
	switch {
	case errors.Is(err, ErrActionInProgress):
		return DashboardActionInProgress
	case errors.Is(err, ErrNothingToDelete):
		return DashboardNothingToDelete
	case errors.Is(err, ErrDashboardClosed):
		return DashboardClosed
	case errors.Is(err, ErrInvalidUpload):
		return ValidationInvalidFile
	case errors.Is(err, ErrInvalidTab):
		return ValidationInvalidTab
	default:
		return SystemInternalError
	}
}

// IsRejection reports whether err is a controller rejection rather than a
// failed backend call.
func IsRejection(err error) bool {
	return errors.Is(err, ErrActionInProgress) || errors.Is(err, ErrNothingToDelete) ||
		errors.Is(err, ErrDashboardClosed) || errors.Is(err, ErrInvalidUpload) ||
		errors.Is(err, ErrInvalidTab)
}
