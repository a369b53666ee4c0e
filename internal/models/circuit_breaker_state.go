package models

type CircuitBreakerState int

const (
	CircuitClosed CircuitBreakerState = iota
	CircuitOpen
	CircuitHalfOpen
)

func (s CircuitBreakerState) String() string {
	switch s {
	case CircuitClosed:
		return "closed"
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

// CircuitTransition is one breaker state change. The zero value means the
// state did not change.
type CircuitTransition struct {
	From CircuitBreakerState
	To   CircuitBreakerState
}

func (t CircuitTransition) Changed() bool {
	return t.From != t.To
}
