package services

import (
	"errors"
	"sync"
	"time"

	"transaction-analyzer/internal/models"
)

// ErrCircuitBreakerOpen is wrapped into the unavailable gateway error
// returned while the backend is left alone to recover.
var ErrCircuitBreakerOpen = errors.New("circuit breaker is open")

// CircuitBreakerConfig tunes the backend breaker. Threshold consecutive
// transport or 5xx failures open it. Once Cooldown has passed it lets one
// trial request through at a time until TrialSuccesses of them succeed.
type CircuitBreakerConfig struct {
	Threshold      int
	Cooldown       time.Duration
	TrialSuccesses int
}

// CircuitBreaker guards the resource gateway. Every method that can move
// the breaker returns the transition it made, so callers report exactly the
// changes they caused.
type CircuitBreaker struct {
	mu        sync.Mutex
	config    CircuitBreakerConfig
	state     models.CircuitBreakerState
	failures  int
	successes int
	openedAt  time.Time
	trial     bool
	trialAt   time.Time
	now       func() time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig) CircuitBreakerInterface {
	return newCircuitBreaker(config, time.Now)
}

func newCircuitBreaker(config CircuitBreakerConfig, now func() time.Time) *CircuitBreaker {
	if config.Threshold <= 0 {
		config.Threshold = 1
	}
	if config.TrialSuccesses <= 0 {
		config.TrialSuccesses = 1
	}
	return &CircuitBreaker{
		config: config,
		state:  models.CircuitClosed,
		now:    now,
	}
}

// Allow reports whether a request may go out. An open breaker past its
// cooldown turns half-open. A half-open breaker admits a single trial; a
// trial that has not settled within one cooldown is given up on.
func (cb *CircuitBreaker) Allow() (bool, models.CircuitTransition) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	var t models.CircuitTransition
	now := cb.now()

	if cb.state == models.CircuitOpen {
		if now.Sub(cb.openedAt) < cb.config.Cooldown {
			return false, t
		}
		t = cb.moveTo(models.CircuitHalfOpen)
	}

	if cb.state == models.CircuitHalfOpen {
		if cb.trial && now.Sub(cb.trialAt) < cb.config.Cooldown {
			return false, t
		}
		cb.trial = true
		cb.trialAt = now
	}
	return true, t
}

func (cb *CircuitBreaker) RecordSuccess() models.CircuitTransition {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case models.CircuitHalfOpen:
		cb.trial = false
		cb.successes++
		if cb.successes >= cb.config.TrialSuccesses {
			return cb.moveTo(models.CircuitClosed)
		}
	case models.CircuitClosed:
		cb.failures = 0
	}
	return models.CircuitTransition{}
}

func (cb *CircuitBreaker) RecordFailure() models.CircuitTransition {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case models.CircuitHalfOpen:
		return cb.moveTo(models.CircuitOpen)
	case models.CircuitClosed:
		cb.failures++
		if cb.failures >= cb.config.Threshold {
			return cb.moveTo(models.CircuitOpen)
		}
	}
	return models.CircuitTransition{}
}

// moveTo must be called with the lock held.
func (cb *CircuitBreaker) moveTo(state models.CircuitBreakerState) models.CircuitTransition {
	t := models.CircuitTransition{From: cb.state, To: state}
	cb.state = state
	cb.successes = 0
	cb.trial = false
	switch state {
	case models.CircuitOpen:
		cb.openedAt = cb.now()
	case models.CircuitClosed:
		cb.failures = 0
	}
	return t
}

func (cb *CircuitBreaker) State() models.CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Failures is the current run of consecutive failures while closed.
func (cb *CircuitBreaker) Failures() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.failures
}
