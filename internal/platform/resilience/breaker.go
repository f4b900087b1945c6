// Package resilience guards calls to flaky dependencies.
package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type State uint8

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func (c CircuitBreakerConfig) withDefaults() CircuitBreakerConfig {
	if c.FailureThreshold < 1 {
		c.FailureThreshold = 5
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = 15 * time.Second
	}
	if c.HalfOpenMaxReq < 1 {
		c.HalfOpenMaxReq = 2
	}
	return c
}

// CircuitBreaker opens after FailureThreshold consecutive failures, rejects calls for
// OpenTimeout, then lets HalfOpenMaxReq probes through before closing again.
// A disabled breaker runs every call and tracks nothing.
type CircuitBreaker struct {
	mu  sync.Mutex
	cfg CircuitBreakerConfig

	state          State
	failures       int
	openedAt       time.Time
	probesInFlight int
	probesPassed   int

	now      func() time.Time
	onChange func(from, to State)
}

// NewCircuitBreaker builds a breaker; onChange, when set, is called outside the lock on every transition.
func NewCircuitBreaker(cfg CircuitBreakerConfig, onChange func(from, to State)) *CircuitBreaker {
	return &CircuitBreaker{
		cfg:      cfg.withDefaults(),
		now:      time.Now,
		onChange: onChange,
	}
}

// Execute runs fn unless the circuit is open. isFailure decides which errors count
// against the circuit; nil counts every error.
func (b *CircuitBreaker) Execute(fn func() error, isFailure func(error) bool) error {
	if !b.cfg.Enabled {
		return fn()
	}
	if err := b.acquire(); err != nil {
		return err
	}

	err := fn()
	failed := err != nil && (isFailure == nil || isFailure(err))
	b.release(failed)
	return err
}

func (b *CircuitBreaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return StateHalfOpen
	}
	return b.state
}

func (b *CircuitBreaker) acquire() error {
	b.mu.Lock()
	from := b.state
	if b.state == StateOpen {
		if b.now().Sub(b.openedAt) < b.cfg.OpenTimeout {
			b.mu.Unlock()
			return ErrCircuitOpen
		}
		b.moveTo(StateHalfOpen)
	}
	if b.state == StateHalfOpen {
		if b.probesInFlight >= b.cfg.HalfOpenMaxReq {
			b.mu.Unlock()
			b.notify(from, StateHalfOpen)
			return ErrCircuitOpen
		}
		b.probesInFlight++
	}
	to := b.state
	b.mu.Unlock()

	b.notify(from, to)
	return nil
}

func (b *CircuitBreaker) release(failed bool) {
	b.mu.Lock()
	from := b.state
	switch b.state {
	case StateClosed:
		if !failed {
			b.failures = 0
			break
		}
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.moveTo(StateOpen)
		}
	case StateHalfOpen:
		if b.probesInFlight > 0 {
			b.probesInFlight--
		}
		if failed {
			b.moveTo(StateOpen)
			break
		}
		b.probesPassed++
		if b.probesPassed >= b.cfg.HalfOpenMaxReq && b.probesInFlight == 0 {
			b.moveTo(StateClosed)
		}
	case StateOpen:
		if failed {
			b.openedAt = b.now()
		}
	}
	to := b.state
	b.mu.Unlock()

	b.notify(from, to)
}

func (b *CircuitBreaker) moveTo(state State) {
	b.state = state
	b.failures = 0
	b.probesInFlight = 0
	b.probesPassed = 0
	b.openedAt = time.Time{}
	if state == StateOpen {
		b.openedAt = b.now()
	}
}

func (b *CircuitBreaker) notify(from, to State) {
	if from != to && b.onChange != nil {
		b.onChange(from, to)
	}
}
