package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half_open"
)

type BreakerConfig struct {
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenProbes   int
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenProbes:   1,
	}
}

func (c BreakerConfig) normalize() BreakerConfig {
	defaults := DefaultBreakerConfig()
	if c.FailureThreshold < 1 {
		c.FailureThreshold = defaults.FailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = defaults.OpenTimeout
	}
	if c.HalfOpenProbes < 1 {
		c.HalfOpenProbes = defaults.HalfOpenProbes
	}
	return c
}

// Breaker stops calling a failing dependency for OpenTimeout after
// FailureThreshold consecutive failures, then lets HalfOpenProbes calls
// through to decide whether to close again.
type Breaker struct {
	mu  sync.Mutex
	cfg BreakerConfig
	now func() time.Time

	state    State
	failures int
	openedAt time.Time
	probing  int
	probesOK int
}

func NewBreaker(cfg BreakerConfig) *Breaker {
	return &Breaker{
		cfg:   cfg.normalize(),
		now:   time.Now,
		state: StateClosed,
	}
}

// Do runs fn unless the breaker is open and records its outcome.
func (b *Breaker) Do(fn func() error) error {
	if err := b.acquire(); err != nil {
		return err
	}

	err := fn()
	b.record(err == nil)
	return err
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return StateHalfOpen
	}
	return b.state
}

func (b *Breaker) acquire() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen {
		if b.now().Sub(b.openedAt) < b.cfg.OpenTimeout {
			return ErrCircuitOpen
		}
		b.state = StateHalfOpen
		b.probing = 0
		b.probesOK = 0
	}

	if b.state == StateHalfOpen {
		if b.probing >= b.cfg.HalfOpenProbes {
			return ErrCircuitOpen
		}
		b.probing++
	}

	return nil
}

func (b *Breaker) record(ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		if ok {
			b.failures = 0
			return
		}
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.open()
		}
	case StateHalfOpen:
		if b.probing > 0 {
			b.probing--
		}
		if !ok {
			b.open()
			return
		}
		b.probesOK++
		if b.probesOK >= b.cfg.HalfOpenProbes && b.probing == 0 {
			b.state = StateClosed
			b.failures = 0
		}
	case StateOpen:
		b.openedAt = b.now()
	}
}

func (b *Breaker) open() {
	b.state = StateOpen
	b.openedAt = b.now()
	b.probing = 0
	b.probesOK = 0
}
