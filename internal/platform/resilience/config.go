package resilience

import "time"

// Defaults for the breaker in front of the match store. Reads are short, so a few consecutive
// driver failures already mean the database is unreachable.
const (
	defaultFailureThreshold = 5
	defaultOpenTimeout      = 15 * time.Second
	defaultHalfOpenMaxReq   = 2
)

type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

// Normalized replaces non-positive fields with the defaults.
func (c CircuitBreakerConfig) Normalized() CircuitBreakerConfig {
	if c.FailureThreshold < 1 {
		c.FailureThreshold = defaultFailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = defaultOpenTimeout
	}
	if c.HalfOpenMaxReq < 1 {
		c.HalfOpenMaxReq = defaultHalfOpenMaxReq
	}
	return c
}

// NewCircuitBreakerFromConfig builds a breaker from the normalized cfg. It returns false when
// cfg is disabled.
func NewCircuitBreakerFromConfig(cfg CircuitBreakerConfig) (*CircuitBreaker, bool) {
	if !cfg.Enabled {
		return nil, false
	}
	cfg = cfg.Normalized()
	return NewCircuitBreaker(cfg.FailureThreshold, cfg.OpenTimeout, cfg.HalfOpenMaxReq), true
}
