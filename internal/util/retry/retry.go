// Package retry provides a bounded fixed-interval polling helper for slow
// host operations, such as waiting for a container to come up.
package retry

import (
	"context"
	"fmt"
	"time"
)

// Config holds polling configuration.
type Config struct {
	MaxAttempts int
	Interval    time.Duration
}

// Option is a functional option for polling configuration.
type Option func(*Config)

// Poll invokes probe once per interval until it reports success or the
// attempt budget is exhausted. Context cancellation is respected between
// attempts. Exhaustion is not an error: the boolean result reports whether
// the probe ever succeeded, so callers decide how to proceed.
//
// The interval elapses before the first probe, matching the behaviour of
// waiting for a resource that has just been started.
func Poll(ctx context.Context, probe func(attempt int) bool, opts ...Option) (bool, error) {
	cfg := &Config{
		MaxAttempts: 30,
		Interval:    5 * time.Second,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return false, fmt.Errorf("polling cancelled after %d attempts: %w", attempt-1, ctx.Err())
		case <-time.After(cfg.Interval):
		}

		if probe(attempt) {
			return true, nil
		}
	}

	return false, nil
}

// WithMaxAttempts sets the attempt budget.
func WithMaxAttempts(n int) Option {
	return func(c *Config) {
		c.MaxAttempts = n
	}
}

// WithInterval sets the delay before each attempt.
func WithInterval(d time.Duration) Option {
	return func(c *Config) {
		c.Interval = d
	}
}
