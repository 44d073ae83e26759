// Package retry provides a bounded retry helper for external operations.
package retry

import (
	"context"
	"time"
)

// Config holds retry behavior for one operation.
type Config struct {
	// MaxRetries is the number of additional attempts after the first.
	MaxRetries int
	// Delay is the fixed pause between attempts.
	Delay time.Duration
}

// Classifier reports whether a failed attempt is worth retrying.
type Classifier func(err error) bool

// Do runs fn up to cfg.MaxRetries+1 times. fn receives the zero-based
// attempt number so callers can vary parameters between attempts. A nil
// classifier retries every failure.
func Do(ctx context.Context, cfg Config, classify Classifier, fn func(ctx context.Context, attempt int) error) error {
	var lastErr error

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		err := fn(ctx, attempt)
		if err == nil {
			return nil
		}
		lastErr = err

		if classify != nil && !classify(err) {
			// Permanent error, don't retry
			return err
		}

		// Last attempt, don't sleep
		if attempt == cfg.MaxRetries {
			break
		}

		select {
		case <-time.After(cfg.Delay):
			// Continue to next attempt
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return lastErr
}
