package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Transient retries fn with exponential backoff until it succeeds, a
// permanent error is returned, the context is cancelled, or maxElapsed
// runs out. Mark non-retryable failures with Permanent.
func Transient(ctx context.Context, maxElapsed time.Duration, fn func() error) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 500 * time.Millisecond
	exp.Multiplier = 2.0
	exp.MaxInterval = 5 * time.Second
	exp.RandomizationFactor = 0.5
	exp.Reset()

	type unit struct{}
	op := func() (unit, error) {
		return unit{}, fn()
	}

	_, err := backoff.Retry(
		ctx,
		op,
		backoff.WithBackOff(exp),
		backoff.WithMaxElapsedTime(maxElapsed),
	)
	return err
}

// Permanent marks err as not worth retrying; Transient returns it
// immediately.
func Permanent(err error) error {
	return backoff.Permanent(err)
}
