package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vortex-fintech/pii-ingest/retry"
)

func TestTransient_SucceedsFirstTry(t *testing.T) {
	calls := 0
	err := retry.Transient(context.Background(), 5*time.Second, func() error {
		calls++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestTransient_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := retry.Transient(context.Background(), 30*time.Second, func() error {
		calls++
		if calls < 2 {
			return errors.New("temporarily unavailable")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestTransient_PermanentStopsImmediately(t *testing.T) {
	hard := errors.New("rejected")
	calls := 0
	err := retry.Transient(context.Background(), 30*time.Second, func() error {
		calls++
		return retry.Permanent(hard)
	})
	assert.ErrorIs(t, err, hard)
	assert.Equal(t, 1, calls)
}

func TestTransient_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := retry.Transient(ctx, 30*time.Second, func() error {
		return errors.New("temporarily unavailable")
	})
	assert.Error(t, err)
}
