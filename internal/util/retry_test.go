package util

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errFlaky = errors.New("flaky")
	errFatal = errors.New("fatal")
)

func isFlaky(err error) bool {
	return errors.Is(err, errFlaky)
}

func TestRetry_SucceedsFirstAttempt(t *testing.T) {
	t.Parallel()

	calls := 0
	err := Retry(context.Background(), RetryPolicy{MaxAttempts: 2, Delay: time.Millisecond}, func(context.Context) error {
		calls++

		return nil
	}, isFlaky)

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetry_RecoversAfterTransientFailure(t *testing.T) {
	t.Parallel()

	calls := 0
	err := Retry(context.Background(), RetryPolicy{MaxAttempts: 2, Delay: time.Millisecond}, func(context.Context) error {
		calls++
		if calls == 1 {
			return errFlaky
		}

		return nil
	}, isFlaky)

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRetry_StopsAfterMaxAttempts(t *testing.T) {
	t.Parallel()

	calls := 0
	var retried []int
	policy := RetryPolicy{
		MaxAttempts: 2,
		Delay:       100 * time.Millisecond,
		OnRetry: func(attempt int, _ error) {
			retried = append(retried, attempt)
		},
	}

	start := time.Now()
	err := Retry(context.Background(), policy, func(context.Context) error {
		calls++

		return errFlaky
	}, isFlaky)

	require.ErrorIs(t, err, errFlaky)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []int{1}, retried)
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestRetry_DoesNotRetryPermanentFailure(t *testing.T) {
	t.Parallel()

	calls := 0
	err := Retry(context.Background(), RetryPolicy{MaxAttempts: 5, Delay: time.Millisecond}, func(context.Context) error {
		calls++

		return errFatal
	}, isFlaky)

	require.ErrorIs(t, err, errFatal)
	assert.Equal(t, 1, calls)
}

func TestRetry_DoesNotRetryOnceContextIsCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Retry(ctx, RetryPolicy{MaxAttempts: 3, Delay: time.Millisecond}, func(context.Context) error {
		calls++
		cancel()

		return errFlaky
	}, isFlaky)

	require.ErrorIs(t, err, errFlaky)
	assert.Equal(t, 1, calls)
}

func TestRetry_WaitIsInterruptible(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	policy := RetryPolicy{
		MaxAttempts: 2,
		Delay:       time.Hour,
		OnRetry: func(int, error) {
			cancel()
		},
	}

	err := Retry(ctx, policy, func(context.Context) error {
		calls++

		return errFlaky
	}, isFlaky)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetry_ZeroAttemptsRunsOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	err := Retry(context.Background(), RetryPolicy{}, func(context.Context) error {
		calls++

		return errFlaky
	}, isFlaky)

	require.ErrorIs(t, err, errFlaky)
	assert.Equal(t, 1, calls)
}
