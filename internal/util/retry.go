package util

import (
	"context"
	"time"

	"addressbook/internal/errors"
)

// RetryPolicy is a fixed-delay retry policy.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first one. Values below 1 mean 1.
	MaxAttempts int

	// Delay is the fixed wait between two attempts.
	Delay time.Duration

	// OnRetry, if set, is called before each wait with the failed attempt number (1-based) and its error.
	OnRetry func(attempt int, err error)
}

// Retry runs op until it succeeds, fails with an error that isRetryable rejects,
// or the policy's attempts are used up. The last error from op is returned as is.
//
// Retry never retries once ctx is done. If ctx is cancelled during the wait between
// attempts, the wait is abandoned and ctx.Err() is returned.
func Retry(ctx context.Context, policy RetryPolicy, op func(ctx context.Context) error, isRetryable func(error) bool) error {
	maxAttempts := max(policy.MaxAttempts, 1)

	var err error
	for attempt := 1; ; attempt++ {
		err = op(ctx)
		if err == nil {
			return nil
		}

		if ctx.Err() != nil || !isRetryable(err) || attempt >= maxAttempts {
			return err
		}

		if policy.OnRetry != nil {
			policy.OnRetry(attempt, err)
		}

		if waitErr := sleep(ctx, policy.Delay); waitErr != nil {
			return waitErr
		}
	}
}

// sleep blocks for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return errors.WithStack(ctx.Err())
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
