package chain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastRetry keeps test runtime low.
func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		MaxDelay:    4 * time.Millisecond,
	}
}

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	t.Parallel()
	attempts := 0
	result, err := RetryWithConfig(context.Background(), fastRetry(), func() (string, error) {
		attempts++
		if attempts < 3 {
			return "", ErrRetryable
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 3, attempts)
}

func TestRetry_NonRetryableStopsImmediately(t *testing.T) {
	t.Parallel()
	permanent := errors.New("permanent")
	attempts := 0
	_, err := RetryWithConfig(context.Background(), fastRetry(), func() (int, error) {
		attempts++
		return 0, permanent
	})

	require.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, attempts)
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	t.Parallel()
	attempts := 0
	_, err := RetryWithConfig(context.Background(), fastRetry(), func() (int, error) {
		attempts++
		return 0, ErrRateLimited
	})

	require.Error(t, err)
	assert.Equal(t, 3, attempts)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestRetry_ContextCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := RetryConfig{MaxAttempts: 5, BaseDelay: time.Second, MaxDelay: time.Second}
	_, err := RetryWithConfig(ctx, cfg, func() (int, error) {
		return 0, ErrRetryable
	})

	require.ErrorIs(t, err, context.Canceled)
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()
	assert.True(t, IsRetryable(ErrRetryable))
	assert.True(t, IsRetryable(ErrTimeout))
	assert.True(t, IsRetryable(ErrRateLimited))
	assert.True(t, IsRetryable(context.DeadlineExceeded))
	assert.False(t, IsRetryable(nil))
	assert.False(t, IsRetryable(errors.New("other")))
}

func TestCalculateDelay_Bounded(t *testing.T) {
	t.Parallel()
	base := 10 * time.Millisecond
	maxDelay := 40 * time.Millisecond

	for attempt := 0; attempt < 6; attempt++ {
		d := calculateDelay(attempt, base, maxDelay)
		assert.GreaterOrEqual(t, d, base/2, "attempt %d", attempt)
		assert.Less(t, d, maxDelay, "attempt %d", attempt)
	}
}
