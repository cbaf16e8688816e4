package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/repository"
	coremocks "github.com/vyronamart/group-ledger/mocks/port/core"
)

func fastRetry(maxRetries int) RetryConfig {
	return RetryConfig{
		MaxRetries:    maxRetries,
		RetryInterval: time.Millisecond,
		MaxInterval:   2 * time.Millisecond,
	}
}

func TestRetryOnTransientError(t *testing.T) {
	classifier := repository.NewErrorClassifier()

	t.Run("retries transient errors until success", func(t *testing.T) {
		// Arrange
		logger := coremocks.NewMockLogger(t).AllowAll()
		calls := 0
		op := func() error {
			calls++
			if calls < 3 {
				return errors.New("read: connection reset by peer")
			}
			return nil
		}

		// Act
		err := RetryOnTransientError(context.Background(), fastRetry(5), op, classifier, logger)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry permanent errors", func(t *testing.T) {
		// Arrange
		logger := coremocks.NewMockLogger(t).AllowAll()
		calls := 0
		permanent := errors.New("password authentication failed")
		op := func() error {
			calls++
			return permanent
		}

		// Act
		err := RetryOnTransientError(context.Background(), fastRetry(5), op, classifier, logger)

		// Assert
		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		// Arrange
		logger := coremocks.NewMockLogger(t).AllowAll()
		calls := 0
		op := func() error {
			calls++
			return errors.New("dial tcp: connection refused")
		}

		// Act
		err := RetryOnTransientError(context.Background(), fastRetry(3), op, classifier, logger)

		// Assert
		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		// Arrange
		logger := coremocks.NewMockLogger(t).AllowAll()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		cfg := RetryConfig{MaxRetries: 3, RetryInterval: time.Second, MaxInterval: time.Second}
		op := func() error { return errors.New("i/o timeout") }

		// Act
		err := RetryOnTransientError(ctx, cfg, op, classifier, logger)

		// Assert
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: time.Second}

	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 400*time.Millisecond, calculateBackoffWithJitter(2, cfg))
	assert.Equal(t, time.Second, calculateBackoffWithJitter(10, cfg))

	cfg.JitterFactor = 0.5
	backoff := calculateBackoffWithJitter(0, cfg)
	assert.GreaterOrEqual(t, backoff, 100*time.Millisecond)
	assert.LessOrEqual(t, backoff, 150*time.Millisecond)
}
