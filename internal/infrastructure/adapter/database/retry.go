package database

import (
	"context"
	"math/rand/v2"
	"time"

	coreport "github.com/amirhossein-jamali/point-ledger/internal/domain/port/core"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // 0.0-1.0
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    3,
		RetryInterval: 20 * time.Millisecond,
		MaxInterval:   500 * time.Millisecond,
		JitterFactor:  0.2,
	}
}

// RetryConfigFromAttempts returns the default backoff with attempts tries in total.
// Zero or less disables retries.
func RetryConfigFromAttempts(attempts int) RetryConfig {
	cfg := DefaultRetryConfig()
	cfg.MaxRetries = attempts
	return cfg
}

// RetryOnConflict runs operation again while it fails with a serialization
// failure or deadlock, until ctx ends or MaxRetries attempts have been made
func RetryOnConflict(
	ctx context.Context,
	config RetryConfig,
	logger coreport.Logger,
	operation func() error,
) error {
	attempts := config.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		err = operation()
		if err == nil || !IsRetryableTxError(err) {
			return err
		}
		if attempt == attempts-1 {
			break
		}

		backoff := calculateBackoffWithJitter(attempt, config)
		logger.Warn("Transaction conflict, retrying", map[string]any{
			"attempt":     attempt + 1,
			"max_retries": attempts,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	logger.Error("All retry attempts failed", map[string]any{
		"attempts": attempts,
		"error":    err.Error(),
	})
	return err
}

// calculateBackoffWithJitter computes an exponential backoff capped at MaxInterval
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval * time.Duration(1<<uint(attempt))
	if backoff > config.MaxInterval || backoff <= 0 {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		backoff += time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
	}
	return backoff
}
