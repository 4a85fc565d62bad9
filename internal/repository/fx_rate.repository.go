package repository

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wealthtrack/pkg/frankfurter"
)

type FxRateRepository interface {
	// GetLatestRates returns units of each currency per 1 base.
	GetLatestRates(ctx context.Context, base string) (map[string]float64, error)
}

type fxRateRepositoryHandler struct {
	Client       frankfurter.Client
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

func NewFxRateRepository(client frankfurter.Client) FxRateRepository {
	return fxRateRepositoryHandler{
		Client:       client,
		MaxAttempts:  3,
		InitialDelay: 200 * time.Millisecond,
		MaxDelay:     2 * time.Second,
	}
}

// isRetryableFxError retries throttling, server errors and transport
// failures. Other status codes and a done ctx are final.
func isRetryableFxError(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	statusErr := &frankfurter.StatusError{}
	if errors.As(err, &statusErr) {
		return statusErr.Retryable()
	}
	return true
}

// GetLatestRates retries with a doubling delay capped at MaxDelay.
func (h fxRateRepositoryHandler) GetLatestRates(ctx context.Context, base string) (map[string]float64, error) {
	maxAttempts := h.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	delay := h.InitialDelay
	attempts := 0
	var lastErr error
	for attempts < maxAttempts {
		attempts++
		rates, err := h.Client.GetLatest(ctx, base)
		if err == nil {
			return rates, nil
		}
		lastErr = err
		if !isRetryableFxError(ctx, err) || attempts == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("failed to get fx rates for %s: %w", base, ctx.Err())
		case <-time.After(delay):
		}
		delay = min(delay*2, h.MaxDelay)
	}

	return nil, fmt.Errorf("failed to get fx rates for %s after %d attempts: %w", base, attempts, lastErr)
}
