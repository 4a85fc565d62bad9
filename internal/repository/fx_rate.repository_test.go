package repository

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"wealthtrack/pkg/frankfurter"

	"github.com/stretchr/testify/require"
)

type fakeFrankfurterClient struct {
	errs  []error
	rates map[string]float64
	calls int
}

func (f *fakeFrankfurterClient) GetLatest(ctx context.Context, baseCurrency string) (map[string]float64, error) {
	f.calls++
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return nil, err
	}
	return f.rates, nil
}

func TestFxRateRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("retries server errors", func(t *testing.T) {
		client := &fakeFrankfurterClient{
			errs:  []error{&frankfurter.StatusError{StatusCode: http.StatusBadGateway}},
			rates: map[string]float64{"USD": 1, "EUR": 0.9},
		}
		h := fxRateRepositoryHandler{Client: client, MaxAttempts: 3, InitialDelay: 1, MaxDelay: 1}

		rates, err := h.GetLatestRates(ctx, "USD")
		require.NoError(t, err)
		require.Equal(t, 0.9, rates["EUR"])
		require.Equal(t, 2, client.calls)
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		client := &fakeFrankfurterClient{
			errs: []error{&frankfurter.StatusError{StatusCode: http.StatusNotFound}},
		}
		h := fxRateRepositoryHandler{Client: client, MaxAttempts: 3, InitialDelay: 1, MaxDelay: 1}

		_, err := h.GetLatestRates(ctx, "USD")
		require.Error(t, err)
		require.Equal(t, 1, client.calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		client := &fakeFrankfurterClient{
			errs: []error{
				&frankfurter.StatusError{StatusCode: http.StatusServiceUnavailable},
				&frankfurter.StatusError{StatusCode: http.StatusServiceUnavailable},
				&frankfurter.StatusError{StatusCode: http.StatusTooManyRequests},
			},
		}
		h := fxRateRepositoryHandler{Client: client, MaxAttempts: 3, InitialDelay: 1, MaxDelay: 1}

		_, err := h.GetLatestRates(ctx, "USD")
		require.ErrorContains(t, err, "after 3 attempts")
		statusErr := &frankfurter.StatusError{}
		require.True(t, errors.As(err, &statusErr))
		require.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
		require.Equal(t, 3, client.calls)
	})

	t.Run("retries transport errors", func(t *testing.T) {
		client := &fakeFrankfurterClient{
			errs:  []error{errors.New("connection reset")},
			rates: map[string]float64{"USD": 1},
		}
		h := fxRateRepositoryHandler{Client: client, MaxAttempts: 2, InitialDelay: 1, MaxDelay: 1}

		_, err := h.GetLatestRates(ctx, "USD")
		require.NoError(t, err)
		require.Equal(t, 2, client.calls)
	})

	t.Run("cancelled ctx is not retried", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		client := &fakeFrankfurterClient{
			errs: []error{errors.New("context canceled")},
		}
		h := fxRateRepositoryHandler{Client: client, MaxAttempts: 3, InitialDelay: 1, MaxDelay: 1}

		_, err := h.GetLatestRates(cancelled, "USD")
		require.Error(t, err)
		require.Equal(t, 1, client.calls)
	})
}
