package frankfurter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_GetLatest(t *testing.T) {
	t.Run("parses rates and pins base", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/latest" || r.URL.Query().Get("base") != "USD" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Write([]byte(`{"amount":1.0,"base":"USD","date":"2024-05-01","rates":{"EUR":0.93,"gbp":0.8}}`))
		}))
		defer server.Close()

		c := NewClient(WithBaseURL(server.URL), WithHTTPClient(server.Client()))
		rates, err := c.GetLatest(context.Background(), "usd")
		require.NoError(t, err)
		require.Equal(t, map[string]float64{
			"USD": 1,
			"EUR": 0.93,
			"GBP": 0.8,
		}, rates)
	})

	t.Run("status error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("down"))
		}))
		defer server.Close()

		c := NewClient(WithBaseURL(server.URL))
		_, err := c.GetLatest(context.Background(), "USD")

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		require.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
		require.True(t, statusErr.Retryable())
	})
}
