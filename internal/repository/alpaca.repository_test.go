package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeQuotesFetcher struct {
	quotes map[string]marketdata.Quote
	err    error
	calls  int
}

func (f *fakeQuotesFetcher) GetLatestQuotes(symbols []string, req marketdata.GetLatestQuoteRequest) (map[string]marketdata.Quote, error) {
	f.calls++
	return f.quotes, f.err
}

func TestAlpacaGetLatestPrices(t *testing.T) {
	ctx := context.Background()

	t.Run("drops symbols without a bid", func(t *testing.T) {
		fetcher := &fakeQuotesFetcher{quotes: map[string]marketdata.Quote{
			"AAPL": {BidPrice: 190.5},
			"MSFT": {BidPrice: 0},
		}}
		h := alpacaRepositoryHandler{MdClient: fetcher}

		prices, err := h.GetLatestPrices(ctx, []string{"AAPL", "MSFT"})
		require.NoError(t, err)
		require.Len(t, prices, 1)
		require.True(t, decimal.NewFromFloat(190.5).Equal(prices["AAPL"]))
	})

	t.Run("no symbols skips the call", func(t *testing.T) {
		fetcher := &fakeQuotesFetcher{}
		h := alpacaRepositoryHandler{MdClient: fetcher}

		prices, err := h.GetLatestPrices(ctx, nil)
		require.NoError(t, err)
		require.Empty(t, prices)
		require.Equal(t, 0, fetcher.calls)
	})

	t.Run("wraps errors", func(t *testing.T) {
		boom := errors.New("boom")
		h := alpacaRepositoryHandler{MdClient: &fakeQuotesFetcher{err: boom}}

		_, err := h.GetLatestPrices(ctx, []string{"AAPL"})
		require.ErrorIs(t, err, boom)
	})
}
