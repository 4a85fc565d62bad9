package repository

import (
	"context"
	"errors"
	"testing"
	"time"
	"wealthtrack/internal/domain"
	"wealthtrack/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestYahooSymbol(t *testing.T) {
	require.Equal(t, "AAPL", YahooSymbol(" aapl ", domain.AssetTypeStock))
	require.Equal(t, "BTC-USD", YahooSymbol("btc", domain.AssetTypeCrypto))
	require.Equal(t, "ETH-EUR", YahooSymbol("ETH-EUR", domain.AssetTypeCrypto))
}

func TestGetHistoricalPrices(t *testing.T) {
	t.Run("keeps one positive close per day inside the window", func(t *testing.T) {
		var gotStart, gotEnd time.Time
		h := yahooMarketDataRepositoryHandler{
			fetch: func(ctx context.Context, symbol string, start, end time.Time) ([]bar, error) {
				require.Equal(t, "BTC-USD", symbol)
				gotStart, gotEnd = start, end
				return []bar{
					{Date: time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC), Close: 99},
					{Date: time.Date(2024, 1, 2, 5, 0, 0, 0, time.UTC), Close: 100},
					{Date: time.Date(2024, 1, 2, 21, 0, 0, 0, time.UTC), Close: 101},
					{Date: time.Date(2024, 1, 3, 21, 0, 0, 0, time.UTC), Close: 0},
					{Date: time.Date(2024, 1, 4, 21, 0, 0, 0, time.UTC), Close: 104},
					{Date: time.Date(2024, 1, 5, 1, 0, 0, 0, time.UTC), Close: 105},
				}, nil
			},
		}

		points, err := h.GetHistoricalPrices(
			context.Background(),
			"btc",
			domain.AssetTypeCrypto,
			time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC),
			util.NewDate(2024, 1, 4),
		)
		require.NoError(t, err)
		require.Equal(t, util.NewDate(2024, 1, 2), gotStart)
		require.Equal(t, util.NewDate(2024, 1, 5), gotEnd)

		diff := cmp.Diff([]domain.PricePoint{
			{Date: "2024-01-02", Price: 101},
			{Date: "2024-01-04", Price: 104},
		}, points)
		require.Empty(t, diff)
	})

	t.Run("wraps fetch errors", func(t *testing.T) {
		boom := errors.New("boom")
		h := yahooMarketDataRepositoryHandler{
			fetch: func(ctx context.Context, symbol string, start, end time.Time) ([]bar, error) {
				return nil, boom
			},
		}
		_, err := h.GetHistoricalPrices(context.Background(), "AAPL", domain.AssetTypeStock, util.NewDate(2024, 1, 1), util.NewDate(2024, 1, 2))
		require.ErrorIs(t, err, boom)
	})
}

func TestGetAssetPrice(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

	t.Run("latest close with change against the previous close", func(t *testing.T) {
		h := yahooMarketDataRepositoryHandler{
			now: func() time.Time { return now },
			fetch: func(ctx context.Context, symbol string, start, end time.Time) ([]bar, error) {
				require.Equal(t, util.NewDate(2024, 3, 3), start)
				return []bar{
					{Date: util.NewDate(2024, 3, 9), Close: 200},
					{Date: util.NewDate(2024, 3, 8), Close: 160},
					{Date: util.NewDate(2024, 3, 10), Close: 0},
				}, nil
			},
		}
		q, err := h.GetAssetPrice(context.Background(), "AAPL", domain.AssetTypeStock)
		require.NoError(t, err)
		require.Equal(t, 200.0, q.Price)
		require.InDelta(t, 25.0, q.Change24h, 1e-9)
	})

	t.Run("no bars is a zero quote", func(t *testing.T) {
		h := yahooMarketDataRepositoryHandler{
			now: func() time.Time { return now },
			fetch: func(ctx context.Context, symbol string, start, end time.Time) ([]bar, error) {
				return []bar{}, nil
			},
		}
		q, err := h.GetAssetPrice(context.Background(), "NOPE", domain.AssetTypeStock)
		require.NoError(t, err)
		require.Equal(t, domain.Quote{}, *q)
	})
}
