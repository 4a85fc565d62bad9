package calculator

import (
	"math"
	"testing"
	"time"
	"wealthtrack/internal/domain"
	"wealthtrack/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func series(start time.Time, values ...float64) []domain.DailyValuationPoint {
	out := []domain.DailyValuationPoint{}
	for i, v := range values {
		out = append(out, domain.DailyValuationPoint{
			Date:       start.AddDate(0, 0, i),
			TotalValue: v,
			TotalCost:  100,
		})
	}
	return out
}

func TestTotalReturn(t *testing.T) {
	points := series(util.NewDate(2024, 1, 1), 120, 150)
	r := TotalReturn(points)
	require.Equal(t, 50.0, r.Value)
	require.Equal(t, 50.0, r.Percent)

	flatCost := []domain.DailyValuationPoint{{TotalValue: 10}}
	require.Equal(t, domain.Return{Value: 10}, TotalReturn(flatCost))
	require.Equal(t, domain.Return{}, TotalReturn(nil))
}

func TestPeriodReturn(t *testing.T) {
	r := PeriodReturn(series(util.NewDate(2024, 1, 1), 200, 150, 250))
	require.Equal(t, 50.0, r.Value)
	require.Equal(t, 25.0, r.Percent)

	require.Equal(t, domain.Return{Value: 10}, SimpleReturn(0, 10))
}

func TestMaxDrawdown(t *testing.T) {
	t.Run("largest decline from the running peak", func(t *testing.T) {
		start := util.NewDate(2024, 1, 1)
		dd := MaxDrawdown(series(start, 100, 120, 90, 110, 60, 130))
		require.InDelta(t, 50.0, dd.Percent, 1e-9)
		require.Equal(t, start.AddDate(0, 0, 4), *dd.Date)
	})

	t.Run("monotonic series has no drawdown", func(t *testing.T) {
		dd := MaxDrawdown(series(util.NewDate(2024, 1, 1), 1, 2, 3))
		require.Equal(t, 0.0, dd.Percent)
		require.Nil(t, dd.Date)
	})

	t.Run("bounded between 0 and 100", func(t *testing.T) {
		dd := MaxDrawdown(series(util.NewDate(2024, 1, 1), 0, 100, -50, 0))
		require.GreaterOrEqual(t, dd.Percent, 0.0)
		require.LessOrEqual(t, dd.Percent, 100.0)
	})
}

func TestDailyReturns(t *testing.T) {
	start := util.NewDate(2024, 1, 1)
	returns := DailyReturns(series(start, 0, 100, 110, 99))
	require.Len(t, returns, 2)
	require.Equal(t, start.AddDate(0, 0, 2), returns[0].Date)
	require.InDelta(t, 0.1, returns[0].Percent, 1e-12)
	require.InDelta(t, -0.1, returns[1].Percent, 1e-12)
}

func TestRiskMetrics(t *testing.T) {
	t.Run("zero variance gives zero sharpe", func(t *testing.T) {
		returns := DailyReturns(series(util.NewDate(2024, 1, 1), 100, 100, 100, 100))
		sharpe, volatility := RiskMetrics(returns)
		require.Equal(t, 0.0, sharpe)
		require.Equal(t, 0.0, volatility)

		constant := []domain.DayReturn{{Percent: 0.01}, {Percent: 0.01}, {Percent: 0.01}}
		sharpe, _ = RiskMetrics(constant)
		require.Equal(t, 0.0, sharpe)
	})

	t.Run("annualized from population stddev", func(t *testing.T) {
		returns := []domain.DayReturn{{Percent: 0.02}, {Percent: -0.01}, {Percent: 0.02}, {Percent: -0.01}}
		sharpe, volatility := RiskMetrics(returns)
		// mean 0.005, population stddev 0.015
		require.InDelta(t, 0.005/0.015*math.Sqrt(252), sharpe, 1e-9)
		require.InDelta(t, 0.015*math.Sqrt(252)*100, volatility, 1e-9)
	})

	t.Run("no returns", func(t *testing.T) {
		sharpe, volatility := RiskMetrics(nil)
		require.Equal(t, 0.0, sharpe)
		require.Equal(t, 0.0, volatility)
	})
}

func TestBestAndWorstDay(t *testing.T) {
	start := util.NewDate(2024, 1, 1)
	best, worst := BestAndWorstDay(DailyReturns(series(start, 100, 110, 99, 118.8, 118.8)))
	require.Equal(t, start.AddDate(0, 0, 3), best.Date)
	require.InDelta(t, 20.0, best.Percent, 1e-9)
	require.Equal(t, start.AddDate(0, 0, 2), worst.Date)
	require.InDelta(t, -10.0, worst.Percent, 1e-9)

	best, worst = BestAndWorstDay(DailyReturns(series(start, 100, 101, 102)))
	require.NotNil(t, best)
	require.Nil(t, worst)
}

func TestStreaks(t *testing.T) {
	win, loss := Streaks(DailyReturns(series(util.NewDate(2024, 1, 1),
		100, 101, 102, 103, 103, 102, 101, 102, 101, 100, 99, 98,
	)))
	require.Equal(t, 3, win)
	require.Equal(t, 4, loss)
}

func TestMonthlyPnL(t *testing.T) {
	points := series(util.NewDate(2024, 1, 30), 100, 110, 120, 90, 95)
	require.Equal(t, []domain.MonthlyPnL{
		{Month: "2024-01", Value: 10},
		{Month: "2024-02", Value: -25},
	}, MonthlyPnL(points))

	require.Empty(t, MonthlyPnL(nil))
}

func TestSparkline(t *testing.T) {
	points := series(util.NewDate(2024, 1, 1), 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	require.Equal(t, []float64{0, 2, 5, 7, 10}, Sparkline(points, 5))
	require.Equal(t, []float64{0, 1, 2}, Sparkline(points[:3], 5))
	require.Equal(t, []float64{10}, Sparkline(points, 1))
	require.Empty(t, Sparkline(nil, 5))
}

func quoted(symbol string, lastPrice float64) domain.Asset {
	return domain.Asset{
		AssetID:  uuid.New(),
		Type:     domain.AssetTypeStock,
		Name:     symbol,
		Currency: domain.USD,
		Holding: domain.MarketHolding{
			Symbol:    symbol,
			Quantity:  decimal.NewFromInt(1),
			LastPrice: decimal.NewFromFloat(lastPrice),
		},
	}
}

func TestRankAssets(t *testing.T) {
	w := domain.NewWindow(util.NewDate(2024, 1, 10), util.NewDate(2024, 1, 20))

	assets := []AssetPrices{
		{
			// start from the lookback buffer, end exact
			Asset: quoted("AAA", 0),
			Series: domain.PriceSeries{
				"2024-01-08": 100,
				"2024-01-20": 150,
			},
		},
		{
			// start falls back to the earliest price, end to the quote
			Asset:  quoted("BBB", 0),
			Series: domain.PriceSeries{"2024-01-15": 50},
			Quote:  domain.Quote{Price: 40},
		},
		{
			// end falls back to the last price on record
			Asset:  quoted("CCC", 110),
			Series: domain.PriceSeries{"2024-01-10": 100},
		},
		{
			// no start price at all is excluded, not 0%
			Asset: quoted("DDD", 10),
		},
		{
			Asset: domain.Asset{
				AssetID: uuid.New(),
				Type:    domain.AssetTypeBank,
				Holding: domain.CashHolding{Balance: decimal.NewFromInt(5)},
			},
		},
	}

	ranked := RankAssets(assets, w, 7)
	require.Len(t, ranked, 3)
	require.Equal(t, "AAA", ranked[0].Symbol)
	require.InDelta(t, 50.0, ranked[0].Percent, 1e-9)
	require.Equal(t, "CCC", ranked[1].Symbol)
	require.InDelta(t, 10.0, ranked[1].Percent, 1e-9)
	require.Equal(t, "BBB", ranked[2].Symbol)
	require.InDelta(t, -20.0, ranked[2].Percent, 1e-9)
	require.Equal(t, domain.NewMoneyFromFloat(100, domain.USD), ranked[0].StartPrice)
}

func TestCalculateMetrics(t *testing.T) {
	w := domain.NewWindow(util.NewDate(2024, 1, 1), util.NewDate(2024, 1, 3))

	t.Run("empty series is the zero analysis", func(t *testing.T) {
		out := CalculateMetrics(MetricsInput{Range: domain.Range7D, Window: w})
		require.Equal(t, domain.EmptyPortfolioAnalysis(domain.Range7D, w), out)
	})

	t.Run("fills every field", func(t *testing.T) {
		out := CalculateMetrics(MetricsInput{
			Range:  domain.Range7D,
			Window: w,
			Points: series(w.Start, 100, 120, 90),
			Assets: []AssetPrices{{
				Asset:  quoted("AAA", 0),
				Series: domain.PriceSeries{"2024-01-01": 10, "2024-01-03": 12},
			}},
			LookbackDays:    7,
			SparklinePoints: 30,
		})
		require.Equal(t, domain.Return{Value: -10, Percent: -10}, out.TotalReturn)
		require.InDelta(t, 25.0, out.MaxDrawdown.Percent, 1e-9)
		require.Equal(t, 1, out.LongestWinStreak)
		require.Equal(t, 1, out.LongestLossStreak)
		require.Equal(t, []float64{100, 120, 90}, out.Sparkline)
		require.Len(t, out.History, 3)
		require.Equal(t, "AAA", out.BestAsset.Symbol)
		require.Equal(t, out.BestAsset, out.WorstAsset)
	})
}
