package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"wealthtrack/internal/domain"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

type MarketDataRepository interface {
	// GetHistoricalPrices returns daily closes in [start, end], oldest first,
	// at most one per day.
	GetHistoricalPrices(ctx context.Context, symbol string, assetType domain.AssetType, start, end time.Time) ([]domain.PricePoint, error)
	// GetAssetPrice returns a zero quote for a symbol with no recent bars.
	GetAssetPrice(ctx context.Context, symbol string, assetType domain.AssetType) (*domain.Quote, error)
}

type bar struct {
	Date  time.Time
	Close float64
}

type barFetcher func(ctx context.Context, symbol string, start, end time.Time) ([]bar, error)

type yahooMarketDataRepositoryHandler struct {
	fetch barFetcher
	now   func() time.Time
}

func NewYahooMarketDataRepository() MarketDataRepository {
	return yahooMarketDataRepositoryHandler{
		fetch: fetchChartBars,
		now:   time.Now,
	}
}

// YahooSymbol maps a ledger symbol onto the ticker yahoo quotes it under.
// Crypto trades against USD.
func YahooSymbol(symbol string, assetType domain.AssetType) string {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if assetType == domain.AssetTypeCrypto && !strings.Contains(symbol, "-") {
		return symbol + "-USD"
	}
	return symbol
}

func fetchChartBars(ctx context.Context, symbol string, start, end time.Time) ([]bar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	out := []bar{}
	for iter.Next() {
		out = append(out, bar{
			Date:  time.Unix(int64(iter.Bar().Timestamp), 0).UTC(),
			Close: iter.Bar().Close.InexactFloat64(),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get chart for %s: %w", symbol, err)
	}

	return out, nil
}

func (h yahooMarketDataRepositoryHandler) GetHistoricalPrices(ctx context.Context, symbol string, assetType domain.AssetType, start, end time.Time) ([]domain.PricePoint, error) {
	start = domain.StartOfDay(start)
	end = domain.StartOfDay(end)
	// chart end is exclusive
	bars, err := h.fetch(ctx, YahooSymbol(symbol, assetType), start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to get historical prices for %s: %w", symbol, err)
	}

	return pricePointsFromBars(bars, domain.NewWindow(start, end)), nil
}

// pricePointsFromBars keeps the last positive close of each day in w.
func pricePointsFromBars(bars []bar, w domain.Window) []domain.PricePoint {
	byDate := map[string]float64{}
	for _, b := range bars {
		if b.Close <= 0 || !w.Contains(b.Date) {
			continue
		}
		byDate[b.Date.Format(time.DateOnly)] = b.Close
	}

	out := make([]domain.PricePoint, 0, len(byDate))
	for date, price := range byDate {
		out = append(out, domain.PricePoint{Date: date, Price: price})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

func (h yahooMarketDataRepositoryHandler) GetAssetPrice(ctx context.Context, symbol string, assetType domain.AssetType) (*domain.Quote, error) {
	now := h.now().UTC()
	start := domain.StartOfDay(now).AddDate(0, 0, -7)
	bars, err := h.fetch(ctx, YahooSymbol(symbol, assetType), start, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}

	q := quoteFromBars(bars)
	return &q, nil
}

// quoteFromBars uses the latest close as the price and the change against the
// close before it as the 24h change, in percent.
func quoteFromBars(bars []bar) domain.Quote {
	valid := []bar{}
	for _, b := range bars {
		if b.Close > 0 {
			valid = append(valid, b)
		}
	}
	if len(valid) == 0 {
		return domain.Quote{}
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Date.Before(valid[j].Date)
	})

	last := valid[len(valid)-1]
	q := domain.Quote{Price: last.Close}
	if len(valid) > 1 {
		prev := valid[len(valid)-2]
		q.Change24h = (last.Close - prev.Close) / prev.Close * 100
	}
	return q
}
