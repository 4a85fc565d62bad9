package integration_tests

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"wealthtrack/internal/domain"
	"wealthtrack/internal/repository"
	"wealthtrack/internal/util"
)

// market data for the test env is synthetic: every symbol moves a fixed
// step per day from a base price, so expected values can be computed

var mockEpoch = util.NewDate(2020, 1, 1)

var mockBasePrices = map[string]float64{
	"AAPL":    100,
	"GOOG":    80,
	"META":    250,
	"BTC-USD": 30000,
	"ETH-USD": 2000,
}

const mockDailyStep = 0.5

// MockPrice is the close the mock repository reports for symbol on date.
func MockPrice(symbol string, date time.Time) float64 {
	base, ok := mockBasePrices[repositorySymbol(symbol)]
	if !ok {
		return 0
	}
	days := math.Floor(domain.StartOfDay(date).Sub(mockEpoch).Hours() / 24)
	return base + mockDailyStep*days
}

func repositorySymbol(symbol string) string {
	symbol = strings.ToUpper(symbol)
	if _, ok := mockBasePrices[symbol]; ok {
		return symbol
	}
	return symbol + "-USD"
}

func NewMockMarketDataRepositoryForTests() repository.MarketDataRepository {
	return mockMarketDataForTestsHandler{now: time.Now}
}

type mockMarketDataForTestsHandler struct {
	now func() time.Time
}

func (m mockMarketDataForTestsHandler) GetHistoricalPrices(ctx context.Context, symbol string, assetType domain.AssetType, start, end time.Time) ([]domain.PricePoint, error) {
	if MockPrice(symbol, start) == 0 {
		return nil, fmt.Errorf("no mock prices for %s", symbol)
	}
	out := []domain.PricePoint{}
	for _, date := range domain.NewWindow(start, end).Dates() {
		out = append(out, domain.PricePoint{
			Date:  util.DateKey(date),
			Price: MockPrice(symbol, date),
		})
	}
	return out, nil
}

func (m mockMarketDataForTestsHandler) GetAssetPrice(ctx context.Context, symbol string, assetType domain.AssetType) (*domain.Quote, error) {
	today := m.now()
	price := MockPrice(symbol, today)
	if price == 0 {
		return &domain.Quote{}, nil
	}
	prev := MockPrice(symbol, today.AddDate(0, 0, -1))
	return &domain.Quote{
		Price:     price,
		Change24h: (price - prev) / prev * 100,
	}, nil
}

func NewMockFxRateRepositoryForTests() repository.FxRateRepository {
	return mockFxRateForTestsHandler{}
}

type mockFxRateForTestsHandler struct{}

func (m mockFxRateForTestsHandler) GetLatestRates(ctx context.Context, base string) (map[string]float64, error) {
	if !strings.EqualFold(base, domain.USD) {
		return nil, fmt.Errorf("mock fx rates only support USD base, got %s", base)
	}
	return map[string]float64{
		"USD": 1,
		"EUR": 0.9,
		"GBP": 0.8,
	}, nil
}
