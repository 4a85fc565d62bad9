package l1_service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"wealthtrack/internal/domain"
	"wealthtrack/internal/logger"
	"wealthtrack/internal/repository"
	"wealthtrack/internal/util"
)

/**

the price service is the boundary to market data. nothing it returns is an
error: a failed fetch becomes an empty series or a zero quote and is logged,
so one bad symbol never blocks valuing the rest of the portfolio. retries are
the repository's business, not ours

*/

type PriceService interface {
	LoadPriceHistory(ctx context.Context, inputs []PriceInput, start, end time.Time) *PriceHistory
	GetQuotes(ctx context.Context, inputs []PriceInput) map[string]domain.Quote
}

type PriceInput struct {
	Symbol    string
	AssetType domain.AssetType
}

func (in PriceInput) Key() string {
	return PriceKey(in.Symbol, in.AssetType)
}

func PriceKey(symbol string, assetType domain.AssetType) string {
	return fmt.Sprintf("%s:%s", assetType, strings.ToUpper(symbol))
}

// PriceHistory holds every fetched daily series for one request, keyed by
// PriceKey.
type PriceHistory struct {
	series map[string]domain.PriceSeries
}

func NewPriceHistory(series map[string]domain.PriceSeries) *PriceHistory {
	if series == nil {
		series = map[string]domain.PriceSeries{}
	}
	return &PriceHistory{series: series}
}

// Series is never nil.
func (p *PriceHistory) Series(symbol string, assetType domain.AssetType) domain.PriceSeries {
	if p == nil {
		return domain.PriceSeries{}
	}
	if s, ok := p.series[PriceKey(symbol, assetType)]; ok {
		return s
	}
	return domain.PriceSeries{}
}

func (p *PriceHistory) Get(symbol string, assetType domain.AssetType, date time.Time) (float64, bool) {
	return p.Series(symbol, assetType).On(date)
}

type PriceServiceConfig struct {
	NumWorkers        int
	HistoryTtlSeconds int
	QuoteTtlSeconds   int
}

type priceServiceHandler struct {
	MarketDataRepository repository.MarketDataRepository
	AlpacaRepository     repository.AlpacaRepository
	HistoryCache         util.Cache[[]domain.PricePoint]
	QuoteCache           util.Cache[domain.Quote]
	Config               PriceServiceConfig
}

// NewPriceService builds the service. alpacaRepository may be nil, in which
// case stock quotes come from the market data repository only.
func NewPriceService(
	marketDataRepository repository.MarketDataRepository,
	alpacaRepository repository.AlpacaRepository,
	historyCache util.Cache[[]domain.PricePoint],
	quoteCache util.Cache[domain.Quote],
	config PriceServiceConfig,
) PriceService {
	if config.NumWorkers <= 0 {
		config.NumWorkers = 8
	}
	return priceServiceHandler{
		MarketDataRepository: marketDataRepository,
		AlpacaRepository:     alpacaRepository,
		HistoryCache:         historyCache,
		QuoteCache:           quoteCache,
		Config:               config,
	}
}

func dedupeInputs(inputs []PriceInput) []PriceInput {
	seen := map[string]bool{}
	out := []PriceInput{}
	for _, in := range inputs {
		if in.Symbol == "" || seen[in.Key()] {
			continue
		}
		seen[in.Key()] = true
		out = append(out, in)
	}
	return out
}

// runConcurrently calls f for every index on a bounded pool of goroutines and
// returns once all calls are done.
func runConcurrently(ctx context.Context, n int, numWorkers int, f func(ctx context.Context, i int)) {
	inputCh := make(chan int, n)
	for i := 0; i < n; i++ {
		inputCh <- i
	}
	close(inputCh)

	if numWorkers > n {
		numWorkers = n
	}

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range inputCh {
				if ctx.Err() != nil {
					return
				}
				f(ctx, i)
			}
		}()
	}
	wg.Wait()
}

func historyCacheKey(in PriceInput, start, end time.Time) string {
	return fmt.Sprintf("%s|%s|%s", in.Key(), util.DateKey(start), util.DateKey(end))
}

// LoadPriceHistory fetches [start, end] for every input concurrently and
// joins before returning.
func (h priceServiceHandler) LoadPriceHistory(ctx context.Context, inputs []PriceInput, start, end time.Time) *PriceHistory {
	log := logger.FromContext(ctx)
	inputs = dedupeInputs(inputs)

	var mu sync.Mutex
	series := map[string]domain.PriceSeries{}

	runConcurrently(ctx, len(inputs), h.Config.NumWorkers, func(ctx context.Context, i int) {
		in := inputs[i]
		cacheKey := historyCacheKey(in, start, end)

		points, ok := h.getCachedHistory(cacheKey)
		if !ok {
			fetched, err := h.MarketDataRepository.GetHistoricalPrices(ctx, in.Symbol, in.AssetType, start, end)
			if err != nil {
				log.Warnw("failed to load price history, continuing without it",
					"symbol", in.Symbol,
					"assetType", in.AssetType,
					"error", err.Error(),
				)
				fetched = []domain.PricePoint{}
			} else if h.HistoryCache != nil {
				h.HistoryCache.Set(cacheKey, fetched, h.Config.HistoryTtlSeconds)
			}
			points = fetched
		}

		mu.Lock()
		series[in.Key()] = domain.NewPriceSeries(points)
		mu.Unlock()
	})

	return NewPriceHistory(series)
}

func (h priceServiceHandler) getCachedHistory(key string) ([]domain.PricePoint, bool) {
	if h.HistoryCache == nil {
		return nil, false
	}
	return h.HistoryCache.Get(key)
}

// GetQuotes returns a quote per input key. Unknown symbols map to a zero
// quote.
func (h priceServiceHandler) GetQuotes(ctx context.Context, inputs []PriceInput) map[string]domain.Quote {
	log := logger.FromContext(ctx)
	inputs = dedupeInputs(inputs)

	var mu sync.Mutex
	out := map[string]domain.Quote{}

	runConcurrently(ctx, len(inputs), h.Config.NumWorkers, func(ctx context.Context, i int) {
		in := inputs[i]
		quote, ok := h.getCachedQuote(in.Key())
		if !ok {
			q, err := h.MarketDataRepository.GetAssetPrice(ctx, in.Symbol, in.AssetType)
			if err != nil || q == nil {
				if err != nil {
					log.Warnw("failed to get quote, using zero",
						"symbol", in.Symbol,
						"assetType", in.AssetType,
						"error", err.Error(),
					)
				}
				quote = domain.Quote{}
			} else {
				quote = *q
				if h.QuoteCache != nil && quote.Price > 0 {
					h.QuoteCache.Set(in.Key(), quote, h.Config.QuoteTtlSeconds)
				}
			}
		}
		mu.Lock()
		out[in.Key()] = quote
		mu.Unlock()
	})

	h.overrideStockQuotes(ctx, inputs, out)

	return out
}

func (h priceServiceHandler) getCachedQuote(key string) (domain.Quote, bool) {
	if h.QuoteCache == nil {
		return domain.Quote{}, false
	}
	return h.QuoteCache.Get(key)
}

// overrideStockQuotes replaces stock prices with alpaca's latest bid when
// alpaca is configured. The 24h change is kept from the original quote.
func (h priceServiceHandler) overrideStockQuotes(ctx context.Context, inputs []PriceInput, quotes map[string]domain.Quote) {
	if h.AlpacaRepository == nil {
		return
	}
	log := logger.FromContext(ctx)

	symbols := []string{}
	for _, in := range inputs {
		if in.AssetType == domain.AssetTypeStock {
			symbols = append(symbols, strings.ToUpper(in.Symbol))
		}
	}
	if len(symbols) == 0 {
		return
	}

	latest, err := h.AlpacaRepository.GetLatestPrices(ctx, symbols)
	if err != nil {
		log.Warnw("failed to get latest alpaca prices, keeping market data quotes", "error", err.Error())
		return
	}
	for symbol, price := range latest {
		if !price.IsPositive() {
			continue
		}
		key := PriceKey(symbol, domain.AssetTypeStock)
		q := quotes[key]
		q.Price = price.InexactFloat64()
		quotes[key] = q
	}
}
