package l2_service

import (
	"context"
	"time"
	"wealthtrack/internal/domain"
	"wealthtrack/internal/logger"
	l1_service "wealthtrack/internal/service/l1"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ValuationService interface {
	ComputeDailyValuations(ctx context.Context, in ValuationInput) *ValuationResult
}

type ValuationConfig struct {
	// PriceLookbackDays is how far before the window the price history was
	// fetched. Those days only seed carry forward.
	PriceLookbackDays int
	// RecentQuoteDays is the tail of the window where the current quote may
	// stand in for a missing history.
	RecentQuoteDays int
}

type ValuationInput struct {
	Window    domain.Window
	Timelines []*l1_service.HoldingsTimeline
	Prices    *l1_service.PriceHistory
	// Quotes is keyed by l1_service.PriceKey.
	Quotes  map[string]domain.Quote
	FxRates domain.FxRates
}

// UsedPrice records which price the walk used for a quoted asset on a day.
type UsedPrice struct {
	Date   time.Time
	Price  float64
	Source PriceSource
}

type ValuationResult struct {
	Points []domain.DailyValuationPoint
	// UsedPrices has one entry per walked day for each quoted asset.
	UsedPrices map[uuid.UUID][]UsedPrice
}

type valuationServiceHandler struct {
	Config ValuationConfig
}

func NewValuationService(config ValuationConfig) ValuationService {
	if config.PriceLookbackDays < 0 {
		config.PriceLookbackDays = 0
	}
	if config.RecentQuoteDays <= 0 {
		config.RecentQuoteDays = 7
	}
	return valuationServiceHandler{Config: config}
}

type assetWalk struct {
	timeline *l1_service.HoldingsTimeline
	asset    domain.Asset
	price    *priceState
}

// ComputeDailyValuations walks every day of the window in order. Carry forward
// makes each day depend on the one before, so days are never valued out of
// order.
func (h valuationServiceHandler) ComputeDailyValuations(ctx context.Context, in ValuationInput) *ValuationResult {
	log := logger.FromContext(ctx)

	recentFrom := in.Window.End.AddDate(0, 0, -(h.Config.RecentQuoteDays - 1))
	walks := make([]assetWalk, 0, len(in.Timelines))
	for _, t := range in.Timelines {
		w := assetWalk{timeline: t, asset: t.Asset}
		if holding, ok := t.Asset.Holding.(domain.MarketHolding); ok {
			w.price = newPriceState(
				holding,
				in.Prices.Series(holding.Symbol, t.Asset.Type),
				in.Quotes[l1_service.PriceKey(holding.Symbol, t.Asset.Type)],
				recentFrom,
			)
			w.price.seed(in.Window.Start.AddDate(0, 0, -h.Config.PriceLookbackDays), in.Window.Start)
		}
		walks = append(walks, w)
	}

	for _, w := range walks {
		if !in.FxRates.Has(w.asset.Currency) {
			log.Warnw("no fx rate for currency, treating as USD",
				"assetID", w.asset.AssetID.String(),
				"currency", w.asset.Currency,
			)
		}
	}

	result := &ValuationResult{
		Points:     make([]domain.DailyValuationPoint, 0, in.Window.Days),
		UsedPrices: map[uuid.UUID][]UsedPrice{},
	}
	for _, day := range in.Window.Dates() {
		point := domain.DailyValuationPoint{Date: day}
		for _, w := range walks {
			// the walk has to observe every day's price even on days the
			// asset is not held, otherwise carry forward would skip them
			price := 1.0
			if w.price != nil {
				used := w.price.resolve(day)
				result.UsedPrices[w.asset.AssetID] = append(result.UsedPrices[w.asset.AssetID], used)
				price = used.Price
			}

			pos := w.timeline.AsOf(day)
			if pos.Quantity.IsZero() {
				continue
			}
			accumulate(&point, w.asset, pos, price, in.FxRates)
		}
		result.Points = append(result.Points, point)
	}

	return result
}

func accumulate(point *domain.DailyValuationPoint, asset domain.Asset, pos domain.Position, price float64, rates domain.FxRates) {
	value := rates.ToUSD(domain.NewMoney(pos.Quantity.Mul(decimal.NewFromFloat(price)), asset.Currency)).Float()
	cost := rates.ToUSD(domain.NewMoney(pos.Cost, asset.Currency)).Float()

	point.TotalValue += value
	point.TotalCost += cost
	if asset.Type.IsLiquid() {
		point.LiquidValue += value
		point.LiquidCost += cost
	}

	switch asset.ValuationClass() {
	case domain.ValuationClassStock:
		point.StockValue += value
	case domain.ValuationClassCrypto:
		point.CryptoValue += value
	case domain.ValuationClassCash:
		point.CashValue += value
	case domain.ValuationClassOther:
	}
}
