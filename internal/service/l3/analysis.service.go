package l3_service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
	"wealthtrack/internal/calculator"
	"wealthtrack/internal/domain"
	"wealthtrack/internal/logger"
	"wealthtrack/internal/repository"
	l1_service "wealthtrack/internal/service/l1"
	l2_service "wealthtrack/internal/service/l2"

	"github.com/google/uuid"
)

type PortfolioAnalysisService interface {
	// GeneratePortfolioAnalysis rebuilds the daily valuation series for the
	// range and reduces it to metrics. Only ledger read failures and an
	// unknown range are returned as errors.
	GeneratePortfolioAnalysis(ctx context.Context, userID uuid.UUID, analysisRange string) (*domain.PortfolioAnalysis, error)
	ComputeValuation(ctx context.Context, userID uuid.UUID, window domain.Window) ([]domain.DailyValuationPoint, error)
}

type AnalysisConfig struct {
	AllRangeMaxDays   int
	PriceLookbackDays int
	SparklinePoints   int
}

type portfolioAnalysisServiceHandler struct {
	LedgerRepository repository.LedgerRepository
	PriceService     l1_service.PriceService
	FxService        l1_service.FxService
	ValuationService l2_service.ValuationService
	Config           AnalysisConfig
	Now              func() time.Time
}

func NewPortfolioAnalysisService(
	ledgerRepository repository.LedgerRepository,
	priceService l1_service.PriceService,
	fxService l1_service.FxService,
	valuationService l2_service.ValuationService,
	config AnalysisConfig,
) PortfolioAnalysisService {
	return portfolioAnalysisServiceHandler{
		LedgerRepository: ledgerRepository,
		PriceService:     priceService,
		FxService:        fxService,
		ValuationService: valuationService,
		Config:           config,
		Now:              time.Now,
	}
}

// valuationRun is everything one request loaded and derived before metrics.
type valuationRun struct {
	assets []domain.Asset
	prices *l1_service.PriceHistory
	quotes map[string]domain.Quote
	points []domain.DailyValuationPoint
}

func (h portfolioAnalysisServiceHandler) GeneratePortfolioAnalysis(ctx context.Context, userID uuid.UUID, analysisRange string) (*domain.PortfolioAnalysis, error) {
	log := logger.FromContext(ctx)

	r, err := domain.ParseAnalysisRange(analysisRange)
	if err != nil {
		return nil, err
	}
	window := r.Window(h.Now(), h.Config.AllRangeMaxDays)

	profile, endProfile := domain.GetProfile(ctx)
	defer endProfile()
	ctx = domain.NewCtxWithProfile(ctx, profile)

	run, err := h.valuate(ctx, profile, userID, window)
	if err != nil {
		return nil, err
	}
	if len(run.assets) == 0 {
		return domain.EmptyPortfolioAnalysis(r, window), nil
	}

	_, endSpan := profile.StartNewSpan("metrics")
	analysis := calculator.CalculateMetrics(calculator.MetricsInput{
		Range:           r,
		Window:          window,
		Points:          run.points,
		Assets:          assetPrices(run),
		LookbackDays:    h.Config.PriceLookbackDays,
		SparklinePoints: h.Config.SparklinePoints,
	})
	endSpan()

	if b, err := profile.ToJsonBytes(); err == nil {
		log.Debugw("portfolio analysis profile",
			"userID", userID.String(),
			"range", r,
			"spans", string(b),
		)
	}

	return analysis, nil
}

func (h portfolioAnalysisServiceHandler) ComputeValuation(ctx context.Context, userID uuid.UUID, window domain.Window) ([]domain.DailyValuationPoint, error) {
	profile, endProfile := domain.GetProfile(ctx)
	defer endProfile()
	ctx = domain.NewCtxWithProfile(ctx, profile)

	run, err := h.valuate(ctx, profile, userID, window)
	if err != nil {
		return nil, err
	}
	return run.points, nil
}

// valuate records its spans on profile. The caller owns ending it.
func (h portfolioAnalysisServiceHandler) valuate(ctx context.Context, profile *domain.Profile, userID uuid.UUID, window domain.Window) (*valuationRun, error) {

	_, endSpan := profile.StartNewSpan("load ledger")
	assets, err := h.LedgerRepository.ListAssets(ctx, userID)
	if err != nil {
		endSpan()
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	if len(assets) == 0 {
		endSpan()
		return &valuationRun{assets: assets, points: []domain.DailyValuationPoint{}}, nil
	}
	txs, err := h.LedgerRepository.ListTransactions(ctx, userID)
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	timelines := h.buildTimelines(ctx, assets, txs)

	span, endSpan := profile.StartNewSpan("load prices")
	subProfile, _ := span.NewSubProfile()
	run := &valuationRun{assets: assets}
	inputs := priceInputs(assets)
	var (
		rates domain.FxRates
		wg    sync.WaitGroup
	)
	traced := func(name string, f func()) {
		defer wg.Done()
		s, end := domain.NewSpan(name)
		subProfile.AddSpan(s)
		f()
		end()
	}
	wg.Add(3)
	go traced("price history", func() {
		run.prices = h.PriceService.LoadPriceHistory(ctx, inputs, window.Start.AddDate(0, 0, -h.Config.PriceLookbackDays), window.End)
	})
	go traced("quotes", func() {
		run.quotes = h.PriceService.GetQuotes(ctx, inputs)
	})
	go traced("fx rates", func() {
		rates = h.FxService.GetFxRates(ctx)
	})
	wg.Wait()
	endSpan()

	_, endSpan = profile.StartNewSpan("valuation")
	result := h.ValuationService.ComputeDailyValuations(ctx, l2_service.ValuationInput{
		Window:    window,
		Timelines: timelines,
		Prices:    run.prices,
		Quotes:    run.quotes,
		FxRates:   rates,
	})
	endSpan()

	run.points = result.Points
	return run, nil
}

func (h portfolioAnalysisServiceHandler) buildTimelines(ctx context.Context, assets []domain.Asset, txs []domain.Transaction) []*l1_service.HoldingsTimeline {
	log := logger.FromContext(ctx)

	byAsset := domain.GroupTransactionsByAsset(txs)
	out := make([]*l1_service.HoldingsTimeline, 0, len(assets))
	for _, a := range assets {
		t := l1_service.NewHoldingsTimeline(a, byAsset[a.AssetID])
		if t.Opening.CostCorrected {
			log.Warnw("opening cost came out negative, reset to quantity * average cost",
				"assetID", a.AssetID.String(),
				"openingQuantity", t.Opening.Position.Quantity.String(),
				"openingCost", t.Opening.Position.Cost.String(),
			)
		}
		if t.Opening.NegativeQuantity {
			log.Warnw("transactions account for more units than the asset holds",
				"assetID", a.AssetID.String(),
				"openingQuantity", t.Opening.Position.Quantity.String(),
			)
		}
		out = append(out, t)
	}
	return out
}

func priceInputs(assets []domain.Asset) []l1_service.PriceInput {
	out := []l1_service.PriceInput{}
	for _, a := range assets {
		if symbol := a.Symbol(); symbol != "" {
			out = append(out, l1_service.PriceInput{Symbol: symbol, AssetType: a.Type})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key() < out[j].Key()
	})
	return out
}

func assetPrices(run *valuationRun) []calculator.AssetPrices {
	out := []calculator.AssetPrices{}
	for _, a := range run.assets {
		symbol := a.Symbol()
		if symbol == "" {
			continue
		}
		out = append(out, calculator.AssetPrices{
			Asset:  a,
			Series: run.prices.Series(symbol, a.Type),
			Quote:  run.quotes[l1_service.PriceKey(symbol, a.Type)],
		})
	}
	return out
}
