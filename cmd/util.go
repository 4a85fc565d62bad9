package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"wealthtrack/api"
	integration_tests "wealthtrack/integration-tests"
	"wealthtrack/internal/domain"
	"wealthtrack/internal/logger"
	"wealthtrack/internal/repository"
	l1_service "wealthtrack/internal/service/l1"
	l2_service "wealthtrack/internal/service/l2"
	l3_service "wealthtrack/internal/service/l3"
	"wealthtrack/internal/util"
	"wealthtrack/pkg/frankfurter"

	_ "github.com/lib/pq"
)

// Dependencies are the collaborators the services are built from. The
// history repository may be nil when there is no database.
type Dependencies struct {
	Config                     util.Config
	Db                         *sql.DB
	LedgerRepository           repository.LedgerRepository
	PortfolioHistoryRepository repository.PortfolioHistoryRepository
	MarketDataRepository       repository.MarketDataRepository
	AlpacaRepository           repository.AlpacaRepository
	FxRateRepository           repository.FxRateRepository
}

type Services struct {
	PortfolioAnalysisService l3_service.PortfolioAnalysisService
	HistoryService           l3_service.HistoryService
}

func NewServices(deps Dependencies) Services {
	cfg := deps.Config

	priceService := l1_service.NewPriceService(
		deps.MarketDataRepository,
		deps.AlpacaRepository,
		util.NewTTLCache[[]domain.PricePoint](),
		util.NewTTLCache[domain.Quote](),
		l1_service.PriceServiceConfig{
			NumWorkers:        cfg.Analytics.PriceFetchWorkers,
			HistoryTtlSeconds: cfg.Cache.HistoryTtlSeconds,
			QuoteTtlSeconds:   cfg.Cache.QuoteTtlSeconds,
		},
	)
	fxService := l1_service.NewFxService(
		deps.FxRateRepository,
		util.NewTTLCache[domain.FxRates](),
		cfg.Cache.FxTtlSeconds,
		cfg.Fx.FallbackRates,
	)
	valuationService := l2_service.NewValuationService(l2_service.ValuationConfig{
		PriceLookbackDays: cfg.Analytics.PriceLookbackDays,
		RecentQuoteDays:   cfg.Analytics.RecentQuoteDays,
	})
	analysisService := l3_service.NewPortfolioAnalysisService(
		deps.LedgerRepository,
		priceService,
		fxService,
		valuationService,
		l3_service.AnalysisConfig{
			AllRangeMaxDays:   cfg.Analytics.AllRangeMaxDays,
			PriceLookbackDays: cfg.Analytics.PriceLookbackDays,
			SparklinePoints:   cfg.Analytics.SparklinePoints,
		},
	)
	historyService := l3_service.NewHistoryService(
		analysisService,
		deps.PortfolioHistoryRepository,
		cfg.Analytics.AllRangeMaxDays,
	)

	return Services{
		PortfolioAnalysisService: analysisService,
		HistoryService:           historyService,
	}
}

func NewApiHandler(deps Dependencies) *api.ApiHandler {
	services := NewServices(deps)
	return &api.ApiHandler{
		Db:                       deps.Db,
		Logger:                   logger.New(),
		PortfolioAnalysisService: services.PortfolioAnalysisService,
		HistoryService:           services.HistoryService,
	}
}

// NewMarketDependencies builds the price and fx collaborators. The test env
// swaps them for deterministic fakes.
func NewMarketDependencies(secrets util.Secrets) (repository.MarketDataRepository, repository.AlpacaRepository, repository.FxRateRepository) {
	if util.Env() == "test" {
		return integration_tests.NewMockMarketDataRepositoryForTests(),
			nil,
			integration_tests.NewMockFxRateRepositoryForTests()
	}

	var alpacaRepository repository.AlpacaRepository
	if secrets.Alpaca.Enabled() {
		alpacaRepository = repository.NewAlpacaRepository(
			secrets.Alpaca.ApiKey,
			secrets.Alpaca.ApiSecret,
			secrets.Alpaca.Endpoint,
		)
	}

	return repository.NewYahooMarketDataRepository(),
		alpacaRepository,
		repository.NewFxRateRepository(frankfurter.NewClient())
}

// NewDbDependencies connects to postgres and builds the ledger and history
// repositories on top of it.
func NewDbDependencies(cfg util.Config, secrets util.Secrets) (*Dependencies, error) {
	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	marketData, alpacaRepository, fxRepository := NewMarketDependencies(secrets)

	return &Dependencies{
		Config: cfg,
		Db:     dbConn,
		LedgerRepository: repository.NewLedgerRepository(
			repository.NewAssetRepository(dbConn),
			repository.NewTransactionRepository(dbConn),
		),
		PortfolioHistoryRepository: repository.NewPortfolioHistoryRepository(dbConn),
		MarketDataRepository:       marketData,
		AlpacaRepository:           alpacaRepository,
		FxRateRepository:           fxRepository,
	}, nil
}

func CloseDependencies(handler *api.ApiHandler) {
	if handler.Db == nil {
		return
	}
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	cfg, err := util.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	deps, err := NewDbDependencies(cfg, *secrets)
	if err != nil {
		return nil, err
	}

	return NewApiHandler(*deps), nil
}
