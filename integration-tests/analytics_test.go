package integration_tests_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"wealthtrack/cmd"
	integration_tests "wealthtrack/integration-tests"
	"wealthtrack/internal/db/models/postgres/public/model"
	"wealthtrack/internal/db/models/postgres/public/table"
	"wealthtrack/internal/domain"
	"wealthtrack/internal/repository"
	"wealthtrack/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestDbOrSkip(t *testing.T) *sql.DB {
	db, err := util.NewTestDb()
	require.NoError(t, err)
	if err := db.Ping(); err != nil {
		t.Skipf("test db unavailable: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func seedLedger(t *testing.T, db *sql.DB, userID uuid.UUID, purchaseDate time.Time) {
	assetRepository := repository.NewAssetRepository(db)
	transactionRepository := repository.NewTransactionRepository(db)

	stock, err := assetRepository.Add(nil, model.Asset{
		UserID:          userID,
		AssetType:       model.AssetType_Stock,
		Symbol:          util.StringPointer("AAPL"),
		Name:            "Apple",
		Currency:        "USD",
		Quantity:        util.DecimalPointer(decimal.NewFromInt(10)),
		AverageBuyPrice: util.DecimalPointer(decimal.NewFromInt(90)),
	})
	require.NoError(t, err)

	_, err = transactionRepository.Add(nil, model.AssetTransaction{
		AssetID:         stock.AssetID,
		TransactionType: model.TransactionType_Buy,
		Quantity:        decimal.NewFromInt(10),
		PricePerUnit:    decimal.NewFromInt(90),
		Date:            purchaseDate,
	})
	require.NoError(t, err)

	_, err = assetRepository.Add(nil, model.Asset{
		UserID:    userID,
		AssetType: model.AssetType_Bank,
		Name:      "Checking",
		Currency:  "EUR",
		Balance:   util.DecimalPointer(decimal.NewFromInt(900)),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_, err := table.Asset.DELETE().WHERE(table.Asset.UserID.EQ(postgres.UUID(userID))).Exec(db)
		require.NoError(t, err)
		_, err = table.PortfolioHistory.DELETE().WHERE(table.PortfolioHistory.UserID.EQ(postgres.UUID(userID))).Exec(db)
		require.NoError(t, err)
	})
}

func hitEndpoint(baseURL string, route string, payload interface{}, target interface{}) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/"+route, bytes.NewReader(payloadBytes))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed with status %d and response body: %s", resp.StatusCode, string(responseBody))
	}

	return json.Unmarshal(responseBody, target)
}

func Test_analyticsFlow(t *testing.T) {
	db := newTestDbOrSkip(t)
	userID := uuid.New()
	now := time.Now().UTC()
	seedLedger(t, db, userID, now.AddDate(0, 0, -60))

	handler := cmd.NewApiHandler(cmd.Dependencies{
		Config: util.DefaultConfig(),
		Db:     db,
		LedgerRepository: repository.NewLedgerRepository(
			repository.NewAssetRepository(db),
			repository.NewTransactionRepository(db),
		),
		PortfolioHistoryRepository: repository.NewPortfolioHistoryRepository(db),
		MarketDataRepository:       integration_tests.NewMockMarketDataRepositoryForTests(),
		FxRateRepository:           integration_tests.NewMockFxRateRepositoryForTests(),
	})
	server := httptest.NewServer(handler.InitializeRouterEngine())
	defer server.Close()

	// 900 EUR at 0.9 per USD
	expectedToday := 10*integration_tests.MockPrice("AAPL", now) + 1000

	analysis := domain.PortfolioAnalysis{}
	err := hitEndpoint(server.URL, "analytics", map[string]string{
		"userID": userID.String(),
		"range":  "1M",
	}, &analysis)
	require.NoError(t, err)

	require.NotEmpty(t, analysis.History)
	last := analysis.History[len(analysis.History)-1]
	require.InDelta(t, expectedToday, last.TotalValue, 1e-6)
	require.InDelta(t, 1000, last.CashValue, 1e-6)
	require.Positive(t, analysis.PeriodReturn.Value)
	require.NotNil(t, analysis.BestAsset)
	require.Equal(t, "AAPL", analysis.BestAsset.Symbol)

	snapshot := domain.HistoryPoint{}
	err = hitEndpoint(server.URL, "snapshot", map[string]string{"userID": userID.String()}, &snapshot)
	require.NoError(t, err)
	require.InDelta(t, expectedToday, snapshot.TotalValue, 1e-6)

	history := domain.PortfolioHistory{}
	err = hitEndpoint(server.URL, "history", map[string]string{
		"userID": userID.String(),
		"range":  "1W",
	}, &history)
	require.NoError(t, err)
	require.Len(t, history.Points, 1)
	require.InDelta(t, expectedToday, history.Points[0].TotalValue, 1e-6)
}
