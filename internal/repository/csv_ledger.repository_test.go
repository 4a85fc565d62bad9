package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"wealthtrack/internal/domain"
	"wealthtrack/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testAssetsCsv = `asset_id,user_id,type,symbol,name,currency,quantity,balance,average_buy_price,last_price
11111111-1111-1111-1111-111111111111,,STOCK,aapl,Apple,usd,10,,150,190
22222222-2222-2222-2222-222222222222,,BANK,,Checking,EUR,,2500,,
33333333-3333-3333-3333-333333333333,99999999-9999-9999-9999-999999999999,CRYPTO,BTC,Bitcoin,USD,1,,30000,
`

const testTransactionsCsv = `transaction_id,asset_id,type,quantity,price_per_unit,fee,date,notes
,11111111-1111-1111-1111-111111111111,SELL,5,200,1,2024-02-01,
,11111111-1111-1111-1111-111111111111,BUY,15,120,,2024-01-01T10:30:00Z,first buy
,33333333-3333-3333-3333-333333333333,BUY,1,30000,,2024-01-05,
`

func TestParseAssetsCsv(t *testing.T) {
	userID := uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")

	assets, err := ParseAssetsCsv(strings.NewReader(testAssetsCsv), userID)
	require.NoError(t, err)
	require.Len(t, assets, 2)

	require.Equal(t, domain.AssetTypeStock, assets[0].Type)
	require.Equal(t, "USD", assets[0].Currency)
	require.Equal(t, userID, assets[0].UserID)
	holding, ok := assets[0].Holding.(domain.MarketHolding)
	require.True(t, ok)
	require.Equal(t, "AAPL", holding.Symbol)
	require.True(t, decimal.NewFromInt(10).Equal(holding.Quantity))
	require.True(t, decimal.NewFromInt(150).Equal(holding.AverageBuyPrice))

	cash, ok := assets[1].Holding.(domain.CashHolding)
	require.True(t, ok)
	require.Equal(t, "EUR", assets[1].Currency)
	require.True(t, decimal.NewFromInt(2500).Equal(cash.Balance))
}

func TestParseAssetsCsv_invalidType(t *testing.T) {
	in := "asset_id,type,name\n11111111-1111-1111-1111-111111111111,BOND,Treasury\n"
	_, err := ParseAssetsCsv(strings.NewReader(in), uuid.New())
	require.ErrorIs(t, err, domain.ErrUnknownAssetType)
}

func TestParseTransactionsCsv(t *testing.T) {
	txs, err := ParseTransactionsCsv(strings.NewReader(testTransactionsCsv))
	require.NoError(t, err)
	require.Len(t, txs, 3)

	require.Equal(t, domain.TransactionTypeBuy, txs[0].Type)
	require.Equal(t, "first buy", *txs[0].Notes)
	require.True(t, decimal.NewFromInt(120).Equal(txs[0].PricePerUnit))
	require.True(t, txs[0].Fee.IsZero())

	require.Equal(t, util.NewDate(2024, 1, 5), txs[1].Date)
	require.Equal(t, domain.TransactionTypeSell, txs[2].Type)
	require.True(t, decimal.NewFromInt(1).Equal(txs[2].Fee))
	require.Nil(t, txs[2].Notes)
}

func TestCsvLedgerRepository(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, CsvAssetsFile), []byte(testAssetsCsv), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, CsvTransactionsFile), []byte(testTransactionsCsv), 0o644))

	ctx := context.Background()
	repo := NewCsvLedgerRepository(dir)

	t.Run("transactions are limited to the user's assets", func(t *testing.T) {
		txs, err := repo.ListTransactions(ctx, uuid.New())
		require.NoError(t, err)
		require.Len(t, txs, 2)
		for _, tx := range txs {
			require.Equal(t, uuid.MustParse("11111111-1111-1111-1111-111111111111"), tx.AssetID)
		}
	})

	t.Run("owner sees the owned asset too", func(t *testing.T) {
		owner := uuid.MustParse("99999999-9999-9999-9999-999999999999")
		assets, err := repo.ListAssets(ctx, owner)
		require.NoError(t, err)
		require.Len(t, assets, 3)

		txs, err := repo.ListTransactions(ctx, owner)
		require.NoError(t, err)
		require.Len(t, txs, 3)
	})

	t.Run("missing transactions file is an empty ledger", func(t *testing.T) {
		onlyAssets := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(onlyAssets, CsvAssetsFile), []byte(testAssetsCsv), 0o644))

		txs, err := NewCsvLedgerRepository(onlyAssets).ListTransactions(ctx, uuid.New())
		require.NoError(t, err)
		require.Empty(t, txs)
	})

	t.Run("missing assets file is an error", func(t *testing.T) {
		_, err := NewCsvLedgerRepository(t.TempDir()).ListAssets(ctx, uuid.New())
		require.Error(t, err)
	})
}
