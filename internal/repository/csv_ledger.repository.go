package repository

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"wealthtrack/internal/domain"
	"wealthtrack/internal/util"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	CsvAssetsFile       = "assets.csv"
	CsvTransactionsFile = "transactions.csv"
)

type assetCsvRow struct {
	AssetID         string `csv:"asset_id"`
	UserID          string `csv:"user_id"`
	Type            string `csv:"type"`
	Symbol          string `csv:"symbol"`
	Name            string `csv:"name"`
	Currency        string `csv:"currency"`
	Quantity        string `csv:"quantity"`
	Balance         string `csv:"balance"`
	AverageBuyPrice string `csv:"average_buy_price"`
	LastPrice       string `csv:"last_price"`
}

type transactionCsvRow struct {
	TransactionID string `csv:"transaction_id"`
	AssetID       string `csv:"asset_id"`
	Type          string `csv:"type"`
	Quantity      string `csv:"quantity"`
	PricePerUnit  string `csv:"price_per_unit"`
	Fee           string `csv:"fee"`
	Date          string `csv:"date"`
	Notes         string `csv:"notes"`
}

// csvLedgerRepositoryHandler reads a ledger exported as two csv files in one
// directory. Rows with an empty user_id belong to every user, which is how a
// single user export looks.
type csvLedgerRepositoryHandler struct {
	Dir string
}

func NewCsvLedgerRepository(dir string) LedgerRepository {
	return csvLedgerRepositoryHandler{Dir: dir}
}

func (h csvLedgerRepositoryHandler) ListAssets(ctx context.Context, userID uuid.UUID) ([]domain.Asset, error) {
	f, err := os.Open(filepath.Join(h.Dir, CsvAssetsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to open assets csv: %w", err)
	}
	defer f.Close()

	return ParseAssetsCsv(f, userID)
}

func (h csvLedgerRepositoryHandler) ListTransactions(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	assets, err := h.ListAssets(ctx, userID)
	if err != nil {
		return nil, err
	}
	assetIDs := map[uuid.UUID]bool{}
	for _, a := range assets {
		assetIDs[a.AssetID] = true
	}

	f, err := os.Open(filepath.Join(h.Dir, CsvTransactionsFile))
	if os.IsNotExist(err) {
		return []domain.Transaction{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to open transactions csv: %w", err)
	}
	defer f.Close()

	txs, err := ParseTransactionsCsv(f)
	if err != nil {
		return nil, err
	}

	out := []domain.Transaction{}
	for _, tx := range txs {
		if assetIDs[tx.AssetID] {
			out = append(out, tx)
		}
	}
	return out, nil
}

// ParseAssetsCsv returns the assets in r owned by userID.
func ParseAssetsCsv(r io.Reader, userID uuid.UUID) ([]domain.Asset, error) {
	rows := []assetCsvRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse assets csv: %w", err)
	}

	out := []domain.Asset{}
	for i, row := range rows {
		if row.UserID != "" {
			owner, err := uuid.Parse(row.UserID)
			if err != nil {
				return nil, fmt.Errorf("failed to parse user_id on asset row %d: %w", i+1, err)
			}
			if owner != userID {
				continue
			}
		}
		asset, err := row.toAsset(userID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse asset row %d: %w", i+1, err)
		}
		out = append(out, *asset)
	}
	return out, nil
}

func (row assetCsvRow) toAsset(userID uuid.UUID) (*domain.Asset, error) {
	assetID, err := uuid.Parse(row.AssetID)
	if err != nil {
		return nil, fmt.Errorf("invalid asset_id %q: %w", row.AssetID, err)
	}
	assetType, err := domain.ParseAssetType(row.Type)
	if err != nil {
		return nil, err
	}

	record := domain.AssetRecord{
		AssetID:  assetID,
		UserID:   userID,
		Type:     assetType,
		Name:     row.Name,
		Currency: row.Currency,
	}
	if s := strings.TrimSpace(row.Symbol); s != "" {
		record.Symbol = &s
	}

	fields := []struct {
		name  string
		value string
		dest  **decimal.Decimal
	}{
		{"quantity", row.Quantity, &record.Quantity},
		{"balance", row.Balance, &record.Balance},
		{"average_buy_price", row.AverageBuyPrice, &record.AverageBuyPrice},
		{"last_price", row.LastPrice, &record.LastPrice},
	}
	for _, f := range fields {
		d, err := parseOptionalDecimal(f.value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", f.name, err)
		}
		*f.dest = d
	}

	return record.ToAsset()
}

// ParseTransactionsCsv returns every transaction in r ordered by date.
func ParseTransactionsCsv(r io.Reader) ([]domain.Transaction, error) {
	rows := []transactionCsvRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse transactions csv: %w", err)
	}

	out := []domain.Transaction{}
	for i, row := range rows {
		tx, err := row.toTransaction()
		if err != nil {
			return nil, fmt.Errorf("failed to parse transaction row %d: %w", i+1, err)
		}
		out = append(out, *tx)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

func (row transactionCsvRow) toTransaction() (*domain.Transaction, error) {
	txID := uuid.New()
	if row.TransactionID != "" {
		id, err := uuid.Parse(row.TransactionID)
		if err != nil {
			return nil, fmt.Errorf("invalid transaction_id %q: %w", row.TransactionID, err)
		}
		txID = id
	}
	assetID, err := uuid.Parse(row.AssetID)
	if err != nil {
		return nil, fmt.Errorf("invalid asset_id %q: %w", row.AssetID, err)
	}
	txType, err := domain.ParseTransactionType(row.Type)
	if err != nil {
		return nil, err
	}
	quantity, err := decimal.NewFromString(strings.TrimSpace(row.Quantity))
	if err != nil {
		return nil, fmt.Errorf("invalid quantity %q: %w", row.Quantity, err)
	}
	price, err := parseOptionalDecimal(row.PricePerUnit)
	if err != nil {
		return nil, fmt.Errorf("invalid price_per_unit: %w", err)
	}
	fee, err := parseOptionalDecimal(row.Fee)
	if err != nil {
		return nil, fmt.Errorf("invalid fee: %w", err)
	}
	date, err := parseCsvDate(row.Date)
	if err != nil {
		return nil, err
	}

	tx := &domain.Transaction{
		TransactionID: txID,
		AssetID:       assetID,
		Type:          txType,
		Quantity:      quantity,
		PricePerUnit:  decimal.Zero,
		Fee:           decimal.Zero,
		Date:          date,
	}
	if price != nil {
		tx.PricePerUnit = *price
	}
	if fee != nil {
		tx.Fee = *fee
	}
	if row.Notes != "" {
		notes := row.Notes
		tx.Notes = &notes
	}
	return tx, nil
}

func parseOptionalDecimal(s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number: %w", s, err)
	}
	return &d, nil
}

// parseCsvDate accepts a plain date or a full RFC 3339 timestamp.
func parseCsvDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := util.ParseDate(s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t.UTC(), nil
}
