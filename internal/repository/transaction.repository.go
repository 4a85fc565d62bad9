package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
	"wealthtrack/internal/db/models/postgres/public/model"
	"wealthtrack/internal/db/models/postgres/public/table"
	"wealthtrack/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type TransactionRepository interface {
	Add(tx *sql.Tx, m model.AssetTransaction) (*model.AssetTransaction, error)
	// ListByUser returns every transaction on the user's assets, oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error)
}

type transactionRepositoryHandler struct {
	Db *sql.DB
}

func NewTransactionRepository(db *sql.DB) TransactionRepository {
	return transactionRepositoryHandler{Db: db}
}

func (h transactionRepositoryHandler) Add(tx *sql.Tx, m model.AssetTransaction) (*model.AssetTransaction, error) {
	m.CreatedAt = time.Now().UTC()
	if !m.Quantity.IsPositive() {
		return nil, fmt.Errorf("failed to insert transaction: quantity must be > 0, got %s", m.Quantity.String())
	}
	query := table.AssetTransaction.
		INSERT(table.AssetTransaction.MutableColumns).
		MODEL(m).
		RETURNING(table.AssetTransaction.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.AssetTransaction{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return &out, nil
}

func (h transactionRepositoryHandler) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	query := table.AssetTransaction.
		SELECT(table.AssetTransaction.AllColumns).
		FROM(
			table.AssetTransaction.INNER_JOIN(
				table.Asset,
				table.Asset.AssetID.EQ(table.AssetTransaction.AssetID),
			),
		).
		WHERE(table.Asset.UserID.EQ(postgres.UUID(userID))).
		ORDER_BY(
			table.AssetTransaction.Date.ASC(),
			table.AssetTransaction.CreatedAt.ASC(),
		)

	result := []model.AssetTransaction{}
	err := query.QueryContext(ctx, h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %s: %w", userID.String(), err)
	}

	out := []domain.Transaction{}
	for _, m := range result {
		t, err := transactionFromModel(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}

	return out, nil
}

func transactionFromModel(m model.AssetTransaction) (*domain.Transaction, error) {
	txType, err := domain.ParseTransactionType(m.TransactionType.String())
	if err != nil {
		return nil, fmt.Errorf("failed to parse transaction %s: %w", m.AssetTransactionID.String(), err)
	}
	return &domain.Transaction{
		TransactionID: m.AssetTransactionID,
		AssetID:       m.AssetID,
		Type:          txType,
		Quantity:      m.Quantity,
		PricePerUnit:  m.PricePerUnit,
		Fee:           m.Fee,
		Date:          m.Date.UTC(),
		Notes:         m.Notes,
	}, nil
}
