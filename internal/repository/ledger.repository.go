package repository

import (
	"context"
	"wealthtrack/internal/domain"

	"github.com/google/uuid"
)

// LedgerRepository is the read side the analytics engine needs: a user's
// assets and their transactions.
type LedgerRepository interface {
	ListAssets(ctx context.Context, userID uuid.UUID) ([]domain.Asset, error)
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error)
}

type dbLedgerRepositoryHandler struct {
	AssetRepository       AssetRepository
	TransactionRepository TransactionRepository
}

func NewLedgerRepository(assetRepository AssetRepository, transactionRepository TransactionRepository) LedgerRepository {
	return dbLedgerRepositoryHandler{
		AssetRepository:       assetRepository,
		TransactionRepository: transactionRepository,
	}
}

func (h dbLedgerRepositoryHandler) ListAssets(ctx context.Context, userID uuid.UUID) ([]domain.Asset, error) {
	return h.AssetRepository.ListByUser(ctx, userID)
}

func (h dbLedgerRepositoryHandler) ListTransactions(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	return h.TransactionRepository.ListByUser(ctx, userID)
}
