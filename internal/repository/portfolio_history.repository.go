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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PortfolioHistoryRepository interface {
	// Upsert keeps one row per user per day; a later snapshot on the same day
	// replaces the value.
	Upsert(ctx context.Context, point domain.HistoryPoint) (*domain.HistoryPoint, error)
	List(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.HistoryPoint, error)
}

type portfolioHistoryRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioHistoryRepository(db *sql.DB) PortfolioHistoryRepository {
	return portfolioHistoryRepositoryHandler{Db: db}
}

func (h portfolioHistoryRepositoryHandler) Upsert(ctx context.Context, point domain.HistoryPoint) (*domain.HistoryPoint, error) {
	now := time.Now().UTC()
	m := model.PortfolioHistory{
		UserID:     point.UserID,
		Date:       domain.StartOfDay(point.Date),
		TotalValue: decimal.NewFromFloat(point.TotalValue),
		CreatedAt:  now,
		ModifiedAt: now,
	}

	query := table.PortfolioHistory.
		INSERT(table.PortfolioHistory.MutableColumns).
		MODEL(m).
		ON_CONFLICT(
			table.PortfolioHistory.UserID, table.PortfolioHistory.Date,
		).DO_UPDATE(
		postgres.SET(
			table.PortfolioHistory.TotalValue.SET(table.PortfolioHistory.EXCLUDED.TotalValue),
			table.PortfolioHistory.ModifiedAt.SET(table.PortfolioHistory.EXCLUDED.ModifiedAt),
		),
	).
		RETURNING(table.PortfolioHistory.AllColumns)

	out := model.PortfolioHistory{}
	err := query.QueryContext(ctx, h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert portfolio history for user %s: %w", point.UserID.String(), err)
	}

	result := historyPointFromModel(out)
	return &result, nil
}

func (h portfolioHistoryRepositoryHandler) List(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.HistoryPoint, error) {
	query := table.PortfolioHistory.
		SELECT(table.PortfolioHistory.AllColumns).
		WHERE(
			postgres.AND(
				table.PortfolioHistory.UserID.EQ(postgres.UUID(userID)),
				table.PortfolioHistory.Date.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		).
		ORDER_BY(table.PortfolioHistory.Date.ASC())

	result := []model.PortfolioHistory{}
	err := query.QueryContext(ctx, h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio history for user %s: %w", userID.String(), err)
	}

	out := []domain.HistoryPoint{}
	for _, m := range result {
		out = append(out, historyPointFromModel(m))
	}

	return out, nil
}

func historyPointFromModel(m model.PortfolioHistory) domain.HistoryPoint {
	return domain.HistoryPoint{
		PortfolioHistoryID: m.PortfolioHistoryID,
		UserID:             m.UserID,
		Date:               domain.StartOfDay(m.Date),
		TotalValue:         m.TotalValue.InexactFloat64(),
	}
}
