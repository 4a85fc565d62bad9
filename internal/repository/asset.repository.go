package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
	"wealthtrack/internal/db/models/postgres/public/model"
	"wealthtrack/internal/db/models/postgres/public/table"
	"wealthtrack/internal/domain"
	"wealthtrack/internal/logger"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type AssetRepository interface {
	Add(tx *sql.Tx, m model.Asset) (*model.Asset, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Asset, error)
}

type assetRepositoryHandler struct {
	Db *sql.DB
}

func NewAssetRepository(db *sql.DB) AssetRepository {
	return assetRepositoryHandler{Db: db}
}

func (h assetRepositoryHandler) Add(tx *sql.Tx, m model.Asset) (*model.Asset, error) {
	m.CreatedAt = time.Now().UTC()
	m.ModifiedAt = m.CreatedAt
	query := table.Asset.
		INSERT(table.Asset.MutableColumns).
		MODEL(m).
		RETURNING(table.Asset.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Asset{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert asset: %w", err)
	}

	return &out, nil
}

func (h assetRepositoryHandler) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Asset, error) {
	query := table.Asset.
		SELECT(table.Asset.AllColumns).
		WHERE(table.Asset.UserID.EQ(postgres.UUID(userID))).
		ORDER_BY(table.Asset.CreatedAt.ASC())

	result := []model.Asset{}
	err := query.QueryContext(ctx, h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets for user %s: %w", userID.String(), err)
	}

	return assetsFromModels(ctx, result), nil
}

// assetsFromModels skips rows that do not map to a valid asset so one bad
// row does not block valuing the rest.
func assetsFromModels(ctx context.Context, models []model.Asset) []domain.Asset {
	log := logger.FromContext(ctx)

	out := []domain.Asset{}
	for _, m := range models {
		asset, err := assetFromModel(m)
		if err != nil {
			log.Warnw("skipping invalid asset row",
				"assetID", m.AssetID.String(),
				"assetType", m.AssetType.String(),
				"error", err.Error(),
			)
			continue
		}
		out = append(out, *asset)
	}
	return out
}

func assetFromModel(m model.Asset) (*domain.Asset, error) {
	assetType, err := domain.ParseAssetType(m.AssetType.String())
	if err != nil {
		return nil, fmt.Errorf("failed to parse asset %s: %w", m.AssetID.String(), err)
	}
	return domain.AssetRecord{
		AssetID:         m.AssetID,
		UserID:          m.UserID,
		Type:            assetType,
		Symbol:          m.Symbol,
		Name:            m.Name,
		Currency:        m.Currency,
		Quantity:        m.Quantity,
		Balance:         m.Balance,
		AverageBuyPrice: m.AverageBuyPrice,
		LastPrice:       m.LastPrice,
	}.ToAsset()
}
