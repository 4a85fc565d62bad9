package l3_service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wealthtrack/internal/calculator"
	"wealthtrack/internal/domain"
	"wealthtrack/internal/logger"
	"wealthtrack/internal/repository"

	"github.com/google/uuid"
)

// HistoryService maintains the coarse one-point-per-day total value ledger.
// It is a cheap approximation for short lookups, the analysis service is the
// source of truth.
type HistoryService interface {
	RecordSnapshot(ctx context.Context, userID uuid.UUID) (*domain.HistoryPoint, error)
	GetHistory(ctx context.Context, userID uuid.UUID, analysisRange string) (*domain.PortfolioHistory, error)
}

type historyServiceHandler struct {
	AnalysisService            PortfolioAnalysisService
	PortfolioHistoryRepository repository.PortfolioHistoryRepository
	AllRangeMaxDays            int
	Now                        func() time.Time
}

// ErrHistoryUnavailable is returned when no history store is configured,
// as with the file backed ledger.
var ErrHistoryUnavailable = errors.New("portfolio history store is not configured")

func NewHistoryService(
	analysisService PortfolioAnalysisService,
	portfolioHistoryRepository repository.PortfolioHistoryRepository,
	allRangeMaxDays int,
) HistoryService {
	return historyServiceHandler{
		AnalysisService:            analysisService,
		PortfolioHistoryRepository: portfolioHistoryRepository,
		AllRangeMaxDays:            allRangeMaxDays,
		Now:                        time.Now,
	}
}

func (h historyServiceHandler) RecordSnapshot(ctx context.Context, userID uuid.UUID) (*domain.HistoryPoint, error) {
	if h.PortfolioHistoryRepository == nil {
		return nil, ErrHistoryUnavailable
	}
	today := domain.StartOfDay(h.Now())
	points, err := h.AnalysisService.ComputeValuation(ctx, userID, domain.NewWindow(today, today))
	if err != nil {
		return nil, fmt.Errorf("failed to value portfolio for snapshot: %w", err)
	}

	total := 0.0
	if len(points) > 0 {
		total = points[len(points)-1].TotalValue
	}

	saved, err := h.PortfolioHistoryRepository.Upsert(ctx, domain.HistoryPoint{
		UserID:     userID,
		Date:       today,
		TotalValue: total,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record snapshot: %w", err)
	}

	logger.FromContext(ctx).Infow("recorded portfolio snapshot",
		"userID", userID.String(),
		"date", today.Format(time.DateOnly),
		"totalValue", total,
	)
	return saved, nil
}

func (h historyServiceHandler) GetHistory(ctx context.Context, userID uuid.UUID, analysisRange string) (*domain.PortfolioHistory, error) {
	r, err := domain.ParseAnalysisRange(analysisRange)
	if err != nil {
		return nil, err
	}
	if h.PortfolioHistoryRepository == nil {
		return nil, ErrHistoryUnavailable
	}
	window := r.Window(h.Now(), h.AllRangeMaxDays)

	points, err := h.PortfolioHistoryRepository.List(ctx, userID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	out := &domain.PortfolioHistory{
		Range:  r,
		Points: points,
	}
	if len(points) > 0 {
		out.Return = calculator.SimpleReturn(points[0].TotalValue, points[len(points)-1].TotalValue)
	}
	return out, nil
}
