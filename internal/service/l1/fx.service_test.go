package l1_service

import (
	"context"
	"errors"
	"testing"
	"wealthtrack/internal/domain"
	mock_repository "wealthtrack/internal/repository/mocks"
	"wealthtrack/internal/util"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetFxRates(t *testing.T) {
	ctx := context.Background()
	fallback := map[string]float64{"EUR": 0.9, "JPY": 150}

	t.Run("live rates overlay the fallback table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockFxRateRepository(ctrl)
		repo.EXPECT().
			GetLatestRates(gomock.Any(), domain.USD).
			Return(map[string]float64{"EUR": 0.92, "GBP": 0.8}, nil).
			Times(1)

		handler := NewFxService(repo, util.NewTTLCache[domain.FxRates](), 60, fallback)
		rates := handler.GetFxRates(ctx)
		require.Equal(t, domain.FxRates{"USD": 1, "EUR": 0.92, "GBP": 0.8, "JPY": 150}, rates)

		// cached
		require.Equal(t, rates, handler.GetFxRates(ctx))
	})

	t.Run("failure returns the fallback table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockFxRateRepository(ctrl)
		repo.EXPECT().
			GetLatestRates(gomock.Any(), domain.USD).
			Return(nil, errors.New("connection refused")).
			Times(2)

		handler := NewFxService(repo, util.NewTTLCache[domain.FxRates](), 60, fallback)
		rates := handler.GetFxRates(ctx)
		require.Equal(t, domain.FxRates{"USD": 1, "EUR": 0.9, "JPY": 150}, rates)

		// failures are not cached
		handler.GetFxRates(ctx)
	})

	t.Run("missing currency converts at 1", func(t *testing.T) {
		handler := NewFxService(nil, nil, 0, map[string]float64{"GBP": 0.8})
		rates := handler.GetFxRates(ctx)
		require.Equal(t, 1.0, rates.Rate("EUR"))
		require.False(t, rates.Has("EUR"))
	})
}
