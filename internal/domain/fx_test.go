package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFxRates(t *testing.T) {
	rates := FxRates{"eur": 0.9, "GBP": 0.8, "JPY": -1}.Copy()

	require.Equal(t, 1.0, rates.Rate(USD))
	require.Equal(t, 0.9, rates.Rate("eur"))
	// missing and invalid currencies are treated as USD
	require.Equal(t, 1.0, rates.Rate("CHF"))
	require.Equal(t, 1.0, rates.Rate("JPY"))
	require.False(t, rates.Has("JPY"))
	require.True(t, rates.Has("GBP"))

	usd := rates.ToUSD(NewMoney(decimal.NewFromInt(900), "EUR"))
	require.Equal(t, USD, usd.Currency)
	require.InDelta(t, 1000, usd.Float(), 1e-9)
}

func TestMoney(t *testing.T) {
	require.Equal(t, USD, NewMoney(decimal.Zero, " ").Currency)
	require.Equal(t, "$1,234.57", NewMoneyFromFloat(1234.567, "usd").String())
	require.True(t, IsKnownCurrency("eur"))
	require.False(t, IsKnownCurrency("XYZ"))

	pos := Position{Quantity: decimal.NewFromInt(4), Cost: decimal.NewFromInt(10)}
	require.True(t, pos.UnitCost().Equal(decimal.NewFromFloat(2.5)))
	require.True(t, Position{}.UnitCost().IsZero())
}

func TestPriceSeries(t *testing.T) {
	s := NewPriceSeries([]PricePoint{
		{Date: "2024-01-03", Price: 12},
		{Date: "2024-01-02", Price: 11},
		{Date: "2024-01-04", Price: 0},
	})

	p, ok := s.On(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	require.Equal(t, 11.0, p)

	_, ok = s.On(time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC))
	require.False(t, ok)

	first, ok := s.Earliest()
	require.True(t, ok)
	require.Equal(t, 11.0, first)
}
