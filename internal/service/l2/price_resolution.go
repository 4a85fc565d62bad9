package l2_service

import (
	"time"
	"wealthtrack/internal/domain"
)

type PriceSource string

const (
	PriceSourceExact        PriceSource = "exact"
	PriceSourceCarryForward PriceSource = "carry_forward"
	PriceSourceCostBasis    PriceSource = "cost_basis"
	PriceSourceRecentQuote  PriceSource = "recent_quote"
	PriceSourceNone         PriceSource = "none"
)

// priceState is the per asset state of the day walk.
type priceState struct {
	holding    domain.MarketHolding
	series     domain.PriceSeries
	quote      domain.Quote
	recentFrom time.Time

	lastKnown float64
}

func newPriceState(holding domain.MarketHolding, series domain.PriceSeries, quote domain.Quote, recentFrom time.Time) *priceState {
	return &priceState{
		holding:    holding,
		series:     series,
		quote:      quote,
		recentFrom: recentFrom,
	}
}

// seed walks [from, until) so a window starting on a holiday carries the last
// close from the lookback buffer.
func (s *priceState) seed(from, until time.Time) {
	for d := from; d.Before(until); d = d.AddDate(0, 0, 1) {
		if p, ok := s.series.On(d); ok {
			s.lastKnown = p
		}
	}
}

type priceStrategy struct {
	source PriceSource
	price  func(s *priceState, day time.Time) (float64, bool)
}

// priceStrategies are tried in order and the first that applies wins.
var priceStrategies = []priceStrategy{
	// a close exists for the day
	{PriceSourceExact, func(s *priceState, day time.Time) (float64, bool) {
		return s.series.On(day)
	}},
	// some earlier day in the walk, or the lookback buffer, had a close
	{PriceSourceCarryForward, func(s *priceState, day time.Time) (float64, bool) {
		return s.lastKnown, s.lastKnown > 0
	}},
	// nothing seen yet, value at book
	{PriceSourceCostBasis, func(s *priceState, day time.Time) (float64, bool) {
		p := s.holding.AverageBuyPrice.InexactFloat64()
		return p, p > 0
	}},
	// no book value either, and the day is close enough to today that the
	// current price is not a jump
	{PriceSourceRecentQuote, func(s *priceState, day time.Time) (float64, bool) {
		if day.Before(s.recentFrom) {
			return 0, false
		}
		// the live quote is preferred over the stored last price
		if s.quote.Price > 0 {
			return s.quote.Price, true
		}
		p := s.holding.LastPrice.InexactFloat64()
		return p, p > 0
	}},
}

func (s *priceState) resolve(day time.Time) UsedPrice {
	for _, strategy := range priceStrategies {
		if p, ok := strategy.price(s, day); ok {
			if strategy.source == PriceSourceExact {
				s.lastKnown = p
			}
			return UsedPrice{Date: day, Price: p, Source: strategy.source}
		}
	}
	return UsedPrice{Date: day, Price: 0, Source: PriceSourceNone}
}
