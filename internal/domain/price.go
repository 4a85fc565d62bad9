package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AssetPrice struct {
	Symbol string
	Price  decimal.Decimal
	Date   time.Time
}

// PricePoint is a daily close in the asset's native currency. Date is
// YYYY-MM-DD.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// Quote is a current price snapshot. A zero Price means unknown.
type Quote struct {
	Price     float64 `json:"price"`
	Change24h float64 `json:"change24h"`
}

// PriceSeries maps YYYY-MM-DD to a close price. It is sparse.
type PriceSeries map[string]float64

func NewPriceSeries(points []PricePoint) PriceSeries {
	out := PriceSeries{}
	for _, p := range points {
		if p.Price > 0 {
			out[p.Date] = p.Price
		}
	}
	return out
}

func (s PriceSeries) On(date time.Time) (float64, bool) {
	p, ok := s[date.Format(time.DateOnly)]
	return p, ok
}

// Earliest returns the oldest price in the series.
func (s PriceSeries) Earliest() (float64, bool) {
	var (
		first string
		price float64
	)
	for date, p := range s {
		if first == "" || date < first {
			first = date
			price = p
		}
	}
	return price, first != ""
}
