package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FxRates maps a currency code to units of that currency per 1 USD.
type FxRates map[string]float64

// Rate never fails: USD and any currency missing from the table are
// treated as 1.
func (r FxRates) Rate(currency string) float64 {
	currency = strings.ToUpper(currency)
	if currency == "" || currency == USD {
		return 1
	}
	if rate, ok := r[currency]; ok && rate > 0 {
		return rate
	}
	return 1
}

func (r FxRates) Has(currency string) bool {
	currency = strings.ToUpper(currency)
	if currency == USD {
		return true
	}
	rate, ok := r[currency]
	return ok && rate > 0
}

func (r FxRates) ToUSD(m Money) Money {
	rate := r.Rate(m.Currency)
	if rate == 1 {
		return Money{Amount: m.Amount, Currency: USD}
	}
	return Money{Amount: m.Amount.Div(decimal.NewFromFloat(rate)), Currency: USD}
}

// Copy returns a copy with USD pinned to 1.
func (r FxRates) Copy() FxRates {
	out := FxRates{USD: 1}
	for k, v := range r {
		k = strings.ToUpper(k)
		if k == USD || v <= 0 {
			continue
		}
		out[k] = v
	}
	return out
}
