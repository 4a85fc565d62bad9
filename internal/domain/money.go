package domain

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const USD = "USD"

// Money is an amount tagged with its currency. Amounts crossing a package
// boundary carry one so the currency is never implied by a field name.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func NewMoney(amount decimal.Decimal, currency string) Money {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = USD
	}
	return Money{Amount: amount, Currency: currency}
}

func NewMoneyFromFloat(amount float64, currency string) Money {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// IsKnownCurrency reports whether the ISO code is one go-money knows about.
func IsKnownCurrency(code string) bool {
	return money.GetCurrency(strings.ToUpper(code)) != nil
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) Float() float64 {
	return m.Amount.InexactFloat64()
}

// String formats with the currency's symbol and minor unit digits.
func (m Money) String() string {
	cur := money.New(0, m.Currency).Currency()
	minor := m.Amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, m.Currency).Display()
}

// Position is a quantity with its total cost basis in the asset currency.
type Position struct {
	Quantity decimal.Decimal
	Cost     decimal.Decimal
}

func (p Position) IsZero() bool {
	return p.Quantity.IsZero()
}

// UnitCost is the weighted average cost per unit, zero for an empty position.
func (p Position) UnitCost() decimal.Decimal {
	if !p.Quantity.IsPositive() {
		return decimal.Zero
	}
	return p.Cost.Div(p.Quantity)
}
