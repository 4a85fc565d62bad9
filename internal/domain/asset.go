package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrUnknownAssetType = errors.New("unknown asset type")

type AssetType string

const (
	AssetTypeBank       AssetType = "BANK"
	AssetTypeStock      AssetType = "STOCK"
	AssetTypeCrypto     AssetType = "CRYPTO"
	AssetTypeRealEstate AssetType = "REAL_ESTATE"
	AssetTypeCustom     AssetType = "CUSTOM"
)

func ParseAssetType(s string) (AssetType, error) {
	t := AssetType(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case AssetTypeBank, AssetTypeStock, AssetTypeCrypto, AssetTypeRealEstate, AssetTypeCustom:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAssetType, s)
}

// IsLiquid reports whether the type counts toward the liquid subtotal
// (bank + stock + crypto).
func (t AssetType) IsLiquid() bool {
	switch t {
	case AssetTypeBank, AssetTypeStock, AssetTypeCrypto:
		return true
	case AssetTypeRealEstate, AssetTypeCustom:
		return false
	}
	panic(fmt.Sprintf("unhandled asset type %q", t))
}

// Holding is the type specific part of an asset. Each implementation decides
// which field carries the valuation quantity, so every consumer switches over
// the concrete types instead of probing optional fields.
type Holding interface {
	isHolding()
}

// CashHolding is a bank balance, valued 1:1 in its currency.
type CashHolding struct {
	Balance decimal.Decimal
}

// MarketHolding is a quoted position (stock or crypto) valued as
// quantity * market price.
type MarketHolding struct {
	Symbol          string
	Quantity        decimal.Decimal
	AverageBuyPrice decimal.Decimal
	LastPrice       decimal.Decimal
}

// BookHolding is an illiquid entry valued by its balance. PurchasePrice is
// the total amount paid, not a per unit price.
type BookHolding struct {
	Balance       decimal.Decimal
	PurchasePrice decimal.Decimal
}

func (CashHolding) isHolding()   {}
func (MarketHolding) isHolding() {}
func (BookHolding) isHolding()   {}

type Asset struct {
	AssetID  uuid.UUID
	UserID   uuid.UUID
	Type     AssetType
	Name     string
	Currency string
	Holding  Holding
}

// AssetRecord is the flat, nullable shape assets are stored in.
type AssetRecord struct {
	AssetID         uuid.UUID
	UserID          uuid.UUID
	Type            AssetType
	Symbol          *string
	Name            string
	Currency        string
	Quantity        *decimal.Decimal
	Balance         *decimal.Decimal
	AverageBuyPrice *decimal.Decimal
	LastPrice       *decimal.Decimal
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// ToAsset picks the authoritative fields for the record's type.
func (r AssetRecord) ToAsset() (*Asset, error) {
	currency := strings.ToUpper(strings.TrimSpace(r.Currency))
	if currency == "" {
		currency = USD
	}
	a := &Asset{
		AssetID:  r.AssetID,
		UserID:   r.UserID,
		Type:     r.Type,
		Name:     r.Name,
		Currency: currency,
	}

	switch r.Type {
	case AssetTypeBank:
		a.Holding = CashHolding{Balance: orZero(r.Balance)}
	case AssetTypeStock, AssetTypeCrypto:
		symbol := ""
		if r.Symbol != nil {
			symbol = strings.ToUpper(strings.TrimSpace(*r.Symbol))
		}
		a.Holding = MarketHolding{
			Symbol:          symbol,
			Quantity:        orZero(r.Quantity),
			AverageBuyPrice: orZero(r.AverageBuyPrice),
			LastPrice:       orZero(r.LastPrice),
		}
	case AssetTypeRealEstate, AssetTypeCustom:
		a.Holding = BookHolding{
			Balance:       orZero(r.Balance),
			PurchasePrice: orZero(r.AverageBuyPrice),
		}
	default:
		return nil, fmt.Errorf("failed to build asset %s: %w: %q", r.AssetID, ErrUnknownAssetType, r.Type)
	}

	return a, nil
}

// Symbol returns the market symbol, or "" for assets that are not quoted.
func (a Asset) Symbol() string {
	switch h := a.Holding.(type) {
	case MarketHolding:
		return h.Symbol
	case CashHolding, BookHolding:
		return ""
	}
	panic(fmt.Sprintf("unhandled holding %T", a.Holding))
}

// IsQuoted is true for assets whose value comes from a market price.
func (a Asset) IsQuoted() bool {
	switch a.Holding.(type) {
	case MarketHolding:
		return true
	case CashHolding, BookHolding:
		return false
	}
	panic(fmt.Sprintf("unhandled holding %T", a.Holding))
}

// CurrentPosition is the position on record today, in the asset currency.
func (a Asset) CurrentPosition() Position {
	switch h := a.Holding.(type) {
	case CashHolding:
		// cash cost = cash value
		return Position{Quantity: h.Balance, Cost: h.Balance}
	case MarketHolding:
		return Position{Quantity: h.Quantity, Cost: h.Quantity.Mul(h.AverageBuyPrice)}
	case BookHolding:
		cost := h.PurchasePrice
		if cost.IsZero() {
			cost = h.Balance
		}
		return Position{Quantity: h.Balance, Cost: cost}
	}
	panic(fmt.Sprintf("unhandled holding %T", a.Holding))
}

// FallbackUnitCost is the per unit cost used when a replayed position has no
// basis of its own. It intentionally departs from using averageBuyPrice for
// every type: cash units cost 1 and book entries spread their total purchase
// price over the balance.
func (a Asset) FallbackUnitCost() decimal.Decimal {
	switch h := a.Holding.(type) {
	case CashHolding:
		return decimal.NewFromInt(1)
	case MarketHolding:
		return h.AverageBuyPrice
	case BookHolding:
		if h.Balance.IsPositive() && !h.PurchasePrice.IsZero() {
			return h.PurchasePrice.Div(h.Balance)
		}
		return decimal.NewFromInt(1)
	}
	panic(fmt.Sprintf("unhandled holding %T", a.Holding))
}

// ValuationClass is the bucket the asset falls into for the per class
// breakdown. Real estate is reported with cash, custom entries with neither.
func (a Asset) ValuationClass() ValuationClass {
	switch a.Type {
	case AssetTypeStock:
		return ValuationClassStock
	case AssetTypeCrypto:
		return ValuationClassCrypto
	case AssetTypeBank, AssetTypeRealEstate:
		return ValuationClassCash
	case AssetTypeCustom:
		return ValuationClassOther
	}
	panic(fmt.Sprintf("unhandled asset type %q", a.Type))
}

type ValuationClass string

const (
	ValuationClassStock  ValuationClass = "stock"
	ValuationClassCrypto ValuationClass = "crypto"
	ValuationClassCash   ValuationClass = "cash"
	ValuationClassOther  ValuationClass = "other"
)
