package l1_service

import (
	"sort"
	"time"
	"wealthtrack/internal/domain"

	"github.com/shopspring/decimal"
)

// quantities closer than this to zero are treated as zero when back solving
// the opening position
var quantityEpsilon = decimal.New(1, -4)

// OpeningState is the implied position before the earliest recorded
// transaction.
type OpeningState struct {
	Position domain.Position

	// CostCorrected is set when the back solved cost came out negative for a
	// positive quantity and was replaced by quantity * fallback unit cost.
	// The correction is lossy and can hide a data entry error.
	CostCorrected bool
	// NegativeQuantity is set when the transactions account for more units
	// than the asset holds. The value is kept so today still reconciles.
	NegativeQuantity bool
}

// ApplyTransaction applies tx onto pos with weighted average cost accounting.
// Inflows blend their price into the cost, outflows remove cost at the current
// average so the per unit cost of what remains is unchanged. When pos has no
// units the outflow is costed at fallbackUnitCost.
func ApplyTransaction(pos domain.Position, tx domain.Transaction, fallbackUnitCost decimal.Decimal) domain.Position {
	if tx.Type.IsInflow() {
		return domain.Position{
			Quantity: pos.Quantity.Add(tx.Quantity),
			Cost:     pos.Cost.Add(tx.Quantity.Mul(tx.PricePerUnit)),
		}
	}

	unitCost := fallbackUnitCost
	if pos.Quantity.IsPositive() {
		unitCost = pos.Cost.Div(pos.Quantity)
	}
	return domain.Position{
		Quantity: pos.Quantity.Sub(tx.Quantity),
		Cost:     pos.Cost.Sub(tx.Quantity.Mul(unitCost)),
	}
}

func sortedTransactions(txs []domain.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(txs))
	copy(out, txs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func replay(start domain.Position, asset domain.Asset, txs []domain.Transaction) domain.Position {
	pos := start
	fallback := asset.FallbackUnitCost()
	for _, tx := range txs {
		pos = ApplyTransaction(pos, tx, fallback)
	}
	return pos
}

// SimulateTransactions replays every transaction starting from an empty
// position.
func SimulateTransactions(asset domain.Asset, txs []domain.Transaction) domain.Position {
	return replay(domain.Position{}, asset, sortedTransactions(txs))
}

// OpeningPosition back solves the position that must have existed before the
// first transaction for the ledger to end at the asset's current record.
func OpeningPosition(asset domain.Asset, txs []domain.Transaction) OpeningState {
	simulated := SimulateTransactions(asset, txs)
	current := asset.CurrentPosition()

	legacyQty := current.Quantity.Sub(simulated.Quantity)
	legacyCost := current.Cost.Sub(simulated.Cost)

	if legacyQty.Abs().LessThan(quantityEpsilon) {
		legacyQty = decimal.Zero
	}

	out := OpeningState{}
	if legacyQty.IsPositive() && legacyCost.IsNegative() {
		legacyCost = legacyQty.Mul(asset.FallbackUnitCost())
		out.CostCorrected = true
	}
	if legacyQty.IsNegative() {
		out.NegativeQuantity = true
	}

	out.Position = domain.Position{Quantity: legacyQty, Cost: legacyCost}
	return out
}

// HoldingsAsOf replays every transaction dated before the end of date onto
// the opening position.
func HoldingsAsOf(asset domain.Asset, txs []domain.Transaction, date time.Time) domain.Position {
	return NewHoldingsTimeline(asset, txs).AsOf(date)
}

// HoldingsTimeline answers holdings-as-of queries for one asset. Queries with
// non decreasing dates advance a cursor instead of replaying from the start.
type HoldingsTimeline struct {
	Asset   domain.Asset
	Opening OpeningState

	txs      []domain.Transaction
	cursor   int
	position domain.Position
	lastDate *time.Time
}

func NewHoldingsTimeline(asset domain.Asset, txs []domain.Transaction) *HoldingsTimeline {
	sorted := sortedTransactions(txs)
	opening := OpeningPosition(asset, sorted)
	return &HoldingsTimeline{
		Asset:    asset,
		Opening:  opening,
		txs:      sorted,
		position: opening.Position,
	}
}

func (h *HoldingsTimeline) HasTransactions() bool {
	return len(h.txs) > 0
}

func (h *HoldingsTimeline) AsOf(date time.Time) domain.Position {
	if h.lastDate != nil && date.Before(*h.lastDate) {
		h.cursor = 0
		h.position = h.Opening.Position
	}
	d := date
	h.lastDate = &d

	cutoff := domain.EndOfDay(date)
	fallback := h.Asset.FallbackUnitCost()
	for h.cursor < len(h.txs) && h.txs[h.cursor].Date.Before(cutoff) {
		h.position = ApplyTransaction(h.position, h.txs[h.cursor], fallback)
		h.cursor++
	}
	return h.position
}
