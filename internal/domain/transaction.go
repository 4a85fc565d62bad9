package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeBuy         TransactionType = "BUY"
	TransactionTypeSell        TransactionType = "SELL"
	TransactionTypeTransferIn  TransactionType = "TRANSFER_IN"
	TransactionTypeTransferOut TransactionType = "TRANSFER_OUT"
)

func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case TransactionTypeBuy, TransactionTypeSell, TransactionTypeTransferIn, TransactionTypeTransferOut:
		return t, nil
	}
	return "", fmt.Errorf("unknown transaction type %q", s)
}

// IsInflow is true when the transaction adds units to the position.
func (t TransactionType) IsInflow() bool {
	switch t {
	case TransactionTypeBuy, TransactionTypeTransferIn:
		return true
	case TransactionTypeSell, TransactionTypeTransferOut:
		return false
	}
	panic(fmt.Sprintf("unhandled transaction type %q", t))
}

type Transaction struct {
	TransactionID uuid.UUID
	AssetID       uuid.UUID
	Type          TransactionType
	Quantity      decimal.Decimal
	PricePerUnit  decimal.Decimal
	Fee           decimal.Decimal
	Date          time.Time
	Notes         *string
}

// GroupTransactionsByAsset buckets transactions per asset, keeping the input
// order inside each bucket.
func GroupTransactionsByAsset(txs []Transaction) map[uuid.UUID][]Transaction {
	out := map[uuid.UUID][]Transaction{}
	for _, tx := range txs {
		out[tx.AssetID] = append(out[tx.AssetID], tx)
	}
	return out
}
