package domain

import "time"

// TransactionType classifies a stock movement. The direction of the movement
// is determined by the type, never by the sign of the quantity.
type TransactionType string

const (
	TypePurchase   TransactionType = "purchase"
	TypeSale       TransactionType = "sale"
	TypeAdjustment TransactionType = "adjustment"
	TypeExpired    TransactionType = "expired"
)

// directions is the signed effect each transaction type has on stock.
// An adjustment always adds stock.
// TODO: support signed adjustments once product confirms the intended
// behavior of downward corrections.
var directions = map[TransactionType]int64{
	TypePurchase:   +1,
	TypeAdjustment: +1,
	TypeSale:       -1,
	TypeExpired:    -1,
}

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	_, ok := directions[t]
	return ok
}

// Direction returns +1 for types that add stock and -1 for types that
// remove it. Unknown types return 0.
func (t TransactionType) Direction() int64 {
	return directions[t]
}

// StockTransaction is an immutable ledger entry. Quantity is the requested
// magnitude of movement, even when clamping reduced the applied effect.
type StockTransaction struct {
	ID         int64           `json:"id"`
	MedicineID int64           `json:"medicine_id"`
	Type       TransactionType `json:"type"`
	Quantity   int64           `json:"quantity"`
	Date       time.Time       `json:"date"`
	Notes      string          `json:"notes,omitempty"`
}
