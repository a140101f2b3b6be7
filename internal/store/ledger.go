package store

import (
	"sync"
	"time"

	"pharmadesk/m/domain"
)

// Ledger is the append-only log of stock transactions. Entries are never
// mutated or deleted; correcting a mistake means appending an adjustment.
type Ledger struct {
	mu      sync.RWMutex
	catalog *Catalog
	nextID  int64
	entries []domain.StockTransaction
}

// NewLedger returns an empty ledger validating medicine references against
// the given catalog.
func NewLedger(catalog *Catalog) *Ledger {
	return &Ledger{
		catalog: catalog,
		nextID:  1,
	}
}

// Append validates and stores a new transaction, assigning its id and
// timestamp, and returns the stored entry.
func (l *Ledger) Append(medicineID int64, t domain.TransactionType, quantity int64, notes string) (domain.StockTransaction, error) {
	if quantity <= 0 {
		return domain.StockTransaction{}, domain.Validationf("quantity must be positive, got %d", quantity)
	}
	if !t.Valid() {
		return domain.StockTransaction{}, domain.Validationf("invalid transaction type: %s", t)
	}
	if !l.catalog.Exists(medicineID) {
		return domain.StockTransaction{}, domain.NotFoundf("medicine %d not found", medicineID)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry := domain.StockTransaction{
		ID:         l.nextID,
		MedicineID: medicineID,
		Type:       t,
		Quantity:   quantity,
		Date:       time.Now().UTC(),
		Notes:      notes,
	}
	l.nextID++
	l.entries = append(l.entries, entry)
	return entry, nil
}

// ListFor returns the transactions for one medicine in creation order.
func (l *Ledger) ListFor(medicineID int64) []domain.StockTransaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []domain.StockTransaction
	for _, e := range l.entries {
		if e.MedicineID == medicineID {
			out = append(out, e)
		}
	}
	return out
}

// ListAll returns every transaction in creation order.
func (l *Ledger) ListAll() []domain.StockTransaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.StockTransaction, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries in the ledger.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.entries)
}
