// Package engine applies stock transactions. It is the only place the live
// stock quantity of a medicine changes.
package engine

import (
	"sync"

	"github.com/rs/zerolog"

	"pharmadesk/m/domain"
	"pharmadesk/m/internal/notify"
	"pharmadesk/m/internal/store"
)

// Engine keeps the catalog and the ledger in sync. All mutations are
// serialized by a single mutex so a read-modify-write of stock can never
// lose an update.
type Engine struct {
	mu      sync.Mutex
	catalog *store.Catalog
	ledger  *store.Ledger
	bus     *notify.Bus
	log     zerolog.Logger
}

// Result is the outcome of a recorded transaction. Medicine carries the
// post-transaction stock; comparing it with Transaction.Quantity exposes
// whether the clamp at zero truncated the movement.
type Result struct {
	Transaction domain.StockTransaction `json:"transaction"`
	Medicine    domain.Medicine         `json:"medicine"`
}

// New constructs an Engine. bus may be nil.
func New(catalog *store.Catalog, ledger *store.Ledger, bus *notify.Bus, log zerolog.Logger) *Engine {
	return &Engine{
		catalog: catalog,
		ledger:  ledger,
		bus:     bus,
		log:     log,
	}
}

// Record applies one stock transaction: it validates the request, appends it
// to the ledger and moves the medicine's stock in the direction given by the
// transaction type, clamping at zero. A sale or expiry larger than the
// available stock floors the quantity to zero instead of failing; the ledger
// still records the requested quantity.
func (e *Engine) Record(medicineID int64, t domain.TransactionType, quantity int64, notes string) (Result, error) {
	if quantity <= 0 {
		return Result{}, domain.Validationf("quantity must be positive, got %d", quantity)
	}
	if !t.Valid() {
		return Result{}, domain.Validationf("invalid transaction type: %s", t)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	med, err := e.catalog.Get(medicineID)
	if err != nil {
		return Result{}, err
	}

	txn, err := e.ledger.Append(medicineID, t, quantity, notes)
	if err != nil {
		return Result{}, err
	}

	newStock := med.CurrentStock + t.Direction()*quantity
	if newStock < 0 {
		newStock = 0
	}

	updated, err := e.catalog.SetStock(medicineID, newStock)
	if err != nil {
		// Unreachable while the engine holds the mutation lock: the medicine
		// was just fetched and newStock is clamped non-negative.
		return Result{}, err
	}

	e.log.Debug().
		Int64("medicine_id", medicineID).
		Str("type", string(t)).
		Int64("quantity", quantity).
		Int64("new_stock", newStock).
		Msg("stock transaction recorded")

	e.bus.Publish(notify.StockRecorded, notify.StockRecordedPayload{
		Transaction: txn,
		NewStock:    newStock,
	})

	return Result{Transaction: txn, Medicine: updated}, nil
}
