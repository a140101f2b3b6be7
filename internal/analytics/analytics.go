// Package analytics derives inventory classifications from catalog
// snapshots. Everything here is pure and recomputed on demand so the numbers
// can never go stale.
package analytics

import (
	"math"
	"time"

	"pharmadesk/m/domain"
)

// DefaultExpiryHorizonMonths is the lookahead used when a caller does not
// ask for a specific expiring-soon window.
const DefaultExpiryHorizonMonths = 3

// Stock status classifications.
const (
	StatusLowStock    = "Low Stock"
	StatusOverstocked = "Overstocked"
	StatusNormal      = "Normal"
)

// StockStatus classifies a medicine against its stock band. The low-stock
// check runs first, so it wins when min and max coincide.
func StockStatus(m domain.Medicine) string {
	if m.CurrentStock <= m.MinStockLevel {
		return StatusLowStock
	}
	if m.CurrentStock >= m.MaxStockLevel {
		return StatusOverstocked
	}
	return StatusNormal
}

// LowStock returns the medicines at or below their minimum stock level.
func LowStock(meds []domain.Medicine) []domain.Medicine {
	var out []domain.Medicine
	for _, m := range meds {
		if m.CurrentStock <= m.MinStockLevel {
			out = append(out, m)
		}
	}
	return out
}

// Overstocked returns the medicines at or above their maximum stock level.
func Overstocked(meds []domain.Medicine) []domain.Medicine {
	var out []domain.Medicine
	for _, m := range meds {
		if m.CurrentStock >= m.MaxStockLevel {
			out = append(out, m)
		}
	}
	return out
}

// ExpiringSoon returns the medicines whose expiry date falls on or before
// ref plus horizonMonths. A non-positive horizon falls back to the default.
// Entries with an unparseable expiry date are skipped; validation keeps them
// out of the catalog in the first place.
func ExpiringSoon(meds []domain.Medicine, ref time.Time, horizonMonths int) []domain.Medicine {
	if horizonMonths <= 0 {
		horizonMonths = DefaultExpiryHorizonMonths
	}
	cutoff := ref.AddDate(0, horizonMonths, 0)

	var out []domain.Medicine
	for _, m := range meds {
		expiry, err := time.Parse(domain.ExpiryLayout, m.ExpiryDate)
		if err != nil {
			continue
		}
		if !expiry.After(cutoff) {
			out = append(out, m)
		}
	}
	return out
}

// TotalInventoryValue sums current stock times cost price across the
// catalog, rounded to two decimal places for display.
func TotalInventoryValue(meds []domain.Medicine) float64 {
	var total float64
	for _, m := range meds {
		total += float64(m.CurrentStock) * m.CostPrice
	}
	return math.Round(total*100) / 100
}

// Summary aggregates the headline inventory numbers.
type Summary struct {
	TotalMedicines int     `json:"total_medicines"`
	LowStock       int     `json:"low_stock"`
	ExpiringSoon   int     `json:"expiring_soon"`
	TotalValue     float64 `json:"total_value"`
}

// Summarize computes the Summary for a catalog snapshot using the default
// expiry horizon.
func Summarize(meds []domain.Medicine, ref time.Time) Summary {
	return Summary{
		TotalMedicines: len(meds),
		LowStock:       len(LowStock(meds)),
		ExpiringSoon:   len(ExpiringSoon(meds, ref, DefaultExpiryHorizonMonths)),
		TotalValue:     TotalInventoryValue(meds),
	}
}
