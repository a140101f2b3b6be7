package domain

// ExpiryLayout is the calendar-date format used for medicine expiry dates.
const ExpiryLayout = "2006-01-02"

// MedicineStatus is the lifecycle state of a catalog entry.
type MedicineStatus string

const (
	StatusActive       MedicineStatus = "active"
	StatusInactive     MedicineStatus = "inactive"
	StatusDiscontinued MedicineStatus = "discontinued"
)

// Valid reports whether s is one of the known statuses.
func (s MedicineStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusDiscontinued:
		return true
	}
	return false
}

// Medicine is a pharmacy catalog entry. CurrentStock is owned by the stock
// engine; everything else is edited through the catalog.
type Medicine struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Category      string         `json:"category"`
	Manufacturer  string         `json:"manufacturer"`
	BatchNumber   string         `json:"batch_number"`
	ExpiryDate    string         `json:"expiry_date"`
	CostPrice     float64        `json:"cost_price"`
	SellingPrice  float64        `json:"selling_price"`
	CurrentStock  int64          `json:"current_stock"`
	MinStockLevel int64          `json:"min_stock_level"`
	MaxStockLevel int64          `json:"max_stock_level"`
	Description   string         `json:"description,omitempty"`
	Status        MedicineStatus `json:"status"`
}

// MedicinePatch carries the fields an edit may change. There is deliberately
// no current-stock field: stock moves only through recorded transactions.
type MedicinePatch struct {
	Name          *string         `json:"name,omitempty"`
	Category      *string         `json:"category,omitempty"`
	Manufacturer  *string         `json:"manufacturer,omitempty"`
	BatchNumber   *string         `json:"batch_number,omitempty"`
	ExpiryDate    *string         `json:"expiry_date,omitempty"`
	CostPrice     *float64        `json:"cost_price,omitempty"`
	SellingPrice  *float64        `json:"selling_price,omitempty"`
	MinStockLevel *int64          `json:"min_stock_level,omitempty"`
	MaxStockLevel *int64          `json:"max_stock_level,omitempty"`
	Description   *string         `json:"description,omitempty"`
	Status        *MedicineStatus `json:"status,omitempty"`
}

// Apply merges the patch into m and returns the result.
func (p MedicinePatch) Apply(m Medicine) Medicine {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.Manufacturer != nil {
		m.Manufacturer = *p.Manufacturer
	}
	if p.BatchNumber != nil {
		m.BatchNumber = *p.BatchNumber
	}
	if p.ExpiryDate != nil {
		m.ExpiryDate = *p.ExpiryDate
	}
	if p.CostPrice != nil {
		m.CostPrice = *p.CostPrice
	}
	if p.SellingPrice != nil {
		m.SellingPrice = *p.SellingPrice
	}
	if p.MinStockLevel != nil {
		m.MinStockLevel = *p.MinStockLevel
	}
	if p.MaxStockLevel != nil {
		m.MaxStockLevel = *p.MaxStockLevel
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	return m
}
