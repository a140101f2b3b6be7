package store

import (
	"strings"
	"sync"
	"time"

	"pharmadesk/m/domain"
)

// Catalog is the in-memory medicine catalog. Records are kept in insertion
// order and handed out by value so callers can never mutate stored state.
type Catalog struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]domain.Medicine
	order  []int64
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		nextID: 1,
		byID:   make(map[int64]domain.Medicine),
	}
}

// Add validates m, assigns a fresh id and inserts it. An empty status
// defaults to active. The provided CurrentStock becomes the opening stock.
func (c *Catalog) Add(m domain.Medicine) (domain.Medicine, error) {
	if m.Status == "" {
		m.Status = domain.StatusActive
	}
	if err := validateMedicine(m); err != nil {
		return domain.Medicine{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	m.ID = c.nextID
	c.nextID++
	c.byID[m.ID] = m
	c.order = append(c.order, m.ID)
	return m, nil
}

// Update merges patch into the stored record, re-validating the merged
// result. The id and live stock are preserved.
func (c *Catalog) Update(id int64, patch domain.MedicinePatch) (domain.Medicine, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.byID[id]
	if !ok {
		return domain.Medicine{}, domain.NotFoundf("medicine %d not found", id)
	}

	merged := patch.Apply(current)
	merged.ID = id
	merged.CurrentStock = current.CurrentStock
	if err := validateMedicine(merged); err != nil {
		return domain.Medicine{}, err
	}

	c.byID[id] = merged
	return merged, nil
}

// Get returns the medicine with the given id.
func (c *Catalog) Get(id int64) (domain.Medicine, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	m, ok := c.byID[id]
	if !ok {
		return domain.Medicine{}, domain.NotFoundf("medicine %d not found", id)
	}
	return m, nil
}

// Exists reports whether a medicine with the given id is in the catalog.
func (c *Catalog) Exists(id int64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.byID[id]
	return ok
}

// List returns all medicines in insertion order.
func (c *Catalog) List() []domain.Medicine {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Medicine, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Search filters the catalog by a case-insensitive name/manufacturer
// substring and an exact category. Empty arguments match everything.
func (c *Catalog) Search(query, category string) []domain.Medicine {
	query = strings.ToLower(strings.TrimSpace(query))

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Medicine, 0, len(c.order))
	for _, id := range c.order {
		m := c.byID[id]
		if query != "" &&
			!strings.Contains(strings.ToLower(m.Name), query) &&
			!strings.Contains(strings.ToLower(m.Manufacturer), query) {
			continue
		}
		if category != "" && m.Category != category {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool, len(c.order))
	var out []string
	for _, id := range c.order {
		cat := c.byID[id].Category
		if cat == "" || seen[cat] {
			continue
		}
		seen[cat] = true
		out = append(out, cat)
	}
	return out
}

// SetStock overwrites the live stock quantity for a medicine. Only the stock
// engine should call this; edits go through Update, which cannot touch stock.
func (c *Catalog) SetStock(id, quantity int64) (domain.Medicine, error) {
	if quantity < 0 {
		return domain.Medicine{}, domain.Validationf("stock quantity must not be negative, got %d", quantity)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.byID[id]
	if !ok {
		return domain.Medicine{}, domain.NotFoundf("medicine %d not found", id)
	}
	m.CurrentStock = quantity
	c.byID[id] = m
	return m, nil
}

func validateMedicine(m domain.Medicine) error {
	if strings.TrimSpace(m.Name) == "" {
		return domain.Validationf("name is required")
	}
	if m.CostPrice < 0 {
		return domain.Validationf("cost_price must not be negative, got %v", m.CostPrice)
	}
	if m.SellingPrice < 0 {
		return domain.Validationf("selling_price must not be negative, got %v", m.SellingPrice)
	}
	if m.CurrentStock < 0 {
		return domain.Validationf("current_stock must not be negative, got %d", m.CurrentStock)
	}
	if m.MinStockLevel < 0 || m.MaxStockLevel < 0 {
		return domain.Validationf("stock levels must not be negative")
	}
	if m.MinStockLevel > m.MaxStockLevel {
		return domain.Validationf("min_stock_level %d exceeds max_stock_level %d", m.MinStockLevel, m.MaxStockLevel)
	}
	if _, err := time.Parse(domain.ExpiryLayout, m.ExpiryDate); err != nil {
		return domain.Validationf("expiry_date must be a valid %s date, got %q", domain.ExpiryLayout, m.ExpiryDate)
	}
	if !m.Status.Valid() {
		return domain.Validationf("invalid status: %s", m.Status)
	}
	return nil
}
