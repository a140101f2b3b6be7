package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"pharmadesk/m/domain"
	"pharmadesk/m/internal/analytics"
	"pharmadesk/m/internal/engine"
	"pharmadesk/m/internal/notify"
	"pharmadesk/m/internal/store"
)

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	catalog *store.Catalog
	ledger  *store.Ledger
	engine  *engine.Engine
	bus     *notify.Bus
	log     zerolog.Logger
}

// New constructs a Handler. bus may be nil.
func New(catalog *store.Catalog, ledger *store.Ledger, eng *engine.Engine, bus *notify.Bus, log zerolog.Logger) *Handler {
	return &Handler{catalog: catalog, ledger: ledger, engine: eng, bus: bus, log: log}
}

// Router wires up the HTTP API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"}, // Change "*" to a list of allowed domains (e.g., ["http://localhost:3000"])
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)

	r.Route("/medicines", func(r chi.Router) {
		r.Post("/", h.createMedicine)
		r.Get("/", h.listMedicines)
		r.Get("/categories", h.listCategories)
		r.Get("/{id}", h.getMedicine)
		r.Put("/{id}", h.updateMedicine)
		r.Post("/{id}/transactions", h.recordTransaction)
		r.Get("/{id}/transactions", h.listMedicineTransactions)
	})

	r.Get("/transactions", h.listTransactions)

	r.Route("/analytics", func(r chi.Router) {
		r.Get("/low-stock", h.lowStock)
		r.Get("/overstocked", h.overstocked)
		r.Get("/expiring", h.expiringSoon)
		r.Get("/value", h.inventoryValue)
		r.Get("/summary", h.summary)
	})

	return r
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Medicine handlers

type medicineRequest struct {
	Name          string                `json:"name"`
	Category      string                `json:"category"`
	Manufacturer  string                `json:"manufacturer"`
	BatchNumber   string                `json:"batch_number"`
	ExpiryDate    string                `json:"expiry_date"`
	CostPrice     float64               `json:"cost_price"`
	SellingPrice  float64               `json:"selling_price"`
	CurrentStock  int64                 `json:"current_stock"`
	MinStockLevel int64                 `json:"min_stock_level"`
	MaxStockLevel int64                 `json:"max_stock_level"`
	Description   string                `json:"description"`
	Status        domain.MedicineStatus `json:"status"`
}

func (h *Handler) createMedicine(w http.ResponseWriter, r *http.Request) {
	var req medicineRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	med, err := h.catalog.Add(domain.Medicine{
		Name:          req.Name,
		Category:      req.Category,
		Manufacturer:  req.Manufacturer,
		BatchNumber:   req.BatchNumber,
		ExpiryDate:    req.ExpiryDate,
		CostPrice:     req.CostPrice,
		SellingPrice:  req.SellingPrice,
		CurrentStock:  req.CurrentStock,
		MinStockLevel: req.MinStockLevel,
		MaxStockLevel: req.MaxStockLevel,
		Description:   req.Description,
		Status:        req.Status,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	h.bus.Publish(notify.MedicineCreated, notify.MedicinePayload{Medicine: med})
	respondJSON(w, http.StatusCreated, med)
}

func (h *Handler) updateMedicine(w http.ResponseWriter, r *http.Request) {
	id, err := medicineID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid medicine id")
		return
	}

	var patch domain.MedicinePatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	med, err := h.catalog.Update(id, patch)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	h.bus.Publish(notify.MedicineUpdated, notify.MedicinePayload{Medicine: med})
	respondJSON(w, http.StatusOK, med)
}

func (h *Handler) getMedicine(w http.ResponseWriter, r *http.Request) {
	id, err := medicineID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid medicine id")
		return
	}
	med, err := h.catalog.Get(id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, med)
}

func (h *Handler) listMedicines(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	var meds []domain.Medicine
	if query == "" && category == "" {
		meds = h.catalog.List()
	} else {
		meds = h.catalog.Search(query, category)
	}
	respondJSON(w, http.StatusOK, meds)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	cats := h.catalog.Categories()
	if cats == nil {
		cats = []string{}
	}
	respondJSON(w, http.StatusOK, cats)
}

// Transaction handlers

type transactionRequest struct {
	Type     domain.TransactionType `json:"type"`
	Quantity int64                  `json:"quantity"`
	Notes    string                 `json:"notes"`
}

func (h *Handler) recordTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := medicineID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid medicine id")
		return
	}

	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.engine.Record(id, req.Type, req.Quantity, req.Notes)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

func (h *Handler) listMedicineTransactions(w http.ResponseWriter, r *http.Request) {
	id, err := medicineID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid medicine id")
		return
	}
	if !h.catalog.Exists(id) {
		respondError(w, http.StatusNotFound, "medicine not found")
		return
	}
	entries := h.ledger.ListFor(id)
	if entries == nil {
		entries = []domain.StockTransaction{}
	}
	respondJSON(w, http.StatusOK, entries)
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.ledger.ListAll())
}

// Analytics handlers

func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	respondMedicines(w, analytics.LowStock(h.catalog.List()))
}

func (h *Handler) overstocked(w http.ResponseWriter, r *http.Request) {
	respondMedicines(w, analytics.Overstocked(h.catalog.List()))
}

func (h *Handler) expiringSoon(w http.ResponseWriter, r *http.Request) {
	months, _ := strconv.Atoi(r.URL.Query().Get("months"))
	if months <= 0 {
		months = analytics.DefaultExpiryHorizonMonths
	}
	respondMedicines(w, analytics.ExpiringSoon(h.catalog.List(), time.Now(), months))
}

func (h *Handler) inventoryValue(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]float64{
		"total_value": analytics.TotalInventoryValue(h.catalog.List()),
	})
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, analytics.Summarize(h.catalog.List(), time.Now()))
}

// Helpers

func medicineID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func respondMedicines(w http.ResponseWriter, meds []domain.Medicine) {
	if meds == nil {
		meds = []domain.Medicine{}
	}
	respondJSON(w, http.StatusOK, meds)
}

func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case domain.IsNotFound(err):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

func decodeJSON(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
