package domain

import (
	"fmt"
	"testing"
)

func TestTransactionTypeDirection(t *testing.T) {
	tests := []struct {
		txType TransactionType
		want   int64
	}{
		{TypePurchase, +1},
		{TypeAdjustment, +1}, // adjustments always add
		{TypeSale, -1},
		{TypeExpired, -1},
		{"refund", 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.txType), func(t *testing.T) {
			if got := tt.txType.Direction(); got != tt.want {
				t.Errorf("Direction(%q) = %d, want %d", tt.txType, got, tt.want)
			}
		})
	}
}

func TestTransactionTypeValid(t *testing.T) {
	for _, txType := range []TransactionType{TypePurchase, TypeSale, TypeAdjustment, TypeExpired} {
		if !txType.Valid() {
			t.Errorf("Valid(%q) = false, want true", txType)
		}
	}
	for _, txType := range []TransactionType{"", "refund", "PURCHASE"} {
		if txType.Valid() {
			t.Errorf("Valid(%q) = true, want false", txType)
		}
	}
}

func TestMedicineStatusValid(t *testing.T) {
	for _, s := range []MedicineStatus{StatusActive, StatusInactive, StatusDiscontinued} {
		if !s.Valid() {
			t.Errorf("Valid(%q) = false, want true", s)
		}
	}
	if MedicineStatus("archived").Valid() {
		t.Error(`Valid("archived") = true, want false`)
	}
}

func TestMedicinePatchApply(t *testing.T) {
	base := Medicine{
		ID:           7,
		Name:         "Paracetamol 500mg",
		Category:     "Analgesic",
		CurrentStock: 150,
		Status:       StatusActive,
	}

	name := "Ibuprofen 200mg"
	status := StatusDiscontinued
	got := MedicinePatch{Name: &name, Status: &status}.Apply(base)

	if got.Name != name {
		t.Errorf("Apply() name = %q, want %q", got.Name, name)
	}
	if got.Status != status {
		t.Errorf("Apply() status = %q, want %q", got.Status, status)
	}
	if got.Category != base.Category {
		t.Errorf("Apply() changed untouched category: %q", got.Category)
	}
	if got.CurrentStock != base.CurrentStock {
		t.Errorf("Apply() changed stock: %d", got.CurrentStock)
	}

	if empty := (MedicinePatch{}).Apply(base); empty != base {
		t.Errorf("empty patch changed record:\nbefore %+v\nafter  %+v", base, empty)
	}
}

func TestErrorKinds(t *testing.T) {
	ve := Validationf("quantity must be positive, got %d", -1)
	if !IsValidation(ve) {
		t.Error("IsValidation() = false for ValidationError")
	}
	if IsNotFound(ve) {
		t.Error("IsNotFound() = true for ValidationError")
	}

	nf := NotFoundf("medicine %d not found", 9)
	if !IsNotFound(nf) {
		t.Error("IsNotFound() = false for NotFoundError")
	}
	if IsValidation(nf) {
		t.Error("IsValidation() = true for NotFoundError")
	}

	wrapped := fmt.Errorf("recording transaction: %w", nf)
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound() = false for wrapped NotFoundError")
	}

	if IsValidation(nil) || IsNotFound(nil) {
		t.Error("error predicates returned true for nil")
	}
}
