package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"pharmadesk/m/internal/store"
)

const testCSV = `name,category,manufacturer,batch_number,expiry_date,cost_price,selling_price,current_stock,min_stock_level,max_stock_level,description,status
Paracetamol 500mg,Analgesic,ABC Pharma,PAR001,2025-12-31,0.50,1.00,150,50,500,Pain relief and fever reducer,active
Amoxicillin 250mg,Antibiotic,XYZ Pharma,AMX002,2025-06-30,2.00,3.50,25,30,200,Broad-spectrum antibiotic,active
Broken Row,Bad,Nope,X,not-a-date,1.00,2.00,10,1,100,invalid expiry,active
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "medicines.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

func TestLoadMedicines(t *testing.T) {
	catalog := store.NewCatalog()
	path := writeSeed(t, testCSV)

	rows, err := LoadMedicines(catalog, path, zerolog.Nop())
	if err != nil {
		t.Fatalf("LoadMedicines() error = %v, want nil", err)
	}
	if rows != 2 {
		t.Errorf("LoadMedicines() = %d rows, want 2 (invalid row skipped)", rows)
	}

	meds := catalog.List()
	if len(meds) != 2 {
		t.Fatalf("catalog has %d medicines, want 2", len(meds))
	}

	first := meds[0]
	if first.Name != "Paracetamol 500mg" {
		t.Errorf("first medicine name = %q, want %q", first.Name, "Paracetamol 500mg")
	}
	if first.CostPrice != 0.50 || first.SellingPrice != 1.00 {
		t.Errorf("first medicine prices = %v/%v, want 0.50/1.00", first.CostPrice, first.SellingPrice)
	}
	if first.CurrentStock != 150 {
		t.Errorf("first medicine stock = %d, want 150", first.CurrentStock)
	}
	if first.MinStockLevel != 50 || first.MaxStockLevel != 500 {
		t.Errorf("first medicine band = [%d, %d], want [50, 500]", first.MinStockLevel, first.MaxStockLevel)
	}
}

func TestLoadMedicines_MissingFile(t *testing.T) {
	catalog := store.NewCatalog()
	if _, err := LoadMedicines(catalog, filepath.Join(t.TempDir(), "missing.csv"), zerolog.Nop()); err == nil {
		t.Error("LoadMedicines() error = nil, want open error")
	}
	if len(catalog.List()) != 0 {
		t.Error("missing seed file populated the catalog")
	}
}

func TestLoadMedicines_ShortRowsSkipped(t *testing.T) {
	catalog := store.NewCatalog()
	path := writeSeed(t, "name,category\nOnly Two,Fields\n")

	rows, err := LoadMedicines(catalog, path, zerolog.Nop())
	if err != nil {
		t.Fatalf("LoadMedicines() error = %v", err)
	}
	if rows != 0 {
		t.Errorf("LoadMedicines() = %d rows, want 0", rows)
	}
}
