package seed

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"pharmadesk/m/domain"
	"pharmadesk/m/internal/store"
)

// Columns: name, category, manufacturer, batch_number, expiry_date,
// cost_price, selling_price, current_stock, min_stock_level,
// max_stock_level, description, status.
const columns = 12

// LoadMedicines ingests the CSV into the catalog, skipping rows that fail
// validation. It returns the number of medicines added.
func LoadMedicines(catalog *store.Catalog, csvPath string, log zerolog.Logger) (int, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("unable to open medicine seed %s: %w", csvPath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		return 0, fmt.Errorf("unable to read medicine seed header: %w", err)
	}

	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warn().Err(err).Msg("unable to read medicine seed row")
			continue
		}
		if len(record) < columns {
			continue
		}

		med, err := parseRow(record)
		if err != nil {
			log.Warn().Err(err).Str("name", strings.TrimSpace(record[0])).Msg("skipping seed row")
			continue
		}
		if _, err := catalog.Add(med); err != nil {
			log.Warn().Err(err).Str("name", med.Name).Msg("unable to seed medicine")
			continue
		}
		rows++
	}

	log.Info().Int("medicines", rows).Msg("seeded medicine catalog")
	return rows, nil
}

func parseRow(record []string) (domain.Medicine, error) {
	costPrice, err := strconv.ParseFloat(strings.TrimSpace(record[5]), 64)
	if err != nil {
		return domain.Medicine{}, fmt.Errorf("bad cost_price: %w", err)
	}
	sellingPrice, err := strconv.ParseFloat(strings.TrimSpace(record[6]), 64)
	if err != nil {
		return domain.Medicine{}, fmt.Errorf("bad selling_price: %w", err)
	}
	currentStock, err := strconv.ParseInt(strings.TrimSpace(record[7]), 10, 64)
	if err != nil {
		return domain.Medicine{}, fmt.Errorf("bad current_stock: %w", err)
	}
	minLevel, err := strconv.ParseInt(strings.TrimSpace(record[8]), 10, 64)
	if err != nil {
		return domain.Medicine{}, fmt.Errorf("bad min_stock_level: %w", err)
	}
	maxLevel, err := strconv.ParseInt(strings.TrimSpace(record[9]), 10, 64)
	if err != nil {
		return domain.Medicine{}, fmt.Errorf("bad max_stock_level: %w", err)
	}

	return domain.Medicine{
		Name:          strings.TrimSpace(record[0]),
		Category:      strings.TrimSpace(record[1]),
		Manufacturer:  strings.TrimSpace(record[2]),
		BatchNumber:   strings.TrimSpace(record[3]),
		ExpiryDate:    strings.TrimSpace(record[4]),
		CostPrice:     costPrice,
		SellingPrice:  sellingPrice,
		CurrentStock:  currentStock,
		MinStockLevel: minLevel,
		MaxStockLevel: maxLevel,
		Description:   strings.TrimSpace(record[10]),
		Status:        domain.MedicineStatus(strings.TrimSpace(record[11])),
	}, nil
}
