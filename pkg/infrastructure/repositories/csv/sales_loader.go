package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nvohra/replan/pkg/domain/entities"
)

// Loader handles loading sales history from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadSalesHistory loads sales records from a CSV file. The file must carry
// the header date,sku_id,site_id,qty with dates in YYYY-MM-DD form. A file
// with a header and no data rows is valid and yields an empty history.
func (l *Loader) LoadSalesHistory(filename string) ([]*entities.SalesRecord, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open sales history file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read sales history CSV: %w", err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("sales history CSV must have a header row")
	}

	expectedHeader := []string{"date", "sku_id", "site_id", "qty"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("sales history CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var sales []*entities.SalesRecord
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("sales history CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		sale, err := parseSalesRecord(record)
		if err != nil {
			return nil, fmt.Errorf("sales history CSV row %d: %w", i+2, err)
		}

		sales = append(sales, sale)
	}

	return sales, nil
}

func parseSalesRecord(record []string) (*entities.SalesRecord, error) {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(record[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", record[0], err)
	}

	qty, err := decimal.NewFromString(strings.TrimSpace(record[3]))
	if err != nil {
		return nil, fmt.Errorf("invalid qty %q: %w", record[3], err)
	}

	return entities.NewSalesRecord(
		date,
		entities.SKUID(strings.TrimSpace(record[1])),
		entities.SiteID(strings.TrimSpace(record[2])),
		entities.Quantity(qty),
	)
}

func validateHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.TrimSpace(strings.ToLower(header[i])) != col {
			return false
		}
	}
	return true
}
