package testing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nvohra/replan/pkg/domain/entities"
	"github.com/nvohra/replan/pkg/infrastructure/repositories/memory"
)

// BuildRetailTestData builds a small two-store retail history: four weeks of
// steady demand for SKU1 at STORE1 (10 units/day on weekdays, quiet
// weekends), sparse demand for SKU2, and an untouched SKU3 with no history.
func BuildRetailTestData() *memory.SalesRepository {
	repo := memory.NewSalesRepository()

	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC) // a Monday
	var records []*entities.SalesRecord

	for day := 0; day < 28; day++ {
		date := start.AddDate(0, 0, day)
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			continue
		}
		records = append(records, mustRecord(date, "SKU1", "STORE1", 10))
	}

	// SKU2 sells occasionally at both stores
	records = append(records,
		mustRecord(start, "SKU2", "STORE1", 3),
		mustRecord(start.AddDate(0, 0, 9), "SKU2", "STORE1", 5),
		mustRecord(start.AddDate(0, 0, 20), "SKU2", "STORE2", 2),
	)

	if err := repo.LoadSales(records); err != nil {
		panic(err)
	}
	return repo
}

func mustRecord(date time.Time, sku entities.SKUID, site entities.SiteID, qty int64) *entities.SalesRecord {
	record, err := entities.NewSalesRecord(date, sku, site, entities.Quantity(decimal.NewFromInt(qty)))
	if err != nil {
		panic(err)
	}
	return record
}
