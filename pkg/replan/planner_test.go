package replan

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nvohra/replan/pkg/domain/entities"
)

func steadyHistory(t *testing.T, days int, qtyPerDay int64) []*entities.SalesRecord {
	t.Helper()
	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	var records []*entities.SalesRecord
	for day := 0; day < days; day++ {
		record, err := entities.NewSalesRecord(start.AddDate(0, 0, day), "SKU1", "STORE1",
			entities.Quantity(decimal.NewFromInt(qtyPerDay)))
		if err != nil {
			t.Fatalf("Failed to create record: %v", err)
		}
		records = append(records, record)
	}
	return records
}

func TestPlan(t *testing.T) {
	records := steadyHistory(t, 28, 10)

	result, err := Plan(context.Background(), records, Request{
		SKUID:        "SKU1",
		SiteID:       "STORE1",
		LeadTimeMean: 7,
		LeadTimeStd:  0,
		TargetCSL:    0.95,
		NetAvailable: 20,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Perfectly steady demand: 10/day, zero variance, so no safety stock
	if result.Forecast.MeanDemandPerDay != 10 {
		t.Errorf("Expected mean 10, got %g", result.Forecast.MeanDemandPerDay)
	}
	if result.Forecast.StdDemandPerDay != 0 {
		t.Errorf("Expected std 0, got %g", result.Forecast.StdDemandPerDay)
	}
	if result.Policy.ReorderPoint != 70 {
		t.Errorf("Expected reorder point 70, got %g", result.Policy.ReorderPoint)
	}
	if result.Policy.BaseStock != 140 {
		t.Errorf("Expected base stock 140, got %g", result.Policy.BaseStock)
	}
	if !result.Replenishment.Triggered {
		t.Error("Expected replenishment to trigger with net 20")
	}
	if result.Replenishment.OrderQuantity != 120 {
		t.Errorf("Expected order quantity 120, got %d", result.Replenishment.OrderQuantity)
	}
}

func TestPlanInvalidRequest(t *testing.T) {
	records := steadyHistory(t, 7, 5)

	_, err := Plan(context.Background(), records, Request{
		SKUID:        "SKU1",
		SiteID:       "STORE1",
		LeadTimeMean: 0,
		TargetCSL:    0.95,
	})
	if err == nil {
		t.Error("Expected an error for zero lead time")
	}
}

func TestPlanEmptyHistory(t *testing.T) {
	result, err := Plan(context.Background(), nil, Request{
		SKUID:        "SKU1",
		SiteID:       "STORE1",
		LeadTimeMean: 7,
		TargetCSL:    0.95,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Replenishment.Triggered {
		t.Error("Expected no replenishment with no demand history")
	}
	if result.Replenishment.OrderQuantity != 0 {
		t.Errorf("Expected order quantity 0, got %d", result.Replenishment.OrderQuantity)
	}
}
