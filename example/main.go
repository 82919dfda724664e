package main

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nvohra/replan/pkg/application/services/orchestration"
	"github.com/nvohra/replan/pkg/domain/entities"
	"github.com/nvohra/replan/pkg/infrastructure/events"
	"github.com/nvohra/replan/pkg/infrastructure/repositories/memory"
)

func main() {
	ctx := context.Background()

	// Build four weeks of sales history for one store
	salesRepo := memory.NewSalesRepository()
	if err := salesRepo.LoadSales(buildStoreHistory()); err != nil {
		fmt.Printf("❌ Failed to load sales history: %v\n", err)
		return
	}

	eventStore := events.NewInMemoryStore()
	orchestrator := orchestration.NewPipelineOrchestrator(salesRepo, eventStore)

	fmt.Println("🚀 Planning replenishment for ESPRESSO_1KG at STORE_BERLIN...")
	fmt.Println()

	result, err := orchestrator.RunPipeline(ctx, orchestration.PipelineRequest{
		SKUID:        "ESPRESSO_1KG",
		SiteID:       "STORE_BERLIN",
		LeadTimeMean: 7,
		LeadTimeStd:  1.5,
		TargetCSL:    0.95,
		NetAvailable: 60,
	})
	if err != nil {
		fmt.Printf("❌ Planning failed: %v\n", err)
		return
	}

	fmt.Println("📈 Demand Forecast:")
	fmt.Printf("  Mean demand/day: %.2f\n", result.Forecast.MeanDemandPerDay)
	fmt.Printf("  Std demand/day:  %.2f\n", result.Forecast.StdDemandPerDay)
	fmt.Printf("  Horizon:         %d days\n", len(result.Forecast.Predictions))
	fmt.Println()

	fmt.Println("📐 Inventory Policy:")
	fmt.Printf("  Safety stock:  %.2f\n", result.Policy.SafetyStock)
	fmt.Printf("  Reorder point: %.2f\n", result.Policy.ReorderPoint)
	fmt.Printf("  Base stock:    %.2f\n", result.Policy.BaseStock)
	fmt.Println()

	if result.Replenishment.Triggered {
		fmt.Printf("🛒 Decision: order %d units\n", result.Replenishment.OrderQuantity)
	} else {
		fmt.Println("✅ Decision: no order needed")
	}
	fmt.Println()

	// The run left an audit trail in the event store
	runEvents, _ := eventStore.ReadRun(result.RunID)
	fmt.Printf("📜 Audit trail for run %s:\n", result.RunID)
	for _, event := range runEvents {
		fmt.Printf("  v%d %s\n", event.Version, event.EventType)
	}
}

// buildStoreHistory creates 28 days of demand with quieter weekends
func buildStoreHistory() []*entities.SalesRecord {
	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	var records []*entities.SalesRecord

	for day := 0; day < 28; day++ {
		date := start.AddDate(0, 0, day)

		qty := int64(12)
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			qty = 4
		}

		record, err := entities.NewSalesRecord(date, "ESPRESSO_1KG", "STORE_BERLIN",
			entities.Quantity(decimal.NewFromInt(qty)))
		if err != nil {
			panic(err)
		}
		records = append(records, record)
	}

	return records
}
