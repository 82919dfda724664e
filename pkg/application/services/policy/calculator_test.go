package policy

import (
	"math"
	"testing"

	"github.com/nvohra/replan/pkg/domain/entities"
	"github.com/nvohra/replan/pkg/domain/services"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestCalculator_ReferenceScenario(t *testing.T) {
	calc := NewCalculator()

	// mean_d=10, std_d=2, lt_mean=7, lt_std=1, target 95%
	result := calc.Compute(
		entities.DemandStatistics{MeanPerDay: 10, StdPerDay: 2},
		entities.LeadTime{MeanDays: 7, StdDays: 1},
		0.95,
	)

	if result.MuLT != 70.0 {
		t.Errorf("Expected mu_lt 70.0, got %g", result.MuLT)
	}

	wantSigma := math.Sqrt(128) // sqrt(7*4 + 100*1)
	if !almostEqual(result.SigmaLT, wantSigma) {
		t.Errorf("Expected sigma_lt %g, got %g", wantSigma, result.SigmaLT)
	}

	wantSS := 1.6448536 * wantSigma
	if !almostEqual(result.SafetyStock, wantSS) {
		t.Errorf("Expected safety stock %g, got %g", wantSS, result.SafetyStock)
	}
	if result.SafetyStock < 18.6 || result.SafetyStock > 18.62 {
		t.Errorf("Safety stock %g outside expected range near 18.61", result.SafetyStock)
	}

	if !almostEqual(result.ReorderPoint, 70.0+wantSS) {
		t.Errorf("Expected reorder point %g, got %g", 70.0+wantSS, result.ReorderPoint)
	}
	if !almostEqual(result.BaseStock, result.ReorderPoint+70.0) {
		t.Errorf("Expected base stock = ROP + mu_lt, got %g vs %g", result.BaseStock, result.ReorderPoint+70.0)
	}
}

func TestCalculator_UnknownServiceLevelFallsBack(t *testing.T) {
	calc := NewCalculator()
	stats := entities.DemandStatistics{MeanPerDay: 10, StdPerDay: 2}
	leadTime := entities.LeadTime{MeanDays: 7, StdDays: 1}

	result := calc.Compute(stats, leadTime, 0.93)

	wantSS := services.FallbackZ * math.Sqrt(128)
	if !almostEqual(result.SafetyStock, wantSS) {
		t.Errorf("Expected fallback z safety stock %g, got %g", wantSS, result.SafetyStock)
	}
}

func TestCalculator_SafetyStockMonotonicInServiceLevel(t *testing.T) {
	calc := NewCalculator()
	stats := entities.DemandStatistics{MeanPerDay: 10, StdPerDay: 2}
	leadTime := entities.LeadTime{MeanDays: 7, StdDays: 1}
	levels := []float64{0.50, 0.60, 0.70, 0.80, 0.85, 0.90, 0.95, 0.98, 0.99}

	prev := calc.Compute(stats, leadTime, levels[0])
	for _, level := range levels[1:] {
		current := calc.Compute(stats, leadTime, level)
		if current.SafetyStock < prev.SafetyStock {
			t.Errorf("Safety stock decreased at CSL %g: %g < %g", level, current.SafetyStock, prev.SafetyStock)
		}
		if current.ReorderPoint < prev.ReorderPoint {
			t.Errorf("Reorder point decreased at CSL %g", level)
		}
		if current.BaseStock < prev.BaseStock {
			t.Errorf("Base stock decreased at CSL %g", level)
		}
		prev = current
	}
}

func TestCalculator_DegenerateInputs(t *testing.T) {
	calc := NewCalculator()

	t.Run("zero demand", func(t *testing.T) {
		result := calc.Compute(entities.DemandStatistics{}, entities.LeadTime{MeanDays: 7, StdDays: 1}, 0.95)
		if result.MuLT != 0 || result.SigmaLT != 0 || result.SafetyStock != 0 || result.ReorderPoint != 0 || result.BaseStock != 0 {
			t.Errorf("Expected all-zero policy for zero demand, got %+v", result)
		}
	})

	t.Run("deterministic demand and lead time", func(t *testing.T) {
		result := calc.Compute(
			entities.DemandStatistics{MeanPerDay: 4, StdPerDay: 0},
			entities.LeadTime{MeanDays: 5, StdDays: 0},
			0.99,
		)
		if result.SigmaLT != 0 || result.SafetyStock != 0 {
			t.Errorf("Expected zero variance policy, got sigma=%g ss=%g", result.SigmaLT, result.SafetyStock)
		}
		if result.ReorderPoint != 20 || result.BaseStock != 40 {
			t.Errorf("Expected ROP 20 and BS 40, got %g and %g", result.ReorderPoint, result.BaseStock)
		}
	})
}

func TestCalculator_CustomTable(t *testing.T) {
	calc := NewCalculatorWithTable(services.ZTable{0.75: 0.6744898})
	stats := entities.DemandStatistics{MeanPerDay: 1, StdPerDay: 1}
	leadTime := entities.LeadTime{MeanDays: 1, StdDays: 0}

	result := calc.Compute(stats, leadTime, 0.75)

	if !almostEqual(result.SafetyStock, 0.6744898) {
		t.Errorf("Expected custom table z applied, got safety stock %g", result.SafetyStock)
	}
}

func TestCalculator_Idempotent(t *testing.T) {
	calc := NewCalculator()
	stats := entities.DemandStatistics{MeanPerDay: 3.7, StdPerDay: 1.1}
	leadTime := entities.LeadTime{MeanDays: 4.2, StdDays: 0.9}

	first := calc.Compute(stats, leadTime, 0.85)
	second := calc.Compute(stats, leadTime, 0.85)

	if first != second {
		t.Errorf("Expected bit-identical results, got %+v vs %+v", first, second)
	}
}
