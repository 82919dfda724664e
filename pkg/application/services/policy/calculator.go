package policy

import (
	"math"

	"github.com/nvohra/replan/pkg/domain/entities"
	"github.com/nvohra/replan/pkg/domain/services"
)

// Calculator maps demand and lead-time statistics to a stocking policy under
// a target cycle service level. It is stateless apart from its immutable
// z-score table and is safe for concurrent use.
type Calculator struct {
	table services.ZTable
}

// NewCalculator creates a calculator using the default z-score table
func NewCalculator() *Calculator {
	return NewCalculatorWithTable(services.DefaultZTable())
}

// NewCalculatorWithTable creates a calculator with a caller-supplied table
func NewCalculatorWithTable(table services.ZTable) *Calculator {
	return &Calculator{table: table}
}

// Compute derives the inventory policy from per-day demand statistics and
// lead-time statistics, assuming a normal approximation of demand during the
// lead time:
//
//	mu_lt    = mean_d * lt_mean
//	sigma_lt = sqrt(lt_mean * std_d^2 + mean_d^2 * lt_std^2)
//	SS       = z(target CSL) * sigma_lt
//	ROP      = mu_lt + SS
//	BS       = ROP + mu_lt
//
// The base stock formula is a simplified approximation: it does not account
// for a review period, and callers must not treat it as a periodic-review
// base stock. Outputs are unrounded.
func (c *Calculator) Compute(stats entities.DemandStatistics, leadTime entities.LeadTime, targetCSL float64) entities.InventoryPolicy {
	muLT := stats.MeanPerDay * leadTime.MeanDays
	sigmaLT := math.Sqrt(
		leadTime.MeanDays*stats.StdPerDay*stats.StdPerDay +
			stats.MeanPerDay*stats.MeanPerDay*leadTime.StdDays*leadTime.StdDays,
	)

	z := c.table.Lookup(targetCSL)
	safetyStock := z * sigmaLT
	reorderPoint := muLT + safetyStock

	return entities.InventoryPolicy{
		MuLT:         muLT,
		SigmaLT:      sigmaLT,
		SafetyStock:  safetyStock,
		ReorderPoint: reorderPoint,
		BaseStock:    reorderPoint + muLT,
	}
}
