package entities

import "fmt"

// LeadTime describes replenishment lead time statistics in days. These are
// supplied by the caller from supplier master data, never derived here.
type LeadTime struct {
	MeanDays float64
	StdDays  float64
}

// NewLeadTime creates a validated LeadTime
func NewLeadTime(meanDays, stdDays float64) (*LeadTime, error) {
	if meanDays <= 0 {
		return nil, fmt.Errorf("lead time mean must be positive, got %g", meanDays)
	}
	if stdDays < 0 {
		return nil, fmt.Errorf("lead time std cannot be negative, got %g", stdDays)
	}

	return &LeadTime{
		MeanDays: meanDays,
		StdDays:  stdDays,
	}, nil
}

// InventoryPolicy holds the computed stocking policy for one SKU/site.
// All values are in units of demand and are not rounded.
type InventoryPolicy struct {
	MuLT         float64 `json:"mu_lt"`
	SigmaLT      float64 `json:"sigma_lt"`
	SafetyStock  float64 `json:"safety_stock"`
	ReorderPoint float64 `json:"reorder_point"`
	BaseStock    float64 `json:"base_stock"`
}
