package dto

import (
	"time"

	"github.com/nvohra/replan/pkg/domain/entities"
)

// ForecastResult contains the output of the demand estimation stage
type ForecastResult struct {
	SKUID            entities.SKUID           `json:"sku_id"`
	SiteID           entities.SiteID          `json:"site_id"`
	MeanDemandPerDay float64                  `json:"mean_demand_per_day"`
	StdDemandPerDay  float64                  `json:"std_demand_per_day"`
	Predictions      []entities.ForecastPoint `json:"predictions"`
}

// PolicyResult contains the output of the inventory policy stage
type PolicyResult struct {
	MuLT         float64 `json:"mu_lt"`
	SigmaLT      float64 `json:"sigma_lt"`
	SafetyStock  float64 `json:"safety_stock"`
	ReorderPoint float64 `json:"reorder_point"`
	BaseStock    float64 `json:"base_stock"`
}

// NewPolicyResult converts a domain policy into its transport shape
func NewPolicyResult(policy entities.InventoryPolicy) PolicyResult {
	return PolicyResult{
		MuLT:         policy.MuLT,
		SigmaLT:      policy.SigmaLT,
		SafetyStock:  policy.SafetyStock,
		ReorderPoint: policy.ReorderPoint,
		BaseStock:    policy.BaseStock,
	}
}

// ReplenishmentResult contains the output of the replenishment stage
type ReplenishmentResult struct {
	OrderQuantity int64 `json:"order_quantity"`
	Triggered     bool  `json:"triggered"`
}

// PipelineResult aggregates the intermediate results of a full
// forecast -> policy -> replenishment run
type PipelineResult struct {
	RunID         string              `json:"run_id"`
	PlanningDate  time.Time           `json:"planning_date"`
	Forecast      ForecastResult      `json:"forecast"`
	Policy        PolicyResult        `json:"policy"`
	Replenishment ReplenishmentResult `json:"replenishment"`
}
