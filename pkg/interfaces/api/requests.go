package api

import "fmt"

// ForecastRequest is the payload for the forecasting endpoint. Window sizes
// default to 28 and 14 days when omitted.
type ForecastRequest struct {
	SKUID           string `json:"sku_id"`
	SiteID          string `json:"site_id"`
	HistoryWindow   int    `json:"history_window"`
	ForecastHorizon int    `json:"forecast_horizon"`
}

// Validate enforces the boundary constraints for forecasting requests
func (r ForecastRequest) Validate() error {
	if r.SKUID == "" {
		return fmt.Errorf("sku_id cannot be empty")
	}
	if r.SiteID == "" {
		return fmt.Errorf("site_id cannot be empty")
	}
	if r.HistoryWindow < 1 {
		return fmt.Errorf("history_window must be at least 1, got %d", r.HistoryWindow)
	}
	if r.ForecastHorizon < 1 {
		return fmt.Errorf("forecast_horizon must be at least 1, got %d", r.ForecastHorizon)
	}
	return nil
}

// PolicyRequest is the payload for the inventory policy endpoint
type PolicyRequest struct {
	MeanDemandPerDay float64 `json:"mean_demand_per_day"`
	StdDemandPerDay  float64 `json:"std_demand_per_day"`
	LeadTimeMean     float64 `json:"lead_time_mean"`
	LeadTimeStd      float64 `json:"lead_time_std"`
	TargetCSL        float64 `json:"target_csl"`
}

// Validate enforces the boundary constraints for policy requests
func (r PolicyRequest) Validate() error {
	if r.MeanDemandPerDay < 0 {
		return fmt.Errorf("mean_demand_per_day cannot be negative, got %g", r.MeanDemandPerDay)
	}
	if r.StdDemandPerDay < 0 {
		return fmt.Errorf("std_demand_per_day cannot be negative, got %g", r.StdDemandPerDay)
	}
	if r.LeadTimeMean <= 0 {
		return fmt.Errorf("lead_time_mean must be positive, got %g", r.LeadTimeMean)
	}
	if r.LeadTimeStd < 0 {
		return fmt.Errorf("lead_time_std cannot be negative, got %g", r.LeadTimeStd)
	}
	if r.TargetCSL <= 0 || r.TargetCSL >= 1 {
		return fmt.Errorf("target_csl must be in (0, 1), got %g", r.TargetCSL)
	}
	return nil
}

// ReplenishRequest is the payload for the replenishment endpoint.
// NetAvailable may be negative (backorders).
type ReplenishRequest struct {
	NetAvailable float64 `json:"net_available"`
	ReorderPoint float64 `json:"reorder_point"`
	BaseStock    float64 `json:"base_stock"`
}

// Validate enforces the boundary constraints for replenishment requests
func (r ReplenishRequest) Validate() error {
	if r.ReorderPoint < 0 {
		return fmt.Errorf("reorder_point cannot be negative, got %g", r.ReorderPoint)
	}
	if r.BaseStock < 0 {
		return fmt.Errorf("base_stock cannot be negative, got %g", r.BaseStock)
	}
	return nil
}

// PipelineRunRequest is the payload for the full pipeline endpoint
type PipelineRunRequest struct {
	SKUID           string  `json:"sku_id"`
	SiteID          string  `json:"site_id"`
	HistoryWindow   int     `json:"history_window"`
	ForecastHorizon int     `json:"forecast_horizon"`
	LeadTimeMean    float64 `json:"lead_time_mean"`
	LeadTimeStd     float64 `json:"lead_time_std"`
	TargetCSL       float64 `json:"target_csl"`
	NetAvailable    float64 `json:"net_available"`
}
