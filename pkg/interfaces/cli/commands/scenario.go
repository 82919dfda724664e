package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario describes a complete planning run in a single YAML file, so
// recurring runs can be versioned alongside the sales data they read.
type Scenario struct {
	SalesFile       string  `yaml:"sales_file"`
	SKUID           string  `yaml:"sku_id"`
	SiteID          string  `yaml:"site_id"`
	HistoryWindow   int     `yaml:"history_window"`
	ForecastHorizon int     `yaml:"forecast_horizon"`
	LeadTimeMean    float64 `yaml:"lead_time_mean"`
	LeadTimeStd     float64 `yaml:"lead_time_std"`
	TargetCSL       float64 `yaml:"target_csl"`
	NetAvailable    float64 `yaml:"net_available"`
}

// LoadScenario reads and parses a scenario YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", path, err)
	}

	if scenario.SalesFile == "" {
		return nil, fmt.Errorf("scenario %s is missing sales_file", path)
	}
	if scenario.SKUID == "" {
		return nil, fmt.Errorf("scenario %s is missing sku_id", path)
	}
	if scenario.SiteID == "" {
		return nil, fmt.Errorf("scenario %s is missing site_id", path)
	}

	return &scenario, nil
}
