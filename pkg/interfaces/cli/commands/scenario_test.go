package commands

import (
	"os"
	"path/filepath"
	"testing"
)

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write scenario file: %v", err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenarioFile(t, `
sales_file: data/sales_history.csv
sku_id: SKU1
site_id: STORE1
history_window: 28
forecast_horizon: 14
lead_time_mean: 7
lead_time_std: 1.5
target_csl: 0.95
net_available: 120
`)

	scenario, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if scenario.SalesFile != "data/sales_history.csv" {
		t.Errorf("Expected sales_file data/sales_history.csv, got %s", scenario.SalesFile)
	}
	if scenario.SKUID != "SKU1" || scenario.SiteID != "STORE1" {
		t.Errorf("Expected SKU1/STORE1, got %s/%s", scenario.SKUID, scenario.SiteID)
	}
	if scenario.HistoryWindow != 28 || scenario.ForecastHorizon != 14 {
		t.Errorf("Expected window 28 horizon 14, got %d/%d", scenario.HistoryWindow, scenario.ForecastHorizon)
	}
	if scenario.LeadTimeMean != 7 || scenario.LeadTimeStd != 1.5 {
		t.Errorf("Expected lead time 7/1.5, got %g/%g", scenario.LeadTimeMean, scenario.LeadTimeStd)
	}
	if scenario.TargetCSL != 0.95 {
		t.Errorf("Expected target_csl 0.95, got %g", scenario.TargetCSL)
	}
	if scenario.NetAvailable != 120 {
		t.Errorf("Expected net_available 120, got %g", scenario.NetAvailable)
	}
}

func TestLoadScenarioMissingFields(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"missing sales_file", "sku_id: SKU1\nsite_id: STORE1\n"},
		{"missing sku_id", "sales_file: sales.csv\nsite_id: STORE1\n"},
		{"missing site_id", "sales_file: sales.csv\nsku_id: SKU1\n"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			path := writeScenarioFile(t, testCase.content)
			if _, err := LoadScenario(path); err == nil {
				t.Error("Expected an error for incomplete scenario")
			}
		})
	}
}

func TestLoadScenarioBadYAML(t *testing.T) {
	path := writeScenarioFile(t, "sales_file: [unclosed")
	if _, err := LoadScenario(path); err == nil {
		t.Error("Expected a parse error")
	}
}

func TestLoadScenarioMissingFile(t *testing.T) {
	if _, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected an error for missing file")
	}
}
