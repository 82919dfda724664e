package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nvohra/replan/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format       string
	OutputDir    string
	Verbose      bool
	PlanningTime time.Duration
	SalesFile    string
}

// Generate renders a pipeline result in the specified format
func Generate(result *dto.PipelineResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	case "csv":
		return generateCSVOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(result *dto.PipelineResult, config Config) error {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 Replenishment Plan: %s @ %s\n", result.Forecast.SKUID, result.Forecast.SiteID)
	fmt.Fprintf(&b, "=====================================\n\n")

	fmt.Fprintf(&b, "Run ID: %s\n", result.RunID)
	fmt.Fprintf(&b, "Planning Date: %s\n", result.PlanningDate.Format("2006-01-02 15:04:05 MST"))
	if config.PlanningTime > 0 {
		fmt.Fprintf(&b, "Planning Time: %v\n", config.PlanningTime)
	}
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "📈 Demand Forecast:\n")
	fmt.Fprintf(&b, "  Mean demand/day: %.2f\n", result.Forecast.MeanDemandPerDay)
	fmt.Fprintf(&b, "  Std demand/day:  %.2f\n", result.Forecast.StdDemandPerDay)
	fmt.Fprintf(&b, "  Horizon:         %d days\n\n", len(result.Forecast.Predictions))

	if len(result.Forecast.Predictions) > 0 {
		fmt.Fprintf(&b, "%-6s %-10s %-10s %-10s\n", "Day", "P10", "P50", "P90")
		fmt.Fprintf(&b, "%-6s %-10s %-10s %-10s\n", "------", "----------", "----------", "----------")
		for _, point := range result.Forecast.Predictions {
			fmt.Fprintf(&b, "%-6d %-10.2f %-10.2f %-10.2f\n", point.Day, point.P10, point.P50, point.P90)
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprintf(&b, "📐 Inventory Policy:\n")
	fmt.Fprintf(&b, "  Lead-time demand (mu):    %.2f\n", result.Policy.MuLT)
	fmt.Fprintf(&b, "  Lead-time demand (sigma): %.2f\n", result.Policy.SigmaLT)
	fmt.Fprintf(&b, "  Safety stock:             %.2f\n", result.Policy.SafetyStock)
	fmt.Fprintf(&b, "  Reorder point:            %.2f\n", result.Policy.ReorderPoint)
	fmt.Fprintf(&b, "  Base stock:               %.2f\n\n", result.Policy.BaseStock)

	if result.Replenishment.Triggered {
		fmt.Fprintf(&b, "🛒 Replenishment: ORDER %d units\n", result.Replenishment.OrderQuantity)
	} else {
		fmt.Fprintf(&b, "✅ Replenishment: no order needed\n")
	}

	fmt.Print(b.String())

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		filename := filepath.Join(config.OutputDir, "plan.txt")
		if err := os.WriteFile(filename, []byte(b.String()), 0644); err != nil {
			return fmt.Errorf("failed to write text file: %w", err)
		}
		if config.Verbose {
			fmt.Printf("💾 Results saved to: %s\n", filename)
		}
	}

	return nil
}

// generateJSONOutput creates JSON output
func generateJSONOutput(result *dto.PipelineResult, config Config) error {
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(jsonData))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "plan.json")
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 JSON results saved to: %s\n", filename)
	}

	return nil
}

// generateCSVOutput creates CSV output
func generateCSVOutput(result *dto.PipelineResult, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	forecastFile := filepath.Join(config.OutputDir, "forecast.csv")
	if err := writeForecastCSV(result, forecastFile); err != nil {
		return fmt.Errorf("failed to write forecast CSV: %w", err)
	}

	planFile := filepath.Join(config.OutputDir, "plan.csv")
	if err := writePlanCSV(result, planFile); err != nil {
		return fmt.Errorf("failed to write plan CSV: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 CSV results saved to:\n")
		fmt.Printf("  Forecast: %s\n", forecastFile)
		fmt.Printf("  Plan: %s\n", planFile)
	}

	return nil
}

func writeForecastCSV(result *dto.PipelineResult, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintln(file, "sku_id,site_id,day,p10,p50,p90")
	for _, point := range result.Forecast.Predictions {
		fmt.Fprintf(file, "%s,%s,%d,%g,%g,%g\n",
			result.Forecast.SKUID, result.Forecast.SiteID, point.Day, point.P10, point.P50, point.P90)
	}
	return nil
}

func writePlanCSV(result *dto.PipelineResult, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintln(file, "run_id,sku_id,site_id,mean_demand_per_day,std_demand_per_day,mu_lt,sigma_lt,safety_stock,reorder_point,base_stock,order_quantity,triggered")
	fmt.Fprintf(file, "%s,%s,%s,%g,%g,%g,%g,%g,%g,%g,%d,%t\n",
		result.RunID,
		result.Forecast.SKUID,
		result.Forecast.SiteID,
		result.Forecast.MeanDemandPerDay,
		result.Forecast.StdDemandPerDay,
		result.Policy.MuLT,
		result.Policy.SigmaLT,
		result.Policy.SafetyStock,
		result.Policy.ReorderPoint,
		result.Policy.BaseStock,
		result.Replenishment.OrderQuantity,
		result.Replenishment.Triggered)
	return nil
}
