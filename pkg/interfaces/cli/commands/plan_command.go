package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nvohra/replan/pkg/application/services/orchestration"
	"github.com/nvohra/replan/pkg/domain/entities"
	domainservices "github.com/nvohra/replan/pkg/domain/services"
	"github.com/nvohra/replan/pkg/infrastructure/events"
	"github.com/nvohra/replan/pkg/infrastructure/repositories/csv"
	"github.com/nvohra/replan/pkg/infrastructure/repositories/memory"
	"github.com/nvohra/replan/pkg/interfaces/cli/output"
)

// Config holds configuration for the plan command
type Config struct {
	ScenarioFile    string
	SalesFile       string
	SKUID           string
	SiteID          string
	HistoryWindow   int
	ForecastHorizon int
	LeadTimeMean    float64
	LeadTimeStd     float64
	TargetCSL       float64
	NetAvailable    float64
	OutputDir       string
	Format          string
	Chart           bool
	Verbose         bool
	Help            bool
}

// PlanCommand runs the forecast, policy, and replenishment stages for one
// SKU/site and renders the result
type PlanCommand struct {
	config Config
}

// NewPlanCommand creates a new plan command with the given configuration
func NewPlanCommand(config Config) *PlanCommand {
	return &PlanCommand{
		config: config,
	}
}

// Execute runs the plan command
func (c *PlanCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if c.config.ScenarioFile != "" {
		if err := c.applyScenario(); err != nil {
			return fmt.Errorf("failed to load scenario: %w", err)
		}
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if c.config.Verbose {
		c.printHeader()
	}

	// Load sales history
	if c.config.Verbose {
		fmt.Println("📂 Loading sales history...")
	}

	records, err := csv.NewLoader().LoadSalesHistory(c.config.SalesFile)
	if err != nil {
		return fmt.Errorf("error loading sales history: %w", err)
	}

	salesRepo := memory.NewSalesRepository()
	if err := salesRepo.LoadSales(records); err != nil {
		return fmt.Errorf("failed to load sales history into repository: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Sales history loaded: %d records\n\n", len(records))
	}

	// Run pipeline
	if c.config.Verbose {
		fmt.Println("🔄 Running planning pipeline...")
	}

	eventStore := events.NewInMemoryStore()
	orchestrator := orchestration.NewPipelineOrchestrator(salesRepo, eventStore)

	startTime := time.Now()
	result, err := orchestrator.RunPipeline(ctx, orchestration.PipelineRequest{
		SKUID:           entities.SKUID(c.config.SKUID),
		SiteID:          entities.SiteID(c.config.SiteID),
		HistoryWindow:   c.config.HistoryWindow,
		ForecastHorizon: c.config.ForecastHorizon,
		LeadTimeMean:    c.config.LeadTimeMean,
		LeadTimeStd:     c.config.LeadTimeStd,
		TargetCSL:       c.config.TargetCSL,
		NetAvailable:    c.config.NetAvailable,
	})
	planningTime := time.Since(startTime)

	if err != nil {
		return fmt.Errorf("error running planning pipeline: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Planning pipeline completed in %v (run %s)\n\n", planningTime, result.RunID)
	}

	// Generate output
	outputConfig := output.Config{
		Format:       c.config.Format,
		OutputDir:    c.config.OutputDir,
		Verbose:      c.config.Verbose,
		PlanningTime: planningTime,
		SalesFile:    c.config.SalesFile,
	}

	if err := output.Generate(result, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if c.config.Chart {
		history := c.historyWindow(records, result.Forecast.SKUID, result.Forecast.SiteID)
		fmt.Println(output.RenderForecastChart(history, result.Forecast.Predictions))
	}

	if c.config.Verbose {
		fmt.Println("🏁 Planning complete!")
	}

	return nil
}

// applyScenario fills the configuration from the scenario file. Flags that
// were left at their zero value take the scenario's settings.
func (c *PlanCommand) applyScenario() error {
	scenario, err := LoadScenario(c.config.ScenarioFile)
	if err != nil {
		return err
	}

	if c.config.SalesFile == "" {
		c.config.SalesFile = scenario.SalesFile
	}
	if c.config.SKUID == "" {
		c.config.SKUID = scenario.SKUID
	}
	if c.config.SiteID == "" {
		c.config.SiteID = scenario.SiteID
	}
	if c.config.HistoryWindow == 0 {
		c.config.HistoryWindow = scenario.HistoryWindow
	}
	if c.config.ForecastHorizon == 0 {
		c.config.ForecastHorizon = scenario.ForecastHorizon
	}
	if c.config.LeadTimeMean == 0 {
		c.config.LeadTimeMean = scenario.LeadTimeMean
	}
	if c.config.LeadTimeStd == 0 {
		c.config.LeadTimeStd = scenario.LeadTimeStd
	}
	if c.config.TargetCSL == 0 {
		c.config.TargetCSL = scenario.TargetCSL
	}
	if c.config.NetAvailable == 0 {
		c.config.NetAvailable = scenario.NetAvailable
	}
	return nil
}

// validateInputs validates the command configuration
func (c *PlanCommand) validateInputs() error {
	if c.config.SalesFile == "" {
		return fmt.Errorf("must specify either -scenario or -sales")
	}
	if _, err := os.Stat(c.config.SalesFile); os.IsNotExist(err) {
		return fmt.Errorf("sales history file not found: %s", c.config.SalesFile)
	}
	if c.config.SKUID == "" {
		return fmt.Errorf("must specify -sku")
	}
	if c.config.SiteID == "" {
		return fmt.Errorf("must specify -site")
	}
	return nil
}

// historyWindow rebuilds the trailing daily series the forecast saw, for the
// chart rendering
func (c *PlanCommand) historyWindow(records []*entities.SalesRecord, skuID entities.SKUID, siteID entities.SiteID) []float64 {
	var filtered []*entities.SalesRecord
	for _, record := range records {
		if record.SKUID == skuID && record.SiteID == siteID {
			filtered = append(filtered, record)
		}
	}

	window := c.config.HistoryWindow
	if window == 0 {
		window = 28
	}
	return domainservices.BuildDailySeries(filtered).Window(window).Values()
}

// printHeader prints the command header information
func (c *PlanCommand) printHeader() {
	fmt.Printf("🚀 Replenishment Planning CLI\n")
	fmt.Printf("Sales history: %s\n", c.config.SalesFile)
	fmt.Printf("SKU: %s  Site: %s\n", c.config.SKUID, c.config.SiteID)
	fmt.Printf("Lead time: %.1f ± %.1f days  Target CSL: %.2f  Net available: %.1f\n",
		c.config.LeadTimeMean, c.config.LeadTimeStd, c.config.TargetCSL, c.config.NetAvailable)
	fmt.Printf("Output format: %s\n", c.config.Format)
	if c.config.OutputDir != "" {
		fmt.Printf("Output directory: %s\n", c.config.OutputDir)
	}
	fmt.Println()
}

// showHelp displays the help message
func (c *PlanCommand) showHelp() {
	fmt.Printf(`Replenishment Planning CLI - Forecasting and Inventory Policy for Retail Supply Chains

USAGE:
    replan -scenario <file>                # Use a YAML scenario file
    replan -sales <file> -sku <id> ...     # Specify everything with flags

OPTIONS:
    -scenario <file>        Path to YAML scenario file
    -sales <file>           Path to sales history CSV file
    -sku <id>               SKU identifier to plan
    -site <id>              Site identifier to plan
    -window <n>             Trailing history window in days (default: 28)
    -horizon <n>            Forecast horizon in days (default: 14)
    -lead-time-mean <f>     Replenishment lead time mean in days
    -lead-time-std <f>      Replenishment lead time standard deviation in days
    -csl <f>                Target cycle service level in (0, 1)
    -net-available <f>      Current net available inventory position
    -output <dir>           Output directory for results (optional)
    -format <fmt>           Output format: text, json, csv (default: text)
    -chart                  Render an ASCII chart of history and forecast
    -verbose                Enable verbose output
    -help                   Show this help message

SCENARIO FILE FORMAT:
    sales_file: data/sales_history.csv
    sku_id: SKU1
    site_id: STORE1
    history_window: 28
    forecast_horizon: 14
    lead_time_mean: 7
    lead_time_std: 1.5
    target_csl: 0.95
    net_available: 120

SALES HISTORY CSV FORMAT:
    date,sku_id,site_id,qty
    2024-03-04,SKU1,STORE1,10

EXAMPLES:
    # Run a saved scenario
    replan -scenario scenarios/store1_sku1.yaml -verbose

    # Plan directly from flags
    replan -sales data/sales_history.csv -sku SKU1 -site STORE1 \
        -lead-time-mean 7 -lead-time-std 1.5 -csl 0.95 -net-available 120

    # JSON output saved to a directory
    replan -scenario scenarios/store1_sku1.yaml -format json -output results/

    # Show the forecast chart
    replan -scenario scenarios/store1_sku1.yaml -chart
`)
}
