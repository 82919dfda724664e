package commands

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"
)

// GenerateConfig holds configuration for sales history generation
type GenerateConfig struct {
	SKUs       int     // Number of SKUs to generate
	Sites      int     // Number of sites to generate
	Days       int     // Number of days of history
	BaseDemand float64 // Average daily demand per SKU/site
	OutputDir  string  // Output directory for the generated file
	Seed       int64   // Random seed for reproducible generation
	Help       bool    // Show help
	Verbose    bool    // Verbose output
}

// GenerateCommand produces a synthetic sales history CSV with weekly
// seasonality, useful for demos and load testing
type GenerateCommand struct {
	config GenerateConfig
	rand   *rand.Rand
}

// NewGenerateCommand creates a new generate command
func NewGenerateCommand(config GenerateConfig) *GenerateCommand {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &GenerateCommand{
		config: config,
		rand:   rand.New(rand.NewSource(seed)),
	}
}

// Execute runs the generate command
func (cmd *GenerateCommand) Execute(ctx context.Context) error {
	if cmd.config.Help {
		cmd.printHelp()
		return nil
	}

	if cmd.config.Verbose {
		fmt.Printf("🔧 Generating %d days of history for %d SKUs across %d sites\n",
			cmd.config.Days, cmd.config.SKUs, cmd.config.Sites)
		fmt.Printf("📁 Output directory: %s\n", cmd.config.OutputDir)
		fmt.Printf("🎲 Random seed: %d\n", cmd.config.Seed)
	}

	if err := os.MkdirAll(cmd.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filePath := filepath.Join(cmd.config.OutputDir, "sales_history.csv")
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create sales history file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "date,sku_id,site_id,qty")

	// History ends yesterday so a default trailing window covers it
	end := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(cmd.config.Days - 1))

	lines := 0
	for sku := 1; sku <= cmd.config.SKUs; sku++ {
		for site := 1; site <= cmd.config.Sites; site++ {
			// Each SKU/site pair gets its own demand level around the base
			level := cmd.config.BaseDemand * (0.5 + cmd.rand.Float64())

			for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
				qty := cmd.dailyQuantity(level, day)
				if qty <= 0 {
					continue
				}
				fmt.Fprintf(file, "%s,SKU%d,SITE%d,%d\n", day.Format("2006-01-02"), sku, site, qty)
				lines++
			}
		}
	}

	if cmd.config.Verbose {
		fmt.Printf("✅ Sales history generated: %d records in %s\n", lines, filePath)
	}

	return nil
}

// dailyQuantity draws one day's demand: a weekly cycle with a weekend dip,
// noise, and occasional stockout-like zero days
func (cmd *GenerateCommand) dailyQuantity(level float64, day time.Time) int {
	// 5% of days have no sales at all
	if cmd.rand.Float64() < 0.05 {
		return 0
	}

	weekday := level
	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		weekday = level * 0.4
	case time.Friday:
		weekday = level * 1.3
	}

	noise := 1.0 + 0.3*(cmd.rand.Float64()*2-1)
	return int(math.Round(weekday * noise))
}

// printHelp shows usage information
func (cmd *GenerateCommand) printHelp() {
	fmt.Println(`Sales History Generator

USAGE:
    replan generate [OPTIONS]

OPTIONS:
    --skus <N>          Number of SKUs to generate (required)
    --sites <N>         Number of sites to generate (required)
    --days <N>          Number of days of history (required)
    --base-demand <F>   Average daily demand per SKU/site (default: 10)
    --output <DIR>      Output directory for sales_history.csv (required)
    --seed <N>          Random seed for reproducible generation (optional)
    --verbose           Enable verbose output
    --help              Show this help message

EXAMPLES:
    # Generate a small demo history
    replan generate --skus 5 --sites 2 --days 60 --output ./demo_data

    # Generate a reproducible large history
    replan generate --skus 200 --sites 10 --days 365 --output ./load_data --seed 12345 --verbose`)
}
