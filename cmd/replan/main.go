package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/nvohra/replan/pkg/interfaces/cli/commands"
)

func main() {
	ctx := context.Background()

	// The generate subcommand has its own flag set; everything else is the
	// plan command
	if len(os.Args) > 1 && os.Args[1] == "generate" {
		if err := runGenerate(ctx, os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runPlan(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runPlan(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("replan", flag.ExitOnError)

	var (
		scenarioFile = flags.String("scenario", "", "Path to YAML scenario file")
		salesFile    = flags.String("sales", "", "Path to sales history CSV file")
		sku          = flags.String("sku", "", "SKU identifier to plan")
		site         = flags.String("site", "", "Site identifier to plan")
		window       = flags.Int("window", 0, "Trailing history window in days (default 28)")
		horizon      = flags.Int("horizon", 0, "Forecast horizon in days (default 14)")
		leadTimeMean = flags.Float64("lead-time-mean", 0, "Replenishment lead time mean in days")
		leadTimeStd  = flags.Float64("lead-time-std", 0, "Replenishment lead time standard deviation in days")
		targetCSL    = flags.Float64("csl", 0, "Target cycle service level in (0, 1)")
		netAvailable = flags.Float64("net-available", 0, "Current net available inventory position")
		outputDir    = flags.String("output", "", "Output directory for results (optional)")
		format       = flags.String("format", "text", "Output format: text, json, csv")
		chart        = flags.Bool("chart", false, "Render an ASCII chart of history and forecast")
		verbose      = flags.Bool("verbose", false, "Enable verbose output")
		help         = flags.Bool("help", false, "Show help message")
	)

	if err := flags.Parse(args); err != nil {
		return err
	}

	config := commands.Config{
		ScenarioFile:    *scenarioFile,
		SalesFile:       *salesFile,
		SKUID:           *sku,
		SiteID:          *site,
		HistoryWindow:   *window,
		ForecastHorizon: *horizon,
		LeadTimeMean:    *leadTimeMean,
		LeadTimeStd:     *leadTimeStd,
		TargetCSL:       *targetCSL,
		NetAvailable:    *netAvailable,
		OutputDir:       *outputDir,
		Format:          *format,
		Chart:           *chart,
		Verbose:         *verbose,
		Help:            *help,
	}

	return commands.NewPlanCommand(config).Execute(ctx)
}

func runGenerate(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("replan generate", flag.ExitOnError)

	var (
		skus       = flags.Int("skus", 0, "Number of SKUs to generate")
		sites      = flags.Int("sites", 0, "Number of sites to generate")
		days       = flags.Int("days", 0, "Number of days of history")
		baseDemand = flags.Float64("base-demand", 10, "Average daily demand per SKU/site")
		outputDir  = flags.String("output", "", "Output directory for sales_history.csv")
		seed       = flags.Int64("seed", 0, "Random seed for reproducible generation")
		verbose    = flags.Bool("verbose", false, "Enable verbose output")
		help       = flags.Bool("help", false, "Show help message")
	)

	if err := flags.Parse(args); err != nil {
		return err
	}

	config := commands.GenerateConfig{
		SKUs:       *skus,
		Sites:      *sites,
		Days:       *days,
		BaseDemand: *baseDemand,
		OutputDir:  *outputDir,
		Seed:       *seed,
		Verbose:    *verbose,
		Help:       *help,
	}

	if !config.Help {
		if config.SKUs < 1 || config.Sites < 1 || config.Days < 1 {
			return fmt.Errorf("generate requires --skus, --sites, and --days to be at least 1")
		}
		if config.OutputDir == "" {
			return fmt.Errorf("generate requires --output")
		}
	}

	return commands.NewGenerateCommand(config).Execute(ctx)
}
