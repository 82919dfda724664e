package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/nvohra/replan/pkg/domain/repositories"
	"github.com/nvohra/replan/pkg/infrastructure/events"
	"github.com/nvohra/replan/pkg/infrastructure/repositories/csv"
	"github.com/nvohra/replan/pkg/infrastructure/repositories/memory"
	"github.com/nvohra/replan/pkg/infrastructure/repositories/sqlite"
	"github.com/nvohra/replan/pkg/interfaces/api"
)

func main() {
	logger := log.New(os.Stdout, "replan-server ", log.LstdFlags)

	if err := run(logger); err != nil {
		logger.Fatalf("Fatal: %v", err)
	}
}

func run(logger *log.Logger) error {
	config, err := api.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	salesRepo, cleanup, err := buildSalesRepository(logger, config)
	if err != nil {
		return fmt.Errorf("failed to build sales repository: %w", err)
	}
	defer cleanup()

	server := api.NewServer(logger, salesRepo, events.NewInMemoryStore())

	logger.Printf("Listening on %s", config.Addr)
	return http.ListenAndServe(config.Addr, server.Routes())
}

// buildSalesRepository picks the sales history source: a SQLite snapshot
// store when configured, otherwise a CSV file loaded into memory with
// optional hot reload.
func buildSalesRepository(logger *log.Logger, config *api.Config) (repositories.SalesHistoryRepository, func(), error) {
	if config.SalesDB != "" {
		repo, err := sqlite.New(config.SalesDB)
		if err != nil {
			return nil, nil, err
		}
		logger.Printf("Serving sales history from SQLite store %s", config.SalesDB)
		return repo, func() { _ = repo.Close() }, nil
	}

	records, err := csv.NewLoader().LoadSalesHistory(config.SalesCSV)
	if err != nil {
		return nil, nil, err
	}

	repo := memory.NewSalesRepository()
	if err := repo.LoadSales(records); err != nil {
		return nil, nil, err
	}
	logger.Printf("Loaded %d sales records from %s", len(records), config.SalesCSV)

	cleanup := func() {}
	if config.WatchSales {
		watcher, err := api.NewSalesWatcher(logger, config.SalesCSV, repo)
		if err != nil {
			return nil, nil, err
		}
		logger.Printf("Watching %s for changes", config.SalesCSV)
		cleanup = func() { _ = watcher.Close() }
	}

	return repo, cleanup, nil
}
