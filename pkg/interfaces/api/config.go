package api

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds server configuration
type Config struct {
	// Addr is the listen address, e.g. ":8000"
	Addr string
	// SalesCSV is the path to the sales history CSV file
	SalesCSV string
	// SalesDB is an optional SQLite snapshot store path; when set it is
	// used instead of the CSV file
	SalesDB string
	// WatchSales enables hot reload of the CSV file on change
	WatchSales bool
}

// LoadConfig loads configuration from a .env file (if present) and
// environment variables
func LoadConfig() (*Config, error) {
	// A missing .env file is fine; environment variables still apply
	_ = godotenv.Load()

	config := &Config{
		Addr:       getEnv("REPLAN_ADDR", ":8000"),
		SalesCSV:   getEnv("REPLAN_SALES_CSV", "sales_history.csv"),
		SalesDB:    getEnv("REPLAN_SALES_DB", ""),
		WatchSales: getEnvBool("REPLAN_WATCH_SALES", false),
	}

	if config.SalesCSV == "" && config.SalesDB == "" {
		return nil, fmt.Errorf("no sales history source configured: set REPLAN_SALES_CSV or REPLAN_SALES_DB")
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
