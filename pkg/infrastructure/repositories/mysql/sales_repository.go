// Package mysql provides a read-only adapter for a production sales database.
package mysql

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	// Register the MySQL driver
	_ "github.com/go-sql-driver/mysql"

	"github.com/nvohra/replan/pkg/domain/entities"
	"github.com/nvohra/replan/pkg/domain/repositories"
)

// Config holds MySQL connection parameters
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	// Table is the sales history table; defaults to sales_history
	Table string
}

// DSN returns the driver connection string. parseTime is required so DATE
// columns scan into time.Time.
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		c.User, c.Password, c.Host, c.Port, c.Database)
}

// SalesRepository reads sales history from a MySQL database. The adapter
// never writes; the sales database belongs to the upstream transaction
// system.
type SalesRepository struct {
	db    *sql.DB
	table string
}

// Connect opens a connection to the sales database and verifies it
func Connect(config Config) (*SalesRepository, error) {
	db, err := sql.Open("mysql", config.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open sales database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to sales database: %w", err)
	}

	table := config.Table
	if table == "" {
		table = "sales_history"
	}

	return &SalesRepository{db: db, table: table}, nil
}

// Verify interface compliance
var _ repositories.SalesHistoryRepository = (*SalesRepository)(nil)

// Close releases the underlying database handle
func (r *SalesRepository) Close() error {
	return r.db.Close()
}

// GetSalesHistory returns records matching the SKU and site exactly,
// ordered by date
func (r *SalesRepository) GetSalesHistory(skuID entities.SKUID, siteID entities.SiteID) ([]*entities.SalesRecord, error) {
	query := fmt.Sprintf(
		"SELECT date, sku_id, site_id, qty FROM %s WHERE sku_id = ? AND site_id = ? ORDER BY date", r.table)
	rows, err := r.db.Query(query, string(skuID), string(siteID))
	if err != nil {
		return nil, fmt.Errorf("failed to query sales history: %w", err)
	}
	defer rows.Close()

	return scanSalesRows(rows)
}

// GetAllSales returns the full sales history ordered by date
func (r *SalesRepository) GetAllSales() ([]*entities.SalesRecord, error) {
	query := fmt.Sprintf("SELECT date, sku_id, site_id, qty FROM %s ORDER BY date", r.table)
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales history: %w", err)
	}
	defer rows.Close()

	return scanSalesRows(rows)
}

// LoadSales is not supported; the sales database is read-only for planning
func (r *SalesRepository) LoadSales(records []*entities.SalesRecord) error {
	return fmt.Errorf("mysql sales repository is read-only")
}

func scanSalesRows(rows *sql.Rows) ([]*entities.SalesRecord, error) {
	var records []*entities.SalesRecord
	for rows.Next() {
		var (
			date time.Time
			sku  string
			site string
			qty  string
		)
		if err := rows.Scan(&date, &sku, &site, &qty); err != nil {
			return nil, fmt.Errorf("failed to scan sales row: %w", err)
		}

		quantity, err := decimal.NewFromString(qty)
		if err != nil {
			return nil, fmt.Errorf("invalid qty %q: %w", qty, err)
		}

		record, err := entities.NewSalesRecord(date, entities.SKUID(sku), entities.SiteID(site), entities.Quantity(quantity))
		if err != nil {
			return nil, fmt.Errorf("invalid sales row: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
