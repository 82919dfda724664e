// Package sqlite provides a local sales-history snapshot store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	// Register the cgo-free sqlite driver
	_ "modernc.org/sqlite"

	"github.com/nvohra/replan/pkg/domain/entities"
	"github.com/nvohra/replan/pkg/domain/repositories"
)

// SalesRepository persists sales history in a local SQLite database.
// Quantities are stored as decimal strings to avoid float drift on import.
type SalesRepository struct {
	db   *sql.DB
	path string
}

// New opens (creating if needed) a SQLite sales store at the given path
func New(path string) (*SalesRepository, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repo := &SalesRepository{db: db, path: path}

	if err := repo.configure(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}
	if err := repo.createSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return repo, nil
}

// Verify interface compliance
var _ repositories.SalesHistoryRepository = (*SalesRepository)(nil)

// Path returns the database file path
func (r *SalesRepository) Path() string {
	return r.path
}

// Close releases the underlying database handle
func (r *SalesRepository) Close() error {
	return r.db.Close()
}

func (r *SalesRepository) configure() error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}

	for _, pragma := range pragmas {
		if _, err := r.db.ExecContext(context.Background(), pragma); err != nil {
			return fmt.Errorf("failed to execute %s: %w", pragma, err)
		}
	}
	return nil
}

func (r *SalesRepository) createSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS sales_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		sku_id TEXT NOT NULL,
		site_id TEXT NOT NULL,
		qty TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_sales_sku_site ON sales_history(sku_id, site_id);
	`
	_, err := r.db.ExecContext(context.Background(), query)
	return err
}

// LoadSales inserts records in a single transaction
func (r *SalesRepository) LoadSales(records []*entities.SalesRecord) error {
	tx, err := r.db.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO sales_history (date, sku_id, site_id, qty) VALUES (?, ?, ?, ?)")
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		_, err := stmt.Exec(
			record.Date.Format("2006-01-02"),
			string(record.SKUID),
			string(record.SiteID),
			record.Quantity.Decimal().String(),
		)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert sales record: %w", err)
		}
	}

	return tx.Commit()
}

// GetSalesHistory returns records matching the SKU and site exactly,
// ordered by date
func (r *SalesRepository) GetSalesHistory(skuID entities.SKUID, siteID entities.SiteID) ([]*entities.SalesRecord, error) {
	rows, err := r.db.QueryContext(context.Background(),
		"SELECT date, sku_id, site_id, qty FROM sales_history WHERE sku_id = ? AND site_id = ? ORDER BY date",
		string(skuID), string(siteID))
	if err != nil {
		return nil, fmt.Errorf("failed to query sales history: %w", err)
	}
	defer rows.Close()

	return scanSalesRows(rows)
}

// GetAllSales returns the full sales history ordered by date
func (r *SalesRepository) GetAllSales() ([]*entities.SalesRecord, error) {
	rows, err := r.db.QueryContext(context.Background(),
		"SELECT date, sku_id, site_id, qty FROM sales_history ORDER BY date")
	if err != nil {
		return nil, fmt.Errorf("failed to query sales history: %w", err)
	}
	defer rows.Close()

	return scanSalesRows(rows)
}

func scanSalesRows(rows *sql.Rows) ([]*entities.SalesRecord, error) {
	var records []*entities.SalesRecord
	for rows.Next() {
		var dateStr, sku, site, qtyStr string
		if err := rows.Scan(&dateStr, &sku, &site, &qtyStr); err != nil {
			return nil, fmt.Errorf("failed to scan sales row: %w", err)
		}

		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid stored date %q: %w", dateStr, err)
		}
		qty, err := decimal.NewFromString(qtyStr)
		if err != nil {
			return nil, fmt.Errorf("invalid stored qty %q: %w", qtyStr, err)
		}

		record, err := entities.NewSalesRecord(date, entities.SKUID(sku), entities.SiteID(site), entities.Quantity(qty))
		if err != nil {
			return nil, fmt.Errorf("invalid stored sales record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
