package repositories

import "github.com/nvohra/replan/pkg/domain/entities"

// SalesHistoryRepository provides access to historical sales data. The
// repository is the external tabular store the pipeline reads from; it never
// persists anything derived by the pipeline.
type SalesHistoryRepository interface {
	// GetSalesHistory returns all records matching the SKU and site exactly,
	// in no guaranteed order.
	GetSalesHistory(skuID entities.SKUID, siteID entities.SiteID) ([]*entities.SalesRecord, error)
	GetAllSales() ([]*entities.SalesRecord, error)
	LoadSales(records []*entities.SalesRecord) error
}
