package memory

import (
	"sync"

	"github.com/nvohra/replan/pkg/domain/entities"
	"github.com/nvohra/replan/pkg/domain/repositories"
)

// SalesRepository provides in-memory sales history storage. Reads return
// copies of the record pointers; the backing slice is only mutated under the
// write lock, so the repository is safe for concurrent use.
type SalesRepository struct {
	records []entities.SalesRecord
	mutex   sync.RWMutex
}

// NewSalesRepository creates an empty in-memory sales repository
func NewSalesRepository() *SalesRepository {
	return &SalesRepository{}
}

// Verify interface compliance
var _ repositories.SalesHistoryRepository = (*SalesRepository)(nil)

// LoadSales appends records to the repository
func (r *SalesRepository) LoadSales(records []*entities.SalesRecord) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, record := range records {
		r.records = append(r.records, *record)
	}
	return nil
}

// ReplaceSales swaps the entire history, used when a watched source reloads
func (r *SalesRepository) ReplaceSales(records []*entities.SalesRecord) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.records = r.records[:0]
	for _, record := range records {
		r.records = append(r.records, *record)
	}
	return nil
}

// GetSalesHistory returns records matching the SKU and site exactly
func (r *SalesRepository) GetSalesHistory(skuID entities.SKUID, siteID entities.SiteID) ([]*entities.SalesRecord, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var matches []*entities.SalesRecord
	for i := range r.records {
		if r.records[i].SKUID == skuID && r.records[i].SiteID == siteID {
			record := r.records[i]
			matches = append(matches, &record)
		}
	}
	return matches, nil
}

// GetAllSales returns the full sales history
func (r *SalesRepository) GetAllSales() ([]*entities.SalesRecord, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	all := make([]*entities.SalesRecord, 0, len(r.records))
	for i := range r.records {
		record := r.records[i]
		all = append(all, &record)
	}
	return all, nil
}
