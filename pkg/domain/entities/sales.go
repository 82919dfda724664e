package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SKUID represents a unique stock-keeping unit identifier
type SKUID string

// SiteID represents a location holding inventory (store, warehouse or DC)
type SiteID string

// Quantity represents a recorded sales quantity in units
type Quantity decimal.Decimal

// Decimal returns the underlying decimal value
func (q Quantity) Decimal() decimal.Decimal {
	return decimal.Decimal(q)
}

// Float64 returns the quantity as a float64 for statistical computation
func (q Quantity) Float64() float64 {
	return decimal.Decimal(q).InexactFloat64()
}

// SalesRecord represents a single historical sales observation
type SalesRecord struct {
	Date     time.Time
	SKUID    SKUID
	SiteID   SiteID
	Quantity Quantity
}

// NewSalesRecord creates a validated SalesRecord. The date is truncated to
// calendar-day granularity in UTC.
func NewSalesRecord(date time.Time, skuID SKUID, siteID SiteID, quantity Quantity) (*SalesRecord, error) {
	if skuID == "" {
		return nil, fmt.Errorf("sku_id cannot be empty")
	}
	if siteID == "" {
		return nil, fmt.Errorf("site_id cannot be empty")
	}
	if quantity.Decimal().IsNegative() {
		return nil, fmt.Errorf("quantity cannot be negative, got %s", quantity.Decimal())
	}

	return &SalesRecord{
		Date:     TruncateToDay(date),
		SKUID:    skuID,
		SiteID:   siteID,
		Quantity: quantity,
	}, nil
}

// TruncateToDay normalizes a timestamp to midnight UTC so records and series
// entries compare at one-day granularity.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
