package entities

// InventoryPosition is a caller-supplied snapshot of the inventory state for
// one SKU/site. NetAvailable is on hand plus on order minus backorders and
// may be negative when demand is backordered.
type InventoryPosition struct {
	NetAvailable float64
	ReorderPoint float64
	BaseStock    float64
}

// Triggered reports whether the position has fallen below the reorder point
func (p InventoryPosition) Triggered() bool {
	return p.NetAvailable < p.ReorderPoint
}

// ReplenishmentOrder is a suggested order-up-to replenishment. Quantity is
// rounded to whole units and is never negative.
type ReplenishmentOrder struct {
	SKUID     SKUID  `json:"sku_id,omitempty"`
	SiteID    SiteID `json:"site_id,omitempty"`
	Quantity  int64  `json:"order_quantity"`
	Triggered bool   `json:"triggered"`
}
