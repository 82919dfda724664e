package replenishment

import (
	"math"

	"github.com/nvohra/replan/pkg/domain/entities"
)

// Planner implements the order-up-to replenishment policy. It is stateless
// and safe for concurrent use.
type Planner struct{}

// NewPlanner creates a new replenishment planner
func NewPlanner() *Planner {
	return &Planner{}
}

// Decide returns the suggested order quantity for the given inventory
// position. When net available inventory is below the reorder point the
// order raises the position to the base stock level; otherwise no order is
// suggested. Quantities are rounded half away from zero and never negative.
// A negative net available (backorders) feeds the same formula unchanged.
func (p *Planner) Decide(position entities.InventoryPosition) entities.ReplenishmentOrder {
	if !position.Triggered() {
		return entities.ReplenishmentOrder{Quantity: 0, Triggered: false}
	}

	qty := int64(math.Round(math.Max(0, position.BaseStock-position.NetAvailable)))
	return entities.ReplenishmentOrder{Quantity: qty, Triggered: true}
}
