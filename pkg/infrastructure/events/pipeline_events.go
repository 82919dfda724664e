package events

import (
	"github.com/nvohra/replan/pkg/domain/entities"
)

const (
	ForecastCompletedEvent    = "forecast.completed"
	PolicyComputedEvent       = "policy.computed"
	ReplenishmentDecidedEvent = "replenishment.decided"
)

type ForecastCompleted struct {
	SKUID      entities.SKUID           `json:"sku_id"`
	SiteID     entities.SiteID          `json:"site_id"`
	Statistics entities.DemandStatistics `json:"statistics"`
	Horizon    int                      `json:"horizon"`
}

type PolicyComputed struct {
	SKUID     entities.SKUID           `json:"sku_id"`
	SiteID    entities.SiteID          `json:"site_id"`
	TargetCSL float64                  `json:"target_csl"`
	Policy    entities.InventoryPolicy `json:"policy"`
}

type ReplenishmentDecided struct {
	SKUID entities.SKUID             `json:"sku_id"`
	Site  entities.SiteID            `json:"site_id"`
	Order entities.ReplenishmentOrder `json:"order"`
}

func NewForecastCompletedEvent(runID string, skuID entities.SKUID, siteID entities.SiteID, stats entities.DemandStatistics, horizon int) Event {
	return New(ForecastCompletedEvent, runID, ForecastCompleted{
		SKUID:      skuID,
		SiteID:     siteID,
		Statistics: stats,
		Horizon:    horizon,
	})
}

func NewPolicyComputedEvent(runID string, skuID entities.SKUID, siteID entities.SiteID, targetCSL float64, policy entities.InventoryPolicy) Event {
	return New(PolicyComputedEvent, runID, PolicyComputed{
		SKUID:     skuID,
		SiteID:    siteID,
		TargetCSL: targetCSL,
		Policy:    policy,
	})
}

func NewReplenishmentDecidedEvent(runID string, skuID entities.SKUID, siteID entities.SiteID, order entities.ReplenishmentOrder) Event {
	return New(ReplenishmentDecidedEvent, runID, ReplenishmentDecided{
		SKUID: skuID,
		Site:  siteID,
		Order: order,
	})
}
